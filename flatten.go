package chromarks

import "errors"

var errMissingRoots = errors.New("missing roots object")

// folderPathSeparator joins ancestor folder names in Bookmark.FolderPath.
const folderPathSeparator = " / "

// Flatten parses raw bookmark JSON and flattens the folder trees into an
// ordered list. Roots are visited in fixed order (bookmark_bar, other,
// synced; absent roots are skipped), then each tree is walked depth-first in
// document order, so output order is deterministic for a given input.
// Duplicate URLs are kept; every occurrence is a distinct record.
func Flatten(raw []byte, source Source) ([]Bookmark, error) {
	roots, err := decodeBookmarkFile(raw, source.StorePath)
	if err != nil {
		return nil, err
	}
	return flattenRoots(roots, source), nil
}

func flattenRoots(roots *bookmarkRoots, source Source) []Bookmark {
	var out []Bookmark
	for _, r := range []struct {
		root Root
		node *bookmarkNode
	}{
		{RootBookmarkBar, roots.BookmarkBar},
		{RootOther, roots.Other},
		{RootSynced, roots.Synced},
	} {
		if r.node == nil {
			continue
		}
		// The root container's own name is never part of the folder path:
		// the walk starts at its children with an empty accumulated path.
		for i := range r.node.Children {
			out = walkNode(&r.node.Children[i], "", r.root, source, out)
		}
	}
	return out
}

func walkNode(n *bookmarkNode, folderPath string, root Root, source Source, out []Bookmark) []Bookmark {
	switch n.Type {
	case nodeTypeURL:
		if n.URL == "" {
			return out
		}
		return append(out, Bookmark{
			ID:         n.ID,
			Title:      n.Name,
			URL:        n.URL,
			FolderPath: folderPath,
			Root:       root,
			Source:     source,
		})
	case nodeTypeFolder:
		childPath := n.Name
		if folderPath != "" {
			childPath = folderPath + folderPathSeparator + n.Name
		}
		for i := range n.Children {
			out = walkNode(&n.Children[i], childPath, root, source, out)
		}
		return out
	default:
		// Unknown node types are skipped, not fatal.
		return out
	}
}
