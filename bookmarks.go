package chromarks

import "encoding/json"

// The Chromium bookmarks file is UTF-8 JSON with a top-level "roots" object
// holding up to three trees: bookmark_bar, other, synced. Nodes are either
// type "url" (leaf, has url) or type "folder" (has children).

const (
	nodeTypeURL    = "url"
	nodeTypeFolder = "folder"
)

type bookmarkFile struct {
	Roots *bookmarkRoots `json:"roots"`
}

type bookmarkRoots struct {
	BookmarkBar *bookmarkNode `json:"bookmark_bar"`
	Other       *bookmarkNode `json:"other"`
	Synced      *bookmarkNode `json:"synced"`
}

type bookmarkNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	URL      string         `json:"url"`
	Children []bookmarkNode `json:"children"`
}

// decodeBookmarkFile parses raw bookmark JSON. A file without a roots object
// is an error; individual missing root trees are tolerated by the caller.
func decodeBookmarkFile(raw []byte, path string) (*bookmarkRoots, error) {
	var f bookmarkFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if f.Roots == nil {
		return nil, &ParseError{Path: path, Err: errMissingRoots}
	}
	return f.Roots, nil
}
