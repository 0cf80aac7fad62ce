package chromarks

// Browser identifies a bookmark source.
type Browser string

const (
	// BrowserChrome is Google Chrome.
	BrowserChrome Browser = "chrome"
	// BrowserEdge is Microsoft Edge.
	BrowserEdge Browser = "edge"
	// BrowserChromium is Chromium.
	BrowserChromium Browser = "chromium"
	// BrowserBrave is Brave Browser.
	BrowserBrave Browser = "brave"
	// BrowserVivaldi is Vivaldi.
	BrowserVivaldi Browser = "vivaldi"
)

// Root names one of the fixed top-level bookmark containers.
type Root string

const (
	// RootBookmarkBar is the bookmark bar.
	RootBookmarkBar Root = "bookmark_bar"
	// RootOther is "Other bookmarks".
	RootOther Root = "other"
	// RootSynced is "Mobile bookmarks" (synced from other devices).
	RootSynced Root = "synced"
)

// Source describes where a bookmark came from.
type Source struct {
	Browser   Browser
	Profile   string
	StorePath string
}

// Bookmark is a single flattened bookmark record.
type Bookmark struct {
	// ID is the node id carried from the bookmarks file, unique within it.
	ID string
	// Title is the bookmark name as shown in the browser.
	Title string
	// URL is the bookmark target.
	URL string
	// FolderPath is the " / "-joined ancestor folder names, excluding the
	// root container's own name. Empty for bookmarks directly under a root.
	FolderPath string
	// Root is the top-level container the bookmark was found under.
	Root Root

	Source Source
}

// Store is a resolved on-disk bookmarks file.
type Store struct {
	Browser Browser
	// Profile is the profile directory name, e.g. "Default" or "Profile 2".
	Profile string
	// UserDataDir is the browser's user-data directory containing the profile.
	UserDataDir string
	// BookmarksPath is the Bookmarks file inside the profile directory.
	BookmarksPath string
}

// Profile is a browser profile as listed in the user-data directory.
type Profile struct {
	// Dir is the profile directory name.
	Dir string
	// Name is the user-visible profile name, if known. Falls back to Dir.
	Name string
	// HasBookmarks reports whether the profile has a Bookmarks file on disk.
	HasBookmarks bool
}

// Options configures bookmark loading.
type Options struct {
	// Profile overrides profile selection.
	// Either a profile directory name (e.g. "Profile 2") or an explicit
	// Bookmarks file path.
	Profile string

	// Query filters results by case-insensitive substring match over title,
	// URL, and folder path. Empty means "all bookmarks".
	Query string

	// ExtraDirs are additional user-data directories scanned after the
	// built-in candidates, e.g. for portable installations.
	ExtraDirs []string
}

// Result is returned by Read.
type Result struct {
	Bookmarks []Bookmark
	Warnings  []string
}

// SupportedBrowsers returns the supported browsers in descriptor-table order.
func SupportedBrowsers() []Browser {
	out := make([]Browser, 0, len(vendorTable))
	for _, v := range vendorTable {
		out = append(out, v.browser)
	}
	return out
}
