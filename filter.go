package chromarks

import "strings"

// Filter returns the bookmarks matching query by case-insensitive substring
// match over title, URL, and folder path. An empty query matches everything.
// Input order is preserved.
func Filter(bookmarks []Bookmark, query string) []Bookmark {
	query = strings.TrimSpace(query)
	if query == "" {
		return bookmarks
	}
	q := strings.ToLower(query)

	out := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if bookmarkMatches(b, q) {
			out = append(out, b)
		}
	}
	return out
}

func bookmarkMatches(b Bookmark, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(b.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(b.URL), loweredQuery) ||
		strings.Contains(strings.ToLower(b.FolderPath), loweredQuery)
}
