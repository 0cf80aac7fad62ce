package chromarks

import "testing"

func TestFilter_MatchesTitleURLAndFolderPath(t *testing.T) {
	bookmarks := []Bookmark{
		{ID: "1", Title: "Issue Tracker", URL: "https://tracker.example.com", FolderPath: "Work"},
		{ID: "2", Title: "Pasta", URL: "https://recipes.example.com", FolderPath: "Cooking / Italian"},
		{ID: "3", Title: "News", URL: "https://news.example.com", FolderPath: ""},
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"  ", []string{"1", "2", "3"}},
		{"TRACKER", []string{"1"}},
		{"recipes", []string{"2"}},
		{"italian", []string{"2"}},
		{"example.com", []string{"1", "2", "3"}},
		{"zzz", nil},
	}

	for _, tc := range cases {
		got := Filter(bookmarks, tc.query)
		if len(got) != len(tc.want) {
			t.Fatalf("query %q: want %d got %d", tc.query, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("query %q: position %d: want %q got %q", tc.query, i, id, got[i].ID)
			}
		}
	}
}

func TestBrowserLabel(t *testing.T) {
	if got := BrowserLabel(BrowserChrome); got != "Google Chrome" {
		t.Fatalf("want %q got %q", "Google Chrome", got)
	}
	if got := BrowserLabel(BrowserEdge); got != "Microsoft Edge" {
		t.Fatalf("want %q got %q", "Microsoft Edge", got)
	}
	if got := BrowserLabel(Browser("w3m")); got != "w3m" {
		t.Fatalf("unknown browsers fall back to the identifier, got %q", got)
	}
}

func TestSupportedBrowsers_TableOrder(t *testing.T) {
	got := SupportedBrowsers()
	if len(got) != len(vendorTable) {
		t.Fatalf("want %d browsers got %d", len(vendorTable), len(got))
	}
	if got[0] != BrowserChrome || got[1] != BrowserEdge {
		t.Fatalf("chrome and edge lead the table: %v", got)
	}
}
