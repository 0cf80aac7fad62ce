package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromarks/chromarks"
)

func testBookmarks() []chromarks.Bookmark {
	return []chromarks.Bookmark{
		{ID: "1", Title: "Tracker", URL: "https://tracker.test", FolderPath: "Work"},
		{ID: "2", Title: "Pasta", URL: "https://recipes.test", FolderPath: "Cooking"},
	}
}

func TestApplyResult_StaleCompletionDiscarded(t *testing.T) {
	app := New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome, chromarks.BrowserEdge}})

	genChrome, b := app.beginLoad()
	assert.Equal(t, chromarks.BrowserChrome, b)

	// User switches browser before the first load completes.
	app.advanceBrowser()
	genEdge, b := app.beginLoad()
	assert.Equal(t, chromarks.BrowserEdge, b)

	// The chrome completion arrives late and must be dropped.
	require.False(t, app.applyResult(genChrome, testBookmarks(), nil))
	assert.Empty(t, app.loaded)

	// The edge completion is current and applies.
	require.True(t, app.applyResult(genEdge, testBookmarks(), nil))
	assert.Len(t, app.loaded, 2)
}

func TestApplyResult_ErrorResetsPreviousList(t *testing.T) {
	app := New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome}})

	gen, _ := app.beginLoad()
	require.True(t, app.applyResult(gen, testBookmarks(), nil))
	require.Len(t, app.loaded, 2)

	gen, _ = app.beginLoad()
	require.True(t, app.applyResult(gen, nil, assert.AnError))
	assert.Empty(t, app.loaded, "an error must not leave stale bookmarks behind")
}

func TestRefreshList_FiltersBySearchText(t *testing.T) {
	app := New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome}})
	gen, _ := app.beginLoad()
	require.True(t, app.applyResult(gen, testBookmarks(), nil))

	app.refreshList()
	assert.Len(t, app.visible, 2)

	app.search.SetText("pasta")
	app.refreshList()
	require.Len(t, app.visible, 1)
	assert.Equal(t, "2", app.visible[0].ID)
}

func TestVisibleAt_Bounds(t *testing.T) {
	app := New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome}})
	gen, _ := app.beginLoad()
	require.True(t, app.applyResult(gen, testBookmarks(), nil))
	app.refreshList()

	_, ok := app.visibleAt(-1)
	assert.False(t, ok)
	_, ok = app.visibleAt(2)
	assert.False(t, ok)
	b, ok := app.visibleAt(0)
	require.True(t, ok)
	assert.Equal(t, "1", b.ID)
}

func TestDisplayPath_SeparatorOverride(t *testing.T) {
	app := New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome}, Separator: " > "})
	assert.Equal(t, "Work > Docs", app.displayPath("Work / Docs"))

	app = New(Config{Browsers: []chromarks.Browser{chromarks.BrowserChrome}})
	assert.Equal(t, "Work / Docs", app.displayPath("Work / Docs"))
}
