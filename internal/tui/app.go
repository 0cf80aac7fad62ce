// Package tui is the interactive bookmark browser: a searchable list over the
// flattened bookmarks of one Chromium-family browser at a time.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/browser"
	"github.com/rivo/tview"

	"github.com/chromarks/chromarks"
	"github.com/chromarks/chromarks/internal/clipboard"
)

// Config configures the interactive browser.
type Config struct {
	// Browsers is the Tab cycle order. The first entry is loaded on start.
	Browsers  []chromarks.Browser
	Separator string
	Options   chromarks.Options
}

// App is the tview application state.
type App struct {
	ui     *tview.Application
	list   *tview.List
	search *tview.InputField
	status *tview.TextView

	cfg Config

	mu      sync.Mutex
	gen     int
	current int
	loaded  []chromarks.Bookmark

	visible []chromarks.Bookmark

	// seams for tests
	read    func(context.Context, chromarks.Browser, chromarks.Options) (chromarks.Result, error)
	openURL func(string) error
	copyURL func(context.Context, string) error
}

// New creates the interactive browser.
func New(cfg Config) *App {
	if len(cfg.Browsers) == 0 {
		cfg.Browsers = chromarks.SupportedBrowsers()
	}
	if cfg.Separator == "" {
		cfg.Separator = " / "
	}
	return &App{
		ui:      tview.NewApplication(),
		list:    tview.NewList().ShowSecondaryText(true),
		search:  tview.NewInputField().SetLabel("Search: "),
		status:  tview.NewTextView().SetDynamicColors(true),
		cfg:     cfg,
		read:    chromarks.Read,
		openURL: browser.OpenURL,
		copyURL: clipboard.Write,
	}
}

// Run starts the application and blocks until quit.
func (a *App) Run() error {
	a.list.SetBorder(true)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(a.list, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.search.SetChangedFunc(func(string) { a.refreshList() })
	a.search.SetDoneFunc(func(tcell.Key) { a.ui.SetFocus(a.list) })
	a.list.SetSelectedFunc(func(index int, _ string, _ string, _ rune) { a.openIndex(index) })

	a.ui.SetRoot(main, true)
	a.ui.SetInputCapture(a.globalInput)
	a.ui.SetFocus(a.list)

	a.reload()
	return a.ui.Run()
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.search.HasFocus() {
		return event
	}
	switch event.Key() {
	case tcell.KeyTab:
		a.nextBrowser()
		return nil
	case tcell.KeyCtrlC:
		a.ui.Stop()
		return nil
	}
	switch event.Rune() {
	case '/':
		a.ui.SetFocus(a.search)
		return nil
	case 'y':
		a.copyIndex(a.list.GetCurrentItem())
		return nil
	case 'q':
		a.ui.Stop()
		return nil
	}
	return event
}

// beginLoad bumps the generation and returns the tag for this load plus the
// browser it was issued for. Completions carrying an older tag are stale and
// must be dropped: results only ever apply to the currently selected browser.
func (a *App) beginLoad() (int, chromarks.Browser) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	return a.gen, a.cfg.Browsers[a.current]
}

// applyResult installs a completed load if its tag is still current. It
// reports whether the result was taken. On error the previous list is fully
// reset; an error never shows alongside stale bookmarks.
func (a *App) applyResult(gen int, bookmarks []chromarks.Bookmark, err error) bool {
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return false
	}
	if err != nil {
		a.loaded = nil
	} else {
		a.loaded = bookmarks
	}
	a.mu.Unlock()
	return true
}

func (a *App) currentBrowser() chromarks.Browser {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Browsers[a.current]
}

func (a *App) nextBrowser() {
	a.advanceBrowser()
	a.reload()
}

func (a *App) advanceBrowser() {
	a.mu.Lock()
	a.current = (a.current + 1) % len(a.cfg.Browsers)
	a.mu.Unlock()
}

func (a *App) reload() {
	gen, b := a.beginLoad()
	a.toast(fmt.Sprintf("Loading %s...", chromarks.BrowserLabel(b)))

	go func() {
		res, err := a.read(context.Background(), b, a.cfg.Options)
		a.ui.QueueUpdateDraw(func() {
			if !a.applyResult(gen, res.Bookmarks, err) {
				return
			}
			a.refreshList()
			if err != nil {
				a.toast("[red]" + tview.Escape(err.Error()))
				return
			}
			a.showCounts(b)
		})
	}()
}

func (a *App) refreshList() {
	a.mu.Lock()
	loaded := a.loaded
	a.mu.Unlock()

	a.visible = chromarks.Filter(loaded, a.search.GetText())

	a.list.Clear()
	for _, b := range a.visible {
		secondary := b.URL
		if b.FolderPath != "" {
			secondary = a.displayPath(b.FolderPath) + "  " + b.URL
		}
		a.list.AddItem(b.Title, secondary, 0, nil)
	}
	a.list.SetTitle(fmt.Sprintf(" %s (%d) ", chromarks.BrowserLabel(a.currentBrowser()), len(a.visible)))
}

func (a *App) displayPath(folderPath string) string {
	if a.cfg.Separator == " / " {
		return folderPath
	}
	return strings.ReplaceAll(folderPath, " / ", a.cfg.Separator)
}

func (a *App) openIndex(index int) {
	b, ok := a.visibleAt(index)
	if !ok {
		return
	}
	if err := a.openURL(b.URL); err != nil {
		a.toast("[red]" + tview.Escape(err.Error()))
		return
	}
	a.toast("Opened " + b.URL)
}

func (a *App) copyIndex(index int) {
	b, ok := a.visibleAt(index)
	if !ok {
		return
	}
	if err := a.copyURL(context.Background(), b.URL); err != nil {
		a.toast("[red]" + tview.Escape(err.Error()))
		return
	}
	a.toast("Copied " + b.URL)
}

func (a *App) visibleAt(index int) (chromarks.Bookmark, bool) {
	if index < 0 || index >= len(a.visible) {
		return chromarks.Bookmark{}, false
	}
	return a.visible[index], true
}

func (a *App) showCounts(b chromarks.Browser) {
	a.toast(fmt.Sprintf("%s: %d bookmarks  [::b]Tab[::-] browser  [::b]/[::-] search  [::b]Enter[::-] open  [::b]y[::-] copy  [::b]q[::-] quit",
		chromarks.BrowserLabel(b), len(a.visible)))
}

func (a *App) toast(msg string) {
	a.status.SetText(msg)
}
