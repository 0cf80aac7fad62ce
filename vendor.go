package chromarks

// browserVendor is one row of the descriptor table: everything needed to
// locate a vendor's user-data directories on each OS. New browsers are
// supported by adding a row here, not by branching elsewhere.
type browserVendor struct {
	browser Browser

	// user-visible
	label string

	// macOS: one path, relative to ~/Library/Application Support.
	macSegments []string

	// Windows: relative to %LOCALAPPDATA%. Some vendors have shipped under
	// more than one folder, so this is a candidate list tried in order.
	winCandidates [][]string

	// Linux: relative to $XDG_CONFIG_HOME (default ~/.config).
	linuxCandidates [][]string
}

var vendorTable = []browserVendor{
	{
		browser:     BrowserChrome,
		label:       "Google Chrome",
		macSegments: []string{"Google", "Chrome"},
		winCandidates: [][]string{
			{"Google", "Chrome", "User Data"},
			{"Google", "Chrome Beta", "User Data"},
		},
		linuxCandidates: [][]string{
			{"google-chrome"},
			{"google-chrome-beta"},
		},
	},
	{
		browser:     BrowserEdge,
		label:       "Microsoft Edge",
		macSegments: []string{"Microsoft Edge"},
		winCandidates: [][]string{
			{"Microsoft", "Edge", "User Data"},
			{"Microsoft", "Edge Beta", "User Data"},
		},
		linuxCandidates: [][]string{
			{"microsoft-edge"},
			{"microsoft-edge-beta"},
		},
	},
	{
		browser:         BrowserChromium,
		label:           "Chromium",
		macSegments:     []string{"Chromium"},
		winCandidates:   [][]string{{"Chromium", "User Data"}},
		linuxCandidates: [][]string{{"chromium"}},
	},
	{
		browser:     BrowserBrave,
		label:       "Brave",
		macSegments: []string{"BraveSoftware", "Brave-Browser"},
		winCandidates: [][]string{
			{"BraveSoftware", "Brave-Browser", "User Data"},
		},
		linuxCandidates: [][]string{
			{"BraveSoftware", "Brave-Browser"},
			{"brave-browser"},
		},
	},
	{
		browser:         BrowserVivaldi,
		label:           "Vivaldi",
		macSegments:     []string{"Vivaldi"},
		winCandidates:   [][]string{{"Vivaldi", "User Data"}},
		linuxCandidates: [][]string{{"vivaldi"}},
	},
}

func vendorForBrowser(b Browser) (browserVendor, bool) {
	for _, v := range vendorTable {
		if v.browser == b {
			return v, true
		}
	}
	return browserVendor{}, false
}

// BrowserLabel returns the display name for a supported browser, or the raw
// identifier for an unknown one.
func BrowserLabel(b Browser) string {
	if v, ok := vendorForBrowser(b); ok {
		return v.label
	}
	return string(b)
}
