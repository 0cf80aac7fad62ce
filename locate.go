package chromarks

import (
	"os"
	"path/filepath"
	"runtime"
)

// bookmarksFileName is the Chromium bookmarks file inside a profile directory.
const bookmarksFileName = "Bookmarks"

// profileCandidates is the fixed ordered list of profile directories probed
// per user-data directory. The candidate space is small and bounded, so the
// locator is a plain nested scan.
var profileCandidates = []string{"Default", "Profile 1", "Profile 2", "Profile 3"}

// Locate resolves the bookmarks file for a browser by scanning the vendor's
// user-data directories in order, then the fixed profile candidates within
// each. The first existing file wins. It returns *NotFoundError only after
// every base-directory/profile combination has been tried.
func Locate(b Browser) (Store, error) {
	v, ok := vendorForBrowser(b)
	if !ok {
		return Store{}, ErrUnknownBrowser
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, err
	}
	return locateStore(v, runtime.GOOS, home, os.Getenv, nil)
}

func locateStore(v browserVendor, goos string, home string, getenv func(string) string, extraDirs []string) (Store, error) {
	dirs := append(userDataDirs(v, goos, home, getenv), extraDirs...)
	for _, dir := range dirs {
		for _, prof := range profileCandidates {
			p := filepath.Join(dir, prof, bookmarksFileName)
			if fileExists(p) {
				return Store{
					Browser:       v.browser,
					Profile:       prof,
					UserDataDir:   dir,
					BookmarksPath: p,
				}, nil
			}
		}
	}
	return Store{}, &NotFoundError{Browser: v.browser, Label: v.label, Hint: notFoundHint(goos)}
}

// userDataDirs returns the candidate user-data directories for a vendor on
// the given OS, in probe order. Missing directories are fine; the caller
// probes files and skips misses silently.
func userDataDirs(v browserVendor, goos string, home string, getenv func(string) string) []string {
	switch goos {
	case "darwin":
		base := filepath.Join(home, "Library", "Application Support")
		return []string{filepath.Join(base, filepath.Join(v.macSegments...))}
	case "windows":
		local := getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		out := make([]string, 0, len(v.winCandidates))
		for _, segs := range v.winCandidates {
			out = append(out, filepath.Join(local, filepath.Join(segs...)))
		}
		return out
	default:
		base := getenv("XDG_CONFIG_HOME")
		if base == "" {
			base = filepath.Join(home, ".config")
		}
		out := make([]string, 0, len(v.linuxCandidates))
		for _, segs := range v.linuxCandidates {
			out = append(out, filepath.Join(base, filepath.Join(segs...)))
		}
		return out
	}
}

func currentGOOS() string { return runtime.GOOS }

func notFoundHint(goos string) string {
	if goos == "darwin" {
		return "Full Disk Access permission"
	}
	return "installation path"
}

// resolveStoreOverride interprets a profile override as either an explicit
// bookmarks file path or a profile directory name within the known roots.
func resolveStoreOverride(v browserVendor, override string, goos string, home string, getenv func(string) string, extraDirs []string) (Store, error) {
	if fi, err := os.Stat(override); err == nil && !fi.IsDir() {
		dir := filepath.Dir(override)
		return Store{
			Browser:       v.browser,
			Profile:       filepath.Base(dir),
			UserDataDir:   filepath.Dir(dir),
			BookmarksPath: override,
		}, nil
	}

	dirs := append(userDataDirs(v, goos, home, getenv), extraDirs...)
	for _, dir := range dirs {
		p := filepath.Join(dir, override, bookmarksFileName)
		if fileExists(p) {
			return Store{
				Browser:       v.browser,
				Profile:       override,
				UserDataDir:   dir,
				BookmarksPath: p,
			}, nil
		}
	}
	return Store{}, &NotFoundError{Browser: v.browser, Label: v.label, Hint: notFoundHint(goos)}
}
