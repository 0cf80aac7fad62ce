package chromarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// ListProfiles enumerates the profiles of a browser's user-data directories.
// It prefers the "Local State" file's profile cache, which knows the
// user-visible profile names; when Local State is absent or unparseable it
// falls back to probing the fixed profile candidates. Note that Locate
// deliberately does not use Local State: the fixed candidate scan keeps its
// result order independent of browser-maintained metadata.
func ListProfiles(b Browser) ([]Profile, error) {
	v, ok := vendorForBrowser(b)
	if !ok {
		return nil, ErrUnknownBrowser
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return listProfiles(v, runtime.GOOS, home, os.Getenv, nil)
}

func listProfiles(v browserVendor, goos string, home string, getenv func(string) string, extraDirs []string) ([]Profile, error) {
	dirs := append(userDataDirs(v, goos, home, getenv), extraDirs...)

	var out []Profile
	for _, dir := range dirs {
		out = append(out, profilesInUserDataDir(dir)...)
	}
	if len(out) == 0 {
		return nil, &NotFoundError{Browser: v.browser, Label: v.label, Hint: notFoundHint(goos)}
	}
	return out, nil
}

func profilesInUserDataDir(userDataDir string) []Profile {
	named, ok := localStateProfiles(userDataDir)
	if !ok {
		// No usable Local State: probe the fixed candidates directly.
		var out []Profile
		for _, prof := range profileCandidates {
			if fileExists(filepath.Join(userDataDir, prof, bookmarksFileName)) {
				out = append(out, Profile{Dir: prof, Name: prof, HasBookmarks: true})
			}
		}
		return out
	}

	out := make([]Profile, 0, len(named))
	for _, p := range named {
		p.HasBookmarks = fileExists(filepath.Join(userDataDir, p.Dir, bookmarksFileName))
		out = append(out, p)
	}
	return out
}

// localStateProfiles reads <userDataDir>/Local State and returns the cached
// profile list in a stable order: "Default" first, then by directory name.
func localStateProfiles(userDataDir string) ([]Profile, bool) {
	raw, err := os.ReadFile(filepath.Join(userDataDir, "Local State"))
	if err != nil {
		return nil, false
	}

	var localState struct {
		Profile struct {
			InfoCache map[string]struct {
				Name string `json:"name"`
			} `json:"info_cache"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(raw, &localState); err != nil {
		return nil, false
	}
	if len(localState.Profile.InfoCache) == 0 {
		return nil, false
	}

	out := make([]Profile, 0, len(localState.Profile.InfoCache))
	for dir, info := range localState.Profile.InfoCache {
		name := info.Name
		if name == "" {
			name = dir
		}
		out = append(out, Profile{Dir: dir, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].Dir == "Default") != (out[j].Dir == "Default") {
			return out[i].Dir == "Default"
		}
		return out[i].Dir < out[j].Dir
	})
	return out, true
}
