// Package chromarks reads bookmarks from local Chromium-family browser profiles.
//
// This is intended for local tooling (CLI helpers, launchers, dev scripts). It locates
// the per-profile Bookmarks file, parses it read-only, and flattens the folder tree into
// an ordered list. It never writes to browser state.
package chromarks
