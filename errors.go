package chromarks

import (
	"errors"
	"fmt"
)

// ErrUnknownBrowser is returned for browsers not in the descriptor table.
var ErrUnknownBrowser = errors.New("chromarks: unknown browser")

// NotFoundError is returned when no candidate profile path contained a
// bookmarks file. Hint is a platform-appropriate remediation suggestion.
type NotFoundError struct {
	Browser Browser
	Label   string
	Hint    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("chromarks: no bookmarks file found for %s (check %s)", e.Label, e.Hint)
}

// PermissionError is returned when a bookmarks file exists but reading it
// failed due to access control.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("chromarks: permission denied reading %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// ParseError is returned when the bookmarks file is not valid JSON or lacks
// the expected root structure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("chromarks: invalid bookmarks data: %v", e.Err)
	}
	return fmt.Sprintf("chromarks: invalid bookmarks file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
