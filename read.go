package chromarks

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Read locates, reads, and flattens the bookmarks of a single browser.
// Failures are classified: *NotFoundError when no profile candidate had a
// bookmarks file, *PermissionError when the file exists but is unreadable,
// *ParseError when its contents are malformed. Each is terminal for the
// invocation; on error the returned Result carries no bookmarks.
func Read(ctx context.Context, b Browser, opts Options) (Result, error) {
	v, ok := vendorForBrowser(b)
	if !ok {
		return Result{}, ErrUnknownBrowser
	}

	store, err := resolveStore(v, opts)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	raw, err := os.ReadFile(store.BookmarksPath)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Result{}, &PermissionError{Path: store.BookmarksPath, Err: err}
		}
		if errors.Is(err, os.ErrNotExist) {
			// Raced with a profile removal between stat and read.
			return Result{}, &NotFoundError{Browser: v.browser, Label: v.label, Hint: notFoundHint(currentGOOS())}
		}
		return Result{}, fmt.Errorf("chromarks: reading %s: %w", store.BookmarksPath, err)
	}

	bookmarks, err := Flatten(raw, Source{
		Browser:   store.Browser,
		Profile:   store.Profile,
		StorePath: store.BookmarksPath,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Bookmarks: Filter(bookmarks, opts.Query)}, nil
}

// ReadAll reads bookmarks from several browsers in order, merging results.
// Per-browser NotFound is downgraded to a warning so one missing browser
// does not hide the others; permission and parse failures are warnings too.
// Context cancellation and unknown browsers still fail the whole call.
func ReadAll(ctx context.Context, browsers []Browser, opts Options) (Result, error) {
	var out Result
	for _, b := range browsers {
		res, err := Read(ctx, b, opts)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return Result{}, err
			}
			if errors.Is(err, ErrUnknownBrowser) {
				return Result{}, fmt.Errorf("%w: %q", ErrUnknownBrowser, b)
			}
			out.Warnings = append(out.Warnings, err.Error())
			continue
		}
		out.Bookmarks = append(out.Bookmarks, res.Bookmarks...)
		out.Warnings = append(out.Warnings, res.Warnings...)
	}
	return out, nil
}

func resolveStore(v browserVendor, opts Options) (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, err
	}
	if opts.Profile != "" {
		return resolveStoreOverride(v, opts.Profile, currentGOOS(), home, os.Getenv, opts.ExtraDirs)
	}
	return locateStore(v, currentGOOS(), home, os.Getenv, opts.ExtraDirs)
}
