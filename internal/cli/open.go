package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromarks/chromarks"
	"github.com/chromarks/chromarks/internal/clipboard"
)

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Open the first matching bookmark in the default browser",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runOpen,
}

var copyCmd = &cobra.Command{
	Use:   "copy <query>",
	Short: "Copy the URL of the first matching bookmark to the clipboard",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCopy,
}

func runOpen(cmd *cobra.Command, args []string) error {
	b, err := firstMatch(cmd, args)
	if err != nil {
		return err
	}
	if err := browser.OpenURL(b.URL); err != nil {
		return fmt.Errorf("opening %s: %w", b.URL, err)
	}
	pterm.Success.Printfln("Opened %s", b.URL)
	return nil
}

func runCopy(cmd *cobra.Command, args []string) error {
	b, err := firstMatch(cmd, args)
	if err != nil {
		return err
	}
	if err := clipboard.Write(cmd.Context(), b.URL); err != nil {
		return err
	}
	pterm.Success.Printfln("Copied %s", b.URL)
	return nil
}

func firstMatch(cmd *cobra.Command, args []string) (chromarks.Bookmark, error) {
	cfg := loadConfigForCmd(cmd)
	query := strings.Join(args, " ")

	res, err := readBookmarks(cmd, cfg, query, false)
	if err != nil {
		return chromarks.Bookmark{}, err
	}
	if len(res.Bookmarks) == 0 {
		return chromarks.Bookmark{}, fmt.Errorf("no bookmark matches %q", query)
	}
	return res.Bookmarks[0], nil
}
