package cli

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromarks/chromarks"
	"github.com/chromarks/chromarks/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "chromarks",
	Short: "Browse bookmarks from local Chromium-family browsers",
	Long: `chromarks locates the per-profile Bookmarks file of a Chromium-family
browser, flattens the folder tree, and lets you search, open, and copy
bookmarks. Run without arguments for the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringP("browser", "b", "", "Browser to read (chrome, edge, chromium, brave, vivaldi)")
	rootCmd.PersistentFlags().String("profile", "", "Profile directory name or explicit Bookmarks file path")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: <user config dir>/chromarks/config.ini)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(browsersCmd)
	rootCmd.AddCommand(profilesCmd)
}

// Execute runs the CLI. Errors are already reported to the user; the caller
// only needs the exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigForCmd(cmd)
	b, err := selectedBrowser(cmd, cfg)
	if err != nil {
		return err
	}
	profile, _ := cmd.Flags().GetString("profile")

	app := tui.New(tui.Config{
		Browsers:  orderedBrowsers(b),
		Separator: cfg.Separator,
		Options: chromarks.Options{
			Profile:   profile,
			ExtraDirs: cfg.ExtraDirs,
		},
	})
	return app.Run()
}

// orderedBrowsers returns all supported browsers with the preferred one first,
// so the interactive Tab cycle starts where the user asked.
func orderedBrowsers(preferred chromarks.Browser) []chromarks.Browser {
	all := chromarks.SupportedBrowsers()
	out := make([]chromarks.Browser, 0, len(all))
	out = append(out, preferred)
	for _, b := range all {
		if b != preferred {
			out = append(out, b)
		}
	}
	return out
}

func selectedBrowser(cmd *cobra.Command, cfg Config) (chromarks.Browser, error) {
	name, _ := cmd.Flags().GetString("browser")
	if name == "" {
		name = string(cfg.DefaultBrowser)
	}
	if name == "" {
		return chromarks.BrowserChrome, nil
	}

	b := chromarks.Browser(name)
	for _, known := range chromarks.SupportedBrowsers() {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", chromarks.ErrUnknownBrowser, name)
}

func loadConfigForCmd(cmd *cobra.Command) Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		pterm.Warning.Printfln("ignoring config: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// reportError prints a remediation-oriented message for classified failures
// and a plain one otherwise.
func reportError(err error) {
	var nf *chromarks.NotFoundError
	var pe *chromarks.PermissionError
	var parse *chromarks.ParseError
	switch {
	case errors.As(err, &nf):
		pterm.Error.Printfln("No bookmarks found for %s.", nf.Label)
		pterm.Info.Printfln("Check the browser's %s, or pass --profile with an explicit Bookmarks path.", nf.Hint)
	case errors.As(err, &pe):
		pterm.Error.Printfln("Reading %s was denied.", pe.Path)
		pterm.Info.Println("Grant this terminal access to the browser's data directory (on macOS: System Settings > Privacy & Security > Full Disk Access).")
	case errors.As(err, &parse):
		pterm.Error.Printfln("Could not read the bookmarks file: %v", err)
	default:
		pterm.Error.Println(err.Error())
	}
}
