package cli

import (
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chromarks/chromarks"
)

var browsersCmd = &cobra.Command{
	Use:   "browsers",
	Short: "List supported browsers",
	RunE:  runBrowsers,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List a browser's profiles",
	RunE:  runProfiles,
}

func runBrowsers(*cobra.Command, []string) error {
	rows := lo.Map(chromarks.SupportedBrowsers(), func(b chromarks.Browser, _ int) []string {
		return []string{string(b), chromarks.BrowserLabel(b)}
	})
	data := append(pterm.TableData{{"ID", "Name"}}, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigForCmd(cmd)
	b, err := selectedBrowser(cmd, cfg)
	if err != nil {
		return err
	}

	profiles, err := chromarks.ListProfiles(b)
	if err != nil {
		return err
	}

	rows := lo.Map(profiles, func(p chromarks.Profile, _ int) []string {
		bookmarks := "no"
		if p.HasBookmarks {
			bookmarks = "yes"
		}
		return []string{p.Dir, p.Name, bookmarks}
	})
	data := append(pterm.TableData{{"Directory", "Name", "Bookmarks"}}, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
