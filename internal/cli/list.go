package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chromarks/chromarks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks from a browser",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringP("query", "q", "", "Filter by substring of title, URL, or folder path")
	listCmd.Flags().StringP("output", "o", "", "Output format (json)")
	listCmd.Flags().Bool("all", false, "Read every supported browser")
}

type listedBookmark struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FolderPath string `json:"folderPath"`
	Root       string `json:"root"`
	Browser    string `json:"browser"`
	Profile    string `json:"profile"`
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigForCmd(cmd)
	query, _ := cmd.Flags().GetString("query")
	output, _ := cmd.Flags().GetString("output")
	all, _ := cmd.Flags().GetBool("all")

	res, err := readBookmarks(cmd, cfg, query, all)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		pterm.Warning.Println(w)
	}

	if output == "json" {
		records := lo.Map(res.Bookmarks, func(b chromarks.Bookmark, _ int) listedBookmark {
			return listedBookmark{
				ID:         b.ID,
				Title:      b.Title,
				URL:        b.URL,
				FolderPath: b.FolderPath,
				Root:       string(b.Root),
				Browser:    string(b.Source.Browser),
				Profile:    b.Source.Profile,
			}
		})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(res.Bookmarks) == 0 {
		pterm.Info.Println("No bookmarks matched.")
		return nil
	}

	rows := lo.Map(res.Bookmarks, func(b chromarks.Bookmark, _ int) []string {
		return []string{b.Title, displayFolderPath(b.FolderPath, cfg.Separator), b.URL, b.Source.Profile}
	})
	data := append(pterm.TableData{{"Title", "Folder", "URL", "Profile"}}, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func readBookmarks(cmd *cobra.Command, cfg Config, query string, all bool) (chromarks.Result, error) {
	profile, _ := cmd.Flags().GetString("profile")
	opts := chromarks.Options{
		Profile:   profile,
		Query:     query,
		ExtraDirs: cfg.ExtraDirs,
	}

	if all {
		return chromarks.ReadAll(cmd.Context(), chromarks.SupportedBrowsers(), opts)
	}

	b, err := selectedBrowser(cmd, cfg)
	if err != nil {
		return chromarks.Result{}, err
	}
	return chromarks.Read(cmd.Context(), b, opts)
}

// displayFolderPath swaps the canonical " / " separator for the configured
// one. Display-only; the library value is unchanged.
func displayFolderPath(folderPath, separator string) string {
	if separator == "" || separator == " / " {
		return folderPath
	}
	return strings.ReplaceAll(folderPath, " / ", separator)
}
