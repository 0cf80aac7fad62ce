package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromarks/chromarks"
)

func TestLoadConfig_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := "default_browser = edge\nseparator = \" > \"\nextra_dirs = /opt/portable, /mnt/shared\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, chromarks.BrowserEdge, cfg.DefaultBrowser)
	assert.Equal(t, " > ", cfg.Separator)
	assert.Equal(t, []string{"/opt/portable", "/mnt/shared"}, cfg.ExtraDirs)
}

func TestLoadConfig_MissingFileIsDefault(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[unclosed\n"), 0o644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDisplayFolderPath(t *testing.T) {
	assert.Equal(t, "Work / Docs", displayFolderPath("Work / Docs", " / "))
	assert.Equal(t, "Work > Docs", displayFolderPath("Work / Docs", " > "))
	assert.Equal(t, "Work / Docs", displayFolderPath("Work / Docs", ""))
}

func TestOrderedBrowsers_PreferredFirstNoDuplicates(t *testing.T) {
	got := orderedBrowsers(chromarks.BrowserEdge)
	require.Equal(t, chromarks.BrowserEdge, got[0])
	assert.Len(t, got, len(chromarks.SupportedBrowsers()))

	seen := map[chromarks.Browser]bool{}
	for _, b := range got {
		assert.False(t, seen[b], "duplicate browser %s", b)
		seen[b] = true
	}
}

func browserFlagCmd(t *testing.T, value string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().String("browser", "", "")
	if value != "" {
		require.NoError(t, cmd.Flags().Set("browser", value))
	}
	return cmd
}

func TestSelectedBrowser(t *testing.T) {
	b, err := selectedBrowser(browserFlagCmd(t, "brave"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, chromarks.BrowserBrave, b)

	// Flag beats config default.
	cfg := DefaultConfig()
	cfg.DefaultBrowser = chromarks.BrowserVivaldi
	b, err = selectedBrowser(browserFlagCmd(t, "chrome"), cfg)
	require.NoError(t, err)
	assert.Equal(t, chromarks.BrowserChrome, b)

	// Config default applies when the flag is empty.
	b, err = selectedBrowser(browserFlagCmd(t, ""), cfg)
	require.NoError(t, err)
	assert.Equal(t, chromarks.BrowserVivaldi, b)

	// Chrome is the fallback of last resort.
	b, err = selectedBrowser(browserFlagCmd(t, ""), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, chromarks.BrowserChrome, b)

	_, err = selectedBrowser(browserFlagCmd(t, "netscape"), DefaultConfig())
	assert.ErrorIs(t, err, chromarks.ErrUnknownBrowser)
}
