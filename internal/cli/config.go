package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"

	"github.com/chromarks/chromarks"
)

// Config is the optional ini-format user configuration.
//
//	default_browser = chrome
//	separator = " > "
//	extra_dirs = /opt/portable-chrome/User Data, /mnt/shared/chrome
type Config struct {
	DefaultBrowser chromarks.Browser
	// Separator replaces the default " / " folder-path separator in
	// human-readable output. Display-only; JSON output is unaffected.
	Separator string
	// ExtraDirs are additional user-data directories scanned after the
	// built-in candidates.
	ExtraDirs []string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{Separator: " / "}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(base, "chromarks", "config.ini")
	}

	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	sec := f.Section("")
	if v := sec.Key("default_browser").String(); v != "" {
		cfg.DefaultBrowser = chromarks.Browser(v)
	}
	if v := sec.Key("separator").String(); v != "" {
		cfg.Separator = v
	}
	for _, dir := range sec.Key("extra_dirs").Strings(",") {
		if dir != "" {
			cfg.ExtraDirs = append(cfg.ExtraDirs, dir)
		}
	}
	return cfg, nil
}
