// Package config loads warden's operator configuration. The configuration
// is built exactly once at startup and passed by value into every
// component; nothing in the codebase reads ambient/global settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/warden/pkg/errors"
)

// Environment variable names
const (
	// EnvDataRoot overrides the fleet data root
	EnvDataRoot = "WARDEN_DATA_ROOT"

	// EnvContentDir overrides the shared seeded-content directory
	EnvContentDir = "WARDEN_CONTENT_DIR"

	// EnvBackupDir overrides the central snapshot root
	EnvBackupDir = "WARDEN_BACKUP_DIR"
)

// Config is the immutable operator configuration.
type Config struct {
	// DataRoot is the directory holding one subdirectory per user record.
	DataRoot string `toml:"data_root"`

	// ContentDir is the host application's seeded-content directory,
	// holding the shared index file its seeding mechanism reads.
	// Defaults to <data_root>/../default/content, the host's layout.
	ContentDir string `toml:"content_dir"`

	// BackupDir is the central snapshot root for labeled bulk-run
	// backups. Defaults to the XDG state directory.
	BackupDir string `toml:"backup_dir"`

	// ExcludeUsers lists user handles the discovery scan skips.
	ExcludeUsers []string `toml:"exclude_users"`

	// LinkPolicy is the default conflict policy for link operations,
	// "skip" or "replace-all".
	LinkPolicy string `toml:"link_policy"`
}

// DefaultPath returns the default config file location under the XDG
// config directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "warden", "config.toml")
}

// DefaultContentDir returns the host application's conventional
// seeded-content location for a given data root.
func DefaultContentDir(dataRoot string) string {
	return filepath.Join(dataRoot, "..", "default", "content")
}

// Load builds the configuration: defaults, then the TOML file at path
// (missing file is fine), then WARDEN_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		LinkPolicy: "skip",
	}

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path)
		}
	case os.IsNotExist(err):
		// no config file is a valid first-run state
	default:
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "reading %s", path)
	}

	if v := os.Getenv(EnvDataRoot); v != "" {
		cfg.DataRoot = v
	}
	if v := os.Getenv(EnvContentDir); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv(EnvBackupDir); v != "" {
		cfg.BackupDir = v
	}

	if cfg.DataRoot != "" && cfg.ContentDir == "" {
		cfg.ContentDir = DefaultContentDir(cfg.DataRoot)
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = filepath.Join(xdg.StateHome, "warden", "backups")
	}

	return cfg, nil
}

// Validate checks that the configuration is usable for mutating commands.
func (c Config) Validate() error {
	if c.DataRoot == "" {
		return errors.New(errors.ErrConfigValid,
			"data_root is not set (flag --data-root, config file, or "+EnvDataRoot+")")
	}
	switch c.LinkPolicy {
	case "skip", "replace-all":
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown link_policy %q", c.LinkPolicy)
	}
	return nil
}
