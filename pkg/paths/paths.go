// Package paths centralizes path handling for warden: the per-user file
// layout inside the fleet data root, the shared content index, and the
// snapshot areas. All other packages go through this API instead of
// joining paths themselves.
package paths

import (
	"path/filepath"

	"github.com/arthur-debert/warden/pkg/config"
	"github.com/arthur-debert/warden/pkg/errors"
)

// Managed file and directory names inside a user record. These mirror
// the host application's layout and are not configurable.
const (
	// SettingsFile is the user's editable settings document
	SettingsFile = "settings.json"

	// SecretsFile is the user's API-secrets document
	SecretsFile = "secrets.json"

	// ContentLogFile records which seeded content the host already copied
	ContentLogFile = "content.log"

	// WorldsDir holds the user's lorebook files
	WorldsDir = "worlds"

	// CharactersDir holds the user's character cards
	CharactersDir = "characters"

	// OwnerBackupDir is the user's private snapshot area
	OwnerBackupDir = "backups"

	// IndexFile is the shared content-descriptor registry the host's
	// seeding mechanism reads on startup
	IndexFile = "index.json"
)

// Paths resolves every location warden touches. Construct with New.
type Paths struct {
	dataRoot   string
	contentDir string
	backupRoot string
}

// New builds a Paths from validated configuration.
func New(cfg config.Config) (*Paths, error) {
	if cfg.DataRoot == "" {
		return nil, errors.New(errors.ErrConfigValid, "data root is required")
	}
	dataRoot, err := filepath.Abs(cfg.DataRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "resolving data root")
	}
	// The content dir default is re-derived here so it holds however
	// the data root arrived: config file, environment, or flag.
	contentDir := cfg.ContentDir
	if contentDir == "" {
		contentDir = config.DefaultContentDir(dataRoot)
	}
	if contentDir, err = filepath.Abs(contentDir); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "resolving content dir")
	}
	return &Paths{
		dataRoot:   dataRoot,
		contentDir: contentDir,
		backupRoot: cfg.BackupDir,
	}, nil
}

// DataRoot returns the absolute fleet data root.
func (p *Paths) DataRoot() string { return p.dataRoot }

// BackupRoot returns the central snapshot root.
func (p *Paths) BackupRoot() string { return p.backupRoot }

// UserDir returns the directory of one user record.
func (p *Paths) UserDir(handle string) string {
	return filepath.Join(p.dataRoot, handle)
}

// SettingsPath returns the user's settings document path.
func (p *Paths) SettingsPath(handle string) string {
	return filepath.Join(p.UserDir(handle), SettingsFile)
}

// SecretsPath returns the user's secrets document path.
func (p *Paths) SecretsPath(handle string) string {
	return filepath.Join(p.UserDir(handle), SecretsFile)
}

// ContentLogPath returns the user's content log path.
func (p *Paths) ContentLogPath(handle string) string {
	return filepath.Join(p.UserDir(handle), ContentLogFile)
}

// WorldsPath returns the user's lorebook directory.
func (p *Paths) WorldsPath(handle string) string {
	return filepath.Join(p.UserDir(handle), WorldsDir)
}

// CharactersPath returns the user's character directory.
func (p *Paths) CharactersPath(handle string) string {
	return filepath.Join(p.UserDir(handle), CharactersDir)
}

// OwnerBackupPath returns the user's private snapshot area.
func (p *Paths) OwnerBackupPath(handle string) string {
	return filepath.Join(p.UserDir(handle), OwnerBackupDir)
}

// IndexPath returns the shared content index file.
func (p *Paths) IndexPath() string {
	return filepath.Join(p.contentDir, IndexFile)
}

// ManagedFiles returns the per-user files the backup command protects,
// in a stable order.
func (p *Paths) ManagedFiles(handle string) []string {
	return []string{
		p.SettingsPath(handle),
		p.SecretsPath(handle),
		p.ContentLogPath(handle),
	}
}
