// Package testutil holds fixture helpers for tests that need a fleet
// data root on disk.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/warden/pkg/config"
	"github.com/arthur-debert/warden/pkg/paths"
)

// Fleet is a temporary data root plus resolved paths for it.
type Fleet struct {
	DataRoot string
	Paths    *paths.Paths
	Config   config.Config
}

// NewFleet creates a temporary data root with a content dir and backup
// root beside it.
func NewFleet(t *testing.T) *Fleet {
	t.Helper()
	base := t.TempDir()
	cfg := config.Config{
		DataRoot:   filepath.Join(base, "data"),
		ContentDir: filepath.Join(base, "content"),
		BackupDir:  filepath.Join(base, "central-backups"),
		LinkPolicy: "skip",
	}
	require.NoError(t, os.MkdirAll(cfg.DataRoot, 0755))

	p, err := paths.New(cfg)
	require.NoError(t, err)
	return &Fleet{DataRoot: cfg.DataRoot, Paths: p, Config: cfg}
}

// AddUser creates a user record directory, optionally with a settings
// document.
func (f *Fleet) AddUser(t *testing.T, handle string, settings map[string]any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(f.DataRoot, handle), 0755))
	if settings != nil {
		f.WriteSettings(t, handle, settings)
	}
}

// WriteSettings writes the user's settings document.
func (f *Fleet) WriteSettings(t *testing.T, handle string, settings map[string]any) {
	t.Helper()
	data, err := json.MarshalIndent(settings, "", "    ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.Paths.SettingsPath(handle), data, 0644))
}

// ReadSettings parses the user's settings document.
func (f *Fleet) ReadSettings(t *testing.T, handle string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(f.Paths.SettingsPath(handle))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// BackupCount returns how many snapshots sit in the user's private area.
func (f *Fleet) BackupCount(t *testing.T, handle string) int {
	t.Helper()
	entries, err := os.ReadDir(f.Paths.OwnerBackupPath(handle))
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}
