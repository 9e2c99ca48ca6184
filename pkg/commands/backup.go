package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/logging"
)

// Backup snapshots every selected user's managed files (settings,
// secrets, content log) into one labeled, timestamped directory under
// the central backup root, one subdirectory per user. Users with no
// managed files are skipped. Returns the central area path alongside
// the report.
func Backup(ctx context.Context, env Env, handles []string, label string) (batch.Report, string, error) {
	logger := logging.GetLogger("commands.backup")
	defer logging.LogOperationStart(logger, "backup")()
	store := env.Snapshots()

	area, err := store.CentralArea(env.Paths.BackupRoot(), label)
	if err != nil {
		return batch.Report{}, "", err
	}

	report := batch.Run(ctx, handles, func(handle string) error {
		found := 0
		for _, source := range env.Paths.ManagedFiles(handle) {
			if _, err := env.FS.Lstat(source); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return err
			}
			found++
			if _, err := store.File(source, filepath.Join(area, handle)); err != nil {
				return err
			}
		}
		if found == 0 {
			return batch.Skip("no managed files")
		}
		logger.Debug().Str("user", handle).Int("files", found).Msg("User backed up")
		return nil
	}, env.Progress)

	return report, area, nil
}
