package commands

import (
	"context"
	"os"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/document"
	"github.com/arthur-debert/warden/pkg/logging"
)

// Set applies path-set directives to every selected user's settings
// document. Per unit: snapshot into the owner's private area, mutate a
// clone, write back. Users without a settings document are skipped,
// unreadable or corrupt documents fail that unit only.
func Set(ctx context.Context, env Env, handles []string, sets []document.PathSet) batch.Report {
	logger := logging.GetLogger("commands.set")
	defer logging.LogOperationStart(logger, "set")()
	store := env.Snapshots()

	return batch.Run(ctx, handles, func(handle string) error {
		settingsPath := env.Paths.SettingsPath(handle)
		if _, err := env.FS.Lstat(settingsPath); err != nil {
			if os.IsNotExist(err) {
				return batch.Skip("no settings document")
			}
			return err
		}

		doc, err := document.Load(env.FS, settingsPath)
		if err != nil {
			return err
		}
		if _, err := store.File(settingsPath, env.Paths.OwnerBackupPath(handle)); err != nil {
			return err
		}

		updated := document.ApplyPathSets(doc, sets)
		if env.DryRun {
			logger.Info().Str("user", handle).Int("directives", len(sets)).Msg("Would update settings")
			return nil
		}
		return document.Save(env.FS, settingsPath, updated)
	}, env.Progress)
}
