package commands

import (
	"context"
	"os"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/document"
	"github.com/arthur-debert/warden/pkg/logging"
)

// Sync copies whole sections of a template user's settings into every
// selected user's settings document. Sections the template does not
// define are left untouched in each destination. The template user
// itself is reported as skipped when selected.
func Sync(ctx context.Context, env Env, templateHandle string, handles []string, sectionPaths []string) (batch.Report, error) {
	logger := logging.GetLogger("commands.sync")
	defer logging.LogOperationStart(logger, "sync")()

	template, err := document.Load(env.FS, env.Paths.SettingsPath(templateHandle))
	if err != nil {
		return batch.Report{}, err
	}
	store := env.Snapshots()

	report := batch.Run(ctx, handles, func(handle string) error {
		if handle == templateHandle {
			return batch.Skip("template user")
		}

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

		updated := document.SyncSections(doc, template, sectionPaths)
		if env.DryRun {
			logger.Info().Str("user", handle).Strs("sections", sectionPaths).Msg("Would sync sections")
			return nil
		}
		return document.Save(env.FS, settingsPath, updated)
	}, env.Progress)

	return report, nil
}

// Upsert applies a named-list upsert to every selected user's settings
// document: at most one record per name survives at listPath, the new
// record last.
func Upsert(ctx context.Context, env Env, handles []string, listPath string, record map[string]any) batch.Report {
	logger := logging.GetLogger("commands.upsert")
	defer logging.LogOperationStart(logger, "upsert")()
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

		updated := document.UpsertNamed(doc, listPath, record)
		if env.DryRun {
			logger.Info().Str("user", handle).Str("list", listPath).Msg("Would upsert record")
			return nil
		}
		return document.Save(env.FS, settingsPath, updated)
	}, env.Progress)
}
