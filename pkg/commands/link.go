package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/index"
	"github.com/arthur-debert/warden/pkg/linker"
	"github.com/arthur-debert/warden/pkg/logging"
)

// LinkResult is the outcome of a link fan-out: the per-unit report plus
// the advisory registry check.
type LinkResult struct {
	Report batch.Report

	// RegistryConflict is set when the shared content index holds a
	// seedable entry for the same filename: the host application's next
	// seeding pass would overwrite the links with regular copies.
	RegistryConflict bool
}

// Link shares one lorebook file across every selected user by symlink
// into the user's worlds directory. An existing regular file at the
// target is snapshotted into the owner's private area before a
// replace-all resolution removes it; the resolver itself never backs up.
func Link(ctx context.Context, env Env, handles []string, sourcePath string, policy linker.Policy) (LinkResult, error) {
	logger := logging.GetLogger("commands.link")
	defer logging.LogOperationStart(logger, "link")()

	source, err := filepath.Abs(sourcePath)
	if err != nil {
		return LinkResult{}, err
	}
	base := filepath.Base(source)

	var result LinkResult
	coll := index.Read(env.FS, env.Paths.IndexPath())
	if linker.DetectRegistryConflict(coll, base) {
		result.RegistryConflict = true
		logger.Warn().Str("filename", base).
			Msg("Index already seeds this filename; the host's next seeding pass will overwrite links")
	}

	resolver := linker.New(env.FS, env.DryRun)
	store := env.Snapshots()

	result.Report = batch.Run(ctx, handles, func(handle string) error {
		if _, err := env.FS.Lstat(source); err != nil {
			if os.IsNotExist(err) {
				return batch.Skip("source lorebook missing")
			}
			return err
		}

		target := filepath.Join(env.Paths.WorldsPath(handle), base)

		// Snapshot an ordinary file that replace-all is about to remove.
		if policy == linker.PolicyReplaceAll {
			if info, err := env.FS.Lstat(target); err == nil && info.Mode().IsRegular() {
				if _, err := store.File(target, env.Paths.OwnerBackupPath(handle)); err != nil {
					return err
				}
			}
		}

		outcome, err := resolver.Resolve(source, target, policy)
		if err != nil {
			return err
		}
		if outcome == linker.OutcomeSkipped {
			return batch.Skip("existing entry left in place")
		}
		logger.Debug().Str("user", handle).Str("outcome", string(outcome)).Msg("Link resolved")
		return nil
	}, env.Progress)

	return result, nil
}
