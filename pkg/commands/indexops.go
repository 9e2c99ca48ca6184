package commands

import (
	"github.com/arthur-debert/warden/pkg/index"
	"github.com/arthur-debert/warden/pkg/logging"
)

// The index is a shared, batch-level artifact: it is read and written
// at most once per run, outside any per-user loop. Every mutation
// snapshots the current file into a labeled central area first.

// IndexList returns the shared content index.
func IndexList(env Env) index.Collection {
	return index.Read(env.FS, env.Paths.IndexPath())
}

// IndexAdd appends a descriptor unless its filename is already present.
func IndexAdd(env Env, record index.Record) error {
	return mutateIndex(env, func(coll index.Collection) index.Collection {
		return index.Add(coll, record)
	})
}

// IndexRemove drops every descriptor whose filename is in filenames.
func IndexRemove(env Env, filenames []string) error {
	return mutateIndex(env, func(coll index.Collection) index.Collection {
		return index.Remove(coll, filenames)
	})
}

// IndexUpdate shallow-merges patch onto the descriptor for filename.
func IndexUpdate(env Env, filename string, patch map[string]any) error {
	return mutateIndex(env, func(coll index.Collection) index.Collection {
		return index.Update(coll, filename, patch)
	})
}

func mutateIndex(env Env, mutate func(index.Collection) index.Collection) error {
	logger := logging.GetLogger("commands.index")
	defer logging.LogOperationStart(logger, "index mutation")()

	path := env.Paths.IndexPath()
	coll := index.Read(env.FS, path)

	// The central area is only opened when there is a file to protect;
	// a first-ever mutation leaves no empty snapshot directory behind.
	if _, err := env.FS.Lstat(path); err == nil {
		store := env.Snapshots()
		area, err := store.CentralArea(env.Paths.BackupRoot(), "index")
		if err != nil {
			return err
		}
		if _, err := store.File(path, area); err != nil {
			return err
		}
	}

	updated := mutate(coll)
	if env.DryRun {
		logger.Info().Str("path", path).Int("before", len(coll)).Int("after", len(updated)).
			Msg("Would write index")
		return nil
	}
	return index.Write(env.FS, path, updated)
}
