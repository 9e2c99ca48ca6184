package snapshot

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/logging"
	"github.com/arthur-debert/warden/pkg/types"
)

// Suffix is appended to every snapshot name after the timestamp.
const Suffix = "bak"

// Stamp is the sortable timestamp layout used in snapshot and central
// area names. Second granularity is enough for operator-paced runs.
const Stamp = "20060102-150405"

// Store writes pre-mutation snapshots. Every mutating command must take
// a snapshot before its first destructive write; the Store itself never
// reads snapshots back (recovery is a manual operation).
type Store struct {
	fs     types.FS
	dryRun bool
	now    func() time.Time
	logger zerolog.Logger
}

// New creates a snapshot store. With dryRun set no filesystem writes
// happen anywhere; intended actions are logged instead.
func New(fs types.FS, dryRun bool) *Store {
	return &Store{
		fs:     fs,
		dryRun: dryRun,
		now:    time.Now,
		logger: logging.GetLogger("snapshot"),
	}
}

// WithClock overrides the timestamp source, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// File copies source into area as <base>.<stamp>.bak and returns the
// snapshot path. A missing source returns "" with no error and no I/O:
// absence is a valid precondition (the caller is about to create a new
// file), not something to protect. In dry-run mode the would-be action
// is logged and "" is returned; the caller must not expect a usable path.
func (s *Store) File(source, area string) (string, error) {
	if _, err := s.fs.Lstat(source); err != nil {
		// Nothing to protect.
		return "", nil
	}

	dest := filepath.Join(area, filepath.Base(source)+"."+s.now().Format(Stamp)+"."+Suffix)

	if s.dryRun {
		s.logger.Info().Str("source", source).Str("dest", dest).Msg("Would snapshot file")
		return "", nil
	}

	if err := s.fs.MkdirAll(area, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrSnapshotArea, "creating snapshot area %s", area)
	}
	data, err := s.fs.ReadFile(source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSnapshotCopy, "reading %s", source)
	}
	if err := s.fs.WriteFile(dest, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrSnapshotCopy, "writing %s", dest)
	}

	s.logger.Debug().Str("source", source).Str("dest", dest).Msg("Snapshot written")
	return dest, nil
}

// CentralArea returns a fresh label-and-timestamp-named directory under
// root, for artifacts that are not owned by a single user (the shared
// index) or for grouping a whole bulk run's snapshots together. The
// directory is created unless dry-run is active.
func (s *Store) CentralArea(root, label string) (string, error) {
	area := filepath.Join(root, label+"-"+s.now().Format(Stamp))
	if s.dryRun {
		s.logger.Info().Str("area", area).Msg("Would create central snapshot area")
		return area, nil
	}
	if err := s.fs.MkdirAll(area, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrSnapshotArea, "creating central area %s", area)
	}
	return area, nil
}
