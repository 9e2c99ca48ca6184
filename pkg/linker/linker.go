package linker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/index"
	"github.com/arthur-debert/warden/pkg/logging"
	"github.com/arthur-debert/warden/pkg/types"
)

// Outcome tags the result of resolving one (source, target) pair. The
// same tags are produced in dry-run and real runs, so downstream
// classification is identical either way.
type Outcome string

const (
	OutcomeCreated       Outcome = "created"
	OutcomeAlreadyLinked Outcome = "already-linked"
	OutcomeReplaced      Outcome = "replaced"
	OutcomeSkipped       Outcome = "skipped"
)

// Policy decides what happens when the target already holds something
// other than a link to the same source.
type Policy int

const (
	// PolicySkip leaves any conflicting entry in place.
	PolicySkip Policy = iota

	// PolicyReplaceAll removes the conflicting entry and links anyway.
	// Callers must snapshot an ordinary file before resolving with this
	// policy; the resolver performs no backup itself.
	PolicyReplaceAll
)

// ParsePolicy converts the config/flag spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "skip":
		return PolicySkip, nil
	case "replace-all":
		return PolicyReplaceAll, nil
	}
	return PolicySkip, errors.Newf(errors.ErrLinkPolicy, "unknown link policy %q", s)
}

// Resolver creates filesystem references to a shared source file.
type Resolver struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates a Resolver. With dryRun set, every branch that would
// mutate the filesystem is short-circuited but still returns the
// outcome the real action would have produced.
func New(fsys types.FS, dryRun bool) *Resolver {
	return &Resolver{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("linker"),
	}
}

// Resolve examines the target and creates, replaces, or skips a
// symbolic link to source. Source must be an absolute path so the link
// stays valid no matter where it is inspected from. Re-running against
// an existing link to the same source is a no-op (already-linked).
func (r *Resolver) Resolve(source, target string, policy Policy) (Outcome, error) {
	if !filepath.IsAbs(source) {
		return "", errors.Newf(errors.ErrLinkSource, "source must be absolute: %s", source)
	}

	info, err := r.fs.Lstat(target)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "examining %s", target)
		}
		return r.create(source, target, OutcomeCreated)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		dest, err := r.fs.Readlink(target)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "reading link %s", target)
		}
		if filepath.Clean(dest) == filepath.Clean(source) {
			return OutcomeAlreadyLinked, nil
		}
	}

	// An ordinary file, or a link pointing elsewhere.
	if policy == PolicySkip {
		r.logger.Info().Str("target", target).Msg("Existing entry left in place")
		return OutcomeSkipped, nil
	}

	if r.dryRun {
		r.logger.Info().Str("target", target).Str("source", source).Msg("Would replace entry with link")
		return OutcomeReplaced, nil
	}
	if err := r.fs.Remove(target); err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkRemove, "removing %s", target)
	}
	if err := r.fs.Symlink(source, target); err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkCreate, "linking %s", target)
	}
	return OutcomeReplaced, nil
}

func (r *Resolver) create(source, target string, outcome Outcome) (Outcome, error) {
	if r.dryRun {
		r.logger.Info().Str("target", target).Str("source", source).Msg("Would create link")
		return outcome, nil
	}
	if err := r.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "creating %s", filepath.Dir(target))
	}
	if err := r.fs.Symlink(source, target); err != nil {
		return "", errors.Wrapf(err, errors.ErrLinkCreate, "linking %s", target)
	}
	r.logger.Debug().Str("target", target).Str("source", source).Msg("Link created")
	return outcome, nil
}

// seedableTypes are the index entry types the host application's own
// content-seeding pass copies into user records on restart.
var seedableTypes = map[string]bool{
	index.TypeCharacter: true,
	index.TypeWorld:     true,
	index.TypeTheme:     true,
	index.TypePreset:    true,
	index.TypeTemplate:  true,
}

// DetectRegistryConflict reports whether the registry holds a seedable
// entry for filename. When it does, the host's seeding mechanism and a
// reference-based target race on the same path: the next seeding pass
// would overwrite the link with a regular copy. Advisory only; the
// resolver never refuses to link because of it.
func DetectRegistryConflict(coll index.Collection, filename string) bool {
	for _, r := range coll {
		if r.Filename == filename && seedableTypes[r.Type] {
			return true
		}
	}
	return false
}
