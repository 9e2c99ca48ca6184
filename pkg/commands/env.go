package commands

import (
	"strings"

	"github.com/arthur-debert/warden/pkg/batch"
	"github.com/arthur-debert/warden/pkg/config"
	"github.com/arthur-debert/warden/pkg/document"
	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/paths"
	"github.com/arthur-debert/warden/pkg/snapshot"
	"github.com/arthur-debert/warden/pkg/types"
)

// Env carries the explicit dependencies of every operation: no
// globals, one immutable config, one dry-run flag threaded through
// every mutating component.
type Env struct {
	FS       types.FS
	Paths    *paths.Paths
	Config   config.Config
	DryRun   bool
	Progress batch.Progress
}

// Snapshots returns a snapshot store bound to this run's dry-run flag.
func (e Env) Snapshots() *snapshot.Store {
	return snapshot.New(e.FS, e.DryRun)
}

// ParseDirectives turns "dot.path=value" arguments into path-set
// directives, inferring value types the same way for every command.
func ParseDirectives(args []string) ([]document.PathSet, error) {
	sets := make([]document.PathSet, 0, len(args))
	for _, arg := range args {
		path, raw, found := strings.Cut(arg, "=")
		if !found || path == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "directive %q is not path=value", arg)
		}
		sets = append(sets, document.PathSet{Path: path, Value: document.ParseValue(raw)})
	}
	return sets, nil
}
