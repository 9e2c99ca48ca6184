// Package users discovers the user records under the fleet data root.
// A user record is any subdirectory of the data root whose name is not
// excluded; records are created and destroyed by the host application,
// never by warden.
package users

import (
	"sort"
	"strings"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/types"
)

// Discover returns the ordered list of user handles under dataRoot,
// skipping the exclusion set and hidden directories. The order is
// stable (lexicographic) so repeated runs process units identically.
func Discover(fs types.FS, dataRoot string, exclude []string) ([]string, error) {
	entries, err := fs.ReadDir(dataRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUserScan, "scanning %s", dataRoot)
	}

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	var handles []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || skip[name] || strings.HasPrefix(name, ".") {
			continue
		}
		handles = append(handles, name)
	}
	sort.Strings(handles)
	return handles, nil
}

// Select narrows discovered handles to a requested subset, erroring on
// any handle that does not exist. With an empty request the full
// discovered list is returned.
func Select(discovered, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return discovered, nil
	}
	known := make(map[string]bool, len(discovered))
	for _, h := range discovered {
		known[h] = true
	}
	out := make([]string, 0, len(requested))
	for _, h := range requested {
		if !known[h] {
			return nil, errors.Newf(errors.ErrUserNotFound, "unknown user %q", h)
		}
		out = append(out, h)
	}
	return out, nil
}
