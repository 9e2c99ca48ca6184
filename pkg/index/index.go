package index

import (
	"encoding/json"
	"path/filepath"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/logging"
	"github.com/arthur-debert/warden/pkg/types"
)

// Content types the host application recognizes in the index.
const (
	TypeCharacter = "character"
	TypeWorld     = "world"
	TypeTheme     = "theme"
	TypePreset    = "preset"
	TypeTemplate  = "template"
)

// Record is one content descriptor. Filename is the natural key, unique
// within a collection. Extra preserves any additional fields the host
// application stores on the entry.
type Record struct {
	Filename string
	Type     string
	Extra    map[string]any
}

// Collection is an ordered sequence of records. Order is preserved by
// every operation and by serialization.
type Collection []Record

// MarshalJSON flattens the record: filename and type sit alongside the
// extra fields in one object.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		flat[k] = v
	}
	flat["filename"] = r.Filename
	flat["type"] = r.Type
	return json.Marshal(flat)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	r.Filename, _ = flat["filename"].(string)
	r.Type, _ = flat["type"].(string)
	delete(flat, "filename")
	delete(flat, "type")
	if len(flat) > 0 {
		r.Extra = flat
	} else {
		r.Extra = nil
	}
	return nil
}

// Read loads the collection at path, failing open: a missing file,
// malformed JSON, or non-array content all yield an empty collection
// rather than an error, so a broken registry never takes a command
// down with it.
func Read(fs types.FS, path string) Collection {
	logger := logging.GetLogger("index")

	data, err := fs.ReadFile(path)
	if err != nil {
		logger.Debug().Str("path", path).Msg("Index not readable, treating as empty")
		return Collection{}
	}
	var coll Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("Malformed index, treating as empty")
		return Collection{}
	}
	return coll
}

// Add appends the record unless one with the same filename already
// exists, in which case the collection is returned unchanged.
func Add(coll Collection, record Record) Collection {
	for _, r := range coll {
		if r.Filename == record.Filename {
			return coll
		}
	}
	return append(coll, record)
}

// Remove returns the collection without any record whose filename is in
// the removal set. Unmatched filenames are ignored.
func Remove(coll Collection, filenames []string) Collection {
	drop := make(map[string]bool, len(filenames))
	for _, f := range filenames {
		drop[f] = true
	}
	out := make(Collection, 0, len(coll))
	for _, r := range coll {
		if !drop[r.Filename] {
			out = append(out, r)
		}
	}
	return out
}

// Update shallow-merges patch onto the record matching filename. The
// "filename" and "type" keys patch the fixed fields; everything else
// lands in Extra. When nothing matches, the collection is returned
// unchanged; there is no implicit insert.
func Update(coll Collection, filename string, patch map[string]any) Collection {
	out := make(Collection, len(coll))
	for i, r := range coll {
		if r.Filename != filename {
			out[i] = r
			continue
		}
		merged := Record{Filename: r.Filename, Type: r.Type}
		if len(r.Extra) > 0 {
			merged.Extra = make(map[string]any, len(r.Extra)+len(patch))
			for k, v := range r.Extra {
				merged.Extra[k] = v
			}
		}
		for k, v := range patch {
			switch k {
			case "filename":
				if s, ok := v.(string); ok {
					merged.Filename = s
				}
			case "type":
				if s, ok := v.(string); ok {
					merged.Type = s
				}
			default:
				if merged.Extra == nil {
					merged.Extra = make(map[string]any, len(patch))
				}
				merged.Extra[k] = v
			}
		}
		out[i] = merged
	}
	return out
}

// Write serializes the collection in order as indented JSON, creating
// parent directories as needed.
func Write(fs types.FS, path string, coll Collection) error {
	data, err := json.MarshalIndent(coll, "", "    ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrIndexWrite, "encoding %s", path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIndexWrite, "writing %s", path)
	}
	return nil
}
