package document

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/types"
)

// Load reads and parses a settings document. The caller decides what a
// missing file means; both error cases carry distinct codes so the
// batch layer can classify them (absent means skip, corrupt means fail).
func Load(fs types.FS, path string) (Document, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentRead, "reading %s", path)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentParse, "parsing %s", path)
	}
	return doc, nil
}

// Save serializes doc as indented, human-diffable JSON and writes it,
// creating parent directories as needed.
func Save(fs types.FS, path string, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "encoding %s", path)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", filepath.Dir(path))
	}
	if err := fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "writing %s", path)
	}
	return nil
}
