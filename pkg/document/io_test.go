package document_test

import (
	"testing"

	"github.com/arthur-debert/warden/pkg/document"
	"github.com/arthur-debert/warden/pkg/errors"
	"github.com/arthur-debert/warden/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	fs := filesystem.NewMemory()
	doc := document.Document{"theme": "dark", "nested": map[string]any{"n": 1.0}}

	require.NoError(t, document.Save(fs, "/data/alice/settings.json", doc))
	loaded, err := document.Load(fs, "/data/alice/settings.json")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoad_ErrorCodes(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := document.Load(fs, "/missing.json")
	assert.Equal(t, errors.ErrDocumentRead, errors.Code(err))

	require.NoError(t, fs.WriteFile("/corrupt.json", []byte("{nope"), 0644))
	_, err = document.Load(fs, "/corrupt.json")
	assert.Equal(t, errors.ErrDocumentParse, errors.Code(err))
}
