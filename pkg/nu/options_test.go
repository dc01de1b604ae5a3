package nu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.DetectRenames)
	assert.EqualValues(t, 50*1024*1024, opts.MergeSizeLimit)
}

func TestLoadOptionsOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nu.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
detect_renames = false
rename_limit = 400
`), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.False(t, opts.DetectRenames)
	assert.Equal(t, 400, opts.RenameLimit)
	// Untouched fields keep their default.
	assert.EqualValues(t, 50*1024*1024, opts.MergeSizeLimit)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
