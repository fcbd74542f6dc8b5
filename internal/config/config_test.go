package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ID", cfg.Enrich.DESeq2Key)
	assert.Equal(t, "intersections", cfg.Enrich.GProfilerKey)
	assert.Equal(t, "kasp.pdf", cfg.Kasp.Output)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
commands:
  enrich:
    deseq2_id: gene
  kasp:
    output: plates.pdf
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden keys change, omitted keys keep their defaults.
	assert.Equal(t, "gene", cfg.Enrich.DESeq2Key)
	assert.Equal(t, "intersections", cfg.Enrich.GProfilerKey)
	assert.Equal(t, "plates.pdf", cfg.Kasp.Output)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}
