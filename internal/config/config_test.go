package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gochunk/gochunk-mcp/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "hybrid", cfg.Chunker.Strategy)
	assert.Equal(t, types.DefaultChunkSize, cfg.Chunker.ChunkSize)
	assert.Equal(t, types.DefaultChunkOverlap, cfg.Chunker.ChunkOverlap)
	assert.Zero(t, cfg.Chunker.MaxChunks)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gochunk.yaml")
	content := `
chunker:
  strategy: paragraph
  chunk_size: 800
index:
  includes:
    - "**/*.md"
  workers: 4
database:
  path: /tmp/custom.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paragraph", cfg.Chunker.Strategy)
	assert.Equal(t, 800, cfg.Chunker.ChunkSize)
	// Untouched keys keep their defaults
	assert.Equal(t, types.DefaultChunkOverlap, cfg.Chunker.ChunkOverlap)
	assert.Equal(t, []string{"**/*.md"}, cfg.Index.Includes)
	assert.Equal(t, 4, cfg.Index.Workers)
	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunker: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gochunk.yaml"),
		[]byte("chunker:\n  strategy: semantic\n"), 0o644))

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "semantic", cfg.Chunker.Strategy)

	// Empty directory falls back to defaults
	cfg, err = LoadFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chunker.Strategy = "code_block"
	cfg.Index.Workers = 8

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestChunkerTypes(t *testing.T) {
	cfg := DefaultConfig()
	tc, err := cfg.ChunkerTypes()
	require.NoError(t, err)
	assert.Equal(t, types.StrategyHybrid, tc.Strategy)

	cfg.Chunker.Strategy = "recursive"
	_, err = cfg.ChunkerTypes()
	assert.ErrorIs(t, err, types.ErrUnknownStrategy)
}

func TestDBPath(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv(EnvDBPath, "/env/override.db")
	path, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/env/override.db", path)

	t.Setenv(EnvDBPath, "")
	cfg.Database.Path = "/configured.db"
	path, err = cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/configured.db", path)

	cfg.Database.Path = ""
	path, err = cfg.DBPath()
	require.NoError(t, err)
	assert.Contains(t, path, ".gochunk")
}
