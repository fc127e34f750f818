package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gochunk/gochunk-mcp/pkg/types"
)

// EnvDBPath overrides the configured database path when set.
const EnvDBPath = "GOCHUNK_DB_PATH"

// Config holds all configuration for GoChunk.
type Config struct {
	Chunker  ChunkerConfig  `yaml:"chunker"`
	Index    IndexConfig    `yaml:"index"`
	Database DatabaseConfig `yaml:"database"`
}

// ChunkerConfig holds default chunking parameters.
type ChunkerConfig struct {
	Strategy     string `yaml:"strategy"`      // fixed_size, paragraph, semantic, code_block, hybrid
	ChunkSize    int    `yaml:"chunk_size"`    // Target chunk size in characters
	ChunkOverlap int    `yaml:"chunk_overlap"` // Overlap between consecutive fixed-size chunks
	MaxChunks    int    `yaml:"max_chunks"`    // 0 means unlimited
}

// IndexConfig holds file discovery configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"` // 0 means the CPU count
}

// DatabaseConfig holds storage configuration.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chunker: ChunkerConfig{
			Strategy:     string(types.StrategyHybrid),
			ChunkSize:    types.DefaultChunkSize,
			ChunkOverlap: types.DefaultChunkOverlap,
			MaxChunks:    0,
		},
		Index: IndexConfig{
			Includes: nil, // Indexer defaults cover common text and source extensions
			Excludes: nil,
			Workers:  0,
		},
		Database: DatabaseConfig{
			Path: "", // Resolved to ~/.gochunk/gochunk.db when empty
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory, checking gochunk.yaml and
// then .gochunk/config.yaml.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "gochunk.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".gochunk", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ChunkerTypes converts the YAML chunker section into a validated
// types.ChunkerConfig.
func (c *Config) ChunkerTypes() (types.ChunkerConfig, error) {
	strategy, err := types.ParseStrategy(c.Chunker.Strategy)
	if err != nil {
		return types.ChunkerConfig{}, err
	}
	cfg := types.ChunkerConfig{
		Strategy:     strategy,
		ChunkSize:    c.Chunker.ChunkSize,
		ChunkOverlap: c.Chunker.ChunkOverlap,
		MaxChunks:    c.Chunker.MaxChunks,
	}
	if err := cfg.Validate(); err != nil {
		return types.ChunkerConfig{}, err
	}
	return cfg, nil
}

// DBPath resolves the database path: the GOCHUNK_DB_PATH environment variable
// wins, then the configured path, then ~/.gochunk/gochunk.db.
func (c *Config) DBPath() (string, error) {
	if env := os.Getenv(EnvDBPath); env != "" {
		return env, nil
	}
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gochunk", "gochunk.db"), nil
}
