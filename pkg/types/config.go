package types

import "fmt"

// Strategy selects the algorithm governing how chunk boundaries are chosen.
type Strategy string

const (
	// StrategyFixedSize splits on a sliding character window with overlap.
	StrategyFixedSize Strategy = "fixed_size"
	// StrategyParagraph greedily packs blank-line-delimited paragraphs.
	StrategyParagraph Strategy = "paragraph"
	// StrategySemantic partitions at Markdown heading boundaries.
	StrategySemantic Strategy = "semantic"
	// StrategyCodeBlock partitions at language-specific structural boundaries.
	StrategyCodeBlock Strategy = "code_block"
	// StrategyHybrid cascades CodeBlock -> Semantic -> Paragraph -> FixedSize
	// until a useful result is produced.
	StrategyHybrid Strategy = "hybrid"
)

// ParseStrategy converts a string into a Strategy, validating it against the
// closed set of known strategies.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFixedSize, StrategyParagraph, StrategySemantic, StrategyCodeBlock, StrategyHybrid:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Default chunker configuration values.
const (
	DefaultChunkSize    = 1500
	DefaultChunkOverlap = 200
)

// ChunkerConfig configures a chunking engine instance. It is immutable after
// construction; a single configured chunker may be invoked concurrently over
// independent documents with no synchronization.
type ChunkerConfig struct {
	// Strategy selects the splitting algorithm.
	Strategy Strategy

	// ChunkSize is the approximate maximum chunk length in characters,
	// used as a coarse proxy for tokens.
	ChunkSize int

	// ChunkOverlap is the number of characters shared between consecutive
	// fixed-size chunks.
	ChunkOverlap int

	// MaxChunks, when positive, caps the number of chunks returned per call.
	MaxChunks int
}

// DefaultChunkerConfig returns the hybrid strategy with default sizing.
func DefaultChunkerConfig() ChunkerConfig {
	return ChunkerConfig{
		Strategy:     StrategyHybrid,
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
	}
}

// Validate checks the configuration invariants.
func (c ChunkerConfig) Validate() error {
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if c.ChunkOverlap < 0 {
		return ErrInvalidChunkOverlap
	}
	if c.MaxChunks < 0 {
		return ErrInvalidMaxChunks
	}
	return nil
}
