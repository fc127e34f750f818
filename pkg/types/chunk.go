package types

import (
	"crypto/sha256"
	"errors"
)

// Metadata keys stamped onto every chunk by the assembler.
const (
	MetaChunkIndex  = "chunk_index"
	MetaTotalChunks = "total_chunks"
	MetaStrategy    = "strategy"

	// MetaTotalChunksBeforeLimit is set only when a max_chunks cap truncated
	// the result, and records how many chunks existed before truncation.
	MetaTotalChunksBeforeLimit = "total_chunks_before_limit"
)

// Chunk is a bounded content segment produced by the chunking engine.
// Content is always a contiguous substring of the source document, or a
// concatenation of such substrings; the engine never invents characters.
// A Chunk is immutable once produced.
type Chunk struct {
	Content  string
	Metadata map[string]any
}

// Index returns the zero-based position of the chunk within its call's
// result, or -1 if the metadata is missing or malformed.
func (c *Chunk) Index() int {
	if v, ok := c.Metadata[MetaChunkIndex].(int); ok {
		return v
	}
	return -1
}

// TotalChunks returns the number of chunks produced by the call that
// produced this chunk, or -1 if the metadata is missing or malformed.
func (c *Chunk) TotalChunks() int {
	if v, ok := c.Metadata[MetaTotalChunks].(int); ok {
		return v
	}
	return -1
}

// Strategy returns the name of the strategy that produced this chunk.
func (c *Chunk) Strategy() string {
	if v, ok := c.Metadata[MetaStrategy].(string); ok {
		return v
	}
	return ""
}

// ContentHash computes the SHA-256 hash of the chunk content. Used by the
// storage layer for deduplication and change detection.
func (c *Chunk) ContentHash() [32]byte {
	return sha256.Sum256([]byte(c.Content))
}

// Validate checks the positional metadata for internal consistency.
func (c *Chunk) Validate() error {
	if c.Content == "" {
		return ErrEmptyContent
	}

	idx := c.Index()
	total := c.TotalChunks()
	if idx < 0 {
		return errors.New("chunk index must be present and non-negative")
	}
	if total < 1 {
		return errors.New("total chunks must be present and positive")
	}
	if idx >= total {
		return errors.New("chunk index must be less than total chunks")
	}
	return nil
}
