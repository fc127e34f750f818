package types

import "errors"

// Domain errors for configuration and chunk validation
var (
	ErrUnknownStrategy     = errors.New("unknown chunking strategy")
	ErrInvalidChunkSize    = errors.New("chunk size must be positive")
	ErrInvalidChunkOverlap = errors.New("chunk overlap must be non-negative")
	ErrInvalidMaxChunks    = errors.New("max chunks must be positive when set")
	ErrEmptyContent        = errors.New("content cannot be empty")
)
