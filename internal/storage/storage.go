package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate entity
	ErrAlreadyExists = errors.New("already exists")
)

// Storage defines the interface for persisting and querying chunked documents
type Storage interface {
	// Document operations
	UpsertDocument(ctx context.Context, doc *Document) error
	GetDocument(ctx context.Context, sourcePath string) (*Document, error)
	GetDocumentByID(ctx context.Context, documentID int64) (*Document, error)
	ListDocuments(ctx context.Context) ([]*Document, error)
	DeleteDocument(ctx context.Context, documentID int64) error

	// Chunk operations
	InsertChunk(ctx context.Context, chunk *Chunk) error
	ReplaceChunks(ctx context.Context, documentID int64, chunks []*Chunk) error
	ListChunksByDocument(ctx context.Context, documentID int64) ([]*Chunk, error)
	DeleteChunksByDocument(ctx context.Context, documentID int64) error

	// Search operations
	SearchChunks(ctx context.Context, query string, limit int) ([]SearchResult, error)

	// Status operations
	GetStatus(ctx context.Context) (*IndexStatus, error)

	// Database operations
	Close() error
}

// Document represents a chunked source document tracked by the index
type Document struct {
	ID          int64
	SourcePath  string
	ContentHash [32]byte
	SizeBytes   int64
	Strategy    string // Strategy used when the document was last chunked
	TotalChunks int
	IndexedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Chunk represents one persisted chunk of a document
type Chunk struct {
	ID          int64
	DocumentID  int64
	ChunkIndex  int
	TotalChunks int
	Strategy    string
	Content     string
	ContentHash [32]byte
	TokenCount  int
	Metadata    string // JSON-encoded caller metadata beyond the positional keys
	CreatedAt   time.Time
}

// SearchResult represents one full-text search hit over chunk content
type SearchResult struct {
	ChunkID    int64
	DocumentID int64
	SourcePath string
	ChunkIndex int
	Content    string
	// BM25Score is the FTS5 rank; lower values rank better.
	BM25Score float64
}

// IndexStatus contains statistics about the chunk index
type IndexStatus struct {
	DocumentsCount int
	ChunksCount    int
	TokensTotal    int
	IndexSizeMB    float64
	Health         HealthStatus
}

// HealthStatus represents the health of the index
type HealthStatus struct {
	DatabaseAccessible bool
	FTSIndexBuilt      bool
}
