package indexer

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gochunk/gochunk-mcp/internal/chunker"
	"github.com/gochunk/gochunk-mcp/internal/storage"
	"github.com/gochunk/gochunk-mcp/pkg/types"
)

// Indexer coordinates the indexing pipeline: walk -> chunk -> store
type Indexer struct {
	chunker *chunker.Chunker
	storage storage.Storage
	workers int
}

// Config contains configuration for an indexing run
type Config struct {
	Workers  int      // Number of concurrent workers (default: runtime.NumCPU())
	Includes []string // Glob patterns for files to index (default: DefaultIncludes)
	Excludes []string // Glob patterns for files to skip (default: DefaultExcludes)

	// Progress, when set, is called after each file with the running count.
	Progress func(done, total int, path string)
}

// Statistics contains statistics about an indexing operation
type Statistics struct {
	FilesIndexed  int
	FilesSkipped  int
	FilesFailed   int
	ChunksCreated int
	Duration      time.Duration
	ErrorMessages []string
}

// New creates a new Indexer instance
func New(store storage.Storage, c *chunker.Chunker) *Indexer {
	return &Indexer{
		chunker: c,
		storage: store,
		workers: runtime.NumCPU(),
	}
}

// IndexPath indexes all matching files under rootPath
func (idx *Indexer) IndexPath(ctx context.Context, rootPath string, config *Config) (*Statistics, error) {
	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	startTime := time.Now()
	stats := &Statistics{
		ErrorMessages: make([]string, 0),
	}

	walker := NewWalker(config.Includes, config.Excludes)
	files, err := walker.Walk(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}

	var (
		indexed int32
		skipped int32
		failed  int32
		chunks  int32
		done    int32
	)
	var mu sync.Mutex // Protect stats.ErrorMessages

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, file := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			created, skip, err := idx.indexFile(gctx, file)
			switch {
			case err != nil:
				atomic.AddInt32(&failed, 1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", file.RelPath, err))
				mu.Unlock()
			case skip:
				atomic.AddInt32(&skipped, 1)
			default:
				atomic.AddInt32(&indexed, 1)
				atomic.AddInt32(&chunks, int32(created))
			}

			if config.Progress != nil {
				config.Progress(int(atomic.AddInt32(&done, 1)), len(files), file.RelPath)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.FilesIndexed = int(indexed)
	stats.FilesSkipped = int(skipped)
	stats.FilesFailed = int(failed)
	stats.ChunksCreated = int(chunks)
	stats.Duration = time.Since(startTime)
	return stats, nil
}

// indexFile chunks and stores a single file. Returns the number of chunks
// created, or skip=true when the stored content hash matches the file.
func (idx *Indexer) indexFile(ctx context.Context, file FileInfo) (created int, skip bool, err error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return 0, false, err
	}
	hash := sha256.Sum256(data)

	existing, err := idx.storage.GetDocument(ctx, file.RelPath)
	if err == nil && existing.ContentHash == hash {
		return 0, true, nil
	}
	if err != nil && err != storage.ErrNotFound {
		return 0, false, err
	}

	pieces := idx.chunker.Chunk(types.Document{
		Content:  string(data),
		FilePath: file.RelPath,
	})

	doc := &storage.Document{
		SourcePath:  file.RelPath,
		ContentHash: hash,
		SizeBytes:   file.Size,
		Strategy:    string(idx.chunker.Config().Strategy),
		TotalChunks: len(pieces),
	}
	if err := idx.storage.UpsertDocument(ctx, doc); err != nil {
		return 0, false, err
	}

	records := make([]*storage.Chunk, 0, len(pieces))
	for _, piece := range pieces {
		records = append(records, &storage.Chunk{
			DocumentID:  doc.ID,
			ChunkIndex:  piece.Index(),
			TotalChunks: piece.TotalChunks(),
			Strategy:    piece.Strategy(),
			Content:     piece.Content,
			ContentHash: piece.ContentHash(),
			TokenCount:  chunker.EstimateTokens(piece.Content),
			Metadata:    encodeExtraMetadata(piece.Metadata),
		})
	}
	if err := idx.storage.ReplaceChunks(ctx, doc.ID, records); err != nil {
		return 0, false, err
	}

	return len(records), false, nil
}

// positional keys live in dedicated columns, everything else is stored as JSON
var positionalKeys = map[string]struct{}{
	types.MetaChunkIndex:  {},
	types.MetaTotalChunks: {},
	types.MetaStrategy:    {},
}

func encodeExtraMetadata(meta map[string]any) string {
	extra := make(map[string]any)
	for key, value := range meta {
		if _, ok := positionalKeys[key]; ok {
			continue
		}
		extra[key] = value
	}
	if len(extra) == 0 {
		return ""
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return ""
	}
	return string(data)
}
