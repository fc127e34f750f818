// Package types provides shared type definitions for the GoChunk MCP server.
//
// This package defines the public data model of the chunking engine: input
// documents, output chunks, the strategy enum, and the engine configuration.
//
// # Core Types
//
// Document is the read-only input to one chunking call:
//
//	doc := types.Document{
//	    Content:  fileContent,
//	    FilePath: "service.py",
//	    Metadata: map[string]any{"source": "repo"},
//	}
//
// Chunk is the unit handed to downstream embedding. Every chunk carries the
// caller metadata plus positional metadata stamped by the assembler:
//
//	chunk.Metadata["chunk_index"]  // zero-based position, 0..N-1
//	chunk.Metadata["total_chunks"] // N, identical across one call
//	chunk.Metadata["strategy"]     // configured strategy name
//
// # Configuration
//
// ChunkerConfig is immutable after construction. Strategy is a closed enum;
// ParseStrategy validates external input against it:
//
//	cfg := types.DefaultChunkerConfig() // hybrid, 1500/200
//	cfg.Strategy = types.StrategyParagraph
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
