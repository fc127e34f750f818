// Package chunker splits text and source-code documents into bounded,
// possibly overlapping chunks suitable for embedding and retrieval.
//
// The engine is pure: it consumes an in-memory document and produces an
// ordered chunk list, with no I/O, no network access, and no error paths.
// Empty input always yields an empty result.
//
// # Basic Usage
//
//	c := chunker.New(types.DefaultChunkerConfig())
//	chunks := c.Chunk(types.Document{
//	    Content:  content,
//	    FilePath: "handlers.py",
//	})
//
//	for _, chunk := range chunks {
//	    fmt.Printf("chunk %d/%d (%d tokens)\n",
//	        chunk.Index(), chunk.TotalChunks(), chunker.EstimateTokens(chunk.Content))
//	}
//
// # Strategies
//
//   - fixed_size: sliding character window with overlap; cuts snap to a
//     nearby newline or ". " when one falls in the last 20% of the window.
//   - paragraph: greedy packing of blank-line-delimited paragraphs.
//   - semantic: partitioning at Markdown heading boundaries, with paragraph
//     re-splitting of oversized sections.
//   - code_block: partitioning at language-specific structural boundaries
//     (class and function signatures, imports), selected by file extension
//     from a data-driven rule table.
//   - hybrid: tries code_block (for code extensions), then semantic, then
//     paragraph, and terminates at fixed_size, which always succeeds for
//     non-empty content.
//
// Boundary detection is regex-based by design. The engine does not parse
// languages and does not aim for tokenizer-accurate sizes; chunk_size and
// chunk_overlap count characters as a coarse proxy for tokens.
//
// # Metadata
//
// Every chunk carries the caller's metadata plus chunk_index (zero-based,
// contiguous), total_chunks (identical across one call, post-truncation),
// and strategy. When a max_chunks cap truncated the result,
// total_chunks_before_limit records the pre-truncation count.
//
// # Concurrency
//
// A Chunker is immutable after New and safe for concurrent use over
// independent documents.
package chunker
