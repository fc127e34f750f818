package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gochunk/gochunk-mcp/pkg/types"
)

// assertChunkMetadata checks the positional invariants every call must hold:
// contiguous zero-based indices and an identical total across all chunks.
func assertChunkMetadata(t *testing.T, chunks []types.Chunk, strategy types.Strategy) {
	t.Helper()
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index())
		assert.Equal(t, len(chunks), chunk.TotalChunks())
		assert.Equal(t, string(strategy), chunk.Strategy())
		require.NoError(t, chunk.Validate())
	}
}

func TestChunker_EmptyContentAllStrategies(t *testing.T) {
	for _, strategy := range []types.Strategy{
		types.StrategyFixedSize,
		types.StrategyParagraph,
		types.StrategySemantic,
		types.StrategyCodeBlock,
		types.StrategyHybrid,
	} {
		c := New(types.ChunkerConfig{Strategy: strategy, ChunkSize: 100, ChunkOverlap: 10})
		chunks := c.Chunk(types.Document{Content: ""})
		assert.Empty(t, chunks, "strategy %s must return no chunks for empty content", strategy)
	}
}

func TestChunker_FixedSizeSingleChunk(t *testing.T) {
	c := New(types.ChunkerConfig{Strategy: types.StrategyFixedSize, ChunkSize: 100, ChunkOverlap: 20})
	content := "fits comfortably in one chunk"

	chunks := c.Chunk(types.Document{Content: content})
	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Content)
	assertChunkMetadata(t, chunks, types.StrategyFixedSize)
}

func TestChunker_FixedSizeOverlap(t *testing.T) {
	content := strings.Repeat("A", 250)
	c := New(types.ChunkerConfig{Strategy: types.StrategyFixedSize, ChunkSize: 100, ChunkOverlap: 20})

	chunks := c.Chunk(types.Document{Content: content})
	require.Len(t, chunks, 3)
	assert.Equal(t, content[0:100], chunks[0].Content)
	assert.Equal(t, content[80:180], chunks[1].Content)
	assert.Equal(t, content[160:250], chunks[2].Content)
	assertChunkMetadata(t, chunks, types.StrategyFixedSize)
}

func TestChunker_ParagraphStrategy(t *testing.T) {
	content := "First paragraph.\n\nSecond paragraph.\n\nThird paragraph."
	c := New(types.ChunkerConfig{Strategy: types.StrategyParagraph, ChunkSize: 20})

	chunks := c.Chunk(types.Document{Content: content})
	require.Len(t, chunks, 3)
	assert.Equal(t, "First paragraph.", chunks[0].Content)
	assert.Equal(t, "Second paragraph.", chunks[1].Content)
	assert.Equal(t, "Third paragraph.", chunks[2].Content)
	assertChunkMetadata(t, chunks, types.StrategyParagraph)
}

func TestChunker_SemanticStrategy(t *testing.T) {
	c := New(types.ChunkerConfig{Strategy: types.StrategySemantic, ChunkSize: 1500, ChunkOverlap: 200})

	chunks := c.Chunk(types.Document{Content: markdownDoc})
	require.GreaterOrEqual(t, len(chunks), 4)
	assertChunkMetadata(t, chunks, types.StrategySemantic)

	var joined strings.Builder
	for _, chunk := range chunks {
		joined.WriteString(chunk.Content)
		joined.WriteString("\n")
	}
	for _, heading := range []string{"Title", "Section 1", "Section 2", "Subsection 2.1"} {
		assert.Contains(t, joined.String(), heading)
	}
}

func TestChunker_CodeBlockStrategyUsesFilePath(t *testing.T) {
	c := New(types.ChunkerConfig{Strategy: types.StrategyCodeBlock, ChunkSize: 1500, ChunkOverlap: 200})

	chunks := c.Chunk(types.Document{Content: pythonSource, FilePath: "pipeline.py"})
	require.GreaterOrEqual(t, len(chunks), 3)
	assert.True(t, strings.HasPrefix(chunks[0].Content, "def alpha"))
	assertChunkMetadata(t, chunks, types.StrategyCodeBlock)
}

func TestChunker_HybridTinyPythonFile(t *testing.T) {
	// Nothing to split on: no defs, no headings, a single paragraph. The
	// cascade must still end with at least one non-empty chunk.
	c := New(types.ChunkerConfig{Strategy: types.StrategyHybrid, ChunkSize: 1500, ChunkOverlap: 200})

	chunks := c.Chunk(types.Document{Content: `print("hi")`, FilePath: "tiny.py"})
	require.NotEmpty(t, chunks)
	assert.NotEmpty(t, chunks[0].Content)
	assertChunkMetadata(t, chunks, types.StrategyHybrid)
}

func TestChunker_HybridPrefersCodeBoundaries(t *testing.T) {
	c := New(types.ChunkerConfig{Strategy: types.StrategyHybrid, ChunkSize: 1500, ChunkOverlap: 200})

	chunks := c.Chunk(types.Document{Content: pythonSource, FilePath: "pipeline.py"})
	require.GreaterOrEqual(t, len(chunks), 3)
	assert.True(t, strings.HasPrefix(chunks[0].Content, "def alpha"))
}

func TestChunker_HybridMarkdownUsesHeadings(t *testing.T) {
	// Markdown is not a code extension, so the cascade starts at semantic.
	c := New(types.ChunkerConfig{Strategy: types.StrategyHybrid, ChunkSize: 1500, ChunkOverlap: 200})

	chunks := c.Chunk(types.Document{Content: markdownDoc, FilePath: "README.md"})
	require.GreaterOrEqual(t, len(chunks), 4)
	assert.True(t, strings.HasPrefix(chunks[0].Content, "# Title"))
}

func TestChunker_MaxChunksTruncation(t *testing.T) {
	content := "p1.\n\np2.\n\np3.\n\np4.\n\np5."
	c := New(types.ChunkerConfig{Strategy: types.StrategyParagraph, ChunkSize: 3, MaxChunks: 2})

	chunks := c.Chunk(types.Document{Content: content})
	require.Len(t, chunks, 2)
	assert.Equal(t, 0, chunks[0].Index())
	assert.Equal(t, 1, chunks[1].Index())

	// total_chunks reflects the truncated count; the pre-truncation count
	// is carried separately.
	for _, chunk := range chunks {
		assert.Equal(t, 2, chunk.TotalChunks())
		assert.Equal(t, 5, chunk.Metadata[types.MetaTotalChunksBeforeLimit])
	}
}

func TestChunker_NoBeforeLimitKeyWithoutTruncation(t *testing.T) {
	c := New(types.ChunkerConfig{Strategy: types.StrategyParagraph, ChunkSize: 20, MaxChunks: 10})

	chunks := c.Chunk(types.Document{Content: "First paragraph.\n\nSecond paragraph."})
	require.Len(t, chunks, 2)
	for _, chunk := range chunks {
		assert.NotContains(t, chunk.Metadata, types.MetaTotalChunksBeforeLimit)
	}
}

func TestChunker_CallerMetadataMerged(t *testing.T) {
	callerMeta := map[string]any{"source": "unit-test", "revision": 7}
	c := New(types.ChunkerConfig{Strategy: types.StrategyParagraph, ChunkSize: 20})

	chunks := c.Chunk(types.Document{
		Content:  "First paragraph.\n\nSecond paragraph.",
		Metadata: callerMeta,
	})
	require.Len(t, chunks, 2)
	for _, chunk := range chunks {
		assert.Equal(t, "unit-test", chunk.Metadata["source"])
		assert.Equal(t, 7, chunk.Metadata["revision"])
	}

	// The caller's map is copied, never written through.
	assert.NotContains(t, callerMeta, types.MetaChunkIndex)
	assert.Len(t, callerMeta, 2)
}

func TestChunker_DefaultsApplied(t *testing.T) {
	c := New(types.ChunkerConfig{})
	cfg := c.Config()
	assert.Equal(t, types.StrategyHybrid, cfg.Strategy)
	assert.Equal(t, types.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, types.DefaultChunkOverlap, cfg.ChunkOverlap)
	assert.Zero(t, cfg.MaxChunks)
}

func TestChunker_ZeroOverlapGetsDefault(t *testing.T) {
	// Leaving ChunkOverlap unset must yield the default overlap, not zero,
	// and the default must actually drive the fixed-size window.
	c := New(types.ChunkerConfig{Strategy: types.StrategyFixedSize, ChunkSize: 300})
	assert.Equal(t, types.DefaultChunkOverlap, c.Config().ChunkOverlap)

	content := strings.Repeat("A", 400)
	chunks := c.Chunk(types.Document{Content: content})
	require.Len(t, chunks, 2)
	assert.Equal(t, content[0:300], chunks[0].Content)
	assert.Equal(t, content[100:400], chunks[1].Content)
}

func TestChunker_ChunksComeFromSource(t *testing.T) {
	// No strategy may invent content: every chunk must be reassembled from
	// verbatim source substrings.
	content := markdownDoc + "\n" + pythonSource
	for _, strategy := range []types.Strategy{
		types.StrategyFixedSize,
		types.StrategyParagraph,
		types.StrategySemantic,
		types.StrategyCodeBlock,
		types.StrategyHybrid,
	} {
		c := New(types.ChunkerConfig{Strategy: strategy, ChunkSize: 200, ChunkOverlap: 40})
		for _, chunk := range c.Chunk(types.Document{Content: content, FilePath: "mixed.py"}) {
			for _, piece := range strings.Split(chunk.Content, paragraphJoin) {
				assert.Contains(t, content, piece, "strategy %s invented content", strategy)
			}
		}
	}
}
