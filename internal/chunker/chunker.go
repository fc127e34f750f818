package chunker

import (
	"github.com/gochunk/gochunk-mcp/pkg/types"
)

// splitter produces ordered raw chunk strings from content. Implementations
// are pure: no I/O, no shared state, total over all string inputs.
type splitter interface {
	split(content string) []string
}

// Chunker splits documents into bounded chunks per a fixed configuration.
// It holds no mutable state, so one instance may be used concurrently over
// independent documents.
type Chunker struct {
	cfg types.ChunkerConfig
}

// New creates a Chunker. Zero-valued config fields fall back to defaults
// (hybrid strategy, 1500/200 sizing); degraded values such as a negative
// overlap are clamped rather than rejected, since the engine must stay total
// over its inputs.
func New(cfg types.ChunkerConfig) *Chunker {
	if cfg.Strategy == "" {
		cfg.Strategy = types.StrategyHybrid
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = types.DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 0
	} else if cfg.ChunkOverlap == 0 {
		cfg.ChunkOverlap = types.DefaultChunkOverlap
	}
	if cfg.MaxChunks < 0 {
		cfg.MaxChunks = 0
	}
	return &Chunker{cfg: cfg}
}

// Config returns the immutable configuration the chunker was built with.
func (c *Chunker) Config() types.ChunkerConfig {
	return c.cfg
}

// Chunk splits a document into an ordered chunk list. It never fails: empty
// content yields an empty list regardless of strategy, and every produced
// chunk's content comes verbatim from the document.
func (c *Chunker) Chunk(doc types.Document) []types.Chunk {
	if doc.Content == "" {
		return nil
	}
	return c.assemble(c.splitterFor(doc.FilePath).split(doc.Content), doc.Metadata)
}

// splitterFor selects the splitter implementation for the configured
// strategy. CodeBlock dispatches further on the file path's language rules;
// Hybrid builds the fallback cascade.
func (c *Chunker) splitterFor(filePath string) splitter {
	fixed := fixedSplitter{chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap}
	switch c.cfg.Strategy {
	case types.StrategyFixedSize:
		return fixed
	case types.StrategyParagraph:
		return paragraphSplitter{chunkSize: c.cfg.ChunkSize}
	case types.StrategySemantic:
		return semanticSplitter{chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap}
	case types.StrategyCodeBlock:
		return codeSplitter{rules: rulesForPath(filePath), chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap}
	default:
		return c.hybridCascade(filePath)
	}
}

// cascadeStep pairs a splitter with the predicate its result must pass for
// the cascade to stop there.
type cascadeStep struct {
	splitter splitter
	pass     func([]string) bool
}

// cascadeSplitter tries its steps in order and returns the first passing
// result; the terminal splitter's result is returned unconditionally.
type cascadeSplitter struct {
	steps    []cascadeStep
	terminal splitter
}

func (s cascadeSplitter) split(content string) []string {
	for _, step := range s.steps {
		if out := step.splitter.split(content); step.pass(out) {
			return out
		}
	}
	return s.terminal.split(content)
}

// hybridCascade builds the Hybrid strategy: CodeBlock (for known code
// extensions) then Semantic, each accepted only when they find real
// structure (more than one chunk), then Paragraph when it yields anything,
// with FixedSize as the terminal guarantee for non-empty content.
func (c *Chunker) hybridCascade(filePath string) splitter {
	multiChunk := func(out []string) bool { return len(out) > 1 }
	anyChunk := func(out []string) bool { return len(out) > 0 }

	var steps []cascadeStep
	if isCodePath(filePath) {
		steps = append(steps, cascadeStep{
			splitter: codeSplitter{rules: rulesForPath(filePath), chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap},
			pass:     multiChunk,
		})
	}
	steps = append(steps,
		cascadeStep{
			splitter: semanticSplitter{chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap},
			pass:     multiChunk,
		},
		cascadeStep{
			splitter: paragraphSplitter{chunkSize: c.cfg.ChunkSize},
			pass:     anyChunk,
		},
	)

	return cascadeSplitter{
		steps:    steps,
		terminal: fixedSplitter{chunkSize: c.cfg.ChunkSize, overlap: c.cfg.ChunkOverlap},
	}
}

// assemble stamps positional metadata onto raw chunk strings and applies the
// max-chunks cap. The total_chunks value reflects the post-truncation count;
// when truncation occurred, total_chunks_before_limit carries the original
// count so callers can tell how many chunks were dropped.
func (c *Chunker) assemble(raw []string, callerMeta map[string]any) []types.Chunk {
	if len(raw) == 0 {
		return nil
	}

	produced := len(raw)
	if c.cfg.MaxChunks > 0 && produced > c.cfg.MaxChunks {
		raw = raw[:c.cfg.MaxChunks]
	}

	total := len(raw)
	chunks := make([]types.Chunk, 0, total)
	for i, content := range raw {
		meta := make(map[string]any, len(callerMeta)+4)
		for k, v := range callerMeta {
			meta[k] = v
		}
		meta[types.MetaChunkIndex] = i
		meta[types.MetaTotalChunks] = total
		meta[types.MetaStrategy] = string(c.cfg.Strategy)
		if produced > total {
			meta[types.MetaTotalChunksBeforeLimit] = produced
		}
		chunks = append(chunks, types.Chunk{Content: content, Metadata: meta})
	}
	return chunks
}
