package types

// Document is the input to the chunking engine. The engine treats it as a
// read-only borrow for the duration of one call and never mutates it.
type Document struct {
	// Content is the raw text or source code to split.
	Content string

	// Metadata is caller-supplied metadata copied onto every produced chunk.
	Metadata map[string]any

	// FilePath is optional and used only to infer a language hint from its
	// extension. The engine never opens the path.
	FilePath string
}
