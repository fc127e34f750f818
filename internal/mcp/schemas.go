package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// chunkTextTool returns the tool definition for chunk_text
func chunkTextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_text",
		Description: "Split text or source code into chunks suitable for embedding or retrieval",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "The text or source code to chunk",
				},
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Optional file path used to detect the source language for code-aware chunking",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Chunking strategy to apply",
					"enum":        []string{"fixed_size", "paragraph", "semantic", "code_block", "hybrid"},
					"default":     "hybrid",
				},
				"chunk_size": map[string]interface{}{
					"type":        "integer",
					"description": "Target chunk size in characters",
					"default":     1500,
					"minimum":     1,
				},
				"chunk_overlap": map[string]interface{}{
					"type":        "integer",
					"description": "Characters of overlap between consecutive fixed-size chunks",
					"default":     200,
					"minimum":     0,
				},
				"max_chunks": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of chunks to return (0 means unlimited)",
					"default":     0,
					"minimum":     0,
				},
				"metadata": map[string]interface{}{
					"type":        "object",
					"description": "Key/value pairs copied into every chunk's metadata",
				},
			},
			Required: []string{"content"},
		},
	}
}

// indexPathTool returns the tool definition for index_path
func indexPathTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_path",
		Description: "Chunk and index all matching files under a directory so they become searchable",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the directory to index",
				},
				"includes": map[string]interface{}{
					"type":        "array",
					"description": "Glob patterns for files to index (defaults to common text and source extensions)",
					"items":       map[string]interface{}{"type": "string"},
				},
				"excludes": map[string]interface{}{
					"type":        "array",
					"description": "Glob patterns for files to skip (defaults exclude node_modules, vendor, .git)",
					"items":       map[string]interface{}{"type": "string"},
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Number of concurrent workers (defaults to the CPU count)",
					"minimum":     1,
				},
			},
			Required: []string{"path"},
		},
	}
}

// searchChunksTool returns the tool definition for search_chunks
func searchChunksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_chunks",
		Description: "Full-text search over indexed chunks, ranked by BM25",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (FTS5 match syntax)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Query index statistics and health",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
