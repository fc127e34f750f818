// Package mcp implements the Model Context Protocol (MCP) server for GoChunk.
//
// The MCP server exposes four tools to AI coding assistants:
//   - chunk_text: Split text or source code into retrieval-sized chunks
//   - index_path: Chunk and persist every matching file under a directory
//   - search_chunks: Full-text search over indexed chunks, ranked by BM25
//   - get_status: Check index statistics and health
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport. The server listens on
// stdin and writes responses to stdout, so all logging goes to stderr.
//
// # Tool: chunk_text
//
//	Request:
//	{
//	  "name": "chunk_text",
//	  "arguments": {
//	    "content": "# Title\n\nSome text...",
//	    "strategy": "hybrid",
//	    "chunk_size": 1500,
//	    "chunk_overlap": 200
//	  }
//	}
//
//	Response:
//	{
//	  "strategy": "hybrid",
//	  "chunk_count": 2,
//	  "total_tokens": 312,
//	  "chunks": [
//	    {"content": "...", "metadata": {"chunk_index": 0, "total_chunks": 2, "strategy": "hybrid"}},
//	    {"content": "...", "metadata": {"chunk_index": 1, "total_chunks": 2, "strategy": "hybrid"}}
//	  ]
//	}
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (database, filesystem)
//   - -32001: Empty content
//   - -32002: Empty query
//
// # MCP Client Configuration
//
//	{
//	  "mcpServers": {
//	    "gochunk": {
//	      "command": "/usr/local/bin/gochunk",
//	      "args": ["serve"]
//	    }
//	  }
//	}
package mcp
