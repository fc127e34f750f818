// Package indexer walks a directory tree, chunks every matching file, and
// persists the results.
//
// Discovery uses doublestar glob patterns for includes and excludes. Files
// whose stored content hash matches the bytes on disk are skipped, so
// re-indexing an unchanged tree is cheap. Chunking runs on a bounded worker
// pool sized by Config.Workers.
package indexer
