// Package storage provides SQLite persistence for chunked documents.
//
// The schema tracks documents (one row per source path, with a content hash
// used to skip unchanged files on re-index) and chunks (ordered pieces of a
// document with their positional metadata). Chunk content is mirrored into an
// FTS5 virtual table by triggers, so full-text search stays consistent with
// inserts and deletes without application bookkeeping.
//
// Two SQLite drivers are supported via build tags: the default pure Go
// modernc.org/sqlite driver, and github.com/mattn/go-sqlite3 when building
// with CGO and the fts5 tag.
package storage
