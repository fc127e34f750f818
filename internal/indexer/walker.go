package indexer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIncludes matches the text and source formats the chunker understands.
var DefaultIncludes = []string{
	"**/*.md", "**/*.txt", "**/*.rst",
	"**/*.py", "**/*.pyi",
	"**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs",
	"**/*.ts", "**/*.tsx",
	"**/*.java", "**/*.cs",
	"**/*.c", "**/*.h", "**/*.cc", "**/*.cpp", "**/*.cxx", "**/*.hpp", "**/*.hh",
	"**/*.go", "**/*.rs", "**/*.rb", "**/*.php", "**/*.swift", "**/*.kt", "**/*.scala",
}

// DefaultExcludes keeps dependency trees and VCS internals out of the index.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/vendor/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
}

// Walker discovers indexable files under a root using glob patterns
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a Walker with the given include and exclude globs.
// Empty includes fall back to DefaultIncludes.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	if len(excludes) == 0 {
		excludes = DefaultExcludes
	}
	return &Walker{includes: includes, excludes: excludes}
}

// FileInfo describes one discovered file
type FileInfo struct {
	Path    string // Absolute path on disk
	RelPath string // Path relative to the walked root, stored with the document
	Size    int64
}

// Walk returns all files under root matching the include patterns and not
// matching any exclude pattern
func (w *Walker) Walk(root string) ([]FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			// Skip hidden directories
			if info.Name() != "." && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, FileInfo{
				Path:    path,
				RelPath: relPath,
				Size:    info.Size(),
			})
		}

		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
