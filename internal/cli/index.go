package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/chunker"
	"github.com/gochunk/gochunk-mcp/internal/indexer"
	"github.com/gochunk/gochunk-mcp/internal/storage"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Chunk and index files for search",
	Long: `Index chunks every matching file under the given directory and stores
the results in the GoChunk database. Unchanged files are skipped.

Examples:
  gochunk index .                 # Index current directory
  gochunk index /path/to/project  # Index specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	chunkerCfg, err := cfg.ChunkerTypes()
	if err != nil {
		return err
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	idx := indexer.New(store, chunker.New(chunkerCfg))

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	progress := func(done, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		_ = bar.Set(done)
	}

	stats, err := idx.IndexPath(cmd.Context(), path, &indexer.Config{
		Workers:  cfg.Index.Workers,
		Includes: cfg.Index.Includes,
		Excludes: cfg.Index.Excludes,
		Progress: progress,
	})
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Files indexed:  %d\n", stats.FilesIndexed)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", stats.FilesSkipped)
	fmt.Printf("  Files failed:   %d\n", stats.FilesFailed)
	fmt.Printf("  Chunks created: %d\n", stats.ChunksCreated)
	fmt.Printf("  Duration:       %s\n", stats.Duration.Round(time.Millisecond))

	if len(stats.ErrorMessages) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range stats.ErrorMessages {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nIndex stored at: %s\n", dbPath)
	return nil
}
