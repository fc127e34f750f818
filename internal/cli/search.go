package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/storage"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over indexed chunks",
	Long: `Search runs an FTS5 full-text query against the chunk index and
prints the best-matching chunks ranked by BM25.

Examples:
  gochunk search "connection pool"
  gochunk search --limit 5 authentication`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	dbPath, err := GetConfig().DBPath()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	results, err := store.SearchChunks(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. %s#%d (score %.3f)\n", i+1, r.SourcePath, r.ChunkIndex, r.BM25Score)
		fmt.Println(indent(snippet(r.Content, 400), "   "))
		fmt.Println()
	}
	return nil
}

func snippet(content string, max int) string {
	content = strings.TrimSpace(content)
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
