package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index statistics",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dbPath, err := GetConfig().DBPath()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	fmt.Printf("Database:   %s (%.2f MB)\n", dbPath, status.IndexSizeMB)
	fmt.Printf("Documents:  %d\n", status.DocumentsCount)
	fmt.Printf("Chunks:     %d\n", status.ChunksCount)
	fmt.Printf("Tokens:     %d (estimated)\n", status.TokensTotal)
	fmt.Printf("FTS index:  built=%v\n", status.Health.FTSIndexBuilt)
	return nil
}
