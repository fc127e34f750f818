package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gochunk",
	Short: "GoChunk - chunk, index, and search documents and source code",
	Long: `GoChunk splits documents and source code into chunks suitable for
embedding or retrieval, indexes them into a local SQLite database with
full-text search, and serves the same operations over MCP.

Example usage:
  gochunk chunk README.md             # Chunk a file and print JSON
  gochunk index .                     # Index the current directory
  gochunk search "connection pool"    # Search indexed chunks
  gochunk serve                       # Start the MCP server on stdio`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return fmt.Errorf("failed to get working directory: %w", wdErr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gochunk.yaml)")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}
