package cli

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Serve starts the Model Context Protocol server. It reads JSON-RPC
requests from stdin and writes responses to stdout, so all logging goes
to stderr.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout is reserved for the MCP protocol
	log.SetOutput(os.Stderr)

	cfg := GetConfig()
	chunkerCfg, err := cfg.ChunkerTypes()
	if err != nil {
		return err
	}
	dbPath, err := cfg.DBPath()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(dbPath, chunkerCfg)
	if err != nil {
		return err
	}

	log.Printf("%s %s listening on stdio (db: %s)", mcp.ServerName, mcp.ServerVersion, dbPath)
	return server.Serve(cmd.Context())
}
