package main

import (
	"fmt"
	"os"

	"github.com/gochunk/gochunk-mcp/internal/cli"
	"github.com/gochunk/gochunk-mcp/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Handle version flag before cobra so it works without a config file
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("GoChunk MCP Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	cli.Execute()
}
