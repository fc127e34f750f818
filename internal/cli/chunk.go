package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gochunk/gochunk-mcp/internal/chunker"
	"github.com/gochunk/gochunk-mcp/pkg/types"
)

var (
	chunkStrategy string
	chunkSize     int
	chunkOverlap  int
	chunkMax      int
)

var chunkCmd = &cobra.Command{
	Use:   "chunk [file]",
	Short: "Chunk a file or stdin and print the chunks as JSON",
	Long: `Chunk reads a file (or stdin when no file is given) and prints the
resulting chunks as JSON, one object per chunk with content and metadata.

Examples:
  gochunk chunk README.md
  gochunk chunk --strategy paragraph notes.txt
  cat main.py | gochunk chunk --strategy code_block`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChunk,
}

func init() {
	chunkCmd.Flags().StringVar(&chunkStrategy, "strategy", "", "chunking strategy (default from config)")
	chunkCmd.Flags().IntVar(&chunkSize, "size", 0, "target chunk size in characters")
	chunkCmd.Flags().IntVar(&chunkOverlap, "overlap", -1, "overlap between consecutive fixed-size chunks")
	chunkCmd.Flags().IntVar(&chunkMax, "max-chunks", -1, "maximum chunks to emit (0 = unlimited)")
	rootCmd.AddCommand(chunkCmd)
}

func runChunk(cmd *cobra.Command, args []string) error {
	cfg, err := GetConfig().ChunkerTypes()
	if err != nil {
		return err
	}
	if chunkStrategy != "" {
		strategy, err := types.ParseStrategy(chunkStrategy)
		if err != nil {
			return err
		}
		cfg.Strategy = strategy
	}
	if chunkSize > 0 {
		cfg.ChunkSize = chunkSize
	}
	if chunkOverlap >= 0 {
		cfg.ChunkOverlap = chunkOverlap
	}
	if chunkMax >= 0 {
		cfg.MaxChunks = chunkMax
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var content []byte
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
		content, err = os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
	} else {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	chunks := chunker.New(cfg).Chunk(types.Document{
		Content:  string(content),
		FilePath: filePath,
	})

	type chunkOut struct {
		Content  string         `json:"content"`
		Metadata map[string]any `json:"metadata"`
	}
	out := make([]chunkOut, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, chunkOut{Content: chunk.Content, Metadata: chunk.Metadata})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
