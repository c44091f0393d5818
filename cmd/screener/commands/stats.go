// ABOUTME: CLI command to show index statistics
// ABOUTME: Reports document and chunk totals plus the embedding dimension
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		Long: `Show totals for the resume index: documents, chunks, embedding
dimension, and the database path.

Examples:
  screener stats
  screener stats --format json`,
		RunE: runStats,
	}

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	s, err := openScreener(cmd.Context(), wireInspect)
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.pipeline.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), stats)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Resumes:\t%d\n", stats.TotalDocuments)
	fmt.Fprintf(w, "Chunks:\t%d\n", stats.TotalChunks)
	fmt.Fprintf(w, "Embedding dimension:\t%d\n", stats.EmbeddingDimension)
	fmt.Fprintf(w, "Database:\t%s\n", stats.Path)
	w.Flush()

	return nil
}
