// ABOUTME: CLI command to ingest resume files
// ABOUTME: Handles batch ingestion with per-file failure reporting
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/models"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <path>...",
		Short: "Ingest resume files into the index",
		Long: `Ingest one or more resume files. Each file is chunked, embedded,
and stored in the vector index under a fresh document ID.

Examples:
  screener ingest resume.txt
  screener ingest resumes/alice.txt resumes/bob.txt
  screener ingest resumes/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	s, err := openScreener(cmd.Context(), wireRetrieve)
	if err != nil {
		return err
	}
	defer s.Close()

	var results []*models.IngestResult
	failed := 0
	for _, path := range args {
		result, err := s.pipeline.Ingest(cmd.Context(), path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			continue
		}
		results = append(results, result)
		if !quiet && outputFormat != "json" {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d chunk(s) (id: %s)\n",
				path, result.ChunkCount, result.DocumentID)
		}
	}

	if outputFormat == "json" {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d of %d file(s)\n", len(results), len(args))
	}

	if len(results) == 0 && failed > 0 {
		return fmt.Errorf("no files ingested")
	}
	return nil
}
