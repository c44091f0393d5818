// ABOUTME: CLI command to list ingested resumes
// ABOUTME: Shows document IDs, filenames, and chunk counts in table or JSON form
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ingested resumes",
		Long: `List every resume in the index with its document ID and metadata.

Examples:
  screener list
  screener list --format json`,
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	s, err := openScreener(cmd.Context(), wireInspect)
	if err != nil {
		return err
	}
	defer s.Close()

	docs, err := s.pipeline.ListDocuments(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing resumes: %w", err)
	}

	if len(docs) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No resumes found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), docs)
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tFILENAME\tPAGES\tCHUNKS\tINGESTED\n")
	fmt.Fprintf(w, "--\t--------\t-----\t------\t--------\n")

	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			doc.DocumentID,
			truncate(doc.Filename, 30),
			doc.PageCount,
			doc.ChunkCount,
			formatTime(doc.IngestedAt))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d resume(s)\n", len(docs))
	}

	return nil
}
