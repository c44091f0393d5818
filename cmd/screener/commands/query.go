// ABOUTME: CLI command to search resume chunks
// ABOUTME: Runs semantic retrieval and prints scored chunk matches
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	queryTopK int
)

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Search resume chunks",
		Long: `Search the vector index for resume chunks relevant to a query.

The query is embedded and matched against every stored chunk by cosine
distance. Results are ordered most relevant first.

Examples:
  screener query "distributed systems"
  screener query --top-k 10 "golang kubernetes"
  screener query --format json "team lead"`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().IntVar(&queryTopK, "top-k", 0, "Maximum chunks to return (0 = configured default)")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validateNonNegativeInt(queryTopK, "top-k"); err != nil {
		return err
	}

	query := args[0]

	s, err := openScreener(cmd.Context(), wireRetrieve)
	if err != nil {
		return err
	}
	defer s.Close()

	hits, err := s.pipeline.Query(cmd.Context(), query, queryTopK)
	if err != nil {
		return fmt.Errorf("querying resumes: %w", err)
	}

	if len(hits) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No matching chunks found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), hits)
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tRESUME\tCHUNK\tPREVIEW\n")
	fmt.Fprintf(w, "-----\t------\t-----\t-------\n")

	for _, hit := range hits {
		fmt.Fprintf(w, "%.3f\t%s\t%d\t%s\n",
			hit.RelevanceScore,
			truncate(hit.Filename, 25),
			hit.Ordinal,
			truncate(flatten(hit.Text), 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d chunk(s)\n", len(hits))
	}

	return nil
}
