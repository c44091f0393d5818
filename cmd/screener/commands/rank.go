// ABOUTME: CLI command to rank every ingested candidate for a job
// ABOUTME: Runs per-resume analysis and prints the corpus-wide ranking
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	rankFile       string
	rankTopKPer    int
	rankMaxResumes int
	rankDetails    bool
)

// NewRankCmd creates the rank command
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [job-description]",
		Short: "Rank all candidates against a job description",
		Long: `Rank every ingested resume against a job description.

Each resume is analyzed independently over its own most relevant chunks,
then candidates are ordered by overall score, best first.

The job description comes from the argument, --file, or stdin.

Examples:
  screener rank "Senior Go developer with Kubernetes experience"
  screener rank --file job.txt --max-resumes 10
  screener rank --details "Data engineer"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRank,
	}

	cmd.Flags().StringVar(&rankFile, "file", "", "Read job description from file")
	cmd.Flags().IntVar(&rankTopKPer, "top-k-per-resume", 0, "Chunks to weigh per resume (0 = default)")
	cmd.Flags().IntVar(&rankMaxResumes, "max-resumes", 0, "Cap on resumes to rank (0 = all)")
	cmd.Flags().BoolVar(&rankDetails, "details", false, "Print the full report for each candidate")

	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validateNonNegativeInt(rankTopKPer, "top-k-per-resume"); err != nil {
		return err
	}
	if err := validateNonNegativeInt(rankMaxResumes, "max-resumes"); err != nil {
		return err
	}

	jobDescription, err := readJobDescription(args, rankFile)
	if err != nil {
		return err
	}

	s, err := openScreener(cmd.Context(), wireSynthesize)
	if err != nil {
		return err
	}
	defer s.Close()

	reports, err := s.pipeline.Rank(cmd.Context(), jobDescription, rankTopKPer, rankMaxResumes)
	if err != nil {
		return fmt.Errorf("ranking candidates: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), reports)
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tSCORE\tCANDIDATE\tRESUME\tRECOMMENDATION\n")
	fmt.Fprintf(w, "----\t-----\t---------\t------\t--------------\n")

	for i, report := range reports {
		fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\t%s\n",
			i+1,
			report.OverallScore,
			truncate(report.CandidateName, 30),
			truncate(report.Filename, 25),
			truncate(flatten(report.Recommendation), 40))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nRanked %d candidate(s)\n", len(reports))
	}

	if rankDetails {
		for i, report := range reports {
			fmt.Fprintf(cmd.OutOrStdout(), "\n--- #%d ---\n", i+1)
			renderReport(cmd.OutOrStdout(), report)
		}
	}

	return nil
}
