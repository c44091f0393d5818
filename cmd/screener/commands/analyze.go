// ABOUTME: CLI command to analyze the best candidate for a job description
// ABOUTME: Retrieves relevant chunks and renders a structured fit report
package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hireloop/screener/internal/models"
)

var (
	analyzeFile string
	analyzeTopK int
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [job-description]",
		Short: "Analyze the best-matching candidate",
		Long: `Analyze candidates against a job description and report on the fit.

The job description is embedded, the most relevant resume chunks are
retrieved, and a structured report is synthesized over them. The report
covers scores, strengths, weaknesses, and a hiring recommendation.

The job description comes from the argument, --file, or stdin.

Examples:
  screener analyze "Senior Go developer with Kubernetes experience"
  screener analyze --file job.txt
  cat job.txt | screener analyze`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeFile, "file", "", "Read job description from file")
	cmd.Flags().IntVar(&analyzeTopK, "top-k", 0, "Chunks to retrieve (0 = configured default)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	if err := validateNonNegativeInt(analyzeTopK, "top-k"); err != nil {
		return err
	}

	jobDescription, err := readJobDescription(args, analyzeFile)
	if err != nil {
		return err
	}

	s, err := openScreener(cmd.Context(), wireSynthesize)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := s.pipeline.Analyze(cmd.Context(), jobDescription, analyzeTopK)
	if err != nil {
		return fmt.Errorf("analyzing candidates: %w", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

// renderReport prints a human-readable report. Shared with rank --details.
func renderReport(w io.Writer, report *models.AnalysisReport) {
	fmt.Fprintf(w, "Candidate: %s\n", report.CandidateName)
	if report.Filename != "" {
		fmt.Fprintf(w, "Resume:    %s\n", report.Filename)
	}
	fmt.Fprintf(w, "Score:     %.2f\n", report.OverallScore)
	fmt.Fprintf(w, "\n%s\n", report.Summary)

	if len(report.Strengths) > 0 {
		fmt.Fprintf(w, "\nStrengths:\n")
		for _, s := range report.Strengths {
			fmt.Fprintf(w, "  • %s\n", s)
		}
	}
	if len(report.Weaknesses) > 0 {
		fmt.Fprintf(w, "\nWeaknesses:\n")
		for _, s := range report.Weaknesses {
			fmt.Fprintf(w, "  • %s\n", s)
		}
	}

	if len(report.SkillMatches) > 0 {
		fmt.Fprintf(w, "\nSkills:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  SKILL\tSCORE\tEVIDENCE\n")
		for _, m := range report.SkillMatches {
			fmt.Fprintf(tw, "  %s\t%.2f\t%s\n",
				truncate(m.Skill, 25), m.MatchScore, truncate(flatten(m.Evidence), 50))
		}
		tw.Flush()
	}
	if len(report.ExperienceMatches) > 0 {
		fmt.Fprintf(w, "\nExperience:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  ROLE\tSCORE\tEVIDENCE\n")
		for _, m := range report.ExperienceMatches {
			fmt.Fprintf(tw, "  %s\t%.2f\t%s\n",
				truncate(m.Role, 25), m.MatchScore, truncate(flatten(m.Evidence), 50))
		}
		tw.Flush()
	}
	if len(report.EducationMatches) > 0 {
		fmt.Fprintf(w, "\nEducation:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  DEGREE\tSCORE\tEVIDENCE\n")
		for _, m := range report.EducationMatches {
			fmt.Fprintf(tw, "  %s\t%.2f\t%s\n",
				truncate(m.Degree, 25), m.MatchScore, truncate(flatten(m.Evidence), 50))
		}
		tw.Flush()
	}

	fmt.Fprintf(w, "\nRecommendation: %s\n", report.Recommendation)
	if report.Reasoning != "" {
		fmt.Fprintf(w, "%s\n", report.Reasoning)
	}
}
