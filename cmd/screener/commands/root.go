// ABOUTME: Root command definition for the screener CLI
// ABOUTME: Registers global flags and all subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███████╗ ██████╗██████╗ ███████╗███████╗███╗   ██╗███████╗██████╗
██╔════╝██╔════╝██╔══██╗██╔════╝██╔════╝████╗  ██║██╔════╝██╔══██╗
███████╗██║     ██████╔╝█████╗  █████╗  ██╔██╗ ██║█████╗  ██████╔╝
╚════██║██║     ██╔══██╗██╔══╝  ██╔══╝  ██║╚██╗██║██╔══╝  ██╔══██╗
███████║╚██████╗██║  ██║███████╗███████╗██║ ╚████║███████╗██║  ██║
╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝`

// NewRootCmd creates the root command for the screener CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screener",
		Short: "Resume screening with retrieval-backed candidate reports",
		Long: banner + `

Screener ingests resume files into a chunked vector index and evaluates
candidates against job descriptions. Retrieval finds the most relevant
resume passages, and an LLM (or an extractive fallback) turns them into
structured fit reports.

Examples:
  screener ingest resumes/*.txt        Ingest resume files
  screener query "golang kubernetes"   Search resume chunks
  screener analyze "Senior Go dev..."  Report on the best candidate
  screener rank --file job.txt         Rank every candidate
  screener list                        Show ingested resumes
  screener mcp                         Serve tools over MCP stdio`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
