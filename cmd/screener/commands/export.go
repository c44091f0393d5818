// ABOUTME: CLI command to export the resume corpus to a file
// ABOUTME: Supports JSON, YAML, and Markdown output plus raw embedding dumps
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	exportOut        string
	exportEmbeddings bool
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export resumes and chunks to a file",
		Long: `Export every resume and chunk to a file. The extension of --out
selects the format: .json, .yaml/.yml, or .md/.markdown.

With --embeddings, raw vectors are written alongside to a separate
<name>_embeddings.json file.

Examples:
  screener export
  screener export --out corpus.yaml
  screener export --out corpus.json --embeddings`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportOut, "out", "screener_export.json", "Output file path")
	cmd.Flags().BoolVar(&exportEmbeddings, "embeddings", false, "Also dump raw embedding vectors")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	s, err := openScreener(cmd.Context(), wireInspect)
	if err != nil {
		return err
	}
	defer s.Close()

	ext := strings.ToLower(filepath.Ext(exportOut))
	switch ext {
	case ".json":
		err = s.index.ExportToJSON(cmd.Context(), exportOut)
	case ".yaml", ".yml":
		err = s.index.ExportToYAML(cmd.Context(), exportOut)
	case ".md", ".markdown":
		err = s.index.ExportToMarkdown(cmd.Context(), exportOut)
	default:
		return fmt.Errorf("unsupported export format %q (use .json, .yaml, or .md)", ext)
	}
	if err != nil {
		return fmt.Errorf("exporting corpus: %w", err)
	}

	stats, err := s.pipeline.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d resume(s) (%d chunks) to %s\n",
			stats.TotalDocuments, stats.TotalChunks, exportOut)
	}

	if exportEmbeddings {
		embPath := strings.TrimSuffix(exportOut, ext) + "_embeddings.json"
		if err := s.index.ExportEmbeddingsToJSON(cmd.Context(), embPath); err != nil {
			return fmt.Errorf("exporting embeddings: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported embeddings to %s\n", embPath)
		}
	}

	return nil
}
