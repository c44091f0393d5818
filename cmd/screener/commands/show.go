// ABOUTME: CLI command to inspect a single resume
// ABOUTME: Prints document metadata and chunk previews or full chunk text
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	showFull bool
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <document-id>",
		Short: "Show one resume and its chunks",
		Long: `Show a resume's metadata and stored chunks.

Chunk text is previewed unless --full is set.

Examples:
  screener show 3f8a1c2e-...
  screener show --full 3f8a1c2e-...`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showFull, "full", false, "Print complete chunk text")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	documentID := args[0]

	s, err := openScreener(cmd.Context(), wireInspect)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, chunks, err := s.pipeline.GetDocument(cmd.Context(), documentID)
	if err != nil {
		return fmt.Errorf("loading resume: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("resume %s not found", documentID)
	}

	// Embeddings are large and belong to export, not display
	for i := range chunks {
		chunks[i].Embedding = nil
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
			"document": doc,
			"chunks":   chunks,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", doc.DocumentID)
	fmt.Fprintf(out, "Filename: %s\n", doc.Filename)
	if doc.Filepath != "" {
		fmt.Fprintf(out, "Path:     %s\n", doc.Filepath)
	}
	fmt.Fprintf(out, "Pages:    %d\n", doc.PageCount)
	fmt.Fprintf(out, "Chunks:   %d\n", len(chunks))
	fmt.Fprintf(out, "Ingested: %s\n", formatTime(doc.IngestedAt))

	for _, chunk := range chunks {
		if showFull {
			fmt.Fprintf(out, "\n[%d]\n%s\n", chunk.Ordinal, chunk.Text)
		} else {
			fmt.Fprintf(out, "\n[%d] %s\n", chunk.Ordinal, truncate(flatten(chunk.Text), 200))
		}
	}

	return nil
}
