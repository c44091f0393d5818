// ABOUTME: CLI command to delete a resume and its chunks
// ABOUTME: Confirms before removal unless --yes is set
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	deleteYes bool
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <document-id>",
		Short: "Delete a resume from the index",
		Long: `Delete a resume and all of its chunks and embeddings.

Examples:
  screener delete 3f8a1c2e-...
  screener delete --yes 3f8a1c2e-...`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	documentID := args[0]

	s, err := openScreener(cmd.Context(), wireInspect)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, _, err := s.pipeline.GetDocument(cmd.Context(), documentID)
	if err != nil {
		return fmt.Errorf("loading resume: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("resume %s not found", documentID)
	}

	// Ask for confirmation unless --yes flag is set
	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete resume %s (%s)? [y/N] ", doc.DocumentID, doc.Filename)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
	}

	if err := s.pipeline.Delete(cmd.Context(), documentID); err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted resume %s\n", documentID)
	}
	return nil
}
