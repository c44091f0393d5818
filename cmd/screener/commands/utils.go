// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Provides formatting, validation, and input helpers
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// flatten collapses whitespace runs so multi-line text fits in a table cell
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// formatTime formats a timestamp as relative time
func formatTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// validateNonNegativeInt rejects negative flag values
func validateNonNegativeInt(value int, name string) error {
	if value < 0 {
		return fmt.Errorf("%s must be non-negative, got %d", name, value)
	}
	return nil
}

// writeJSON renders v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(w, "%s\n", data)
	return nil
}

// readJobDescription resolves the job description from an argument, a file,
// or stdin, in that order.
func readJobDescription(args []string, file string) (string, error) {
	var text string
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	case len(args) > 0:
		text = args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no job description provided")
	}
	return text, nil
}
