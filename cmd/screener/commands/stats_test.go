// ABOUTME: Tests for stats command
// ABOUTME: Verifies counter output against a real empty index

package commands

import (
	"strings"
	"testing"
)

func TestStatsCmd_EmptyIndex(t *testing.T) {
	output, err := runCommand(t, "stats")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"Resumes:", "Chunks:", "Embedding dimension:", "Database:"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output = %q, want to contain %q", output, want)
		}
	}
}

func TestStatsCmd_JSONOutput(t *testing.T) {
	output, err := runCommand(t, "stats", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, `"total_documents": 0`) {
		t.Errorf("Output = %q, want to contain %q", output, `"total_documents": 0`)
	}
	if !strings.Contains(output, `"total_chunks": 0`) {
		t.Errorf("Output = %q, want to contain %q", output, `"total_chunks": 0`)
	}
}
