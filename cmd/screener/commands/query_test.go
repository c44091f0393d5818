// ABOUTME: Tests for query command
// ABOUTME: Verifies flag defaults and top-k validation

package commands

import (
	"strings"
	"testing"
)

func TestNewQueryCmd(t *testing.T) {
	cmd := NewQueryCmd()

	if !strings.HasPrefix(cmd.Use, "query") {
		t.Errorf("Use = %q, want prefix %q", cmd.Use, "query")
	}

	topKFlag := cmd.Flags().Lookup("top-k")
	if topKFlag == nil {
		t.Fatal("--top-k flag not found")
	}
	if topKFlag.DefValue != "0" {
		t.Errorf("--top-k default = %q, want %q", topKFlag.DefValue, "0")
	}
}

func TestQueryCmd_RejectsNegativeTopK(t *testing.T) {
	output, err := runCommand(t, "query", "--top-k", "-1", "golang")
	if err == nil {
		t.Fatalf("Expected error for negative top-k, got output: %q", output)
	}
	if !strings.Contains(err.Error(), "top-k") {
		t.Errorf("Error = %v, want mention of top-k", err)
	}
}
