// ABOUTME: Tests for retrieval hit structures and context aggregation order
// ABOUTME: Verifies relevance derivation and combined-context formatting
package models

import (
	"strings"
	"testing"
)

func TestRelevanceFromDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{name: "zero distance is full relevance", distance: 0, want: 1},
		{name: "mid distance", distance: 0.25, want: 0.75},
		{name: "unit distance", distance: 1, want: 0},
		{name: "distance above one undefined", distance: 1.5, want: 0},
		{name: "negative distance undefined", distance: -0.5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevanceFromDistance(tt.distance)
			if got != tt.want {
				t.Errorf("RelevanceFromDistance(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestCandidateContext_Combined(t *testing.T) {
	cc := &CandidateContext{
		DocumentID: "doc-1",
		Filename:   "jane.txt",
		Chunks: []ScoredChunk{
			{Text: "First chunk.", RelevanceScore: 0.9},
			{Text: "Second chunk.", RelevanceScore: 0.8},
		},
	}

	got := cc.Combined()
	want := "[Resume: jane.txt]\nFirst chunk.\nSecond chunk."
	if got != want {
		t.Errorf("Combined() = %q, want %q", got, want)
	}
}

func TestContextSet_AddPreservesOrder(t *testing.T) {
	set := NewContextSet()
	hits := []RetrievalHit{
		{ChunkID: "b_0", DocumentID: "b", Filename: "bob.txt", Text: "bob chunk 1", RelevanceScore: 0.95},
		{ChunkID: "a_2", DocumentID: "a", Filename: "ann.txt", Text: "ann chunk 1", RelevanceScore: 0.9},
		{ChunkID: "b_3", DocumentID: "b", Filename: "bob.txt", Text: "bob chunk 2", RelevanceScore: 0.7},
	}
	for _, h := range hits {
		set.Add(h)
	}

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	ordered := set.Ordered()
	if ordered[0].DocumentID != "b" || ordered[1].DocumentID != "a" {
		t.Errorf("first-appearance order broken: got %s, %s", ordered[0].DocumentID, ordered[1].DocumentID)
	}

	bob := set.Get("b")
	if bob == nil {
		t.Fatal("Get(b) = nil")
	}
	if len(bob.Chunks) != 2 {
		t.Fatalf("bob chunk count = %d, want 2", len(bob.Chunks))
	}
	if bob.Chunks[0].Text != "bob chunk 1" || bob.Chunks[1].Text != "bob chunk 2" {
		t.Error("within-group hit order not preserved")
	}
}

func TestContextSet_CombinedJoinsWithBlankLine(t *testing.T) {
	set := NewContextSet()
	set.Add(RetrievalHit{DocumentID: "a", Filename: "ann.txt", Text: "ann text"})
	set.Add(RetrievalHit{DocumentID: "b", Filename: "bob.txt", Text: "bob text"})

	got := set.Combined()
	if !strings.Contains(got, "[Resume: ann.txt]\nann text") {
		t.Errorf("missing first block in %q", got)
	}
	if !strings.Contains(got, "\n\n[Resume: bob.txt]\nbob text") {
		t.Errorf("blocks not separated by blank line in %q", got)
	}
}

func TestContextSet_Empty(t *testing.T) {
	set := NewContextSet()
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
	if set.Combined() != "" {
		t.Errorf("Combined() = %q, want empty", set.Combined())
	}
	if set.Get("missing") != nil {
		t.Error("Get on empty set should return nil")
	}
}
