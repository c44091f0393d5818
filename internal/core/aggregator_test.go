// ABOUTME: Tests for retrieval hit aggregation into candidate contexts
// ABOUTME: Verifies grouping, ordering, and combined prompt text formats

package core

import (
	"testing"

	"github.com/hireloop/screener/internal/models"
)

func TestAggregate_GroupsByDocument(t *testing.T) {
	hits := []models.RetrievalHit{
		{ChunkID: "doc-a_0", DocumentID: "doc-a", Filename: "alice.pdf", Text: "python experience", RelevanceScore: 0.9},
		{ChunkID: "doc-b_0", DocumentID: "doc-b", Filename: "bob.pdf", Text: "java experience", RelevanceScore: 0.8},
		{ChunkID: "doc-a_2", DocumentID: "doc-a", Filename: "alice.pdf", Text: "ml projects", RelevanceScore: 0.7},
	}

	set := Aggregate(hits)
	if set.Len() != 2 {
		t.Fatalf("Aggregate() = %d contexts, want 2", set.Len())
	}

	ordered := set.Ordered()
	if ordered[0].DocumentID != "doc-a" || ordered[1].DocumentID != "doc-b" {
		t.Errorf("context order = %s, %s, want doc-a, doc-b", ordered[0].DocumentID, ordered[1].DocumentID)
	}

	alice := set.Get("doc-a")
	if alice == nil {
		t.Fatal("Get(doc-a) returned nil")
	}
	if len(alice.Chunks) != 2 {
		t.Fatalf("doc-a chunks = %d, want 2", len(alice.Chunks))
	}
	if alice.Chunks[0].Text != "python experience" || alice.Chunks[1].Text != "ml projects" {
		t.Errorf("doc-a chunk order = %q, %q, want arrival order", alice.Chunks[0].Text, alice.Chunks[1].Text)
	}
	if alice.Chunks[1].RelevanceScore != 0.7 {
		t.Errorf("chunk relevance = %v, want 0.7", alice.Chunks[1].RelevanceScore)
	}
}

func TestAggregate_Empty(t *testing.T) {
	set := Aggregate(nil)
	if set.Len() != 0 {
		t.Errorf("Aggregate(nil) = %d contexts, want 0", set.Len())
	}
	if set.Combined() != "" {
		t.Errorf("Combined() = %q, want empty", set.Combined())
	}
}

func TestAggregate_CombinedFormat(t *testing.T) {
	hits := []models.RetrievalHit{
		{DocumentID: "doc-a", Filename: "alice.pdf", Text: "chunk one", RelevanceScore: 0.9},
		{DocumentID: "doc-a", Filename: "alice.pdf", Text: "chunk two", RelevanceScore: 0.8},
		{DocumentID: "doc-b", Filename: "bob.pdf", Text: "chunk three", RelevanceScore: 0.5},
	}

	want := "[Resume: alice.pdf]\nchunk one\nchunk two\n\n[Resume: bob.pdf]\nchunk three"
	if got := Aggregate(hits).Combined(); got != want {
		t.Errorf("Combined() = %q, want %q", got, want)
	}
}

func TestAggregate_PreservesArrivalOrder(t *testing.T) {
	// Hit order is the index's ranking; aggregation must not reorder
	// even when relevance looks out of order.
	hits := []models.RetrievalHit{
		{DocumentID: "doc-a", Filename: "a.pdf", Text: "first", RelevanceScore: 0.2},
		{DocumentID: "doc-a", Filename: "a.pdf", Text: "second", RelevanceScore: 0.9},
	}

	cc := Aggregate(hits).Get("doc-a")
	if cc.Chunks[0].Text != "first" || cc.Chunks[1].Text != "second" {
		t.Errorf("chunk order = %q, %q, want first, second", cc.Chunks[0].Text, cc.Chunks[1].Text)
	}
}

func TestFullDocumentContext(t *testing.T) {
	chunks := []models.Chunk{
		{Ordinal: 0, Text: "intro section"},
		{Ordinal: 1, Text: "experience section"},
		{Ordinal: 2, Text: "education section"},
	}

	want := "intro section\n\nexperience section\n\neducation section"
	if got := FullDocumentContext(chunks); got != want {
		t.Errorf("FullDocumentContext() = %q, want %q", got, want)
	}
}

func TestFullDocumentContext_Empty(t *testing.T) {
	if got := FullDocumentContext(nil); got != "" {
		t.Errorf("FullDocumentContext(nil) = %q, want empty", got)
	}
}

func TestFullDocumentContext_SingleChunk(t *testing.T) {
	chunks := []models.Chunk{{Ordinal: 0, Text: "whole resume"}}
	if got := FullDocumentContext(chunks); got != "whole resume" {
		t.Errorf("FullDocumentContext() = %q, want %q", got, "whole resume")
	}
}
