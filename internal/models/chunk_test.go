// ABOUTME: Tests for Chunk model and deterministic chunk id derivation
// ABOUTME: Verifies id format and ordinal-based ordering guarantees
package models

import "testing"

func TestChunkID(t *testing.T) {
	tests := []struct {
		name       string
		documentID string
		ordinal    int
		want       string
	}{
		{
			name:       "first chunk",
			documentID: "doc-123",
			ordinal:    0,
			want:       "doc-123_0",
		},
		{
			name:       "later chunk",
			documentID: "doc-123",
			ordinal:    12,
			want:       "doc-123_12",
		},
		{
			name:       "uuid style id",
			documentID: "550e8400-e29b-41d4-a716-446655440000",
			ordinal:    3,
			want:       "550e8400-e29b-41d4-a716-446655440000_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunkID(tt.documentID, tt.ordinal)
			if got != tt.want {
				t.Errorf("ChunkID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkID_Deterministic(t *testing.T) {
	a := ChunkID("doc", 5)
	b := ChunkID("doc", 5)
	if a != b {
		t.Errorf("ChunkID not deterministic: %q vs %q", a, b)
	}
}

func TestChunk_Fields(t *testing.T) {
	chunk := Chunk{
		ChunkID:    ChunkID("doc-1", 2),
		DocumentID: "doc-1",
		Ordinal:    2,
		Text:       "Experienced Go developer.",
		Embedding:  []float64{0.1, 0.2, 0.3},
	}

	if chunk.ChunkID != "doc-1_2" {
		t.Errorf("ChunkID = %q, want %q", chunk.ChunkID, "doc-1_2")
	}
	if chunk.Ordinal != 2 {
		t.Errorf("Ordinal = %d, want 2", chunk.Ordinal)
	}
	if len(chunk.Embedding) != 3 {
		t.Errorf("Embedding length = %d, want 3", len(chunk.Embedding))
	}
}
