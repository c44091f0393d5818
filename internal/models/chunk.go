// ABOUTME: Chunk is a contiguous text segment of a Document with its embedding
// ABOUTME: Chunk ids derive from document id + ordinal for stable ordering
package models

import "fmt"

// Chunk is one bounded text segment of a document. Chunks of a document
// are totally ordered by Ordinal; their texts concatenate back to the
// document text with at most the configured overlap duplicated at each
// boundary.
type Chunk struct {
	ChunkID    string    `json:"chunk_id"`
	DocumentID string    `json:"document_id"`
	Ordinal    int       `json:"ordinal"`
	Text       string    `json:"text"`
	Embedding  []float64 `json:"embedding,omitempty"`
}

// ChunkID builds the deterministic id for a chunk of a document.
func ChunkID(documentID string, ordinal int) string {
	return fmt.Sprintf("%s_%d", documentID, ordinal)
}
