// ABOUTME: Vector index contract for resume chunk storage and retrieval
// ABOUTME: Defines upsert/query/get/delete/list semantics shared by backends
package storage

import (
	"context"
	"errors"

	"github.com/hireloop/screener/internal/models"
)

var (
	// ErrArityMismatch means chunk and embedding counts differ in an upsert.
	ErrArityMismatch = errors.New("chunk and embedding counts differ")
	// ErrEmptyBatch means an upsert carried no chunks or no embeddings.
	ErrEmptyBatch = errors.New("chunks and embeddings cannot be empty")
	// ErrDimensionMismatch means a vector's dimension disagrees with the
	// index's established embedding dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Index persists (vector, text, metadata) tuples for resume chunks and
// answers similarity and per-document lookups. Documents are written and
// deleted as whole units; chunks are never mutated in place.
type Index interface {
	// Upsert stores a document's chunks with their embeddings, replacing
	// any previous chunks under the same document id. Fails with
	// ErrArityMismatch or ErrEmptyBatch before touching the index.
	Upsert(ctx context.Context, doc models.Document, chunks []string, embeddings [][]float64) error

	// Query returns the topK nearest chunks, best first. An empty
	// documentID searches the whole corpus; a non-empty one restricts
	// the search to that document.
	Query(ctx context.Context, embedding []float64, topK int, documentID string) ([]models.RetrievalHit, error)

	// GetChunks returns a document's chunks in ordinal order; an unknown
	// id yields an empty slice, not an error.
	GetChunks(ctx context.Context, documentID string) ([]models.Chunk, error)

	// GetDocument returns a document's metadata, or nil for unknown ids.
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)

	// Delete removes a document and its chunks. Deleting an unknown id
	// is a no-op success.
	Delete(ctx context.Context, documentID string) error

	// ListDocuments returns metadata for every stored document, sorted
	// by document id ascending.
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// Stats reports corpus-wide counters.
	Stats(ctx context.Context) (*Stats, error)
}

// Stats summarizes the index contents.
type Stats struct {
	TotalDocuments     int    `json:"total_documents"`
	TotalChunks        int    `json:"total_chunks"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	Path               string `json:"path,omitempty"`
}
