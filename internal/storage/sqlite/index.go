// ABOUTME: SQLite-backed vector index for resume chunks
// ABOUTME: Stores embeddings as BLOBs and answers cosine similarity queries
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/hireloop/screener/internal/models"
	"github.com/hireloop/screener/internal/storage"
)

// Index implements storage.Index on top of a SQLite database.
type Index struct {
	db *DB
}

var _ storage.Index = (*Index)(nil)

// NewIndex creates an Index over an open database
func NewIndex(db *DB) *Index {
	return &Index{db: db}
}

// Upsert stores a document and its chunk vectors, replacing any previous
// chunks under the same document id.
func (s *Index) Upsert(ctx context.Context, doc models.Document, chunks []string, embeddings [][]float64) error {
	if len(chunks) == 0 || len(embeddings) == 0 {
		return storage.ErrEmptyBatch
	}
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("%w: %d chunks, %d embeddings", storage.ErrArityMismatch, len(chunks), len(embeddings))
	}

	dim := len(embeddings[0])
	if dim == 0 {
		return fmt.Errorf("%w: empty vector", storage.ErrDimensionMismatch)
	}
	for i, vec := range embeddings {
		if len(vec) != dim {
			return fmt.Errorf("%w: vector %d has %d dimensions, expected %d", storage.ErrDimensionMismatch, i, len(vec), dim)
		}
	}

	// The first write fixes the corpus dimension; later writes must match.
	existing, err := s.corpusDimension(ctx)
	if err != nil {
		return err
	}
	if existing > 0 && existing != dim {
		return fmt.Errorf("%w: index holds %d-dimensional vectors, got %d", storage.ErrDimensionMismatch, existing, dim)
	}

	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", doc.DocumentID); err != nil {
		return fmt.Errorf("failed to clear previous chunks: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, filename, filepath, page_count, chunk_count, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			filepath = excluded.filepath,
			page_count = excluded.page_count,
			chunk_count = excluded.chunk_count,
			ingested_at = excluded.ingested_at
	`, doc.DocumentID, doc.Filename, doc.Filepath, doc.PageCount, len(chunks), doc.IngestedAt)
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, document_id, ordinal, text, embedding)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare chunk insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, text := range chunks {
		chunkID := models.ChunkID(doc.DocumentID, i)
		if _, err := stmt.ExecContext(ctx, chunkID, doc.DocumentID, i, text, vectorToBlob(embeddings[i])); err != nil {
			return fmt.Errorf("failed to store chunk %s: %w", chunkID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Query returns the topK chunks nearest to the query embedding, best first.
// An empty documentID searches the whole corpus.
func (s *Index) Query(ctx context.Context, embedding []float64, topK int, documentID string) ([]models.RetrievalHit, error) {
	query := `
		SELECT c.id, c.document_id, c.ordinal, d.filename, c.text, c.embedding
		FROM chunks c
		JOIN documents d ON d.id = c.document_id
	`
	args := []interface{}{}
	if documentID != "" {
		query += " WHERE c.document_id = ?"
		args = append(args, documentID)
	}
	query += " ORDER BY c.document_id, c.ordinal"

	rows, err := s.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []models.RetrievalHit
	for rows.Next() {
		var (
			hit  models.RetrievalHit
			blob []byte
		)
		if err := rows.Scan(&hit.ChunkID, &hit.DocumentID, &hit.Ordinal, &hit.Filename, &hit.Text, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}

		hit.Distance = storage.CosineDistance(embedding, blobToVector(blob))
		hit.RelevanceScore = models.RelevanceFromDistance(hit.Distance)
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Stable sort keeps scan order for equal distances
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if topK >= 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

// GetChunks returns a document's chunks in ordinal order. An unknown id
// yields an empty slice.
func (s *Index) GetChunks(ctx context.Context, documentID string) ([]models.Chunk, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT id, document_id, ordinal, text, embedding
		FROM chunks
		WHERE document_id = ?
		ORDER BY ordinal ASC
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chunks []models.Chunk
	for rows.Next() {
		var (
			chunk models.Chunk
			blob  []byte
		)
		if err := rows.Scan(&chunk.ChunkID, &chunk.DocumentID, &chunk.Ordinal, &chunk.Text, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		chunk.Embedding = blobToVector(blob)
		chunks = append(chunks, chunk)
	}
	return chunks, rows.Err()
}

// GetDocument returns a document's metadata, or nil for unknown ids
func (s *Index) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	var doc models.Document
	err := s.db.conn.QueryRowContext(ctx, `
		SELECT id, filename, filepath, page_count, chunk_count, ingested_at
		FROM documents
		WHERE id = ?
	`, documentID).Scan(&doc.DocumentID, &doc.Filename, &doc.Filepath, &doc.PageCount, &doc.ChunkCount, &doc.IngestedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

// Delete removes a document and its chunks; unknown ids are a no-op
func (s *Index) Delete(ctx context.Context, documentID string) error {
	_, err := s.db.conn.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// ListDocuments returns all documents sorted by id
func (s *Index) ListDocuments(ctx context.Context) ([]models.Document, error) {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT id, filename, filepath, page_count, chunk_count, ingested_at
		FROM documents
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(&doc.DocumentID, &doc.Filename, &doc.Filepath, &doc.PageCount, &doc.ChunkCount, &doc.IngestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Stats reports document and chunk counts plus the corpus vector dimension
func (s *Index) Stats(ctx context.Context) (*storage.Stats, error) {
	stats := &storage.Stats{Path: s.db.Path()}

	if err := s.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&stats.TotalDocuments); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	if err := s.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&stats.TotalChunks); err != nil {
		return nil, fmt.Errorf("failed to count chunks: %w", err)
	}

	dim, err := s.corpusDimension(ctx)
	if err != nil {
		return nil, err
	}
	stats.EmbeddingDimension = dim
	return stats, nil
}

// corpusDimension returns the stored vector dimension, or 0 for an empty index
func (s *Index) corpusDimension(ctx context.Context) (int, error) {
	var bytes int
	err := s.db.conn.QueryRowContext(ctx, "SELECT length(embedding) FROM chunks LIMIT 1").Scan(&bytes)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read vector dimension: %w", err)
	}
	return bytes / 8, nil
}

// vectorToBlob converts a float64 slice to binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}
