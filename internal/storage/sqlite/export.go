// ABOUTME: Export functionality for the resume index
// ABOUTME: Supports JSON, YAML, and Markdown export formats
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// previewLimit caps chunk text carried in exports
const previewLimit = 200

// ExportData represents the complete exportable corpus
type ExportData struct {
	Version        string           `yaml:"version" json:"version"`
	ExportedAt     string           `yaml:"exported_at" json:"exported_at"`
	Tool           string           `yaml:"tool" json:"tool"`
	TotalDocuments int              `yaml:"total_documents" json:"total_documents"`
	Documents      []ExportDocument `yaml:"documents,omitempty" json:"documents,omitempty"`
}

// ExportDocument represents one ingested resume for export
type ExportDocument struct {
	DocumentID string        `yaml:"document_id" json:"document_id"`
	Filename   string        `yaml:"filename" json:"filename"`
	Filepath   string        `yaml:"filepath,omitempty" json:"filepath,omitempty"`
	PageCount  int           `yaml:"page_count" json:"page_count"`
	ChunkCount int           `yaml:"chunk_count" json:"chunk_count"`
	IngestedAt string        `yaml:"ingested_at" json:"ingested_at"`
	Chunks     []ExportChunk `yaml:"chunks,omitempty" json:"chunks,omitempty"`
}

// ExportChunk carries a chunk preview for export
type ExportChunk struct {
	ChunkID string `yaml:"chunk_id" json:"chunk_id"`
	Ordinal int    `yaml:"ordinal" json:"ordinal"`
	Preview string `yaml:"preview" json:"preview"`
}

// Export collects all documents and chunk previews from the index
func (s *Index) Export(ctx context.Context) (*ExportData, error) {
	docs, err := s.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	data := &ExportData{
		Version:        "1.0",
		ExportedAt:     time.Now().Format(time.RFC3339),
		Tool:           "screener",
		TotalDocuments: len(docs),
	}

	for _, doc := range docs {
		exportDoc := ExportDocument{
			DocumentID: doc.DocumentID,
			Filename:   doc.Filename,
			Filepath:   doc.Filepath,
			PageCount:  doc.PageCount,
			ChunkCount: doc.ChunkCount,
			IngestedAt: doc.IngestedAt.Format(time.RFC3339),
		}

		chunks, err := s.GetChunks(ctx, doc.DocumentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get chunks for %s: %w", doc.DocumentID, err)
		}
		for _, chunk := range chunks {
			exportDoc.Chunks = append(exportDoc.Chunks, ExportChunk{
				ChunkID: chunk.ChunkID,
				Ordinal: chunk.Ordinal,
				Preview: preview(chunk.Text),
			})
		}

		data.Documents = append(data.Documents, exportDoc)
	}

	return data, nil
}

// ExportToJSON exports the corpus to a JSON file
func (s *Index) ExportToJSON(ctx context.Context, outputPath string) error {
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ExportToYAML exports the corpus to a YAML file
func (s *Index) ExportToYAML(ctx context.Context, outputPath string) error {
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// ExportToMarkdown exports the corpus to a Markdown file
func (s *Index) ExportToMarkdown(ctx context.Context, outputPath string) error {
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, _ = fmt.Fprintf(file, "# Resume Corpus Export - %s\n\n", time.Now().Format("2006-01-02"))
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", data.ExportedAt)
	_, _ = fmt.Fprintf(file, "Total resumes: %d\n\n", data.TotalDocuments)

	for _, doc := range data.Documents {
		_, _ = fmt.Fprintf(file, "## %s\n\n", doc.Filename)
		_, _ = fmt.Fprintf(file, "- **ID:** %s\n", doc.DocumentID)
		if doc.Filepath != "" {
			_, _ = fmt.Fprintf(file, "- **Path:** %s\n", doc.Filepath)
		}
		_, _ = fmt.Fprintf(file, "- **Pages:** %d\n", doc.PageCount)
		_, _ = fmt.Fprintf(file, "- **Chunks:** %d\n", doc.ChunkCount)
		_, _ = fmt.Fprintf(file, "- **Ingested:** %s\n\n", doc.IngestedAt)

		for _, chunk := range doc.Chunks {
			_, _ = fmt.Fprintf(file, "> [%d] %s\n\n", chunk.Ordinal, chunk.Preview)
		}
		_, _ = fmt.Fprintln(file, "---")
		_, _ = fmt.Fprintln(file)
	}

	return nil
}

// ExportEmbeddingsToJSON exports raw vectors to a separate JSON file
func (s *Index) ExportEmbeddingsToJSON(ctx context.Context, outputPath string) error {
	rows, err := s.db.conn.QueryContext(ctx, `
		SELECT id, document_id, ordinal, embedding
		FROM chunks
		ORDER BY document_id, ordinal
	`)
	if err != nil {
		return fmt.Errorf("failed to query embeddings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type EmbeddingExport struct {
		ChunkID    string    `json:"chunk_id"`
		DocumentID string    `json:"document_id"`
		Ordinal    int       `json:"ordinal"`
		Vector     []float64 `json:"vector"`
	}

	var embeddings []EmbeddingExport
	for rows.Next() {
		var (
			emb  EmbeddingExport
			blob []byte
		)
		if err := rows.Scan(&emb.ChunkID, &emb.DocumentID, &emb.Ordinal, &blob); err != nil {
			return fmt.Errorf("failed to scan embedding: %w", err)
		}
		emb.Vector = blobToVector(blob)
		embeddings = append(embeddings, emb)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	file, err := createExportFile(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(embeddings); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createExportFile ensures the output directory exists and creates the file
func createExportFile(outputPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

// preview returns the first previewLimit runes of text
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit])
}
