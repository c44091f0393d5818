// ABOUTME: Document represents one ingested resume and its metadata
// ABOUTME: Assigned an opaque id at ingestion; deleted as a unit with its chunks
package models

import "time"

// Document is one ingested resume.
type Document struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename"`
	Filepath   string    `json:"filepath,omitempty"`
	PageCount  int       `json:"page_count"`
	IngestedAt time.Time `json:"ingested_at"`
	ChunkCount int       `json:"chunk_count,omitempty"`
}

// IngestResult reports the outcome of a successful ingestion.
type IngestResult struct {
	DocumentID string `json:"document_id"`
	ChunkCount int    `json:"chunk_count"`
	Filename   string `json:"filename"`
}
