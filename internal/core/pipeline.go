// ABOUTME: Pipeline wires extraction, chunking, embedding, retrieval, and synthesis
// ABOUTME: Built once per process; every operation takes a context
package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hireloop/screener/internal/config"
	"github.com/hireloop/screener/internal/llm"
	"github.com/hireloop/screener/internal/models"
	"github.com/hireloop/screener/internal/source"
	"github.com/hireloop/screener/internal/storage"
)

// ErrNoMatches means a retrieval query over the corpus found nothing to
// analyze.
var ErrNoMatches = errors.New("no matching resumes found")

// defaultTopKPerDocument mirrors the ranking API default; the ranking
// path itself always reads whole documents.
const defaultTopKPerDocument = 3

// Pipeline is the ingestion and analysis core shared by the CLI and the
// MCP server.
type Pipeline struct {
	cfg       *config.Config
	extractor source.Extractor
	embedder  llm.Embedder
	index     storage.Index
	synth     *Synthesizer
	ranker    *Ranker
	log       *zap.Logger
}

// NewPipeline assembles the pipeline. A nil oracle routes every
// synthesis to the deterministic fallback.
func NewPipeline(cfg *config.Config, extractor source.Extractor, embedder llm.Embedder, index storage.Index, oracle llm.Oracle, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	synth := NewSynthesizer(oracle, cfg.LLMTimeout, log)
	return &Pipeline{
		cfg:       cfg,
		extractor: extractor,
		embedder:  embedder,
		index:     index,
		synth:     synth,
		ranker:    NewRanker(index, synth, cfg.RankWorkers, log),
		log:       log,
	}
}

// Ingest extracts, chunks, embeds, and indexes one resume file.
func (p *Pipeline) Ingest(ctx context.Context, path string) (*models.IngestResult, error) {
	text, err := p.extractor.ExtractText(path)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", path, err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %s", source.ErrEmptyDocument, path)
	}

	pages, err := p.extractor.PageCount(path)
	if err != nil {
		return nil, fmt.Errorf("counting pages in %s: %w", path, err)
	}

	chunks, err := ChunkText(text, p.cfg.ChunkSize, p.cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %s", source.ErrEmptyDocument, path)
	}

	embeddings, err := p.embedder.Embed(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embedding %s: %w", path, err)
	}

	doc := models.Document{
		DocumentID: uuid.New().String(),
		Filename:   filepath.Base(path),
		Filepath:   path,
		PageCount:  pages,
		IngestedAt: time.Now().UTC(),
		ChunkCount: len(chunks),
	}
	if err := p.index.Upsert(ctx, doc, chunks, embeddings); err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}

	p.log.Info("ingested resume",
		zap.String("document_id", doc.DocumentID),
		zap.String("filename", doc.Filename),
		zap.Int("chunks", len(chunks)),
		zap.Int("pages", pages))

	return &models.IngestResult{
		DocumentID: doc.DocumentID,
		ChunkCount: len(chunks),
		Filename:   doc.Filename,
	}, nil
}

// Query embeds the query text and returns the nearest chunks across the
// whole corpus. An empty result is a valid empty slice.
func (p *Pipeline) Query(ctx context.Context, query string, topK int) ([]models.RetrievalHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query text is required")
	}
	if topK <= 0 {
		topK = p.cfg.TopKResults
	}

	embedding, err := p.embedder.EmbedOne(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	hits, err := p.index.Query(ctx, embedding, topK, "")
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	return hits, nil
}

// Analyze retrieves the top-k chunks for a job description, aggregates
// them per candidate, and synthesizes one report over the combined
// window. The report never fails once hits exist; with no hits the call
// returns ErrNoMatches.
func (p *Pipeline) Analyze(ctx context.Context, jobDescription string, topK int) (*models.AnalysisReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is required")
	}

	hits, err := p.Query(ctx, jobDescription, topK)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, ErrNoMatches
	}

	set := Aggregate(hits)
	p.log.Debug("analyzing combined context",
		zap.Int("hits", len(hits)),
		zap.Int("candidates", set.Len()))

	return p.synth.Synthesize(ctx, jobDescription, set.Combined()), nil
}

// Rank analyzes every stored resume against the job description and
// returns reports ordered best-first.
func (p *Pipeline) Rank(ctx context.Context, jobDescription string, topKPerDocument, maxDocuments int) ([]*models.AnalysisReport, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is required")
	}
	if topKPerDocument <= 0 {
		topKPerDocument = defaultTopKPerDocument
	}
	return p.ranker.RankAll(ctx, jobDescription, topKPerDocument, maxDocuments)
}

// ListDocuments returns metadata for every ingested resume.
func (p *Pipeline) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return p.index.ListDocuments(ctx)
}

// GetDocument returns one resume's metadata and chunks; a nil document
// means the id is unknown.
func (p *Pipeline) GetDocument(ctx context.Context, documentID string) (*models.Document, []models.Chunk, error) {
	doc, err := p.index.GetDocument(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading document %s: %w", documentID, err)
	}
	if doc == nil {
		return nil, nil, nil
	}

	chunks, err := p.index.GetChunks(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading chunks for %s: %w", documentID, err)
	}
	return doc, chunks, nil
}

// Delete removes a resume and its chunks. Unknown ids are a no-op.
func (p *Pipeline) Delete(ctx context.Context, documentID string) error {
	if err := p.index.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("deleting document %s: %w", documentID, err)
	}
	p.log.Info("deleted resume", zap.String("document_id", documentID))
	return nil
}

// Stats reports corpus-wide counters.
func (p *Pipeline) Stats(ctx context.Context) (*storage.Stats, error) {
	return p.index.Stats(ctx)
}
