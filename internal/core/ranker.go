// ABOUTME: Ranks every resume in the corpus against one job description
// ABOUTME: Analyzes documents on a bounded worker pool and sorts by score
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/hireloop/screener/internal/models"
	"github.com/hireloop/screener/internal/storage"
)

// ErrEmptyCorpus means ranking was requested before any resume was
// ingested.
var ErrEmptyCorpus = errors.New("no resumes found in database")

// Ranker analyzes the whole corpus and orders candidates by score.
type Ranker struct {
	index   storage.Index
	synth   *Synthesizer
	workers int
	log     *zap.Logger
}

// NewRanker creates a Ranker running at most workers concurrent
// analyses; values below 1 run sequentially.
func NewRanker(index storage.Index, synth *Synthesizer, workers int, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Ranker{index: index, synth: synth, workers: workers, log: log}
}

type rankJob struct {
	pos int
	doc models.Document
}

type rankResult struct {
	pos    int
	report *models.AnalysisReport
}

// RankAll analyzes every stored resume against the job description and
// returns reports ordered by overall score descending, corpus listing
// position breaking ties. Documents that cannot be analyzed are skipped
// so the result is always best-effort; only an empty corpus is an
// error. topKPerDocument is accepted for query-path symmetry but the
// ranking path always reads whole documents.
func (r *Ranker) RankAll(ctx context.Context, jobDescription string, topKPerDocument, maxDocuments int) ([]*models.AnalysisReport, error) {
	docs, err := r.index.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	// Listing position is the ranking tie-break, so pin the order here
	// instead of trusting the backend.
	sort.Slice(docs, func(i, j int) bool { return docs[i].DocumentID < docs[j].DocumentID })
	if maxDocuments > 0 && len(docs) > maxDocuments {
		docs = docs[:maxDocuments]
	}

	r.log.Debug("ranking corpus",
		zap.Int("documents", len(docs)),
		zap.Int("top_k_per_document", topKPerDocument),
		zap.Int("workers", r.workers))

	workers := r.workers
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan rankJob)
	results := make(chan rankResult, len(docs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if report := r.analyzeDocument(ctx, jobDescription, job.doc); report != nil {
					results <- rankResult{pos: job.pos, report: report}
				}
			}
		}()
	}

	for i, doc := range docs {
		jobs <- rankJob{pos: i, doc: doc}
	}
	close(jobs)
	wg.Wait()
	close(results)

	ranked := make([]rankResult, 0, len(docs))
	for res := range results {
		ranked = append(ranked, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].report.OverallScore != ranked[j].report.OverallScore {
			return ranked[i].report.OverallScore > ranked[j].report.OverallScore
		}
		return ranked[i].pos < ranked[j].pos
	})

	reports := make([]*models.AnalysisReport, 0, len(ranked))
	for _, res := range ranked {
		reports = append(reports, res.report)
	}
	return reports, nil
}

// analyzeDocument produces the stamped report for one document, or nil
// when the document has to be skipped.
func (r *Ranker) analyzeDocument(ctx context.Context, jobDescription string, doc models.Document) *models.AnalysisReport {
	chunks, err := r.index.GetChunks(ctx, doc.DocumentID)
	if err != nil {
		r.log.Warn("skipping document: chunk fetch failed",
			zap.String("document_id", doc.DocumentID),
			zap.Error(err))
		return nil
	}
	if len(chunks) == 0 {
		r.log.Warn("skipping document: no chunks stored",
			zap.String("document_id", doc.DocumentID))
		return nil
	}

	report, err := r.synth.trySynthesize(ctx, jobDescription, FullDocumentContext(chunks))
	if err != nil {
		r.log.Warn("skipping document: synthesis failed",
			zap.String("document_id", doc.DocumentID),
			zap.Error(err))
		return nil
	}

	report.DocumentID = doc.DocumentID
	report.Filename = doc.Filename
	return report
}
