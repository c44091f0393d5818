// ABOUTME: Aggregates retrieval hits into per-candidate contexts for synthesis
// ABOUTME: Also builds the full-document context used by the ranking path
package core

import (
	"strings"

	"github.com/hireloop/screener/internal/models"
)

// Aggregate groups hits by document, keeping hit order within each
// candidate and first-appearance order across candidates.
func Aggregate(hits []models.RetrievalHit) *models.ContextSet {
	set := models.NewContextSet()
	for _, hit := range hits {
		set.Add(hit)
	}
	return set
}

// FullDocumentContext joins every chunk of one document in ordinal
// order. The ranking path feeds whole resumes to the synthesizer, so
// unlike the retrieval path there is no filename header.
func FullDocumentContext(chunks []models.Chunk) string {
	texts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		texts = append(texts, ch.Text)
	}
	return strings.Join(texts, "\n\n")
}
