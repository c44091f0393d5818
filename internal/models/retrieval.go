// ABOUTME: Retrieval result structures for similarity queries
// ABOUTME: RetrievalHit rows aggregate into per-candidate contexts
package models

import "strings"

// RetrievalHit is one similarity-query result row. Distance is cosine
// distance (smaller = more similar); RelevanceScore is derived from it
// and only meaningful when distance lies in [0,1].
type RetrievalHit struct {
	ChunkID        string  `json:"chunk_id"`
	DocumentID     string  `json:"document_id"`
	Ordinal        int     `json:"ordinal"`
	Filename       string  `json:"filename"`
	Text           string  `json:"text"`
	Distance       float64 `json:"distance"`
	RelevanceScore float64 `json:"relevance_score"`
}

// RelevanceFromDistance maps a bounded distance to a relevance score.
// Distances outside [0,1] have no defined relevance and map to 0.
func RelevanceFromDistance(distance float64) float64 {
	if distance < 0 || distance > 1 {
		return 0
	}
	return 1 - distance
}

// ScoredChunk is one context fragment with the relevance it was
// retrieved at.
type ScoredChunk struct {
	Text           string  `json:"text"`
	RelevanceScore float64 `json:"relevance_score"`
}

// CandidateContext is the per-document aggregation of hits for one
// analysis request. Chunks keep hit-arrival order (descending relevance
// as returned by the index).
type CandidateContext struct {
	DocumentID string        `json:"document_id"`
	Filename   string        `json:"filename"`
	Chunks     []ScoredChunk `json:"chunks"`
}

// Combined renders the context as prompt text: a resume header followed
// by the chunk texts in aggregation order.
func (c *CandidateContext) Combined() string {
	var sb strings.Builder
	sb.WriteString("[Resume: ")
	sb.WriteString(c.Filename)
	sb.WriteString("]\n")
	for i, ch := range c.Chunks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ch.Text)
	}
	return sb.String()
}

// ContextSet holds candidate contexts in first-appearance order so that
// combined prompts are deterministic.
type ContextSet struct {
	ordered []*CandidateContext
	byID    map[string]*CandidateContext
}

// NewContextSet returns an empty set.
func NewContextSet() *ContextSet {
	return &ContextSet{byID: make(map[string]*CandidateContext)}
}

// Add appends a hit to its document's context, creating the context on
// first sight of the document.
func (s *ContextSet) Add(hit RetrievalHit) {
	cc, ok := s.byID[hit.DocumentID]
	if !ok {
		cc = &CandidateContext{DocumentID: hit.DocumentID, Filename: hit.Filename}
		s.byID[hit.DocumentID] = cc
		s.ordered = append(s.ordered, cc)
	}
	cc.Chunks = append(cc.Chunks, ScoredChunk{Text: hit.Text, RelevanceScore: hit.RelevanceScore})
}

// Get returns the context for a document id, or nil.
func (s *ContextSet) Get(documentID string) *CandidateContext {
	return s.byID[documentID]
}

// Ordered returns contexts in first-appearance order.
func (s *ContextSet) Ordered() []*CandidateContext {
	return s.ordered
}

// Len reports the number of distinct documents in the set.
func (s *ContextSet) Len() int {
	return len(s.ordered)
}

// Combined joins every candidate's combined context with blank lines,
// producing the prompt text for a whole-corpus analysis.
func (s *ContextSet) Combined() string {
	parts := make([]string, 0, len(s.ordered))
	for _, cc := range s.ordered {
		parts = append(parts, cc.Combined())
	}
	return strings.Join(parts, "\n\n")
}
