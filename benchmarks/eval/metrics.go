// ABOUTME: Metric implementations for retrieval-quality benchmarks
// ABOUTME: Hit rate, mean reciprocal rank, ranking stability, and chunk coverage

package eval

import (
	"fmt"

	"github.com/hireloop/screener/internal/models"
)

// Pass thresholds. Retrieval must be near-perfect on the synthetic
// corpora, and ranking must be exactly reproducible.
const (
	minHitRate   = 0.9
	minMRR       = 0.75
	minStability = 1.0
	minCoverage  = 0.95
)

// MetricsCalculator computes scores for benchmark tests
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateHitRate computes the fraction of queries whose expected
// resume appears anywhere in the retrieved set.
func (m *MetricsCalculator) CalculateHitRate(outcomes []QueryOutcome) (float64, string) {
	if len(outcomes) == 0 {
		return 1.0, "No retrieval queries in scenario"
	}

	misses := []string{}
	hits := 0
	for _, outcome := range outcomes {
		if rankOf(outcome.RankedResumes, outcome.Query.ExpectedResume) > 0 {
			hits++
		} else {
			misses = append(misses, outcome.Query.Query)
		}
	}

	rate := float64(hits) / float64(len(outcomes))
	if rate == 1.0 {
		return 1.0, "Every query retrieved its expected resume"
	}
	return rate, fmt.Sprintf("Queries that missed their resume: %v", misses)
}

// CalculateMRR computes the mean reciprocal rank of the expected resume
// across all queries. A miss contributes zero.
func (m *MetricsCalculator) CalculateMRR(outcomes []QueryOutcome) (float64, string) {
	if len(outcomes) == 0 {
		return 1.0, "No retrieval queries in scenario"
	}

	var sum float64
	worstRank := 0
	for _, outcome := range outcomes {
		rank := rankOf(outcome.RankedResumes, outcome.Query.ExpectedResume)
		if rank > 0 {
			sum += 1.0 / float64(rank)
			if rank > worstRank {
				worstRank = rank
			}
		}
	}

	mrr := sum / float64(len(outcomes))
	if mrr == 1.0 {
		return 1.0, "Expected resume ranked first for every query"
	}
	return mrr, fmt.Sprintf("MRR %.2f, worst rank %d", mrr, worstRank)
}

// CalculateStability compares two ranking passes over the same corpus.
// They must agree on length, document order, and scores, and cover the
// whole corpus.
func (m *MetricsCalculator) CalculateStability(first, second []*models.AnalysisReport, corpusSize int) (float64, string) {
	if len(first) != corpusSize {
		return 0.0, fmt.Sprintf("Ranking covered %d of %d resumes", len(first), corpusSize)
	}
	if len(first) != len(second) {
		return 0.0, fmt.Sprintf("Ranking lengths differ between runs: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i].DocumentID != second[i].DocumentID {
			return 0.0, fmt.Sprintf("Order diverged at position %d: %s vs %s",
				i+1, first[i].Filename, second[i].Filename)
		}
		if first[i].OverallScore != second[i].OverallScore {
			return 0.0, fmt.Sprintf("Score diverged at position %d: %.4f vs %.4f",
				i+1, first[i].OverallScore, second[i].OverallScore)
		}
		if first[i].OverallScore < 0 || first[i].OverallScore > 1 {
			return 0.0, fmt.Sprintf("Score out of range at position %d: %.4f",
				i+1, first[i].OverallScore)
		}
	}

	return 1.0, "Both ranking passes agree exactly"
}

// CalculateChunkCoverage verifies stored chunks preserve the source text.
// For each resume it computes the fraction of original words present in
// the stored chunks and returns the worst case.
func (m *MetricsCalculator) CalculateChunkCoverage(originals, stored map[string]string) (float64, string) {
	worst := 1.0
	worstFile := ""

	for filename, original := range originals {
		originalWords := wordSet(original)
		if len(originalWords) == 0 {
			continue
		}
		storedWords := wordSet(stored[filename])

		found := 0
		for word := range originalWords {
			if storedWords[word] {
				found++
			}
		}

		coverage := float64(found) / float64(len(originalWords))
		if coverage < worst {
			worst = coverage
			worstFile = filename
		}
	}

	if worst == 1.0 {
		return 1.0, "Stored chunks preserve every source word"
	}
	return worst, fmt.Sprintf("Worst coverage %.2f on %s", worst, worstFile)
}

// EvaluateTest assembles the scored result for one scenario
func (m *MetricsCalculator) EvaluateTest(
	scenario TestScenario,
	outcomes []QueryOutcome,
	firstRanking, secondRanking []*models.AnalysisReport,
	originals, stored map[string]string,
) TestResult {
	hitRate, hitDetail := m.CalculateHitRate(outcomes)
	mrr, mrrDetail := m.CalculateMRR(outcomes)
	stability, stabilityDetail := m.CalculateStability(firstRanking, secondRanking, len(scenario.Resumes))
	coverage, coverageDetail := m.CalculateChunkCoverage(originals, stored)

	overall := (hitRate + mrr + stability + coverage) / 4.0

	status := "FAIL"
	if hitRate >= minHitRate && mrr >= minMRR && stability >= minStability && coverage >= minCoverage {
		status = "PASS"
	}

	return TestResult{
		TestID:         scenario.ID,
		TestName:       scenario.Name,
		HitRateScore:   hitRate,
		MRRScore:       mrr,
		StabilityScore: stability,
		CoverageScore:  coverage,
		OverallScore:   overall,
		Status:         status,
		Details: map[string]interface{}{
			"hit_rate_detail":  hitDetail,
			"mrr_detail":       mrrDetail,
			"stability_detail": stabilityDetail,
			"coverage_detail":  coverageDetail,
			"queries":          len(outcomes),
			"resumes":          len(scenario.Resumes),
		},
	}
}

// rankOf returns the 1-based position of filename in ranked, or 0
func rankOf(ranked []string, filename string) int {
	for i, got := range ranked {
		if got == filename {
			return i + 1
		}
	}
	return 0
}

// wordSet collects the distinct normalized words of a text
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range splitWords(text) {
		set[word] = true
	}
	return set
}
