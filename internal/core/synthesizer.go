// ABOUTME: Turns retrieved resume context into structured analysis reports
// ABOUTME: Absorbs oracle failures into the deterministic fallback
package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hireloop/screener/internal/llm"
	"github.com/hireloop/screener/internal/logger"
	"github.com/hireloop/screener/internal/models"
)

// Oracle generation settings for analysis calls.
const (
	synthesisTemperature = 0.3
	synthesisMaxTokens   = 8192
	rawPreviewLimit      = 500
)

// Synthesizer produces structured reports from a job description and
// aggregated resume context. A nil oracle is valid and routes every
// call straight to the fallback.
type Synthesizer struct {
	oracle  llm.Oracle
	timeout time.Duration
	log     *zap.Logger
}

// NewSynthesizer creates a Synthesizer. timeout bounds each oracle
// call; zero means no per-call limit beyond the caller's context.
func NewSynthesizer(oracle llm.Oracle, timeout time.Duration, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{oracle: oracle, timeout: timeout, log: log}
}

// Synthesize generates one report. It never fails: transport errors,
// timeouts, and unparseable responses all resolve to the deterministic
// fallback, with the cause logged.
func (s *Synthesizer) Synthesize(ctx context.Context, jobDescription, resumeContext string) *models.AnalysisReport {
	report, err := s.consult(ctx, jobDescription, resumeContext)
	if err != nil {
		s.log.Warn("synthesis failed, using fallback report", zap.Error(err))
	}
	return s.resolve(report, jobDescription, resumeContext)
}

// trySynthesize is the batch-ranking entry: oracle transport failures
// surface as errors so the caller can skip the document, while a
// response that parses badly still degrades to the fallback.
func (s *Synthesizer) trySynthesize(ctx context.Context, jobDescription, resumeContext string) (*models.AnalysisReport, error) {
	report, err := s.consult(ctx, jobDescription, resumeContext)
	if err != nil {
		return nil, err
	}
	return s.resolve(report, jobDescription, resumeContext), nil
}

// consult runs the oracle path and nothing else. A nil report with a
// nil error means no usable oracle output existed (no oracle
// configured, or the response would not parse) and the caller must
// substitute.
func (s *Synthesizer) consult(ctx context.Context, jobDescription, resumeContext string) (*models.AnalysisReport, error) {
	if s.oracle == nil {
		return nil, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(jobDescription, resumeContext)
	raw, err := s.oracle.Generate(ctx, prompt, llm.GenerateOptions{
		Temperature:     synthesisTemperature,
		MaxOutputTokens: synthesisMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("oracle %s: %w", s.oracle.Name(), err)
	}

	outcome := RepairReport(raw)
	if !outcome.Parsed() {
		s.log.Warn("unparseable oracle response, using fallback report",
			zap.String("oracle", s.oracle.Name()),
			zap.String("response_preview", logger.Truncate(outcome.Raw, rawPreviewLimit)))
		return nil, nil
	}

	return outcome.Report, nil
}

// resolve substitutes the deterministic fallback for a missing report.
// Every fallback report in the system is built here.
func (s *Synthesizer) resolve(report *models.AnalysisReport, jobDescription, resumeContext string) *models.AnalysisReport {
	if report != nil {
		return report
	}
	return Fallback(jobDescription, resumeContext)
}
