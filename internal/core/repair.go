// ABOUTME: Repairs free-text oracle responses into structured reports
// ABOUTME: Strips markdown fences and extracts JSON object boundaries
package core

import (
	"encoding/json"
	"strings"

	"github.com/hireloop/screener/internal/models"
)

// ParseOutcome is the result of one repair attempt. Raw always holds
// the unmodified response text for logging.
type ParseOutcome struct {
	Report *models.AnalysisReport
	Raw    string
}

// Parsed reports whether repair produced a valid report.
func (o ParseOutcome) Parsed() bool {
	return o.Report != nil
}

// RepairReport cleans a model response and parses it into a report.
// Markdown code fences are stripped first, then the outermost JSON
// object is extracted from any surrounding prose. Responses that still
// fail to parse or validate yield an outcome with a nil Report.
func RepairReport(raw string) ParseOutcome {
	outcome := ParseOutcome{Raw: raw}

	cleaned := strings.TrimSpace(raw)
	cleaned = stripFences(cleaned)
	cleaned = strings.TrimSpace(cleaned)

	payload := cleaned
	if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start != -1 && end != -1 && end > start {
			payload = cleaned[start : end+1]
		}
	}

	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return outcome
	}
	report.Normalize()
	if err := report.Validate(); err != nil {
		return outcome
	}

	outcome.Report = &report
	return outcome
}

// stripFences removes a markdown code fence wrapper. A json-tagged
// fence wins over a bare one; an unclosed json fence keeps everything
// after the marker, while a bare fence is only stripped when closed.
func stripFences(s string) string {
	if i := strings.Index(s, "```json"); i != -1 {
		rest := s[i+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(s, "```"); i != -1 {
		rest := s[i+len("```"):]
		if end := strings.Index(rest, "```"); end > 0 {
			return strings.TrimSpace(rest[:end])
		}
	}
	return s
}
