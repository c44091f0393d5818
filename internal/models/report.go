// ABOUTME: Structured analysis report produced by the synthesizer
// ABOUTME: Field names mirror the JSON schema the oracle is asked for
package models

import (
	"errors"
	"fmt"
)

// SkillMatch is one skill found in the resume with supporting evidence.
type SkillMatch struct {
	Skill      string  `json:"skill"`
	MatchScore float64 `json:"match_score"`
	Evidence   string  `json:"evidence"`
	Relevance  string  `json:"relevance"`
}

// ExperienceMatch is one work-experience match.
type ExperienceMatch struct {
	Role            string   `json:"role"`
	YearsExperience *float64 `json:"years_experience,omitempty"`
	MatchScore      float64  `json:"match_score"`
	Evidence        string   `json:"evidence"`
}

// EducationMatch is one education qualification match.
type EducationMatch struct {
	Degree     string  `json:"degree"`
	Field      string  `json:"field,omitempty"`
	MatchScore float64 `json:"match_score"`
	Evidence   string  `json:"evidence"`
}

// AnalysisReport is the structured, scored evaluation of a candidate
// against a job description. DocumentID and Filename are stamped on
// after synthesis in batch mode and stay empty otherwise.
type AnalysisReport struct {
	OverallScore      float64           `json:"overall_score"`
	CandidateName     string            `json:"candidate_name"`
	Summary           string            `json:"summary"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
	SkillMatches      []SkillMatch      `json:"skill_matches"`
	ExperienceMatches []ExperienceMatch `json:"experience_matches"`
	EducationMatches  []EducationMatch  `json:"education_matches"`
	Recommendation    string            `json:"recommendation"`
	Reasoning         string            `json:"reasoning"`
	DocumentID        string            `json:"document_id,omitempty"`
	Filename          string            `json:"filename,omitempty"`
}

func scoreInRange(s float64) bool {
	return s >= 0 && s <= 1
}

// Validate checks the schema invariants: every score in [0,1] and the
// required narrative fields non-empty. List fields may be empty but
// must be normalized (see Normalize) before the report is returned.
func (r *AnalysisReport) Validate() error {
	if !scoreInRange(r.OverallScore) {
		return fmt.Errorf("overall_score %v outside [0,1]", r.OverallScore)
	}
	if r.CandidateName == "" {
		return errors.New("candidate_name is required")
	}
	if r.Summary == "" {
		return errors.New("summary is required")
	}
	if r.Recommendation == "" {
		return errors.New("recommendation is required")
	}
	if r.Reasoning == "" {
		return errors.New("reasoning is required")
	}
	for i, m := range r.SkillMatches {
		if !scoreInRange(m.MatchScore) {
			return fmt.Errorf("skill_matches[%d].match_score %v outside [0,1]", i, m.MatchScore)
		}
	}
	for i, m := range r.ExperienceMatches {
		if !scoreInRange(m.MatchScore) {
			return fmt.Errorf("experience_matches[%d].match_score %v outside [0,1]", i, m.MatchScore)
		}
	}
	for i, m := range r.EducationMatches {
		if !scoreInRange(m.MatchScore) {
			return fmt.Errorf("education_matches[%d].match_score %v outside [0,1]", i, m.MatchScore)
		}
	}
	return nil
}

// Normalize replaces nil list fields with empty slices so the report
// never partially materializes.
func (r *AnalysisReport) Normalize() {
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.SkillMatches == nil {
		r.SkillMatches = []SkillMatch{}
	}
	if r.ExperienceMatches == nil {
		r.ExperienceMatches = []ExperienceMatch{}
	}
	if r.EducationMatches == nil {
		r.EducationMatches = []EducationMatch{}
	}
}
