// ABOUTME: Tests for the deterministic fallback report
// ABOUTME: Verifies fixed constants and keyword-based skill detection

package core

import (
	"reflect"
	"testing"
)

func TestFallback_Constants(t *testing.T) {
	report := Fallback("any job description", "")

	if report.OverallScore != 0.75 {
		t.Errorf("OverallScore = %v, want 0.75", report.OverallScore)
	}
	if report.CandidateName != "Candidate (Extracted from Resume)" {
		t.Errorf("CandidateName = %q", report.CandidateName)
	}
	if len(report.Strengths) != 3 {
		t.Errorf("Strengths = %d entries, want 3", len(report.Strengths))
	}
	if len(report.Weaknesses) != 2 {
		t.Errorf("Weaknesses = %d entries, want 2", len(report.Weaknesses))
	}
	if len(report.ExperienceMatches) != 1 {
		t.Fatalf("ExperienceMatches = %d entries, want 1", len(report.ExperienceMatches))
	}
	exp := report.ExperienceMatches[0]
	if exp.Role != "Software Engineer" || exp.MatchScore != 0.8 {
		t.Errorf("experience match = %+v", exp)
	}
	if exp.YearsExperience == nil || *exp.YearsExperience != 3.0 {
		t.Errorf("YearsExperience = %v, want 3.0", exp.YearsExperience)
	}
	if len(report.EducationMatches) != 1 {
		t.Fatalf("EducationMatches = %d entries, want 1", len(report.EducationMatches))
	}
	edu := report.EducationMatches[0]
	if edu.Degree != "Bachelor's Degree" || edu.Field != "Computer Science" || edu.MatchScore != 0.9 {
		t.Errorf("education match = %+v", edu)
	}
	if report.Recommendation == "" || report.Reasoning == "" {
		t.Error("recommendation and reasoning must be populated")
	}
	if report.SkillMatches == nil {
		t.Error("SkillMatches should be an empty slice, not nil")
	}
}

func TestFallback_SkillDetection(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    []string
	}{
		{"no keywords", "plumber with carpentry background", nil},
		{"python", "built python services", []string{"Python"}},
		{"case insensitive", "PYTHON and more PYTHON", []string{"Python"}},
		{"js substring", "designed json apis", []string{"JavaScript"}},
		{"ml substring", "wrote html pages", []string{"Machine Learning"}},
		{"data keyword", "database administration", []string{"Data Analysis"}},
		{"vocabulary order", "data science then python", []string{"Python", "Data Analysis"}},
		{
			"capped at three",
			"python javascript machine learning data",
			[]string{"Python", "JavaScript", "Machine Learning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Fallback("jd", tt.context)

			var got []string
			for _, m := range report.SkillMatches {
				got = append(got, m.Skill)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("skills = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallback_SkillMatchShape(t *testing.T) {
	report := Fallback("jd", "python everywhere")
	if len(report.SkillMatches) != 1 {
		t.Fatalf("SkillMatches = %d, want 1", len(report.SkillMatches))
	}

	m := report.SkillMatches[0]
	if m.MatchScore != 0.8 {
		t.Errorf("MatchScore = %v, want 0.8", m.MatchScore)
	}
	if m.Evidence != "Found references to Python in resume" {
		t.Errorf("Evidence = %q", m.Evidence)
	}
	if m.Relevance != "Python is mentioned in the candidate's experience" {
		t.Errorf("Relevance = %q", m.Relevance)
	}
}

func TestFallback_ValidatesAndDeterministic(t *testing.T) {
	a := Fallback("jd", "python and data work")
	b := Fallback("jd", "python and data work")

	if err := a.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Fallback() should be deterministic for identical inputs")
	}
}
