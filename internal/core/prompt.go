// ABOUTME: Builds the recruiter analysis prompt sent to the language model
// ABOUTME: The schema field list mirrors the AnalysisReport JSON shape
package core

import "fmt"

// analysisPrompt is the recruiter instruction wrapped around every
// synthesis call. Provider-specific JSON-only envelopes are layered on
// top by the provider clients, not here.
const analysisPrompt = `You are an expert recruiter analyzing resumes against a job description.

Job Description:
%s

Resume Context (Retrieved Evidence):
%s

Please analyze the resume(s) against the job description and provide a comprehensive structured report.
Extract candidate information, evaluate skills, experience, and education matches, and provide a hiring recommendation.

Return your analysis as a JSON object matching the ResumeAnalysisReport schema:
- overall_score: float between 0 and 1
- candidate_name: string (extract from resume if available)
- summary: string (executive summary)
- strengths: list of strings
- weaknesses: list of strings
- skill_matches: list of objects with skill, match_score, evidence, relevance
- experience_matches: list of objects with role, years_experience, match_score, evidence
- education_matches: list of objects with degree, field, match_score, evidence
- recommendation: string (hiring recommendation)
- reasoning: string (detailed reasoning)

Return ONLY valid JSON, no additional text.`

// BuildPrompt renders the analysis prompt for one synthesis call.
func BuildPrompt(jobDescription, resumeContext string) string {
	return fmt.Sprintf(analysisPrompt, jobDescription, resumeContext)
}
