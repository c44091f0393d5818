// ABOUTME: Gemini oracle built on the Google GenAI SDK
// ABOUTME: Wraps prompts in a JSON-only envelope and maps legacy model names
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-1.5-flash"

// geminiModelAliases maps deprecated model names to currently served ones
var geminiModelAliases = map[string]string{
	"gemini-pro": "gemini-1.5-flash",
}

// geminiEnvelope reinforces bare-JSON output; Gemini has no response-format knob
// on the plain generate path, so the instruction rides in the prompt.
const geminiEnvelope = `You are an expert recruiter analyzing resumes. Always respond with valid JSON only, no markdown formatting, no code blocks.

%s

IMPORTANT: Return ONLY the JSON object, no additional text, no markdown, no code blocks.`

// GeminiOracle generates completions through the Gemini API
type GeminiOracle struct {
	client *genai.Client
	model  string
}

// NewGeminiOracle creates a Gemini client for the Gemini API backend
func NewGeminiOracle(ctx context.Context, apiKey, model string) (*GeminiOracle, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiOracle{client: client, model: ResolveGeminiModel(model)}, nil
}

// ResolveGeminiModel maps legacy model names onto currently served ones
func ResolveGeminiModel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return DefaultGeminiModel
	}
	if current, ok := geminiModelAliases[model]; ok {
		return current
	}
	return model
}

// Generate sends the wrapped prompt to Gemini and returns the joined text parts
func (g *GeminiOracle) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(opts.Temperature),
		TopP:        genai.Ptr(float32(0.95)),
		TopK:        genai.Ptr(float32(40)),
	}
	if opts.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}

	wrapped := fmt.Sprintf(geminiEnvelope, prompt)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(wrapped), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

// Name identifies the provider
func (g *GeminiOracle) Name() string {
	return "gemini"
}

// Model returns the resolved model name
func (g *GeminiOracle) Model() string {
	return g.model
}
