// ABOUTME: OpenAI clients for embeddings and report generation
// ABOUTME: Uses text-embedding-3-small for embeddings, gpt-4o-mini for completions (configurable)
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/screener/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// recruiterSystemPrompt pins chat providers to bare-JSON recruiter output
const recruiterSystemPrompt = "You are an expert recruiter. Always respond with valid JSON only."

// OpenAIEmbedder generates embeddings through the OpenAI API with retries
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIEmbedder creates an embedding client; model may be empty for the default
func NewOpenAIEmbedder(apiKey, model string, maxRetries int, retryDelay time.Duration) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	embeddingModel := DefaultEmbeddingModel
	if model != "" {
		embeddingModel = openai.EmbeddingModel(model)
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(apiKey),
		model:      embeddingModel,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}, nil
}

// Embed returns one vector per input text, in input order
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.SleepBackoff(ctx, e.retryDelay, attempt); err != nil {
				break
			}
		}

		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: e.model,
		})
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d inputs", attempt+1, len(resp.Data), len(texts))
			continue
		}

		embeddings := make([][]float64, len(resp.Data))
		for i, datum := range resp.Data {
			embeddings[i] = toFloat64(datum.Embedding)
		}
		return embeddings, nil
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", e.maxRetries+1, lastErr)
}

// EmbedOne embeds a single text
func (e *OpenAIEmbedder) EmbedOne(ctx context.Context, text string) ([]float64, error) {
	embeddings, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// OpenAIOracle generates completions through the OpenAI chat API with retries
type OpenAIOracle struct {
	client     *openai.Client
	model      string
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIOracle creates a completion client; model may be empty for the default
func NewOpenAIOracle(apiKey, model string, maxRetries int, retryDelay time.Duration) (*OpenAIOracle, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultChatModel
	}

	return &OpenAIOracle{
		client:     openai.NewClient(apiKey),
		model:      model,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}, nil
}

// Generate sends the prompt with a JSON response format and returns the raw completion
func (o *OpenAIOracle) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: recruiterSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: opts.Temperature,
	}
	if opts.MaxOutputTokens > 0 {
		req.MaxTokens = opts.MaxOutputTokens
	}

	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.SleepBackoff(ctx, o.retryDelay, attempt); err != nil {
				break
			}
		}

		resp, err := o.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return "", fmt.Errorf("completion failed after %d attempts: %w", o.maxRetries+1, lastErr)
}

// Name identifies the provider
func (o *OpenAIOracle) Name() string {
	return "openai"
}

// toFloat64 converts the API's float32 vectors to float64
func toFloat64(embedding []float32) []float64 {
	out := make([]float64, len(embedding))
	for i, v := range embedding {
		out[i] = float64(v)
	}
	return out
}
