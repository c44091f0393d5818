// ABOUTME: Ollama clients for local embeddings and report generation
// ABOUTME: Talks to the Ollama HTTP API without streaming
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default local endpoint and models
const (
	DefaultOllamaURL            = "http://localhost:11434"
	DefaultOllamaEmbeddingModel = "nomic-embed-text"
	DefaultOllamaChatModel      = "llama3.2"
)

const (
	ollamaEmbedTimeout = 30 * time.Second
	ollamaChatTimeout  = 120 * time.Second
)

type ollamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Stream   bool                `json:"stream"`
	Options  *ollamaOptions      `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
	Done    bool              `json:"done"`
}

// OllamaEmbedder generates embeddings through a local Ollama server
type OllamaEmbedder struct {
	client  *http.Client
	baseURL string
	model   string
}

// NewOllamaEmbedder creates an embedding client; empty arguments take defaults
func NewOllamaEmbedder(baseURL, model string) *OllamaEmbedder {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaEmbeddingModel
	}

	return &OllamaEmbedder{
		client:  &http.Client{Timeout: ollamaEmbedTimeout},
		baseURL: baseURL,
		model:   model,
	}
}

// EmbedOne embeds a single text
func (e *OllamaEmbedder) EmbedOne(ctx context.Context, text string) ([]float64, error) {
	jsonBody, err := json.Marshal(ollamaEmbedRequest{Model: e.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/embeddings", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var embedResp ollamaEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(embedResp.Embedding) == 0 {
		return nil, fmt.Errorf("ollama returned empty embedding")
	}
	return embedResp.Embedding, nil
}

// Embed embeds texts sequentially; Ollama has no native batch endpoint
func (e *OllamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	embeddings := make([][]float64, len(texts))
	for i, text := range texts {
		vec, err := e.EmbedOne(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

// Ping checks connectivity against the tags endpoint
func (e *OllamaEmbedder) Ping(ctx context.Context) error {
	return pingOllama(ctx, e.client, e.baseURL)
}

// OllamaOracle generates completions through a local Ollama server
type OllamaOracle struct {
	client  *http.Client
	baseURL string
	model   string
}

// NewOllamaOracle creates a completion client; empty arguments take defaults
func NewOllamaOracle(baseURL, model string) *OllamaOracle {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaChatModel
	}

	return &OllamaOracle{
		client:  &http.Client{Timeout: ollamaChatTimeout},
		baseURL: baseURL,
		model:   model,
	}
}

// Generate sends the prompt through the chat endpoint and returns the reply content
func (o *OllamaOracle) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	reqBody := ollamaChatRequest{
		Model: o.model,
		Messages: []ollamaChatMessage{
			{Role: "system", Content: recruiterSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}
	if opts.Temperature > 0 || opts.MaxOutputTokens > 0 {
		reqBody.Options = &ollamaOptions{
			Temperature: opts.Temperature,
			NumPredict:  opts.MaxOutputTokens,
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return chatResp.Message.Content, nil
}

// Name identifies the provider
func (o *OllamaOracle) Name() string {
	return "ollama"
}

// Ping checks connectivity against the tags endpoint
func (o *OllamaOracle) Ping(ctx context.Context) error {
	return pingOllama(ctx, o.client, o.baseURL)
}

// pingOllama hits /api/tags, a cheap check that the server is up
func pingOllama(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama unreachable at %s: %w", baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
