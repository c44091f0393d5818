// ABOUTME: Provider-neutral interfaces for embeddings and text generation
// ABOUTME: Factory functions select concrete clients from configuration
package llm

import (
	"context"
	"fmt"

	"github.com/hireloop/screener/internal/config"
)

// Embedder produces embedding vectors for text.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	// EmbedOne embeds a single text.
	EmbedOne(ctx context.Context, text string) ([]float64, error)
}

// GenerateOptions tunes a single generation call.
type GenerateOptions struct {
	Temperature     float32
	MaxOutputTokens int
}

// Oracle produces completions from prompts.
type Oracle interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	// Name identifies the provider in logs and reports.
	Name() string
}

// NewEmbedder constructs the embedding client named by the configuration
func NewEmbedder(cfg *config.Config) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.ProviderOpenAI:
		return NewOpenAIEmbedder(cfg.OpenAIKey, cfg.EmbeddingModel, cfg.MaxRetries, cfg.RetryDelay)
	case config.ProviderOllama:
		return NewOllamaEmbedder(cfg.OllamaURL, cfg.EmbeddingModel), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.EmbeddingProvider)
	}
}

// NewOracle constructs the generation client named by the configuration
func NewOracle(ctx context.Context, cfg *config.Config) (Oracle, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return NewGeminiOracle(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	case config.ProviderOpenAI:
		return NewOpenAIOracle(cfg.OpenAIKey, cfg.LLMModel, cfg.MaxRetries, cfg.RetryDelay)
	case config.ProviderOllama:
		return NewOllamaOracle(cfg.OllamaURL, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
