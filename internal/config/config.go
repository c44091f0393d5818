// ABOUTME: Centralized configuration for the resume screening pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted for LLM_PROVIDER and EMBEDDING_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all configuration for the screening system
type Config struct {
	// Oracle settings
	LLMProvider  string
	LLMModel     string
	LLMRequired  bool
	LLMTimeout   time.Duration
	GeminiAPIKey string
	OpenAIKey    string
	OllamaURL    string
	MaxRetries   int
	RetryDelay   time.Duration

	// Embedding settings
	EmbeddingProvider string
	EmbeddingModel    string

	// Index settings
	DBPath string

	// Chunking and retrieval settings
	ChunkSize    int
	ChunkOverlap int
	TopKResults  int
	RankWorkers  int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		LLMProvider:       getEnv("LLM_PROVIDER", ProviderGemini),
		LLMModel:          getEnv("LLM_MODEL", "gemini-1.5-flash"),
		LLMRequired:       getEnvBool("LLM_REQUIRED", false),
		LLMTimeout:        getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OllamaURL:         getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		MaxRetries:        getEnvInt("LLM_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("LLM_RETRY_DELAY", 2*time.Second),
		EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", ProviderOpenAI),
		EmbeddingModel:    os.Getenv("EMBEDDING_MODEL"),
		DBPath:            getEnv("SCREENER_DB_PATH", "./screener.db"),
		ChunkSize:         getEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      getEnvInt("CHUNK_OVERLAP", 200),
		TopKResults:       getEnvInt("TOP_K_RESULTS", 5),
		RankWorkers:       getEnvInt("RANK_WORKERS", 4),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
	}

	if cfg.EmbeddingModel == "" {
		switch cfg.EmbeddingProvider {
		case ProviderOllama:
			cfg.EmbeddingModel = "nomic-embed-text"
		default:
			cfg.EmbeddingModel = "text-embedding-3-small"
		}
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("CHUNK_OVERLAP must be non-negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than CHUNK_SIZE (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopKResults <= 0 {
		return fmt.Errorf("TOP_K_RESULTS must be positive, got %d", c.TopKResults)
	}
	if c.RankWorkers <= 0 {
		return fmt.Errorf("RANK_WORKERS must be positive, got %d", c.RankWorkers)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("LLM_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("LLM_PROVIDER must be gemini, openai, or ollama, got %q", c.LLMProvider)
	}
	switch c.EmbeddingProvider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("EMBEDDING_PROVIDER must be openai or ollama, got %q", c.EmbeddingProvider)
	}
	if c.LLMRequired {
		if err := c.checkOracleCredentials(); err != nil {
			return err
		}
	}
	return nil
}

// checkOracleCredentials enforces provider credentials when the oracle
// is declared required; without LLM_REQUIRED a missing key just means
// the deterministic fallback serves every report.
func (c *Config) checkOracleCredentials() error {
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("LLM_REQUIRED is set but GEMINI_API_KEY is empty")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("LLM_REQUIRED is set but OPENAI_API_KEY is empty")
		}
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
