// ABOUTME: Tests for the Ollama HTTP clients using a local test server
// ABOUTME: Covers embedding, chat generation, error statuses, and ping
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaEmbedderEmbedOne(t *testing.T) {
	var gotReq ollamaEmbedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("path = %q, want /api/embeddings", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{Embedding: []float64{0.1, 0.2, 0.3}})
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "nomic-embed-text")
	vec, err := embedder.EmbedOne(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("EmbedOne() error = %v", err)
	}

	if len(vec) != 3 {
		t.Errorf("embedding length = %d, want 3", len(vec))
	}
	if gotReq.Model != "nomic-embed-text" {
		t.Errorf("request model = %q, want nomic-embed-text", gotReq.Model)
	}
	if gotReq.Prompt != "some resume text" {
		t.Errorf("request prompt = %q", gotReq.Prompt)
	}
}

func TestOllamaEmbedderEmbedKeepsOrder(t *testing.T) {
	call := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call++
		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{Embedding: []float64{float64(call)}})
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "")
	vecs, err := embedder.Embed(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	if len(vecs) != 3 {
		t.Fatalf("Embed() returned %d vectors, want 3", len(vecs))
	}
	for i, vec := range vecs {
		if vec[0] != float64(i+1) {
			t.Errorf("vecs[%d] = %v, want [%d]", i, vec, i+1)
		}
	}
}

func TestOllamaEmbedderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "missing-model")
	if _, err := embedder.EmbedOne(context.Background(), "text"); err == nil {
		t.Error("EmbedOne() should fail on server error")
	}
}

func TestOllamaEmbedderEmptyEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{})
	}))
	defer server.Close()

	embedder := NewOllamaEmbedder(server.URL, "")
	if _, err := embedder.EmbedOne(context.Background(), "text"); err == nil {
		t.Error("EmbedOne() should fail on empty embedding")
	}
}

func TestOllamaOracleGenerate(t *testing.T) {
	var gotReq ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaChatMessage{Role: "assistant", Content: `{"overall_score": 0.8}`},
			Done:    true,
		})
	}))
	defer server.Close()

	oracle := NewOllamaOracle(server.URL, "llama3.2")
	out, err := oracle.Generate(context.Background(), "analyze this", GenerateOptions{Temperature: 0.3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if out != `{"overall_score": 0.8}` {
		t.Errorf("Generate() = %q", out)
	}
	if gotReq.Stream {
		t.Error("request should disable streaming")
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("request carried %d messages, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", gotReq.Messages[0].Role)
	}
	if gotReq.Messages[1].Content != "analyze this" {
		t.Errorf("user message = %q", gotReq.Messages[1].Content)
	}
	if gotReq.Options == nil || gotReq.Options.Temperature != 0.3 {
		t.Errorf("options = %+v, want temperature 0.3", gotReq.Options)
	}
}

func TestOllamaOracleServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of memory", http.StatusInternalServerError)
	}))
	defer server.Close()

	oracle := NewOllamaOracle(server.URL, "")
	if _, err := oracle.Generate(context.Background(), "prompt", GenerateOptions{}); err == nil {
		t.Error("Generate() should fail on server error")
	}
}

func TestOllamaDefaults(t *testing.T) {
	embedder := NewOllamaEmbedder("", "")
	if embedder.baseURL != DefaultOllamaURL {
		t.Errorf("embedder baseURL = %q, want %q", embedder.baseURL, DefaultOllamaURL)
	}
	if embedder.model != DefaultOllamaEmbeddingModel {
		t.Errorf("embedder model = %q, want %q", embedder.model, DefaultOllamaEmbeddingModel)
	}

	oracle := NewOllamaOracle("", "")
	if oracle.baseURL != DefaultOllamaURL {
		t.Errorf("oracle baseURL = %q, want %q", oracle.baseURL, DefaultOllamaURL)
	}
	if oracle.model != DefaultOllamaChatModel {
		t.Errorf("oracle model = %q, want %q", oracle.model, DefaultOllamaChatModel)
	}
	if oracle.Name() != "ollama" {
		t.Errorf("Name() = %q, want ollama", oracle.Name())
	}
}

func TestPingOllama(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q, want /api/tags", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	oracle := NewOllamaOracle(server.URL, "")
	if err := oracle.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	server.Close()
	if err := oracle.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail against a closed server")
	}
}
