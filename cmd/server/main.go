// ABOUTME: Main entry point for the screener MCP server with stdio transport
// ABOUTME: Initializes the index, providers, and MCP server with all tools
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hireloop/screener/internal/config"
	"github.com/hireloop/screener/internal/core"
	"github.com/hireloop/screener/internal/llm"
	"github.com/hireloop/screener/internal/logger"
	"github.com/hireloop/screener/internal/mcp"
	"github.com/hireloop/screener/internal/source"
	"github.com/hireloop/screener/internal/storage/sqlite"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	embedder, err := llm.NewEmbedder(cfg)
	if err != nil {
		log.Fatalf("Failed to build embedder: %v", err)
	}

	// Synthesis falls back to extractive reports when no provider is reachable
	oracle, err := llm.NewOracle(ctx, cfg)
	if err != nil {
		if cfg.LLMRequired {
			log.Fatalf("Failed to build LLM provider: %v", err)
		}
		zlog.Warn("LLM provider unavailable, reports will use extractive fallback",
			zap.String("provider", cfg.LLMProvider),
			zap.Error(err))
		oracle = nil
	}

	pipeline := core.NewPipeline(cfg, source.NewTextExtractor(), embedder, sqlite.NewIndex(db), oracle, zlog)

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Resume Screener",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, pipeline)

	// Start server with stdio transport
	log.Println("Screener MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
