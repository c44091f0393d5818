// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to screen resumes over stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hireloop/screener/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs the screener as an MCP (Model Context Protocol) server, exposing
resume ingestion, retrieval, analysis, and ranking tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  screener mcp

  # Configure in the host's MCP config:
  # {
  #   "mcpServers": {
  #     "screener": {
  #       "command": "screener",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	_ = godotenv.Load()

	s, err := openScreener(cmd.Context(), wireSynthesize)
	if err != nil {
		return err
	}
	defer s.Close()

	server := mcpserver.NewMCPServer(
		"Resume Screener",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, s.pipeline)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		s.log.Info("MCP server starting on stdio",
			zap.String("db", s.cfg.DBPath),
			zap.String("embedding_provider", s.cfg.EmbeddingProvider),
			zap.String("llm_provider", s.cfg.LLMProvider))
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			s.log.Info("shutdown signal received")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
