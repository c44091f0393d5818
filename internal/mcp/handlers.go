// ABOUTME: MCP tool handler implementations for the screener server
// ABOUTME: Parses tool arguments, runs pipeline operations, returns JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hireloop/screener/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	pipeline *core.Pipeline
}

// IngestResume handles the ingest_resume tool
func (h *Handlers) IngestResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	result, err := h.pipeline.Ingest(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingest failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"status":       "success",
		"document_id":  result.DocumentID,
		"chunks_count": result.ChunkCount,
		"filename":     result.Filename,
		"message":      fmt.Sprintf("Successfully ingested resume with %d chunks", result.ChunkCount),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// QueryResumes handles the query_resumes tool
func (h *Handlers) QueryResumes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	// Zero falls through to the configured default
	topK := request.GetInt("top_k", 0)

	hits, err := h.pipeline.Query(ctx, query, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	results := make([]map[string]interface{}, 0, len(hits))
	for _, hit := range hits {
		results = append(results, map[string]interface{}{
			"document_id":     hit.DocumentID,
			"ordinal":         hit.Ordinal,
			"text":            hit.Text,
			"filename":        hit.Filename,
			"distance":        hit.Distance,
			"relevance_score": hit.RelevanceScore,
		})
	}

	response := map[string]interface{}{
		"status":        "success",
		"query":         query,
		"results_count": len(results),
		"results":       results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AnalyzeCandidates handles the analyze_candidates tool
func (h *Handlers) AnalyzeCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobDescription, err := request.RequireString("job_description")
	if err != nil {
		return mcp.NewToolResultError("job_description argument is required and must be a string"), nil
	}

	topK := request.GetInt("top_k", 0)

	report, err := h.pipeline.Analyze(ctx, jobDescription, topK)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"status": "success",
		"report": report,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RankCandidates handles the rank_candidates tool
func (h *Handlers) RankCandidates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobDescription, err := request.RequireString("job_description")
	if err != nil {
		return mcp.NewToolResultError("job_description argument is required and must be a string"), nil
	}

	topKPerResume := request.GetInt("top_k_per_resume", 0)
	maxResumes := request.GetInt("max_resumes", 0)

	reports, err := h.pipeline.Rank(ctx, jobDescription, topKPerResume, maxResumes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"status":        "success",
		"results_count": len(reports),
		"reports":       reports,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListResumes handles the list_resumes tool
func (h *Handlers) ListResumes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.pipeline.ListDocuments(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}

	resumes := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		resumes = append(resumes, map[string]interface{}{
			"document_id": doc.DocumentID,
			"filename":    doc.Filename,
			"page_count":  doc.PageCount,
			"chunk_count": doc.ChunkCount,
			"ingested_at": doc.IngestedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"status":        "success",
		"results_count": len(resumes),
		"resumes":       resumes,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DeleteResume handles the delete_resume tool
func (h *Handlers) DeleteResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError("document_id argument is required and must be a string"), nil
	}

	if err := h.pipeline.Delete(ctx, documentID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"status":      "success",
		"document_id": documentID,
		"message":     "Successfully deleted resume",
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
