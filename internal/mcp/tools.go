// ABOUTME: MCP tool definitions and registration for the screener server
// ABOUTME: Defines JSON schemas for all 6 resume screening tools
package mcp

import (
	"github.com/hireloop/screener/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline *core.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. ingest_resume - Extract, chunk, embed, and index one resume file
	server.AddTool(mcp.Tool{
		Name:        "ingest_resume",
		Description: "Ingest a resume file into the screening index. Extracts the text, splits it into chunks, and stores chunk embeddings for similarity search.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the resume file to ingest",
				},
			},
			Required: []string{"path"},
		},
	}, handlers.IngestResume)

	// 2. query_resumes - Similarity search over the stored chunks
	server.AddTool(mcp.Tool{
		Name:        "query_resumes",
		Description: "Search resume chunks by semantic similarity to keywords or a job description. Returns the closest chunks with distances and relevance scores.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Keywords or job description text to search for",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of chunks to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.QueryResumes)

	// 3. analyze_candidates - Retrieval plus structured report synthesis
	server.AddTool(mcp.Tool{
		Name:        "analyze_candidates",
		Description: "Analyze the resumes most relevant to a job description and return a structured screening report with skill, experience, and education matches.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"job_description": map[string]interface{}{
					"type":        "string",
					"description": "Job description to evaluate candidates against",
				},
				"top_k": map[string]interface{}{
					"type":        "number",
					"description": "Number of chunks to retrieve as evidence (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"job_description"},
		},
	}, handlers.AnalyzeCandidates)

	// 4. rank_candidates - Whole-corpus analysis ordered by overall score
	server.AddTool(mcp.Tool{
		Name:        "rank_candidates",
		Description: "Analyze every stored resume against a job description and return one report per candidate, ranked by overall score.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"job_description": map[string]interface{}{
					"type":        "string",
					"description": "Job description to rank candidates against",
				},
				"top_k_per_resume": map[string]interface{}{
					"type":        "number",
					"description": "Chunks of each resume to weigh (default: 3)",
					"default":     3,
				},
				"max_resumes": map[string]interface{}{
					"type":        "number",
					"description": "Cap on the number of resumes to rank (0 = all)",
				},
			},
			Required: []string{"job_description"},
		},
	}, handlers.RankCandidates)

	// 5. list_resumes - Corpus inventory with per-document metadata
	server.AddTool(mcp.Tool{
		Name:        "list_resumes",
		Description: "List all resumes stored in the screening index with their filenames, page counts, and chunk counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListResumes)

	// 6. delete_resume - Remove one resume and all of its chunks
	server.AddTool(mcp.Tool{
		Name:        "delete_resume",
		Description: "Delete a resume and all of its chunks from the screening index. Deleting an unknown id succeeds without effect.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "Document id of the resume to delete",
				},
			},
			Required: []string{"document_id"},
		},
	}, handlers.DeleteResume)

	return handlers
}
