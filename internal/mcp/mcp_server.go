// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Driftgate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, judge contract.Judge) *server.MCPServer {
	s := server.NewMCPServer(
		"Driftgate Audit Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		judge:   judge,
	}

	// --- 1. Tool: get_commit_history ---
	s.AddTool(mcp.NewTool("get_commit_history",
		mcp.WithDescription("List recent commits of a repository, newest first."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repository).")),
		mcp.WithNumber("max_commits", mcp.Description("Maximum number of commits to return. Defaults to 50.")),
	), h.handleGetCommitHistory)

	// --- 2. Tool: get_deletion_timeline ---
	s.AddTool(mcp.NewTool("get_deletion_timeline",
		mcp.WithDescription("Build a per-commit timeline of code deletions across recent history."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("max_commits", mcp.Description("Maximum number of commits to inspect. Defaults to 50.")),
	), h.handleGetDeletionTimeline)

	// --- 3. Tool: get_code_snapshot ---
	s.AddTool(mcp.NewTool("get_code_snapshot",
		mcp.WithDescription("Produce a budgeted, line-numbered text snapshot of the repository's files."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("total_budget", mcp.Description("Overall character budget for the snapshot.")),
		mcp.WithNumber("per_file_budget", mcp.Description("Character budget for each file's content.")),
	), h.handleGetCodeSnapshot)

	// --- 4. Tool: analyze_feature_loss ---
	s.AddTool(mcp.NewTool("analyze_feature_loss",
		mcp.WithDescription("Judge a commit range for removed or degraded features against requirements."),
		mcp.WithString("requirements", mcp.Description("The requirements document text."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("guidelines", mcp.Description("Optional do's and don'ts guidelines text.")),
		mcp.WithString("base_commit", mcp.Description("Base commit hash or unique prefix. Defaults to the oldest commit in the window.")),
		mcp.WithString("head_commit", mcp.Description("Head commit hash or unique prefix. Defaults to the newest commit.")),
	), h.handleAnalyzeFeatureLoss)

	return s
}

// StartMCPServer starts the Driftgate MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, judge contract.Judge) error {
	s := NewMCPServer(baseCfg, client, judge)
	return server.ServeStdio(s)
}
