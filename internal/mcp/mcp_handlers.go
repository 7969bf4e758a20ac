package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/driftgate/driftgate/core"
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
	judge   contract.Judge
}

// requestConfig derives a per-request config, honoring a repo_path
// override without mutating the shared base config.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	return cfg
}

func (h *toolHandler) handleGetCommitHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	maxCommits := request.GetInt("max_commits", cfg.MaxCommits)

	commits := core.ListCommits(ctx, h.client, cfg.RepoPath, maxCommits)
	if len(commits) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no commit history found at %s", cfg.RepoPath)), nil
	}

	jsonData, _ := json.MarshalIndent(commits, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDeletionTimeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	maxCommits := request.GetInt("max_commits", cfg.MaxCommits)

	commits := core.ListCommits(ctx, h.client, cfg.RepoPath, maxCommits)
	if len(commits) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no commit history found at %s", cfg.RepoPath)), nil
	}

	timeline := core.BuildDeletionTimeline(ctx, h.client, cfg.RepoPath, commits)
	jsonData, _ := json.MarshalIndent(timeline, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCodeSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	totalBudget := request.GetInt("total_budget", cfg.TotalBudget)
	if totalBudget == 0 {
		totalBudget = schema.SnapshotTotalBudget
	}
	perFileBudget := request.GetInt("per_file_budget", cfg.PerFileBudget)
	if perFileBudget == 0 {
		perFileBudget = schema.SnapshotPerFileBudget
	}

	snapshot := core.Summarize(cfg.RepoPath, totalBudget, perFileBudget)
	if snapshot == "" {
		return mcp.NewToolResultError(fmt.Sprintf("no readable files found at %s", cfg.RepoPath)), nil
	}
	return mcp.NewToolResultText(snapshot), nil
}

func (h *toolHandler) handleAnalyzeFeatureLoss(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.judge == nil {
		return mcp.NewToolResultError("judgment service is not configured; set OPENAI_API_KEY"), nil
	}

	cfg := h.requestConfig(request)
	requirements := request.GetString("requirements", "")
	if requirements == "" {
		return mcp.NewToolResultError("requirements text is required"), nil
	}

	bundle, err := core.BuildEvidence(ctx, h.client, cfg.RepoPath, core.EvidenceOptions{
		MaxCommits:   cfg.MaxCommits,
		ExplicitBase: request.GetString("base_commit", ""),
		ExplicitHead: request.GetString("head_commit", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not assemble evidence: %v", err)), nil
	}
	if bundle.InsufficientHistory {
		return mcp.NewToolResultError("not enough commit history to analyze feature loss"), nil
	}

	result, err := h.judge.AuditEvolution(ctx, &schema.EvolutionRequest{
		Bundle:       bundle,
		Requirements: schema.Truncate(requirements, schema.RequirementsBudget),
		Guidelines:   schema.Truncate(request.GetString("guidelines", ""), schema.GuidelinesBudget),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("feature loss analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
