package mcp

import (
	"testing"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestNewMCPServer(t *testing.T) {
	cfg := &contract.Config{RepoPath: "."}
	client := new(contract.MockGitClient)

	s := NewMCPServer(cfg, client, nil)
	assert.NotNil(t, s, "server construction must not require a judge")

	s = NewMCPServer(cfg, client, new(contract.MockJudge))
	assert.NotNil(t, s)
}

func TestRequestConfig(t *testing.T) {
	base := &contract.Config{RepoPath: "/configured", MaxCommits: 25}
	h := &toolHandler{baseCfg: base}

	// A request without a repo_path argument falls back to the config.
	cfg := h.requestConfig(mcp.CallToolRequest{})
	assert.Equal(t, "/configured", cfg.RepoPath)
	assert.Equal(t, 25, cfg.MaxCommits)

	// A per-request override never touches the shared base config.
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{"repo_path": "/elsewhere"},
		},
	}
	cfg = h.requestConfig(req)
	assert.Equal(t, "/elsewhere", cfg.RepoPath)
	assert.Equal(t, "/configured", base.RepoPath)
}
