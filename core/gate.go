package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// GateDeps carries the collaborators the gate pipeline depends on.
type GateDeps struct {
	Client contract.GitClient
	Judge  contract.Judge
	Store  contract.HistoryStore
}

// RunGate executes one full audit: read documents, assemble evidence,
// invoke the judgment service, persist the outcome and report the result.
// cfg.RepoPath must already point at an acquired workspace; cfg.RepoURL
// keys the history store.
//
// Only genuinely unrecoverable conditions (unreadable requirements,
// judgment transport completely failing) return an error. Everything else
// degrades so a best-effort score is always produced. The history store is
// written only after the judgment step succeeds.
func RunGate(ctx context.Context, deps GateDeps, cfg *contract.Config) (*schema.GateResult, error) {
	requirements, err := os.ReadFile(cfg.RequirementsPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read requirements file: %w", err)
	}

	var guidelines []byte
	if cfg.GuidelinesPath != "" {
		guidelines, err = os.ReadFile(cfg.GuidelinesPath)
		if err != nil {
			contract.LogWarn("could not read guidelines file", err)
			guidelines = nil
		}
	}

	requirementsText := schema.Truncate(string(requirements), schema.RequirementsBudget)
	guidelinesText := schema.Truncate(string(guidelines), schema.GuidelinesBudget)

	history := deps.Store.List(cfg.RepoURL)
	bundle, err := BuildEvidence(ctx, deps.Client, cfg.RepoPath, EvidenceOptions{
		MaxCommits:    cfg.MaxCommits,
		TotalBudget:   cfg.TotalBudget,
		PerFileBudget: cfg.PerFileBudget,
		ExplicitBase:  cfg.BaseRef,
		ExplicitHead:  cfg.HeadRef,
		History:       history,
	})
	if err != nil {
		return nil, fmt.Errorf("could not assemble audit evidence: %w", err)
	}

	compliance, err := deps.Judge.AuditCompliance(ctx, &schema.JudgmentRequest{
		CodeSnapshot: bundle.CodeSnapshot,
		Requirements: requirementsText,
		Guidelines:   guidelinesText,
	})
	if err != nil {
		return nil, fmt.Errorf("compliance judgment failed: %w", err)
	}

	result := &schema.GateResult{
		RepoURL:    cfg.RepoURL,
		Threshold:  cfg.Threshold,
		Compliance: compliance,
		Score:      schema.ClampScore(compliance.Score),
	}
	result.Passed = result.Score >= cfg.Threshold

	// Evolution analysis needs a comparable commit range; a snapshot-only
	// bundle skips it without failing the audit.
	if cfg.Mode == schema.EvaluationMode && !bundle.InsufficientHistory {
		evolution, evoErr := deps.Judge.AuditEvolution(ctx, &schema.EvolutionRequest{
			Bundle:       bundle,
			Requirements: requirementsText,
			Guidelines:   guidelinesText,
		})
		if evoErr != nil {
			contract.LogWarn("feature evolution analysis failed", evoErr)
		} else {
			result.Evolution = evolution
		}
	}

	result.HeadCommit = bundle.HeadCommit.Hash
	if result.HeadCommit == "" && len(bundle.HistoryWindow) > 0 {
		result.HeadCommit = bundle.HistoryWindow[0].Hash
	}
	if result.HeadCommit == "" {
		// No parseable log at all; ask git directly as a last resort.
		if head, headErr := deps.Client.HeadHash(ctx, cfg.RepoPath); headErr == nil {
			result.HeadCommit = head
		}
	}

	entry := schema.AuditEntry{
		Timestamp: time.Now().Format(schema.HistoryTimeFormat),
		Type:      "Unified",
		Score:     result.Score,
		Summary:   compliance.Summary,
	}
	// The recorded hash marks how far evolution analysis has covered.
	// A run that skipped or failed that analysis must not advance the
	// marker, or the skipped range would never be audited.
	if result.Evolution != nil {
		entry.LastCommitHash = result.HeadCommit
	}

	// Bookkeeping failures matter less than the audit findings.
	appendErr := deps.Store.Append(cfg.RepoURL, entry)
	if appendErr != nil {
		contract.LogWarn("could not persist audit history", appendErr)
	}

	return result, nil
}

// WriteGateSummary saves the gate result as an indented JSON file.
func WriteGateSummary(result *schema.GateResult, path string) error {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
