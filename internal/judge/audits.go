package judge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/driftgate/driftgate/schema"
)

// complianceResponse mirrors the JSON contract of the compliance prompt.
// Score stays untyped because providers occasionally quote it.
type complianceResponse struct {
	Score   any              `json:"score"`
	Summary string           `json:"summary"`
	Issues  []schema.Finding `json:"issues"`
}

type evolutionResponse struct {
	Score          any                    `json:"feature_loss_score"`
	BaseCommit     string                 `json:"base_commit"`
	HeadCommit     string                 `json:"head_commit"`
	FeatureChanges []schema.FeatureChange `json:"feature_changes"`
	Summary        string                 `json:"summary"`
}

// AuditCompliance judges the code snapshot against requirements and
// guidelines. Provider or parse failures degrade to a zero-score result
// with an explanatory summary rather than an error, so the gate always
// has an outcome to report and persist.
func (j *OpenAIJudge) AuditCompliance(ctx context.Context, req *schema.JudgmentRequest) (*schema.JudgmentResult, error) {
	guidelines := req.Guidelines
	if guidelines == "" {
		guidelines = noGuidelines
	}
	prompt := renderCompliance(req.Requirements, guidelines, req.CodeSnapshot)

	content, err := j.complete(ctx, complianceSystem, prompt)
	if err != nil {
		return failedCompliance(err), nil
	}

	var parsed complianceResponse
	if err := json.Unmarshal([]byte(stripFences(content)), &parsed); err != nil {
		return failedCompliance(fmt.Errorf("unparseable judgment response: %w", err)), nil
	}

	return &schema.JudgmentResult{
		Score:    schema.ClampScore(coerceScore(parsed.Score)),
		Summary:  parsed.Summary,
		Findings: parsed.Issues,
	}, nil
}

// AuditEvolution judges the commit range evidence for feature loss.
// The snapshot, timeline and diff are truncated to their context budgets
// before insertion so one oversized repository cannot blow the prompt.
func (j *OpenAIJudge) AuditEvolution(ctx context.Context, req *schema.EvolutionRequest) (*schema.EvolutionResult, error) {
	guidelines := req.Guidelines
	if guidelines == "" {
		guidelines = noGuidelines
	}
	bundle := req.Bundle
	baseHash := schema.ShortHash(bundle.BaseCommit.Hash)
	headHash := schema.ShortHash(bundle.HeadCommit.Hash)

	prompt := renderEvolution(
		req.Requirements,
		guidelines,
		schema.Truncate(bundle.CodeSnapshot, schema.EvolutionSnapshotBudget),
		schema.Truncate(marshalContext(bundle.DeletionTimeline), schema.TimelineContextBudget),
		schema.Truncate(marshalContext(bundle.Diff), schema.DiffContextBudget),
		baseHash,
		headHash,
	)

	content, err := j.complete(ctx, evolutionSystem, prompt)
	if err != nil {
		return failedEvolution(err, baseHash, headHash), nil
	}

	var parsed evolutionResponse
	if err := json.Unmarshal([]byte(stripFences(content)), &parsed); err != nil {
		return failedEvolution(fmt.Errorf("unparseable judgment response: %w", err), baseHash, headHash), nil
	}

	result := &schema.EvolutionResult{
		Score:          schema.ClampScore(coerceScore(parsed.Score)),
		BaseCommit:     parsed.BaseCommit,
		HeadCommit:     parsed.HeadCommit,
		FeatureChanges: parsed.FeatureChanges,
		Summary:        parsed.Summary,
	}
	if result.BaseCommit == "" {
		result.BaseCommit = baseHash
	}
	if result.HeadCommit == "" {
		result.HeadCommit = headHash
	}
	return result, nil
}

// marshalContext renders evidence as indented JSON for prompt insertion.
func marshalContext(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func failedCompliance(err error) *schema.JudgmentResult {
	return &schema.JudgmentResult{
		Score:   0,
		Summary: fmt.Sprintf("Unified analysis failed: %v", err),
	}
}

func failedEvolution(err error, baseHash, headHash string) *schema.EvolutionResult {
	return &schema.EvolutionResult{
		Score:      0,
		BaseCommit: baseHash,
		HeadCommit: headHash,
		Summary:    fmt.Sprintf("Feature history analysis failed: %v", err),
	}
}
