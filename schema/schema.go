// Package schema has configs, models and shared constants for all parts of driftgate.
package schema

import "errors"

// ErrInsufficientHistory signals that a repository has fewer than two
// commits, so no diff-based evidence can be produced. Snapshot-only
// evidence is still valid in that case.
var ErrInsufficientHistory = errors.New("not enough commit history to analyze")

// Commit represents a single commit as read from the repository log.
// Identity is the full Hash; the struct is never mutated after parsing.
type Commit struct {
	Hash      string `json:"hash"`      // Full SHA
	Message   string `json:"message"`   // Subject line
	Timestamp string `json:"timestamp"` // ISO-like timestamp in git-local format
	Author    string `json:"author"`    // Author name
}

// DiffTag classifies a single changed line in a zero-context diff.
type DiffTag string

// All diff tags supported.
const (
	Added   DiffTag = "added"
	Removed DiffTag = "removed"
)

// DiffLine is one changed line with the diff marker stripped.
type DiffLine struct {
	Tag  DiffTag `json:"tag"`
	Text string  `json:"text"`
}

// DiffRecord maps a file path to its ordered changed lines. Only paths
// with a recognized source-code extension ever appear; context lines and
// file headers never do (the diff is computed with zero context).
type DiffRecord map[string][]DiffLine

// RemovedLines returns the removed-line texts for a single file, in order.
func (d DiffRecord) RemovedLines(path string) []string {
	var out []string
	for _, line := range d[path] {
		if line.Tag == Removed {
			out = append(out, line.Text)
		}
	}
	return out
}

// TotalRemoved counts removed lines across all files in the record.
func (d DiffRecord) TotalRemoved() int {
	total := 0
	for _, lines := range d {
		for _, line := range lines {
			if line.Tag == Removed {
				total++
			}
		}
	}
	return total
}

// DeletionTimelineEntry records one commit that deleted source lines
// relative to its parent in the analyzed window.
type DeletionTimelineEntry struct {
	Commit            Commit   `json:"commit"`
	FilesModified     []string `json:"files_modified"`      // Sorted for stable output
	TotalLinesDeleted int      `json:"total_lines_deleted"` // Summed across files
	SampleDeletions   []string `json:"sample_deletions,omitempty"`
}

// EvidenceBundle is the bounded package of evidence assembled per audit
// invocation. It is transient: built fresh each run and discarded after the
// judgment step consumes it.
type EvidenceBundle struct {
	CodeSnapshot     string                  `json:"code_snapshot"`
	HistoryWindow    []Commit                `json:"history_window"` // Newest-first
	Diff             DiffRecord              `json:"diff"`           // Base -> head
	DeletionTimeline []DeletionTimelineEntry `json:"deletion_timeline"`
	BaseCommit       Commit                  `json:"base_commit"`
	HeadCommit       Commit                  `json:"head_commit"`

	// InsufficientHistory marks a snapshot-only bundle (fewer than two
	// commits were available, so Diff and DeletionTimeline are empty).
	InsufficientHistory bool `json:"insufficient_history"`
}

// AuditEntry is one persisted audit outcome in the history store.
type AuditEntry struct {
	Timestamp      string  `json:"timestamp"`
	Type           string  `json:"type"`
	Score          float64 `json:"score"`
	Summary        string  `json:"summary"`
	LastCommitHash string  `json:"last_commit_hash,omitempty"`
}

// Finding is a single issue reported by the judgment service.
type Finding struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Evidence    string `json:"evidence"`
	Reasoning   string `json:"reasoning"`
	Remediation string `json:"remediation"`
}

// JudgmentResult is the structured outcome of a compliance judgment.
// Score is always clamped to [0, 100] before it leaves the judge.
type JudgmentResult struct {
	Score    float64   `json:"score"`
	Summary  string    `json:"summary"`
	Findings []Finding `json:"issues"`
}

// FeatureChange describes one feature-level change detected across the
// audited commit range.
type FeatureChange struct {
	FeatureName      string `json:"feature_name"`
	Status           string `json:"status"` // Loss, Replacement, Updated
	Severity         string `json:"severity"`
	Evidence         string `json:"evidence"`
	ReplacementLogic string `json:"replacement_logic"`
	Impact           string `json:"impact"`
	Reasoning        string `json:"reasoning"`
	Remediation      string `json:"remediation"`
}

// EvolutionResult is the structured outcome of a feature-evolution judgment.
type EvolutionResult struct {
	Score          float64         `json:"feature_loss_score"`
	BaseCommit     string          `json:"base_commit"`
	HeadCommit     string          `json:"head_commit"`
	FeatureChanges []FeatureChange `json:"feature_changes"`
	Summary        string          `json:"summary"`
}

// JudgmentRequest carries the bounded inputs for a compliance judgment.
// Callers cap every field before constructing the request.
type JudgmentRequest struct {
	CodeSnapshot string
	Requirements string
	Guidelines   string
}

// EvolutionRequest carries the bounded inputs for a feature-evolution
// judgment.
type EvolutionRequest struct {
	Bundle       *EvidenceBundle
	Requirements string
	Guidelines   string
}

// GateResult aggregates everything the gate command needs to report and
// decide an exit status.
type GateResult struct {
	RepoURL    string           `json:"repo"`
	Score      float64          `json:"score"`
	Threshold  float64          `json:"threshold"`
	Passed     bool             `json:"passed"`
	Compliance *JudgmentResult  `json:"compliance,omitempty"`
	Evolution  *EvolutionResult `json:"evolution,omitempty"`
	HeadCommit string           `json:"head_commit,omitempty"`
}
