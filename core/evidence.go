package core

import (
	"context"
	"errors"
	"strings"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// EvidenceOptions controls evidence assembly for one audit invocation.
type EvidenceOptions struct {
	MaxCommits    int
	TotalBudget   int
	PerFileBudget int
	ExplicitBase  string
	ExplicitHead  string
	History       []schema.AuditEntry
}

// BuildEvidence assembles the complete evidence bundle for one audit:
// code snapshot, commit history window, base-to-head diff and deletion
// timeline. Insufficient commit history degrades to a snapshot-only
// bundle instead of failing, so a best-effort judgment is always possible.
// An explicit base or head ref that cannot be matched to an analyzed
// commit is an error; the caller asked for a precise range and must not
// get a different one.
func BuildEvidence(ctx context.Context, client contract.GitClient, repoPath string, opts EvidenceOptions) (*schema.EvidenceBundle, error) {
	totalBudget := opts.TotalBudget
	if totalBudget == 0 {
		totalBudget = schema.SnapshotTotalBudget
	}
	perFileBudget := opts.PerFileBudget
	if perFileBudget == 0 {
		perFileBudget = schema.SnapshotPerFileBudget
	}

	bundle := &schema.EvidenceBundle{
		CodeSnapshot: Summarize(repoPath, totalBudget, perFileBudget),
		Diff:         schema.DiffRecord{},
	}

	commits := ListCommits(ctx, client, repoPath, opts.MaxCommits)
	bundle.HistoryWindow = commits

	explicitBase := resolveRef(ctx, client, repoPath, opts.ExplicitBase)
	explicitHead := resolveRef(ctx, client, repoPath, opts.ExplicitHead)

	base, head, err := SelectRange(opts.History, commits, explicitBase, explicitHead)
	if err != nil {
		if errors.Is(err, schema.ErrInsufficientHistory) {
			bundle.InsufficientHistory = true
			return bundle, nil
		}
		return nil, err
	}

	bundle.BaseCommit = base
	bundle.HeadCommit = head
	bundle.Diff = DiffBetween(ctx, client, repoPath, base.Hash, head.Hash)
	bundle.DeletionTimeline = BuildDeletionTimeline(ctx, client, repoPath, commits)
	return bundle, nil
}

// resolveRef turns a symbolic ref (HEAD, a branch or a tag) into a full
// hash so range selection can match it against the commit window. A ref
// git cannot resolve passes through unchanged and selection reports it.
func resolveRef(ctx context.Context, client contract.GitClient, repoPath, ref string) string {
	if ref == "" {
		return ""
	}
	out, err := client.Run(ctx, repoPath, "rev-parse", "--verify", ref)
	if err != nil {
		return ref
	}
	if hash := strings.TrimSpace(string(out)); hash != "" {
		return hash
	}
	return ref
}
