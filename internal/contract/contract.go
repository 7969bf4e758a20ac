// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/driftgate/driftgate/schema"
)

// GitClient defines the raw version-control operations the pipeline needs.
// Implementations return git's raw output; parsing lives in core so the
// pipeline can be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// CommitLog returns the raw newest-first commit log, one
	// hash|subject|date|author record per line, at most maxCount entries.
	CommitLog(ctx context.Context, repoPath string, maxCount int) ([]byte, error)

	// DiffRaw returns the raw zero-context unified diff between two refs.
	DiffRaw(ctx context.Context, repoPath, refOld, refNew string) ([]byte, error)

	// HeadHash returns the full hash of the current HEAD commit.
	HeadHash(ctx context.Context, repoPath string) (string, error)
}

// HistoryStore is the append-only, capped, per-repository log of past audit
// outcomes. Implementations must treat corrupt or missing backing storage
// as an empty mapping, never as a fatal condition.
type HistoryStore interface {
	// Append inserts an entry at the front of the repository's log and
	// trims the log to the retention limit.
	Append(repoID string, entry schema.AuditEntry) error

	// List returns the repository's entries newest-first. Unreadable
	// storage degrades to an empty slice.
	List(repoID string) []schema.AuditEntry

	// Clear removes all entries for the repository and reports whether
	// any existed.
	Clear(repoID string) (bool, error)
}

// Judge is the opaque judgment capability: bounded evidence in, scored
// findings out. Implementations must clamp scores to [0, 100] and must
// degrade malformed provider responses to a zero-score result instead of
// propagating a parse failure.
type Judge interface {
	// AuditCompliance scores the code snapshot against requirements and
	// guidelines.
	AuditCompliance(ctx context.Context, req *schema.JudgmentRequest) (*schema.JudgmentResult, error)

	// AuditEvolution scores feature preservation across the audited
	// commit range.
	AuditEvolution(ctx context.Context, req *schema.EvolutionRequest) (*schema.EvolutionResult, error)
}
