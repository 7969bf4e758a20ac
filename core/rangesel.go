package core

import (
	"fmt"
	"strings"

	"github.com/driftgate/driftgate/schema"
)

// SelectRange resolves the (base, head) commit pair for an audit.
// Explicit refs always win; one that matches no available commit is an
// error, never a silent fallback. Symbolic refs (HEAD, branch and tag
// names) must be resolved to hashes before the call. Otherwise head is
// the newest available commit and base is the last successfully audited
// commit recorded in history, falling back to the oldest available
// commit. This makes repeat audits strictly incremental by default while
// still allowing a full-range audit on first run or by explicit override.
//
// Fewer than two available commits returns ErrInsufficientHistory; a
// snapshot-only audit is still possible in that case.
func SelectRange(history []schema.AuditEntry, commits []schema.Commit, explicitBase, explicitHead string) (base, head schema.Commit, err error) {
	if len(commits) < 2 {
		return schema.Commit{}, schema.Commit{}, schema.ErrInsufficientHistory
	}

	head = commits[0]
	if explicitHead != "" {
		c, ok := findByPrefix(commits, explicitHead)
		if !ok {
			return schema.Commit{}, schema.Commit{}, fmt.Errorf("head ref %q does not match any of the %d analyzed commits", explicitHead, len(commits))
		}
		head = c
	}

	base = commits[len(commits)-1]
	switch {
	case explicitBase != "":
		c, ok := findByPrefix(commits, explicitBase)
		if !ok {
			return schema.Commit{}, schema.Commit{}, fmt.Errorf("base ref %q does not match any of the %d analyzed commits", explicitBase, len(commits))
		}
		base = c
	default:
		if last := lastAnalyzedHash(history); last != "" {
			if c, ok := findByPrefix(commits, last); ok {
				base = c
			}
		}
	}
	return base, head, nil
}

// lastAnalyzedHash scans history newest-first for the first entry that
// recorded a commit hash.
func lastAnalyzedHash(history []schema.AuditEntry) string {
	for _, entry := range history {
		if entry.LastCommitHash != "" {
			return entry.LastCommitHash
		}
	}
	return ""
}

// findByPrefix matches a commit whose hash starts with the given prefix.
func findByPrefix(commits []schema.Commit, prefix string) (schema.Commit, bool) {
	for _, c := range commits {
		if strings.HasPrefix(c.Hash, prefix) {
			return c, true
		}
	}
	return schema.Commit{}, false
}
