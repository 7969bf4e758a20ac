// Package core has core logic for evidence mining, assembly and gating.
package core

import (
	"context"
	"strings"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// ListCommits reads the repository's commit history, newest-first, at most
// maxCount entries. A git failure or an empty history degrades to an empty
// slice: missing history is evidence of "no history available", not a
// reason to abort the pipeline.
func ListCommits(ctx context.Context, client contract.GitClient, repoPath string, maxCount int) []schema.Commit {
	if maxCount <= 0 {
		maxCount = schema.MaxCommitHistory
	}
	out, err := client.CommitLog(ctx, repoPath, maxCount)
	if err != nil {
		return nil
	}
	return parseCommitLog(out)
}

// parseCommitLog parses hash|subject|date|author records, one per line,
// splitting on the first three separators only. Malformed lines are skipped.
func parseCommitLog(out []byte) []schema.Commit {
	var commits []schema.Commit
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		commits = append(commits, schema.Commit{
			Hash:      parts[0],
			Message:   parts[1],
			Timestamp: parts[2],
			Author:    parts[3],
		})
	}
	return commits
}
