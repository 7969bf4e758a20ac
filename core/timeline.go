package core

import (
	"context"
	"sort"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// BuildDeletionTimeline walks consecutive commit pairs of a newest-first
// commit list and records every commit that deleted lines from recognized
// source files. Output ordering matches the input ordering. The per-pair
// diffs are independent; they run sequentially here, which keeps results
// deterministic without assembly-by-index bookkeeping.
func BuildDeletionTimeline(ctx context.Context, client contract.GitClient, repoPath string, commits []schema.Commit) []schema.DeletionTimelineEntry {
	var timeline []schema.DeletionTimelineEntry

	for i := 0; i+1 < len(commits); i++ {
		newer, older := commits[i], commits[i+1]
		record := DiffBetween(ctx, client, repoPath, older.Hash, newer.Hash)

		entry := buildTimelineEntry(newer, record)
		if entry != nil {
			timeline = append(timeline, *entry)
		}
	}
	return timeline
}

// buildTimelineEntry summarizes one commit's deletions, or returns nil when
// no recognized source file lost a line.
func buildTimelineEntry(commit schema.Commit, record schema.DiffRecord) *schema.DeletionTimelineEntry {
	var paths []string
	for path := range record {
		if len(record.RemovedLines(path)) > 0 {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	// Sort before sampling so samples are stable across runs.
	sort.Strings(paths)

	total := 0
	var samples []string
	for _, path := range paths {
		removed := record.RemovedLines(path)
		total += len(removed)
		for _, text := range removed {
			if len(samples) < schema.SampleDeletionLimit {
				samples = append(samples, text)
			}
		}
	}

	return &schema.DeletionTimelineEntry{
		Commit:            commit,
		FilesModified:     paths,
		TotalLinesDeleted: total,
		SampleDeletions:   samples,
	}
}
