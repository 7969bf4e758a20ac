package cmd

import (
	"fmt"

	"github.com/driftgate/driftgate/core"
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/outwriter"
	"github.com/spf13/cobra"
)

// timelineCmd surfaces the deletion evidence without judging it.
var timelineCmd = &cobra.Command{
	Use:   "timeline [repo-path]",
	Short: "Show the per-commit timeline of code deletions",
	Long: `Walk recent commit history and report where code lines were deleted.

Each adjacent commit pair is diffed with zero context lines; commits that
removed lines from recognized code files appear in the timeline with the
affected files, deletion counts and sample deleted lines.

Examples:
  # Timeline for the current repository
  driftgate timeline

  # Timeline for a remote repository, as JSON
  driftgate timeline --repo https://github.com/user/repo.git --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cleanup := acquireWorkspace()
		defer cleanup()

		commits := core.ListCommits(rootCtx, gitClient, cfg.RepoPath, cfg.MaxCommits)
		if len(commits) == 0 {
			contract.LogFatal("Timeline failed", fmt.Errorf("no commit history found at %s", cfg.RepoPath))
		}

		timeline := core.BuildDeletionTimeline(rootCtx, gitClient, cfg.RepoPath, commits)
		if err := outwriter.WriteDeletionTimeline(timeline, cfg); err != nil {
			contract.LogFatal("Error writing timeline", err)
		}
	},
}
