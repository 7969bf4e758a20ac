package cmd

import (
	"fmt"

	"github.com/driftgate/driftgate/core"
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/outwriter"
	"github.com/spf13/cobra"
)

// snapshotCmd renders the budgeted code snapshot used as judgment evidence.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [repo-path]",
	Short: "Print the budgeted, line-numbered code snapshot of a repository",
	Long: `Render the repository's files as a single bounded text document.

Files are walked in lexical order with vendored and generated directories
pruned, binary and oversized files skipped, and each file's content numbered
line by line under its own header. Per-file and total character budgets keep
the snapshot bounded no matter how large the repository is.

Examples:
  # Snapshot of the current repository
  driftgate snapshot

  # Snapshot with tighter budgets
  driftgate snapshot --total-budget 20000 --per-file-budget 1500`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cleanup := acquireWorkspace()
		defer cleanup()

		snapshot := core.Summarize(cfg.RepoPath, cfg.TotalBudget, cfg.PerFileBudget)
		if snapshot == "" {
			contract.LogFatal("Snapshot failed", fmt.Errorf("no readable files found at %s", cfg.RepoPath))
		}
		if err := outwriter.WriteSnapshot(snapshot, cfg); err != nil {
			contract.LogFatal("Error writing snapshot", err)
		}
	},
}
