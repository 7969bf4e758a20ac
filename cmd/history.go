package cmd

import (
	"fmt"
	"os"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/outwriter"
	"github.com/driftgate/driftgate/internal/parquet"
	"github.com/spf13/cobra"
)

// historyCmd groups operations on the persisted audit history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the audit history store",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// historyListCmd shows a repository's audit log.
var historyListCmd = &cobra.Command{
	Use:     "list [repo-path]",
	Short:   "List past audit outcomes for a repository, newest first",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entries := historyStore.List(cfg.RepoURL)
		if err := outwriter.WriteAuditHistory(entries, cfg); err != nil {
			contract.LogFatal("Error writing history", err)
		}
	},
}

// historyClearCmd drops a repository's audit log.
var historyClearCmd = &cobra.Command{
	Use:     "clear [repo-path]",
	Short:   "Remove all audit entries for a repository",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		removed, err := historyStore.Clear(cfg.RepoURL)
		if err != nil {
			contract.LogFatal("Error clearing history", err)
		}
		if removed {
			fmt.Fprintf(os.Stdout, "Cleared audit history for %s\n", cfg.RepoURL)
		} else {
			fmt.Fprintf(os.Stdout, "No audit history for %s\n", cfg.RepoURL)
		}
	},
}

// historyExportCmd flattens a repository's audit log to Parquet.
var historyExportCmd = &cobra.Command{
	Use:     "export [repo-path]",
	Short:   "Export a repository's audit log to a Parquet file",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		entries := historyStore.List(cfg.RepoURL)
		if len(entries) == 0 {
			contract.LogFatal("Export failed", fmt.Errorf("no audit history for %s", cfg.RepoURL))
		}

		outputPath := cfg.OutputFile
		if outputPath == "" {
			outputPath = "audit_history.parquet"
		}

		records := parquet.ConvertAuditEntries(cfg.RepoURL, entries)
		if err := parquet.WriteAuditRecordsParquet(records, outputPath); err != nil {
			contract.LogFatal("Error exporting history", err)
		}
		fmt.Fprintf(os.Stdout, "Exported %d audit entries to %s\n", len(records), outputPath)
	},
}
