// Package cmd defines the command-line interface for driftgate.
package cmd

import (
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(gateCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("repo", "r", "", "Repository URL or local path to audit")
	rootCmd.PersistentFlags().String("history-file", contract.DefaultHistoryFile, "Path to the audit history JSON file")
	rootCmd.PersistentFlags().Int("max-commits", schema.MaxCommitHistory, "Number of recent commits to mine")
	rootCmd.PersistentFlags().String("git-timeout", "60s", "Timeout for individual git invocations")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of gateCmd to Viper
	gateCmd.Flags().String("requirements", "", "Path to the requirements document")
	gateCmd.Flags().String("guidelines", "", "Optional path to the do's and don'ts guidelines")
	gateCmd.Flags().String("mode", string(schema.StandardMode), "Analysis mode: standard or evaluation")
	gateCmd.Flags().Float64("threshold", schema.DefaultThreshold, "Minimum passing score (0-100)")
	gateCmd.Flags().String("json", "", "Optional path to write the gate summary as JSON")
	gateCmd.Flags().String("base-ref", "", "Base commit hash or unique prefix for the range")
	gateCmd.Flags().String("head-ref", "", "Head commit hash or unique prefix for the range")
	if err := viper.BindPFlags(gateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding gate flags", err)
	}

	// Bind all flags of snapshotCmd to Viper
	snapshotCmd.Flags().Int("total-budget", schema.SnapshotTotalBudget, "Overall character budget for the snapshot")
	snapshotCmd.Flags().Int("per-file-budget", schema.SnapshotPerFileBudget, "Character budget for each file's content")
	if err := viper.BindPFlags(snapshotCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot flags", err)
	}
}
