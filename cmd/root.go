package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/driftgate/driftgate/internal/auditstore"
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/workspace"
	"github.com/driftgate/driftgate/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// gitClient is the process-wide git client instance.
var gitClient contract.GitClient

// historyStore is the process-wide audit history store instance.
var historyStore contract.HistoryStore

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "driftgate",
	Short:              "Audit a repository's evolution against its requirements.",
	Long:               `Driftgate mines Git history for evidence of requirement drift and feature loss, and gates builds on a judged compliance score.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".driftgate") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("DRIFTGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("max-commits", schema.MaxCommitHistory)
	viper.SetDefault("threshold", schema.DefaultThreshold)
	viper.SetDefault("mode", schema.StandardMode)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("history-file", contract.DefaultHistoryFile)
	viper.SetDefault("git-timeout", "60s")
	viper.SetDefault("total-budget", schema.SnapshotTotalBudget)
	viper.SetDefault("per-file-budget", schema.SnapshotPerFileBudget)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	if !cfg.UseColors {
		color.NoColor = true
	}

	// 5. Initialize the collaborators with validated config
	gitClient = contract.NewLocalGitClient(cfg.GitTimeout)
	historyStore = auditstore.NewFileStore(cfg.HistoryFile)

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// acquireWorkspace materializes cfg.RepoURL into cfg.RepoPath and returns a
// cleanup function. Run has to call it explicitly before any os.Exit, since
// deferred functions do not survive an exit.
func acquireWorkspace() func() {
	path, cleanup, err := workspace.Acquire(rootCtx, cfg.RepoURL)
	if err != nil {
		contract.LogFatal("Workspace acquisition failed", err)
	}
	cfg.RepoPath = path
	return cleanup
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
