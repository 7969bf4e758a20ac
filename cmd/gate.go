package cmd

import (
	"fmt"
	"os"

	"github.com/driftgate/driftgate/core"
	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/internal/judge"
	"github.com/driftgate/driftgate/internal/outwriter"
	"github.com/spf13/cobra"
)

// gateCmd focused on CI/CD policy enforcement.
var gateCmd = &cobra.Command{
	Use:   "gate [repo-path]",
	Short: "Audit a repository against requirements and fail below the threshold",
	Long: `Run the full audit pipeline and enforce a minimum compliance score.

Assembles evidence from the repository (code snapshot, commit history,
base-to-head diff, deletion timeline), judges it against the requirements
document, records the outcome in the audit history, and exits non-zero when
the score falls below the threshold.

Designed for CI/CD integration - the exit code is the gate.

Examples:
  # Gate the current repository against a requirements file
  driftgate gate --requirements docs/requirements.md

  # Audit a remote repository with guidelines and a custom threshold
  driftgate gate --repo https://github.com/user/repo.git --requirements reqs.md --guidelines dos_donts.md --threshold 80

  # Include feature evolution analysis over an explicit commit range
  driftgate gate --requirements reqs.md --mode evaluation --base-ref a1b2c3d4 --head-ref HEAD

  # Keep a machine-readable summary for later steps
  driftgate gate --requirements reqs.md --json gate_summary.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.RequirementsPath == "" {
			contract.LogFatal("Gate failed", fmt.Errorf("--requirements is required"))
		}

		auditJudge, err := judge.NewOpenAIJudge()
		if err != nil {
			contract.LogFatal("Judgment service unavailable", err)
		}

		cleanup := acquireWorkspace()

		deps := core.GateDeps{Client: gitClient, Judge: auditJudge, Store: historyStore}
		result, err := core.RunGate(rootCtx, deps, cfg)
		if err != nil {
			cleanup()
			contract.LogFatal("Gate failed", err)
		}
		cleanup()

		if err := outwriter.WriteGateResult(result, cfg); err != nil {
			contract.LogFatal("Error writing gate result", err)
		}
		if cfg.JSONFile != "" {
			if err := core.WriteGateSummary(result, cfg.JSONFile); err != nil {
				contract.LogFatal("Error writing gate summary", err)
			}
		}

		if !result.Passed {
			os.Exit(1)
		}
	},
}
