package outwriter

import (
	"fmt"
	"io"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// WriteGateResult outputs the audit outcome, dispatching based on the output
// format configured.
func WriteGateResult(result *schema.GateResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGateReport(w, result)
		}, "Wrote report")
	}
}

// writeGateReport generates the human-readable audit report.
func writeGateReport(w io.Writer, result *schema.GateResult) error {
	fmt.Fprintf(w, "Repository: %s\n", result.RepoURL)
	if result.HeadCommit != "" {
		fmt.Fprintf(w, "Head commit: %s\n", schema.ShortHash(result.HeadCommit))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Unified Compliance Audit")
	fmt.Fprintf(w, "Score: %.1f (%s)  Threshold: %.1f\n",
		result.Score, contract.GetColorLabel(result.Score), result.Threshold)
	if result.Compliance != nil && result.Compliance.Summary != "" {
		fmt.Fprintf(w, "Summary: %s\n", result.Compliance.Summary)
	}

	if result.Compliance != nil && len(result.Compliance.Findings) > 0 {
		fmt.Fprintf(w, "\nFindings (%d):\n", len(result.Compliance.Findings))
		for i, finding := range result.Compliance.Findings {
			writeFinding(w, i+1, &finding)
		}
	}

	if result.Evolution != nil {
		writeEvolutionSection(w, result.Evolution)
	}

	fmt.Fprintln(w)
	if result.Passed {
		fmt.Fprintf(w, "Result: %s\n", contract.PassColor.Sprint("PASSED"))
	} else {
		fmt.Fprintf(w, "Result: %s\n", contract.FailColor.Sprint("FAILED"))
	}
	return nil
}

func writeFinding(w io.Writer, index int, finding *schema.Finding) {
	label := finding.Type
	if contract.IsCriticalFinding(finding.Type) {
		label = contract.FailColor.Sprint(finding.Type)
	}
	fmt.Fprintf(w, "%3d. [%s] %s\n", index, label, finding.Description)
	if finding.Evidence != "" {
		fmt.Fprintf(w, "     Evidence: %s\n", finding.Evidence)
	}
	if finding.Reasoning != "" {
		fmt.Fprintf(w, "     Reasoning: %s\n", finding.Reasoning)
	}
	if finding.Remediation != "" {
		fmt.Fprintf(w, "     Remediation: %s\n", finding.Remediation)
	}
}

func writeEvolutionSection(w io.Writer, evolution *schema.EvolutionResult) {
	fmt.Fprintf(w, "\nFeature Evolution (%s..%s)\n", evolution.BaseCommit, evolution.HeadCommit)
	fmt.Fprintf(w, "Feature loss score: %.1f (%s)\n",
		evolution.Score, contract.GetColorLabel(evolution.Score))
	if evolution.Summary != "" {
		fmt.Fprintf(w, "Summary: %s\n", evolution.Summary)
	}
	for _, change := range evolution.FeatureChanges {
		fmt.Fprintf(w, "  - %s [%s, %s]\n", change.FeatureName, change.Status, change.Severity)
		if change.Evidence != "" {
			fmt.Fprintf(w, "    Evidence: %s\n", change.Evidence)
		}
		if change.ReplacementLogic != "" {
			fmt.Fprintf(w, "    Replacement: %s\n", change.ReplacementLogic)
		}
		if change.Impact != "" {
			fmt.Fprintf(w, "    Impact: %s\n", change.Impact)
		}
		if change.Remediation != "" {
			fmt.Fprintf(w, "    Remediation: %s\n", change.Remediation)
		}
	}
}
