package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print driftgate build information.",
	Long: `Display the release version, source commit, build timestamp and Go
runtime of this driftgate binary.

Attach this output when reporting unexpected gate scores so a result can
be matched to the exact build that produced it.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("driftgate CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
