// main holds the entry logic for driftgate CLI.
package main

import (
	"github.com/driftgate/driftgate/cmd"
	"github.com/driftgate/driftgate/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
