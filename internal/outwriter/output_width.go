package outwriter

import (
	"os"

	"github.com/driftgate/driftgate/internal/contract"
	"golang.org/x/term"
)

// GetMaxSummaryWidth calculates the maximum width for summary text in table
// output based on terminal width and table configuration.
func GetMaxSummaryWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting:
	// index, timestamp, type, score, label, commit, plus borders and padding
	baseWidth := 60

	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable summary width
		return 20
	}
	if available > 80 {
		// Maximum summary width to prevent unwieldy rows
		return 80
	}
	return available
}
