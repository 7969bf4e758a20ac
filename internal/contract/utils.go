package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Severity label constants for score rendering.
const (
	PassValue = "Pass"
	WarnValue = "Warn"
	FailValue = "Fail"
)

// Color variables for console output.
var (
	PassColor = color.New(color.FgGreen, color.Bold) // passing score
	WarnColor = color.New(color.FgYellow)            // passing but close to threshold
	FailColor = color.New(color.FgRed, color.Bold)   // failing score or critical finding
)

// GetPlainLabel returns a plain text label for a clamped score, matching
// the gate bands: above 90 passes outright, above 75 warns, the rest fail.
// This is the core logic used for JSON and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score > 90:
		return PassValue
	case score > 75:
		return WarnValue
	default:
		return FailValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case PassValue:
		return PassColor.Sprint(text)
	case WarnValue:
		return WarnColor.Sprint(text)
	default: // "Fail"
		return FailColor.Sprint(text)
	}
}

// IsCriticalFinding reports whether a finding type describes a regression
// worth highlighting (loss, drift, violation, missing, failed).
func IsCriticalFinding(findingType string) bool {
	lower := strings.ToLower(findingType)
	for _, word := range []string{"loss", "drift", "violation", "missing", "failed"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens a path from the left so the tail stays visible.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
