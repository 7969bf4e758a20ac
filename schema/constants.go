package schema

import (
	"path/filepath"
	"strings"
)

// Custom string types for type safety.
type (
	// AnalysisMode represents the audit mode used by the gate.
	AnalysisMode string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All analysis modes supported.
const (
	StandardMode   AnalysisMode = "standard" // default: compliance only
	EvaluationMode AnalysisMode = "evaluation"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidAnalysisModes lists all valid analysis modes.
var ValidAnalysisModes = map[AnalysisMode]struct{}{
	StandardMode:   {},
	EvaluationMode: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// Resource budgets for evidence assembly. All character counts; the
// judgment step is budget-constrained, so every textual field handed to it
// is capped independently, leaving headroom below the provider's own input
// limits.
const (
	// MaxCommitHistory bounds how many commits the history reader returns.
	MaxCommitHistory = 50

	// HistoryLimit caps persisted audit entries per repository.
	HistoryLimit = 10

	// SnapshotTotalBudget caps the whole code snapshot string.
	SnapshotTotalBudget = 45000

	// SnapshotPerFileBudget caps the numbered content emitted per file.
	SnapshotPerFileBudget = 3000

	// SnapshotMaxFileBytes is the on-disk size ceiling above which a file
	// is never opened during summarization.
	SnapshotMaxFileBytes = 100 * 1024

	// RequirementsBudget caps the requirements document in prompts.
	RequirementsBudget = 10000

	// GuidelinesBudget caps the guidelines document in prompts.
	GuidelinesBudget = 5000

	// EvolutionSnapshotBudget caps the snapshot inside the evolution
	// prompt, which must also carry timeline and diff context.
	EvolutionSnapshotBudget = 15000

	// TimelineContextBudget caps the serialized deletion timeline.
	TimelineContextBudget = 5000

	// DiffContextBudget caps the serialized base->head diff.
	DiffContextBudget = 5000

	// SampleDeletionLimit caps per-file deleted-line samples in timeline
	// entries.
	SampleDeletionLimit = 10
)

// DefaultThreshold is the minimum passing score for the gate command.
const DefaultThreshold = 90.0

// HistoryTimeFormat is the timestamp layout used in persisted audit entries.
const HistoryTimeFormat = "2006-01-02 15:04:05"

// codeExtensions is the fixed allow-list of recognized source-code file
// extensions. It is the single source of truth shared by the diff extractor
// and anything else that needs the "is this a code file" decision. Markup
// and style files are deliberately included; binary, lock and media files
// are not.
var codeExtensions = map[string]struct{}{
	".py": {}, ".js": {}, ".ts": {}, ".java": {}, ".cpp": {}, ".c": {},
	".cs": {}, ".go": {}, ".rb": {}, ".php": {}, ".swift": {}, ".kt": {},
	".rs": {}, ".scala": {}, ".r": {}, ".jsx": {}, ".tsx": {}, ".vue": {},
	".html": {}, ".css": {}, ".scss": {},
}

// IsCodeFile reports whether the path carries a recognized source extension.
func IsCodeFile(path string) bool {
	_, ok := codeExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// PruneDirs are directories never descended into during summarization:
// version-control metadata, dependency caches, build output, virtual
// environments and editor state.
var PruneDirs = map[string]struct{}{
	".git": {}, "node_modules": {}, "__pycache__": {}, "build": {},
	"dist": {}, ".next": {}, ".venv": {}, "venv": {}, "env": {},
	".idea": {}, ".vscode": {},
}

// SkipSuffixes are file-name suffixes the summarizer never opens:
// binaries, archives, media, locks and logs.
var SkipSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".ico", ".pyc", ".git", ".exe",
	".dll", ".so", ".dylib", ".pdf", ".zip", ".tar.gz", "-lock.json",
	".lock", ".log",
}

// ShouldSkipFile reports whether the summarizer should skip a file by name.
func ShouldSkipFile(name string) bool {
	for _, suffix := range SkipSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
