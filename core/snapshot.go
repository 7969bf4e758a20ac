package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/driftgate/driftgate/schema"
)

// Summarize walks the workspace tree and produces a line-numbered,
// budget-capped textual snapshot of its source files. The walk order is
// lexical (filepath.WalkDir), so the same tree state always yields the same
// snapshot. Tooling, VCS and dependency directories are pruned before
// descent; oversized or known-binary files are never opened. The final
// string is hard-truncated to totalBudget.
func Summarize(root string, totalBudget, perFileBudget int) string {
	var sb strings.Builder

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Unreadable entries degrade to absence
		}
		if d.IsDir() {
			if _, pruned := schema.PruneDirs[d.Name()]; pruned && path != root {
				return filepath.SkipDir
			}
			writeDirHeader(&sb, path)
			return nil
		}
		if schema.ShouldSkipFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() > schema.SnapshotMaxFileBytes {
			return nil
		}
		content, ok := readTextFile(path)
		if !ok {
			return nil
		}
		sb.WriteString(fmt.Sprintf("--- %s ---\n", d.Name()))
		sb.WriteString(numberLines(content, perFileBudget))
		sb.WriteString("\n")
		return nil
	})

	return schema.Truncate(sb.String(), totalBudget)
}

// writeDirHeader records a directory and its immediate file names so the
// judgment step sees the tree shape even for files the budget drops.
func writeDirHeader(sb *strings.Builder, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sb.WriteString(fmt.Sprintf("\nDirectory: %s\nFiles: %s\n", dir, strings.Join(names, ", ")))
}

// readTextFile reads a file best-effort as text. Bytes that are not valid
// UTF-8 are dropped rather than failing the read.
func readTextFile(path string) (string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	if utf8.Valid(raw) {
		return string(raw), true
	}
	return strings.ToValidUTF8(string(raw), ""), true
}

// numberLines prefixes each line with its 1-based number, accumulating
// until the next full line would exceed the per-file budget. Truncation
// happens at a line boundary, never mid-line.
func numberLines(content string, perFileBudget int) string {
	var sb strings.Builder
	current := 0
	for i, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			break // SplitAfter leaves a trailing empty element
		}
		entry := fmt.Sprintf("%d: %s", i+1, line)
		if current+len(entry) > perFileBudget {
			break
		}
		sb.WriteString(entry)
		current += len(entry)
	}
	return sb.String()
}
