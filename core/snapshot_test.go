package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/driftgate/driftgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture creates a file under root, making parent directories as needed.
func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSummarizeBasic(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "main.go", "package main\n\nfunc main() {}\n")
	writeFixture(t, root, "notes.txt", "remember the milk\n")

	snapshot := Summarize(root, schema.SnapshotTotalBudget, schema.SnapshotPerFileBudget)

	assert.Contains(t, snapshot, "--- main.go ---")
	assert.Contains(t, snapshot, "1: package main")
	assert.Contains(t, snapshot, "3: func main() {}")
	assert.Contains(t, snapshot, "--- notes.txt ---", "all text files are included, not only code files")
	assert.Contains(t, snapshot, "Directory: "+root)
	assert.Contains(t, snapshot, "Files: ")
}

func TestSummarizePrunesDirectories(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "app.py", "print('hi')\n")
	writeFixture(t, root, "node_modules/pkg/index.js", "module.exports = {}\n")
	writeFixture(t, root, ".git/config", "[core]\n")

	snapshot := Summarize(root, schema.SnapshotTotalBudget, schema.SnapshotPerFileBudget)

	assert.Contains(t, snapshot, "--- app.py ---")
	assert.NotContains(t, snapshot, "node_modules")
	assert.NotContains(t, snapshot, "[core]")
}

func TestSummarizeSkipsBinaryAndOversized(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "logo.png", "not really an image")
	writeFixture(t, root, "big.py", strings.Repeat("x", int(schema.SnapshotMaxFileBytes)+1))
	writeFixture(t, root, "ok.py", "small = True\n")

	snapshot := Summarize(root, schema.SnapshotTotalBudget, schema.SnapshotPerFileBudget)

	assert.NotContains(t, snapshot, "--- logo.png ---")
	assert.NotContains(t, snapshot, "--- big.py ---")
	assert.Contains(t, snapshot, "--- ok.py ---")
}

func TestSummarizeTotalBudget(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.py", "b.py", "c.py"} {
		writeFixture(t, root, name, strings.Repeat("data = 1\n", 100))
	}

	snapshot := Summarize(root, 500, 3000)
	assert.LessOrEqual(t, len(snapshot), 500)
}

func TestNumberLines(t *testing.T) {
	content := "first\nsecond\nthird\n"

	numbered := numberLines(content, 3000)
	assert.Equal(t, "1: first\n2: second\n3: third\n", numbered)
}

func TestNumberLinesBudgetAtLineBoundary(t *testing.T) {
	content := "first\nsecond\nthird\n"

	// Budget covers the first two entries ("1: first\n" is 9 chars,
	// "2: second\n" is 10) but not the third.
	numbered := numberLines(content, 20)
	assert.Equal(t, "1: first\n2: second\n", numbered)

	// A budget too small for even one line yields nothing, never a partial line.
	assert.Equal(t, "", numberLines(content, 5))
}
