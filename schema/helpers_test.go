package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{name: "in range", score: 85.5, expected: 85.5},
		{name: "lower bound", score: 0, expected: 0},
		{name: "upper bound", score: 100, expected: 100},
		{name: "negative", score: -12.3, expected: 0},
		{name: "above max", score: 150, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampScore(tt.score))
		})
	}
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", ShortHash("a1b2c3d4e5f67890"))
	assert.Equal(t, "a1b2", ShortHash("a1b2"))
	assert.Equal(t, "", ShortHash(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", Truncate("abcdef", 10))
	assert.Equal(t, "abcdef", Truncate("abcdef", 6))
	assert.Equal(t, "", Truncate("abcdef", 0))
	assert.Equal(t, "", Truncate("abcdef", -1))
}

func TestIsCodeFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "main.go", expected: true},
		{path: "src/App.TSX", expected: true},
		{path: "lib/util.py", expected: true},
		{path: "styles/site.scss", expected: true},
		{path: "README.md", expected: false},
		{path: "data.json", expected: false},
		{path: "Makefile", expected: false},
		{path: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCodeFile(tt.path))
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	assert.True(t, ShouldSkipFile("logo.png"))
	assert.True(t, ShouldSkipFile("package-lock.json"))
	assert.True(t, ShouldSkipFile("debug.log"))
	assert.False(t, ShouldSkipFile("main.go"))
	assert.False(t, ShouldSkipFile("notes.txt"))
}

func TestDiffRecordRemovedLines(t *testing.T) {
	record := DiffRecord{
		"a.py": {
			{Tag: Removed, Text: "old_line_one"},
			{Tag: Added, Text: "new_line"},
			{Tag: Removed, Text: "old_line_two"},
		},
		"b.py": {
			{Tag: Added, Text: "only_addition"},
		},
	}

	assert.Equal(t, []string{"old_line_one", "old_line_two"}, record.RemovedLines("a.py"))
	assert.Empty(t, record.RemovedLines("b.py"))
	assert.Empty(t, record.RemovedLines("missing.py"))
	assert.Equal(t, 2, record.TotalRemoved())
}
