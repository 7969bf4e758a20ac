package core

import (
	"context"
	"errors"
	"testing"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/auth.py b/auth.py
index 1111111..2222222 100644
--- a/auth.py
+++ b/auth.py
@@ -10,2 +10,1 @@
-def legacy_login():
-    return check(user)
+def login():
diff --git a/README.md b/README.md
index 3333333..4444444 100644
--- a/README.md
+++ b/README.md
@@ -1 +1 @@
-Old title
+New title
`

func TestParseZeroContextDiff(t *testing.T) {
	record := ParseZeroContextDiff([]byte(sampleDiff))

	require.Contains(t, record, "auth.py")
	assert.NotContains(t, record, "README.md", "non-code files are filtered out")

	lines := record["auth.py"]
	require.Len(t, lines, 3)
	assert.Equal(t, schema.Removed, lines[0].Tag)
	assert.Equal(t, "def legacy_login():", lines[0].Text)
	assert.Equal(t, schema.Removed, lines[1].Tag)
	assert.Equal(t, schema.Added, lines[2].Tag)
	assert.Equal(t, "def login():", lines[2].Text)
}

func TestParseZeroContextDiffPreambleDropped(t *testing.T) {
	// Changed lines seen before any +++ b/ header have no file to attach to
	// and are discarded.
	out := []byte("-orphan_line\n+another_orphan\n+++ b/code.go\n-kept_line\n")

	record := ParseZeroContextDiff(out)
	require.Contains(t, record, "code.go")
	require.Len(t, record["code.go"], 1)
	assert.Equal(t, "kept_line", record["code.go"][0].Text)
}

func TestParseZeroContextDiffEmpty(t *testing.T) {
	assert.Empty(t, ParseZeroContextDiff(nil))
	assert.Empty(t, ParseZeroContextDiff([]byte("")))
}

func TestDiffBetweenGitFailure(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	mockClient.On("DiffRaw", context.Background(), "/repo", "old", "new").
		Return([]byte(nil), errors.New("bad revision")).Once()

	record := DiffBetween(context.Background(), mockClient, "/repo", "old", "new")
	assert.Empty(t, record)
	mockClient.AssertExpectations(t)
}

func TestDiffBetweenSymmetry(t *testing.T) {
	// Reversing the refs swaps added and removed tags for the same content.
	forward := "+++ b/x.go\n-was\n+now\n"
	reverse := "+++ b/x.go\n-now\n+was\n"

	mockClient := new(contract.MockGitClient)
	mockClient.On("DiffRaw", context.Background(), "/repo", "a", "b").
		Return([]byte(forward), nil).Once()
	mockClient.On("DiffRaw", context.Background(), "/repo", "b", "a").
		Return([]byte(reverse), nil).Once()

	recordAB := DiffBetween(context.Background(), mockClient, "/repo", "a", "b")
	recordBA := DiffBetween(context.Background(), mockClient, "/repo", "b", "a")

	assert.Equal(t, []string{"was"}, recordAB.RemovedLines("x.go"))
	assert.Equal(t, []string{"now"}, recordBA.RemovedLines("x.go"))
	mockClient.AssertExpectations(t)
}
