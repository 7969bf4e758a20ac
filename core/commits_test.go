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

func TestParseCommitLog(t *testing.T) {
	out := []byte(
		"abc123|Add login form|2024-01-15 10:00:00 +0000|Alice\n" +
			"def456|Fix typo|2024-01-14 09:00:00 +0000|Bob\n")

	commits := parseCommitLog(out)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].Hash)
	assert.Equal(t, "Add login form", commits[0].Message)
	assert.Equal(t, "2024-01-15 10:00:00 +0000", commits[0].Timestamp)
	assert.Equal(t, "Alice", commits[0].Author)
	assert.Equal(t, "Bob", commits[1].Author)
}

func TestParseCommitLogMalformedLines(t *testing.T) {
	out := []byte(
		"abc123|only|three\n" +
			"\n" +
			"def456|Valid subject|2024-01-14 09:00:00 +0000|Bob\n")

	commits := parseCommitLog(out)
	require.Len(t, commits, 1)
	assert.Equal(t, "def456", commits[0].Hash)
}

func TestParseCommitLogExtraSeparators(t *testing.T) {
	// Only the first three separators split fields; the remainder stays in
	// the last field whole.
	out := []byte("abc123|subject|2024-01-15|Team A | Team B\n")

	commits := parseCommitLog(out)
	require.Len(t, commits, 1)
	assert.Equal(t, "Team A | Team B", commits[0].Author)
}

func TestListCommitsGitFailure(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), "/repo", schema.MaxCommitHistory).
		Return([]byte(nil), errors.New("not a git repository")).Once()

	commits := ListCommits(context.Background(), mockClient, "/repo", 0)
	assert.Empty(t, commits)
	mockClient.AssertExpectations(t)
}

func TestListCommitsMaxCountDefault(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), "/repo", schema.MaxCommitHistory).
		Return([]byte("abc|m|t|a\n"), nil).Once()

	commits := ListCommits(context.Background(), mockClient, "/repo", -5)
	require.Len(t, commits, 1)
	mockClient.AssertExpectations(t)
}
