package core

import (
	"context"
	"errors"
	"testing"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildEvidenceFullRange(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "main.py", "print('hello')\n")

	log := "newHash|second|2024-01-02|Alice\noldHash|first|2024-01-01|Alice\n"
	diff := "+++ b/main.py\n-removed_call()\n+print('hello')\n"

	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), root, schema.MaxCommitHistory).
		Return([]byte(log), nil).Once()
	// Same pair serves both the range diff and the timeline walk.
	mockClient.On("DiffRaw", context.Background(), root, "oldHash", "newHash").
		Return([]byte(diff), nil).Twice()

	bundle, err := BuildEvidence(context.Background(), mockClient, root, EvidenceOptions{})
	require.NoError(t, err)

	assert.False(t, bundle.InsufficientHistory)
	assert.Equal(t, "oldHash", bundle.BaseCommit.Hash)
	assert.Equal(t, "newHash", bundle.HeadCommit.Hash)
	assert.Len(t, bundle.HistoryWindow, 2)
	assert.Contains(t, bundle.CodeSnapshot, "--- main.py ---")
	assert.Equal(t, []string{"removed_call()"}, bundle.Diff.RemovedLines("main.py"))
	require.Len(t, bundle.DeletionTimeline, 1)
	assert.Equal(t, "newHash", bundle.DeletionTimeline[0].Commit.Hash)
	mockClient.AssertExpectations(t)
}

func TestBuildEvidenceInsufficientHistory(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "only.py", "x = 1\n")

	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), root, schema.MaxCommitHistory).
		Return([]byte("soloHash|only commit|2024-01-01|Bob\n"), nil).Once()

	bundle, err := BuildEvidence(context.Background(), mockClient, root, EvidenceOptions{})
	require.NoError(t, err)

	assert.True(t, bundle.InsufficientHistory)
	assert.Contains(t, bundle.CodeSnapshot, "--- only.py ---", "snapshot evidence survives missing history")
	assert.Len(t, bundle.HistoryWindow, 1)
	assert.Empty(t, bundle.Diff)
	assert.Empty(t, bundle.DeletionTimeline)
	mockClient.AssertNotCalled(t, "DiffRaw")
}

func TestBuildEvidenceIncrementalBase(t *testing.T) {
	root := t.TempDir()

	log := "c3|third|t|a\nc2|second|t|a\nc1|first|t|a\n"
	history := []schema.AuditEntry{{LastCommitHash: "c2"}}

	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), root, 10).
		Return([]byte(log), nil).Once()
	mockClient.On("DiffRaw", context.Background(), root, "c2", "c3").
		Return([]byte(""), nil).Twice()
	mockClient.On("DiffRaw", context.Background(), root, "c1", "c2").
		Return([]byte(""), nil).Once()

	bundle, err := BuildEvidence(context.Background(), mockClient, root, EvidenceOptions{
		MaxCommits: 10,
		History:    history,
	})
	require.NoError(t, err)

	assert.Equal(t, "c2", bundle.BaseCommit.Hash, "range resumes from the last audited commit")
	assert.Equal(t, "c3", bundle.HeadCommit.Hash)
	mockClient.AssertExpectations(t)
}

func TestBuildEvidenceSymbolicHeadRef(t *testing.T) {
	root := t.TempDir()

	log := "newHash|second|2024-01-02|Alice\noldHash|first|2024-01-01|Alice\n"
	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), root, schema.MaxCommitHistory).
		Return([]byte(log), nil).Once()
	mockClient.On("Run", context.Background(), root, "rev-parse", "--verify", "HEAD").
		Return([]byte("newHash\n"), nil).Once()
	mockClient.On("DiffRaw", context.Background(), root, "oldHash", "newHash").
		Return([]byte(""), nil).Twice()

	bundle, err := BuildEvidence(context.Background(), mockClient, root, EvidenceOptions{
		ExplicitHead: "HEAD",
	})
	require.NoError(t, err)

	assert.Equal(t, "newHash", bundle.HeadCommit.Hash, "symbolic refs resolve through git before matching")
	mockClient.AssertExpectations(t)
}

func TestBuildEvidenceUnresolvedExplicitRef(t *testing.T) {
	root := t.TempDir()

	log := "newHash|second|2024-01-02|Alice\noldHash|first|2024-01-01|Alice\n"
	history := []schema.AuditEntry{{LastCommitHash: "newHash"}}

	mockClient := new(contract.MockGitClient)
	mockClient.On("CommitLog", context.Background(), root, schema.MaxCommitHistory).
		Return([]byte(log), nil).Once()
	mockClient.On("Run", context.Background(), root, "rev-parse", "--verify", "feature-branch").
		Return([]byte(nil), errors.New("unknown revision")).Once()

	bundle, err := BuildEvidence(context.Background(), mockClient, root, EvidenceOptions{
		ExplicitBase: "feature-branch",
		History:      history,
	})
	require.Error(t, err, "an unresolvable explicit ref must surface, not widen the range")
	assert.Nil(t, bundle)
	assert.Contains(t, err.Error(), "feature-branch")
	mockClient.AssertNotCalled(t, "DiffRaw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
