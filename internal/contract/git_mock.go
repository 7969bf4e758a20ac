package contract

import (
	"context"

	"github.com/driftgate/driftgate/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []interface{}
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CommitLog implements the GitClient interface.
func (m *MockGitClient) CommitLog(ctx context.Context, repoPath string, maxCount int) ([]byte, error) {
	ret := m.Called(ctx, repoPath, maxCount)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// DiffRaw implements the GitClient interface.
func (m *MockGitClient) DiffRaw(ctx context.Context, repoPath, refOld, refNew string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, refOld, refNew)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// HeadHash implements the GitClient interface.
func (m *MockGitClient) HeadHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	hash, _ := ret.Get(0).(string)
	return hash, ret.Error(1)
}

// MockHistoryStore is a testify mock for the HistoryStore type.
type MockHistoryStore struct {
	mock.Mock
}

var _ HistoryStore = &MockHistoryStore{} // Compile-time check

// Append implements the HistoryStore interface.
func (m *MockHistoryStore) Append(repoID string, entry schema.AuditEntry) error {
	ret := m.Called(repoID, entry)
	return ret.Error(0)
}

// List implements the HistoryStore interface.
func (m *MockHistoryStore) List(repoID string) []schema.AuditEntry {
	ret := m.Called(repoID)
	entries, _ := ret.Get(0).([]schema.AuditEntry)
	return entries
}

// Clear implements the HistoryStore interface.
func (m *MockHistoryStore) Clear(repoID string) (bool, error) {
	ret := m.Called(repoID)
	return ret.Bool(0), ret.Error(1)
}

// MockJudge is a testify mock for the Judge type.
type MockJudge struct {
	mock.Mock
}

var _ Judge = &MockJudge{} // Compile-time check

// AuditCompliance implements the Judge interface.
func (m *MockJudge) AuditCompliance(ctx context.Context, req *schema.JudgmentRequest) (*schema.JudgmentResult, error) {
	ret := m.Called(ctx, req)
	result, _ := ret.Get(0).(*schema.JudgmentResult)
	return result, ret.Error(1)
}

// AuditEvolution implements the Judge interface.
func (m *MockJudge) AuditEvolution(ctx context.Context, req *schema.EvolutionRequest) (*schema.EvolutionResult, error) {
	ret := m.Called(ctx, req)
	result, _ := ret.Get(0).(*schema.EvolutionResult)
	return result, ret.Error(1)
}
