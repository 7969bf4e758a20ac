package parquet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/driftgate/driftgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertAuditEntries(t *testing.T) {
	entries := []schema.AuditEntry{
		{
			Timestamp:      "2024-01-02 10:00:00",
			Type:           "Unified",
			Score:          92.5,
			Summary:        "newest",
			LastCommitHash: "abc123",
		},
		{
			Timestamp: "2024-01-01 10:00:00",
			Type:      "Unified",
			Score:     70,
			Summary:   "older",
		},
	}

	records := ConvertAuditEntries("repo", entries)
	require.Len(t, records, 2)

	assert.Equal(t, "repo", records[0].RepoID)
	assert.Equal(t, int32(0), records[0].Position, "position zero is the newest entry")
	assert.Equal(t, 92.5, records[0].Score)
	require.NotNil(t, records[0].LastCommitHash)
	assert.Equal(t, "abc123", *records[0].LastCommitHash)

	assert.Equal(t, int32(1), records[1].Position)
	assert.Nil(t, records[1].LastCommitHash, "absent commit hash maps to a null column")
}

func TestWriteAuditRecordsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "audits.parquet")
	records := ConvertAuditEntries("repo", []schema.AuditEntry{
		{Timestamp: "2024-01-01 10:00:00", Type: "Unified", Score: 88, Summary: "ok"},
	})

	require.NoError(t, WriteAuditRecordsParquet(records, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteAuditRecordsParquetBadPath(t *testing.T) {
	err := WriteAuditRecordsParquet(nil, filepath.Join(t.TempDir(), "missing", "audits.parquet"))
	assert.Error(t, err)
}
