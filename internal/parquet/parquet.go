// Package parquet provides data structures and functions for exporting audit
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/driftgate/driftgate/schema"
	"github.com/parquet-go/parquet-go"
)

// AuditRecord represents a single persisted audit outcome for one repository.
// Rows are flattened from the JSON history file so downstream tooling can
// query audits across repositories.
type AuditRecord struct {
	// RepoID is the repository identifier the audit was keyed under
	RepoID string `parquet:"repo_id,snappy"`

	// Position is the entry's index in the log, zero being the newest
	Position int32 `parquet:"position,snappy"`

	// Timestamp is the audit completion time in "2006-01-02 15:04:05" form
	Timestamp string `parquet:"timestamp,snappy"`

	// AuditType labels the kind of analysis that produced the entry
	AuditType string `parquet:"audit_type,snappy"`

	// Score is the clamped judgment score in [0, 100]
	Score float64 `parquet:"score,snappy"`

	// Summary is the judgment summary text
	Summary string `parquet:"summary,snappy"`

	// LastCommitHash is the head commit the audit observed (nullable)
	LastCommitHash *string `parquet:"last_commit_hash,optional,snappy"`
}

// WriteAuditRecordsParquet writes a slice of AuditRecord structs to a Parquet file.
func WriteAuditRecordsParquet(data []AuditRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AuditRecord struct tags
	writer := parquet.NewGenericWriter[AuditRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAuditEntries flattens one repository's audit log into Parquet rows.
func ConvertAuditEntries(repoID string, entries []schema.AuditEntry) []AuditRecord {
	result := make([]AuditRecord, len(entries))
	for i, entry := range entries {
		record := AuditRecord{
			RepoID:    repoID,
			Position:  int32(i),
			Timestamp: entry.Timestamp,
			AuditType: entry.Type,
			Score:     entry.Score,
			Summary:   entry.Summary,
		}
		if entry.LastCommitHash != "" {
			hash := entry.LastCommitHash
			record.LastCommitHash = &hash
		}
		result[i] = record
	}
	return result
}
