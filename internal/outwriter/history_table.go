package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAuditHistory outputs a repository's persisted audit log, dispatching
// based on the output format configured.
func WriteAuditHistory(entries []schema.AuditEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, entries, cfg)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable history table.
func writeHistoryTable(w io.Writer, entries []schema.AuditEntry, cfg *contract.Config) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No audit history for this repository.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Timestamp", "Type", "Score", "Label", "Commit", "Summary"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	summaryWidth := GetMaxSummaryWidth(cfg)
	var data [][]string
	for i, entry := range entries {
		row := []string{
			strconv.Itoa(i + 1),
			entry.Timestamp,
			entry.Type,
			fmt.Sprintf("%.1f", entry.Score),
			contract.GetColorLabel(entry.Score),
			schema.ShortHash(entry.LastCommitHash),
			schema.Truncate(entry.Summary, summaryWidth),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d audit entries (newest first, retention cap %d)\n",
		len(entries), schema.HistoryLimit)
	return err
}
