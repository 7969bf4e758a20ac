package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDeletionTimeline outputs the per-commit deletion evidence, dispatching
// based on the output format configured.
func WriteDeletionTimeline(timeline []schema.DeletionTimelineEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, timeline)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimelineTable(w, timeline)
		}, "Wrote table")
	}
}

// writeTimelineTable generates and writes the human-readable timeline table.
func writeTimelineTable(w io.Writer, timeline []schema.DeletionTimelineEntry) error {
	if len(timeline) == 0 {
		_, err := fmt.Fprintln(w, "No code deletions found in the analyzed range.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Commit", "Date", "Author", "Files", "Deleted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, entry := range timeline {
		row := []string{
			schema.ShortHash(entry.Commit.Hash),
			entry.Commit.Timestamp,
			entry.Commit.Author,
			strconv.Itoa(len(entry.FilesModified)),
			strconv.Itoa(entry.TotalLinesDeleted),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, entry := range timeline {
		if len(entry.SampleDeletions) == 0 {
			continue
		}
		files := make([]string, 0, len(entry.FilesModified))
		for _, p := range entry.FilesModified {
			files = append(files, contract.TruncatePath(p, 40))
		}
		fmt.Fprintf(w, "\n%s %s (%s)\n",
			schema.ShortHash(entry.Commit.Hash),
			schema.Truncate(entry.Commit.Message, 60),
			strings.Join(files, ", "))
		for _, sample := range entry.SampleDeletions {
			fmt.Fprintf(w, "  %s %s\n", contract.FailColor.Sprint("-"), sample)
		}
	}
	return nil
}
