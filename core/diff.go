package core

import (
	"context"
	"strings"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// DiffBetween computes the zero-context diff between two refs and returns
// the per-file changed lines, filtered to recognized source files. Refs
// that cannot be compared (missing, unrelated histories) degrade to an
// empty record: diff absence is evidence of "nothing comparable".
func DiffBetween(ctx context.Context, client contract.GitClient, repoPath, refOld, refNew string) schema.DiffRecord {
	out, err := client.DiffRaw(ctx, repoPath, refOld, refNew)
	if err != nil {
		return schema.DiffRecord{}
	}
	return ParseZeroContextDiff(out)
}

// ParseZeroContextDiff turns raw `git diff --unified=0` output into a
// DiffRecord. File identity comes from the new-file header of each hunk;
// lines seen before any such header are discarded. The `---`/`+++` headers
// themselves are never content.
func ParseZeroContextDiff(out []byte) schema.DiffRecord {
	record := schema.DiffRecord{}
	var currentFile string

	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "+++ b/") {
			currentFile = line[len("+++ b/"):]
			continue
		}
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		var tag schema.DiffTag
		switch {
		case strings.HasPrefix(line, "+"):
			tag = schema.Added
		case strings.HasPrefix(line, "-"):
			tag = schema.Removed
		default:
			continue
		}
		if currentFile == "" || !schema.IsCodeFile(currentFile) {
			continue
		}
		record[currentFile] = append(record[currentFile], schema.DiffLine{
			Tag:  tag,
			Text: line[1:],
		})
	}
	return record
}
