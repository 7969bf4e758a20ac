package outwriter

import (
	"fmt"
	"io"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// WriteSnapshot outputs a budgeted code snapshot, dispatching based on the
// output format configured.
func WriteSnapshot(snapshot string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]string{"snapshot": snapshot})
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, snapshot)
			return err
		}, "Wrote snapshot")
	}
}
