package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV пишет забеги в CSV с заголовком.
func ExportCSV(w io.Writer, runs []Run) error {
	if runs == nil {
		runs = []Run{}
	}
	if err := gocsv.Marshal(runs, w); err != nil {
		return fmt.Errorf("storage: cannot export runs: %w", err)
	}
	return nil
}
