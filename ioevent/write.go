package ioevent

import (
	"encoding/csv"
	"os"
	"time"

	"github.com/dpseq/dafsa-privacy/event"
)

var outputHeader = []string{"Case ID", "Activity", "Timestamp"}

// WriteCSV writes rows to path using the fixed output column contract.
// Callers are expected to have already sorted rows by Timestamp.
func WriteCSV(path string, rows []event.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapf("WriteCSV", event.ErrIOError, "creating %q: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return wrapf("WriteCSV", event.ErrIOError, "writing header to %q: %v", path, err)
	}
	for _, r := range rows {
		record := []string{r.CaseID, r.Activity, r.Timestamp.UTC().Format(time.RFC3339)}
		if err := w.Write(record); err != nil {
			return wrapf("WriteCSV", event.ErrIOError, "writing row to %q: %v", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return wrapf("WriteCSV", event.ErrIOError, "flushing %q: %v", path, err)
	}
	return nil
}
