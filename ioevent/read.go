package ioevent

import (
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/dpseq/dafsa-privacy/event"
)

var inputHeader = []string{"CaseID", "Activity", "Timestamp"}

// ReadCSV parses the input log at path into one event.Case per distinct
// CaseID, preserving the order cases first appear in the file. Rows
// within a case are not sorted here; the pipeline sorts by Timestamp
// before use.
func ReadCSV(path string) ([]event.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapf("ReadCSV", event.ErrIOError, "opening %q: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, wrapf("ReadCSV", event.ErrIOError, "reading header of %q: %v", path, err)
	}
	if !headerMatches(header, inputHeader) {
		return nil, wrapf("ReadCSV", event.ErrSchemaError, "%q header %v, want %v", path, header, inputHeader)
	}

	byCase := make(map[string]*event.Case)
	var order []string
	lineNo := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapf("ReadCSV", event.ErrSchemaError, "%q line %d: %v", path, lineNo+1, err)
		}
		lineNo++

		if len(record) != 3 {
			return nil, wrapf("ReadCSV", event.ErrSchemaError, "%q line %d: expected 3 columns, got %d", path, lineNo, len(record))
		}
		caseID, activity, rawTimestamp := record[0], record[1], record[2]

		ts, err := time.Parse(time.RFC3339, rawTimestamp)
		if err != nil {
			return nil, wrapf("ReadCSV", event.ErrSchemaError, "%q line %d: unparseable timestamp %q: %v", path, lineNo, rawTimestamp, err)
		}

		c, ok := byCase[caseID]
		if !ok {
			c = &event.Case{CaseID: caseID}
			byCase[caseID] = c
			order = append(order, caseID)
		}
		c.Events = append(c.Events, event.Event{CaseID: caseID, Activity: activity, Timestamp: ts})
	}

	cases := make([]event.Case, len(order))
	for i, cid := range order {
		cases[i] = *byCase[cid]
	}
	return cases, nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
