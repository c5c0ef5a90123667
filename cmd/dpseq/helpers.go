package main

import (
	"sort"
	"time"

	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/event"
)

// sortedCases orders cases by CaseID and each case's events by
// Timestamp, mirroring pipeline.Run's input normalization: annotate.Walk
// requires events already sorted by Timestamp, and ioevent.ReadCSV
// preserves file order without sorting.
func sortedCases(cases []event.Case) []event.Case {
	out := make([]event.Case, len(cases))
	copy(out, cases)
	sort.Slice(out, func(i, j int) bool { return out[i].CaseID < out[j].CaseID })
	for i := range out {
		events := make([]event.Event, len(out[i].Events))
		copy(events, out[i].Events)
		sort.SliceStable(events, func(a, b int) bool { return events[a].Timestamp.Before(events[b].Timestamp) })
		out[i].Events = events
	}
	return out
}

func earliestTimestamp(cases []event.Case) time.Time {
	var tMin time.Time
	for _, c := range cases {
		for _, ev := range c.Events {
			if tMin.IsZero() || ev.Timestamp.Before(tMin) {
				tMin = ev.Timestamp
			}
		}
	}
	return tMin
}

func envelopeNs(rows []budget.Row) (int64, int64) {
	if len(rows) == 0 {
		return 0, 0
	}
	lo, hi := rows[0].Timestamp, rows[0].Timestamp
	for _, r := range rows {
		if r.Timestamp < lo {
			lo = r.Timestamp
		}
		if r.Timestamp > hi {
			hi = r.Timestamp
		}
	}
	return lo, hi
}
