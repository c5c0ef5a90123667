package annotate

import (
	"math"
	"time"

	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
)

// Walk consumes cases through the automaton, producing one Row per
// original event with SrcState/TgtState/RelTime resolved. Cases and
// each case's events must already be sorted by Timestamp; this
// function does not re-sort (pipeline.Run sorts before annotating;
// ioevent.ReadCSV keeps file order).
//
// tMin is the minimum Timestamp across the entire log, used for the
// first-event-of-case RelTime.
//
// Fails with event.ErrUnknownTransition if the automaton walk diverges
// from the log (a builder bug, never a data issue), and with
// event.ErrNumericError if any computed RelTime is non-finite.
func Walk(cases []event.Case, automaton *dafsa.Automaton, tMin time.Time) ([]Row, error) {
	var rows []Row
	for _, c := range cases {
		current, err := automaton.Next(automaton.Root(), event.StartActivity)
		if err != nil {
			return nil, wrapf("Walk", event.ErrUnknownTransition, "case %s: START transition missing from root", c.CaseID)
		}

		var prevTimestamp time.Time
		for i, ev := range c.Events {
			tgt, err := automaton.Next(current, ev.Activity)
			if err != nil {
				return nil, wrapf("Walk", event.ErrUnknownTransition, "case %s: no transition for activity %q at step %d", c.CaseID, ev.Activity, i)
			}

			var rel float64
			if i == 0 {
				rel = ev.Timestamp.Sub(tMin).Hours() / 24
			} else {
				rel = ev.Timestamp.Sub(prevTimestamp).Minutes()
			}
			if math.IsNaN(rel) || math.IsInf(rel, 0) {
				return nil, wrapf("Walk", event.ErrNumericError, "case %s: non-finite RelTime at step %d", c.CaseID, i)
			}

			rows = append(rows, Row{
				CaseID:    c.CaseID,
				Activity:  ev.Activity,
				Timestamp: ev.Timestamp.UnixNano(),
				SrcState:  current,
				TgtState:  tgt,
				RelTime:   rel,
			})

			current = tgt
			prevTimestamp = ev.Timestamp
		}
	}
	return rows, nil
}
