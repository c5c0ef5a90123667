package synthlog

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/rng"
)

type groupKey struct {
	Src      int
	Activity string
	Tgt      int
}

type transitionStats struct {
	mu, sigma float64
}

const synthBaseCaseID = 1000

var synthBaseTime = time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC)

// Generate produces nCases synthetic cases by random-walking the
// transition statistics observed in rows. Each walk starts at the
// minimum SrcState seen in rows and takes 3-6 steps, stopping early if
// the current state has no outgoing candidates.
func Generate(rows []annotate.Row, nCases int, src *rng.Source) []event.Case {
	if len(rows) == 0 || nCases <= 0 {
		return nil
	}

	byState := make(map[int][]annotate.Row)
	byKey := make(map[groupKey][]float64)
	startState := rows[0].SrcState
	for _, r := range rows {
		byState[r.SrcState] = append(byState[r.SrcState], r)
		k := groupKey{r.SrcState, r.Activity, r.TgtState}
		byKey[k] = append(byKey[k], r.RelTime)
		if r.SrcState < startState {
			startState = r.SrcState
		}
	}

	stats := make(map[groupKey]transitionStats, len(byKey))
	for k, relTimes := range byKey {
		mu := stat.Mean(relTimes, nil)
		sigma := stat.StdDev(relTimes, nil)
		if math.IsNaN(sigma) || sigma <= 0 {
			sigma = 1.0
		}
		if math.IsNaN(mu) {
			mu = 1.0
		}
		stats[k] = transitionStats{mu: mu, sigma: sigma}
	}

	cases := make([]event.Case, 0, nCases)
	for c := 0; c < nCases; c++ {
		caseID := fmt.Sprintf("synth-%d", synthBaseCaseID+c)
		current := startState
		t := synthBaseTime.Add(time.Duration(src.Intn(1441)) * time.Minute)
		steps := 3 + src.Intn(4)

		var events []event.Event
		for s := 0; s < steps; s++ {
			candidates := byState[current]
			if len(candidates) == 0 {
				break
			}
			row := candidates[src.Intn(len(candidates))]
			k := groupKey{row.SrcState, row.Activity, row.TgtState}
			st := stats[k]

			deltaRaw := src.Normal(st.mu, st.sigma)
			delta := math.Max(1, math.Abs(deltaRaw))
			t = t.Add(time.Duration(int(delta)) * time.Minute)

			events = append(events, event.Event{CaseID: caseID, Activity: row.Activity, Timestamp: t})
			current = row.TgtState
		}
		cases = append(cases, event.Case{CaseID: caseID, Events: events})
	}
	return cases
}
