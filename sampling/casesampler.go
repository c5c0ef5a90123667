package sampling

import (
	"fmt"
	"math"
	"sort"

	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/rng"
)

type groupKey struct {
	Src      int
	Activity string
	Tgt      int
}

func (g groupKey) canonical() string {
	return fmt.Sprintf("%d|%s|%d", g.Src, g.Activity, g.Tgt)
}

// DuplicationCounter maps an original (pre-duplication) CaseID to the
// number of duplicate copies produced for it.
type DuplicationCounter map[string]int

// Sample runs the case-count perturbation pass: for every transition
// group (visited in canonical sorted order, fixing RNG consumption) it
// draws Laplace(1/epsilonD) noise, rounds the noised case count, and
// either schedules some of the group's case ids for duplication (noised
// count above actual) or removal (noised count below actual).
//
// Removals are resolved before duplications: a case removed by one
// group's draw and scheduled for duplication by another yields nothing,
// since its rows no longer exist when the duplication pass runs.
//
// The returned DuplicationCounter maps every duplicated case's original
// id to how many copies were made; callers need it to attenuate the
// per-row time-noise budget of both the original and its copies.
func Sample(rows []budget.Row, epsilonD float64, src *rng.Source) ([]budget.Row, DuplicationCounter, error) {
	if epsilonD <= 0 {
		return nil, nil, wrapf("Sample", event.ErrSchemaError, "epsilon_d %v must be > 0", epsilonD)
	}

	groups := make(map[groupKey][]int)
	var order []groupKey
	for i, r := range rows {
		k := groupKey{Src: r.SrcState, Activity: r.Activity, Tgt: r.TgtState}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].canonical() < order[j].canonical() })

	var duplicateRequests []string
	removed := make(map[string]bool)

	for _, k := range order {
		indices := groups[k]
		seen := make(map[string]bool)
		var caseIDs []string
		for _, i := range indices {
			cid := rows[i].CaseID
			if !seen[cid] {
				seen[cid] = true
				caseIDs = append(caseIDs, cid)
			}
		}
		n := len(caseIDs)
		if n == 0 {
			continue
		}

		noise := src.Laplace(1.0 / epsilonD)
		target := int(math.Round(float64(n) + noise))
		d := target - n

		switch {
		case d > 0:
			if d > n {
				d = n
			}
			for _, idx := range src.SampleWithReplacement(n, d) {
				duplicateRequests = append(duplicateRequests, caseIDs[idx])
			}
		case d < 0:
			want := -d
			if want > n {
				want = n
			}
			for _, idx := range src.SampleWithoutReplacement(n, want) {
				removed[caseIDs[idx]] = true
			}
		}
	}

	survivors := make([]budget.Row, 0, len(rows))
	for _, r := range rows {
		if !removed[r.CaseID] {
			survivors = append(survivors, r)
		}
	}

	byCase := make(map[string][]budget.Row)
	for _, r := range survivors {
		byCase[r.CaseID] = append(byCase[r.CaseID], r)
	}

	dup := make(DuplicationCounter)
	out := append([]budget.Row(nil), survivors...)
	for _, cid := range duplicateRequests {
		caseRows, ok := byCase[cid]
		if !ok || len(caseRows) == 0 {
			continue
		}
		dup[cid]++
		newID := fmt.Sprintf("%s_dup%d", cid, dup[cid])
		for _, r := range caseRows {
			nr := r
			nr.CaseID = newID
			out = append(out, nr)
		}
	}

	return out, dup, nil
}
