package reconstruct

import (
	"sort"
	"time"

	"github.com/dpseq/dafsa-privacy/sampling"
)

// Row is a sampled row with an absolute AnonTimestamp reconstructed
// from its NoisyRelTime, still in the (possibly duplicated) CaseID
// space and the original timescale -- Compress and Anonymize run after
// this to produce the final output table.
type Row struct {
	CaseID        string
	Activity      string
	Timestamp     int64 // original, Unix nanoseconds
	SrcState      int
	TgtState      int
	AnonTimestamp int64 // Unix nanoseconds
}

// Reconstruct walks each (possibly duplicated) case in original-
// timestamp order, accumulating max(0, NoisyRelTime) minutes from the
// case's earliest original timestamp. A negative noisy gap clamps to
// zero so AnonTimestamp is always non-decreasing within a case, even
// though its absolute value may drift from the original.
func Reconstruct(rows []sampling.Row) []Row {
	byCase := make(map[string][]int)
	var order []string
	for i, r := range rows {
		if _, ok := byCase[r.CaseID]; !ok {
			order = append(order, r.CaseID)
		}
		byCase[r.CaseID] = append(byCase[r.CaseID], i)
	}

	out := make([]Row, len(rows))
	for _, cid := range order {
		indices := byCase[cid]
		sort.SliceStable(indices, func(i, j int) bool {
			return rows[indices[i]].Timestamp < rows[indices[j]].Timestamp
		})

		t0 := rows[indices[0]].Timestamp
		current := t0
		for _, i := range indices {
			r := rows[i]
			gap := r.NoisyRelTime
			if gap < 0 {
				gap = 0
			}
			current += int64(time.Duration(gap * float64(time.Minute)))
			out[i] = Row{
				CaseID:        r.CaseID,
				Activity:      r.Activity,
				Timestamp:     r.Timestamp,
				SrcState:      r.SrcState,
				TgtState:      r.TgtState,
				AnonTimestamp: current,
			}
		}
	}
	return out
}
