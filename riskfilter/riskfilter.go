package riskfilter

import (
	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/dpseq/dafsa-privacy/event"
)

// Row is an annotated row with PK replaced by New PK; Prec and
// NrmRelTime are dropped, RelTime carries forward for the noise stages
// downstream.
type Row struct {
	CaseID    string
	Activity  string
	Timestamp int64
	SrcState  int
	TgtState  int
	RelTime   float64
	NewPK     float64
}

// Filter drops every case with any row satisfying PK+delta>=theta,
// then re-estimates PK (stored as NewPK) on the survivors, regrouped
// by transition group.
func Filter(rows []annotate.Row, delta, theta float64) ([]Row, error) {
	risky := make(map[string]bool)
	for _, r := range rows {
		if r.PK+delta >= theta {
			risky[r.CaseID] = true
		}
	}

	survivors := make([]annotate.Row, 0, len(rows))
	for _, r := range rows {
		if !risky[r.CaseID] {
			survivors = append(survivors, r)
		}
	}

	groups := annotate.GroupIndices(survivors)
	for _, key := range annotate.SortedKeys(groups) {
		indices := groups[key]
		if err := annotate.EstimatePKGroup(survivors, indices, delta); err != nil {
			return nil, wrapf("Filter", event.ErrNumericError, "re-estimating New PK: %v", err)
		}
	}

	out := make([]Row, len(survivors))
	for i, r := range survivors {
		out[i] = Row{
			CaseID:    r.CaseID,
			Activity:  r.Activity,
			Timestamp: r.Timestamp,
			SrcState:  r.SrcState,
			TgtState:  r.TgtState,
			RelTime:   r.RelTime,
			NewPK:     r.PK,
		}
	}
	return out, nil
}
