package budget

import (
	"math"

	"github.com/dpseq/dafsa-privacy/riskfilter"
)

// sensitivity r is fixed at 1: the query sensitivity of a single
// timestamp observation.
const sensitivity = 1.0

const (
	pkFloor   = 1e-6
	pkCeiling = 1 - 1e-6
)

// Row augments a riskfilter.Row with the per-event time-noise budget.
type Row struct {
	CaseID    string
	Activity  string
	Timestamp int64
	SrcState  int
	TgtState  int
	RelTime   float64
	NewPK     float64
	EpsilonT  float64
}

// clip bounds p to [pkFloor, pkCeiling] so the closed-form epsilon_t
// term never divides by zero or takes log(0).
func clip(p float64) float64 {
	if p < pkFloor {
		return pkFloor
	}
	if p > pkCeiling {
		return pkCeiling
	}
	return p
}

// epsilonT computes the per-row time-noise budget from New PK and
// delta, returning 0 (the "do not perturb" sentinel) whenever the
// closed-form term falls outside (0,1).
func epsilonT(newPK, delta float64) float64 {
	p := clip(newPK)
	term := (p / (1 - p)) * ((1 / delta) + p - 1)
	if term <= 0 || term >= 1 {
		return 0
	}
	eps := -math.Log(term) / sensitivity
	if eps < 0 {
		return 0
	}
	return eps
}

// Derive computes the per-row time-noise budget for every row.
func Derive(rows []riskfilter.Row, delta float64) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{
			CaseID:    r.CaseID,
			Activity:  r.Activity,
			Timestamp: r.Timestamp,
			SrcState:  r.SrcState,
			TgtState:  r.TgtState,
			RelTime:   r.RelTime,
			NewPK:     r.NewPK,
			EpsilonT:  epsilonT(r.NewPK, delta),
		}
	}
	return out
}
