package sampling

import (
	"strings"

	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/rng"
)

// Row is a budgeted row with RelTime replaced by its noised value.
type Row struct {
	CaseID       string
	Activity     string
	Timestamp    int64
	SrcState     int
	TgtState     int
	NoisyRelTime float64
}

// originCaseID strips a "_dupN" suffix added by Sample, recovering the
// case id the duplication counter was keyed on.
func originCaseID(caseID string) string {
	if i := strings.LastIndex(caseID, "_dup"); i >= 0 {
		return caseID[:i]
	}
	return caseID
}

// InjectTimeNoise perturbs RelTime for every row: a row whose case was
// duplicated D-1 times (D total copies including the original) has its
// epsilon_t divided by D before noising, so the aggregate privacy
// budget spent on that case's timing does not grow with its copies.
// Rows with epsilon_t==0 (the "do not perturb" sentinel) pass through
// unperturbed.
func InjectTimeNoise(rows []budget.Row, dup DuplicationCounter, src *rng.Source) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		origin := originCaseID(r.CaseID)
		d := dup[origin] + 1

		noisy := r.RelTime
		if r.EpsilonT > 0 {
			adjEps := r.EpsilonT / float64(d)
			if adjEps > 0 {
				noisy = r.RelTime + src.Laplace(1.0/adjEps)
			}
		}

		out[i] = Row{
			CaseID:       r.CaseID,
			Activity:     r.Activity,
			Timestamp:    r.Timestamp,
			SrcState:     r.SrcState,
			TgtState:     r.TgtState,
			NoisyRelTime: noisy,
		}
	}
	return out
}
