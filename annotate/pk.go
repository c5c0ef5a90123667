package annotate

import (
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/kde"
)

// minGroupSizeForKDE is the |t|<5 threshold below which PK falls back
// to the constant (1-delta)/2 estimate, a too-little-evidence guard
// rather than an error.
const minGroupSizeForKDE = 5

// EstimatePKGroup sets PK for every row in indices using the group's
// existing NrmRelTime and Prec values (it does not recompute them),
// which is what lets riskfilter reuse this exact function to derive
// New PK over the post-filter row set without re-deriving NrmRelTime or
// Prec.
func EstimatePKGroup(rows []Row, indices []int, delta float64) error {
	if len(indices) < minGroupSizeForKDE {
		fallback := (1 - delta) / 2
		for _, i := range indices {
			rows[i].PK = fallback
		}
		return nil
	}

	t := make([]float64, len(indices))
	for j, i := range indices {
		t[j] = rows[i].NrmRelTime
	}
	est, err := kde.Estimate(t)
	if err != nil {
		return wrapf("EstimatePKGroup", event.ErrNumericError, "kde.Estimate failed: %v", err)
	}

	for j, i := range indices {
		v := t[j]
		p := rows[i].Prec
		low := v - p
		if low < 0 {
			low = 0
		}
		high := v + p
		if high > 1 {
			high = 1
		}
		rows[i].PK = est.CDF(high) - est.CDF(low)
	}
	return nil
}
