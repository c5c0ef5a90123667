package annotate

import (
	"time"

	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
)

// Annotate resolves SrcState/TgtState/RelTime for every event via Walk,
// then for every transition group computes normalized time, a precision
// window, and a PK value, in the canonical group order that fixes
// reproducibility.
func Annotate(cases []event.Case, automaton *dafsa.Automaton, tMin time.Time, delta float64) ([]Row, error) {
	rows, err := Walk(cases, automaton, tMin)
	if err != nil {
		return nil, err
	}

	groups := GroupIndices(rows)
	for _, key := range SortedKeys(groups) {
		indices := groups[key]
		normalizeGroup(rows, indices)
		precisionGroup(rows, indices)
		if err := EstimatePKGroup(rows, indices, delta); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
