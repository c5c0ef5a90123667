package patterns

import (
	"sort"
	"strings"

	"github.com/dpseq/dafsa-privacy/event"
)

// Pattern is one distinct case activity sequence and how many cases
// followed it.
type Pattern struct {
	Sequence string
	Count    int
}

// MostCommon groups cases by their activity sequence (events already
// sorted by Timestamp within each case) and ranks sequences by
// descending count, breaking ties lexicographically for determinism.
func MostCommon(cases []event.Case) []Pattern {
	counts := make(map[string]int)
	for _, c := range cases {
		acts := make([]string, len(c.Events))
		for i, ev := range c.Events {
			acts[i] = ev.Activity
		}
		counts[strings.Join(acts, "")]++
	}

	out := make([]Pattern, 0, len(counts))
	for seq, n := range counts {
		out = append(out, Pattern{Sequence: seq, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}
