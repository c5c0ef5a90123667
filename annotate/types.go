package annotate

import "fmt"

// Row is an annotated event: the original event fields plus the
// automaton walk result and the per-group privacy statistics.
type Row struct {
	CaseID    string
	Activity  string
	Timestamp int64 // Unix nanoseconds, avoids importing time into hot loops
	SrcState  int
	TgtState  int

	RelTime    float64
	NrmRelTime float64
	Prec       float64
	PK         float64
}

// GroupKey is the unordered identity (SrcState, Activity, TgtState) over
// which every per-group statistic downstream is computed.
type GroupKey struct {
	Src      int
	Activity string
	Tgt      int
}

// canonical returns the group's canonical string form, used to sort
// groups by (SrcState, Activity, TgtState) as strings, fixing the RNG
// consumption order in later stages.
func (g GroupKey) canonical() string {
	return fmt.Sprintf("%d|%s|%d", g.Src, g.Activity, g.Tgt)
}

func keyOf(r Row) GroupKey {
	return GroupKey{Src: r.SrcState, Activity: r.Activity, Tgt: r.TgtState}
}
