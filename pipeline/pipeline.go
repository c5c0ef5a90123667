package pipeline

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/reconstruct"
	"github.com/dpseq/dafsa-privacy/riskfilter"
	"github.com/dpseq/dafsa-privacy/rng"
	"github.com/dpseq/dafsa-privacy/sampling"
)

// Result bundles the anonymized log with the automaton built along the
// way, so callers that also want a DAFSA rendering do not have to walk
// the cases a second time.
type Result struct {
	Rows      []event.OutputRow
	Automaton *dafsa.Automaton
}

// Run executes the full pipeline over cases: each case's events are
// sorted by timestamp and cases are ordered by CaseID before anything
// else runs, so that downstream group composition -- and therefore RNG
// consumption -- depends only on the input data, never on input order.
func Run(cases []event.Case, params event.Parameters, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	cases = sortedCases(cases)
	logger.Info("pipeline starting", zap.Int("cases", len(cases)))

	automaton, tMin, err := buildAutomaton(cases, logger)
	if err != nil {
		return Result{}, err
	}

	annotated, err := annotate.Annotate(cases, automaton, tMin, params.Delta)
	if err != nil {
		// annotate already wraps its own sentinel (unknown transition or
		// numeric error); keep it in the chain rather than relabeling it.
		return Result{}, fmt.Errorf("pipeline.Run: annotate: %w", err)
	}
	logger.Info("annotation complete", zap.Int("rows", len(annotated)))

	filtered, err := riskfilter.Filter(annotated, params.Delta, params.Theta)
	if err != nil {
		return Result{}, wrapf("Run", event.ErrNumericError, "risk filter: %v", err)
	}
	logger.Info("risk filter complete", zap.Int("rows", len(filtered)))

	budgeted := budget.Derive(filtered, params.Delta)

	source := rng.New(params.Seed)
	sampled, dup, err := sampling.Sample(budgeted, params.EpsilonD, source)
	if err != nil {
		return Result{}, wrapf("Run", event.ErrSchemaError, "sampling: %v", err)
	}
	logger.Info("case sampling complete", zap.Int("rows", len(sampled)), zap.Int("duplicated_cases", len(dup)))

	noised := sampling.InjectTimeNoise(sampled, dup, source)

	tMinNs, tMaxNs := envelope(sampled)
	final := reconstruct.Run(noised, tMinNs, tMaxNs)
	logger.Info("pipeline complete", zap.Int("output_rows", len(final)))

	return Result{Rows: final, Automaton: automaton}, nil
}

func sortedCases(cases []event.Case) []event.Case {
	out := make([]event.Case, len(cases))
	copy(out, cases)
	sort.Slice(out, func(i, j int) bool { return out[i].CaseID < out[j].CaseID })
	for i := range out {
		events := make([]event.Event, len(out[i].Events))
		copy(events, out[i].Events)
		sort.SliceStable(events, func(a, b int) bool { return events[a].Timestamp.Before(events[b].Timestamp) })
		out[i].Events = events
	}
	return out
}

func buildAutomaton(cases []event.Case, logger *zap.Logger) (*dafsa.Automaton, time.Time, error) {
	var tMin time.Time
	sequences := make([]event.Sequence, len(cases))
	for i, c := range cases {
		acts := make([]string, 0, len(c.Events)+1)
		acts = append(acts, event.StartActivity)
		for _, ev := range c.Events {
			acts = append(acts, ev.Activity)
			if tMin.IsZero() || ev.Timestamp.Before(tMin) {
				tMin = ev.Timestamp
			}
		}
		sequences[i] = event.Sequence{CaseID: c.CaseID, Activities: acts}
	}

	automaton, err := dafsa.Build(sequences)
	if err != nil {
		return nil, time.Time{}, wrapf("buildAutomaton", event.ErrStructuralError, "dafsa.Build: %v", err)
	}
	logger.Info("automaton built", zap.Int("states", automaton.NumStates()))
	return automaton, tMin, nil
}

// envelope returns the [min, max] original Unix-nanosecond timestamp
// span of rows, or (0, 0) for an empty input.
func envelope(rows []budget.Row) (int64, int64) {
	if len(rows) == 0 {
		return 0, 0
	}
	lo, hi := rows[0].Timestamp, rows[0].Timestamp
	for _, r := range rows {
		if r.Timestamp < lo {
			lo = r.Timestamp
		}
		if r.Timestamp > hi {
			hi = r.Timestamp
		}
	}
	return lo, hi
}
