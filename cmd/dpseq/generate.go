package main

import (
	"github.com/spf13/cobra"

	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/ioevent"
	"github.com/dpseq/dafsa-privacy/rng"
	"github.com/dpseq/dafsa-privacy/synthlog"
)

func newGenerateCommand() *cobra.Command {
	var input, output string
	var nCases int
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic log carrying the transition-time statistics of a real one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := ioevent.ReadCSV(input)
			if err != nil {
				return err
			}
			cases = sortedCases(cases)

			var tMin = earliestTimestamp(cases)
			sequences := make([]event.Sequence, len(cases))
			for i, c := range cases {
				acts := []string{event.StartActivity}
				for _, ev := range c.Events {
					acts = append(acts, ev.Activity)
				}
				sequences[i] = event.Sequence{CaseID: c.CaseID, Activities: acts}
			}
			automaton, err := dafsa.Build(sequences)
			if err != nil {
				return err
			}

			annotated, err := annotate.Annotate(cases, automaton, tMin, event.DefaultParameters().Delta)
			if err != nil {
				return err
			}

			synthetic := synthlog.Generate(annotated, nCases, rng.New(seed))
			return ioevent.WriteCSV(output, flatten(synthetic))
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "real CSV log to learn transition statistics from")
	cmd.Flags().StringVar(&output, "output", "synthetic.csv", "output CSV path")
	cmd.Flags().IntVar(&nCases, "cases", 500, "number of synthetic cases to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "PRNG seed")
	cmd.MarkFlagRequired("input")
	return cmd
}

func flatten(cases []event.Case) []event.OutputRow {
	var out []event.OutputRow
	for _, c := range cases {
		for _, ev := range c.Events {
			out = append(out, event.OutputRow{CaseID: c.CaseID, Activity: ev.Activity, Timestamp: ev.Timestamp})
		}
	}
	return out
}
