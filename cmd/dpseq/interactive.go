package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dpseq/dafsa-privacy/annotate"
	"github.com/dpseq/dafsa-privacy/budget"
	"github.com/dpseq/dafsa-privacy/dafsa"
	"github.com/dpseq/dafsa-privacy/event"
	"github.com/dpseq/dafsa-privacy/ioevent"
	"github.com/dpseq/dafsa-privacy/reconstruct"
	"github.com/dpseq/dafsa-privacy/riskfilter"
	"github.com/dpseq/dafsa-privacy/rng"
	"github.com/dpseq/dafsa-privacy/sampling"
)

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for a dataset and delta/theta, previewing the risk filter until satisfied",
		RunE:  runInteractive,
	}
}

// runInteractive mirrors a two-phase prompt loop: repeatedly re-run
// annotation and risk filtering against operator-chosen delta/theta
// until they accept the preview, then run budget derivation, sampling,
// and reconstruction exactly once to produce the final log.
func runInteractive(cmd *cobra.Command, args []string) error {
	stdin := bufio.NewScanner(os.Stdin)

	var filtered []riskfilter.Row
	var chosenDelta, epsilonD float64
	var seed int64

	for {
		datasetPath := prompt(stdin, "Enter dataset path: ")
		delta := promptFloat(stdin, "Enter delta value: ")
		theta := promptFloat(stdin, "Enter condition number (theta): ")

		cases, err := ioevent.ReadCSV(datasetPath)
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

		annotated, err := annotate.Annotate(cases, automaton, tMin, delta)
		if err != nil {
			return err
		}
		filtered, err = riskfilter.Filter(annotated, delta, theta)
		if err != nil {
			return err
		}

		printCounts(len(annotated), len(filtered))

		params := event.DefaultParameters()
		params.Delta = delta
		params.Theta = theta
		chosenDelta = delta
		epsilonD = params.EpsilonD
		seed = params.Seed

		if prompt(stdin, "Do you want to choose other values? (y/n): ") != "y" {
			break
		}
	}

	budgeted := budget.Derive(filtered, chosenDelta)
	src := rng.New(seed)
	sampled, dup, err := sampling.Sample(budgeted, epsilonD, src)
	if err != nil {
		return err
	}
	noised := sampling.InjectTimeNoise(sampled, dup, src)
	tMinNs, tMaxNs := envelopeNs(sampled)
	final := reconstruct.Run(noised, tMinNs, tMaxNs)

	fmt.Println("\nFinal anonymized log:")
	printPreview(final)
	return nil
}

func prompt(s *bufio.Scanner, label string) string {
	fmt.Print(label)
	s.Scan()
	return strings.TrimSpace(s.Text())
}

func promptFloat(s *bufio.Scanner, label string) float64 {
	v, _ := strconv.ParseFloat(prompt(s, label), 64)
	return v
}

func printCounts(before, after int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stage", "Rows"})
	table.Append([]string{"Annotated", strconv.Itoa(before)})
	table.Append([]string{"Filtered", strconv.Itoa(after)})
	table.Render()
}

func printPreview(rows []event.OutputRow) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Case ID", "Activity", "Timestamp"})
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for _, r := range rows[:limit] {
		table.Append([]string{r.CaseID, r.Activity, r.Timestamp.UTC().Format("2006-01-02T15:04:05Z")})
	}
	table.Render()
}
