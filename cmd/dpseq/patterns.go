package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dpseq/dafsa-privacy/ioevent"
	"github.com/dpseq/dafsa-privacy/patterns"
)

func newPatternsCommand() *cobra.Command {
	var input string
	var top int

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Print the most common case activity patterns in a log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := ioevent.ReadCSV(input)
			if err != nil {
				return err
			}

			ranked := patterns.MostCommon(sortedCases(cases))
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Pattern", "Count"})
			for _, p := range ranked {
				table.Append([]string{p.Sequence, strconv.Itoa(p.Count)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "input CSV log path")
	cmd.Flags().IntVar(&top, "top", 10, "show only the top N patterns (0 for all)")
	cmd.MarkFlagRequired("input")
	return cmd
}
