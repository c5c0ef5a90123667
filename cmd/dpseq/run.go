package main

import (
	"github.com/spf13/cobra"

	"github.com/dpseq/dafsa-privacy/config"
	"github.com/dpseq/dafsa-privacy/dotrender"
	"github.com/dpseq/dafsa-privacy/ioevent"
	"github.com/dpseq/dafsa-privacy/pipeline"
)

func newRunCommand() *cobra.Command {
	var input, output, dotPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full anonymization pipeline over a CSV event log",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.Load(cmd)
			if err != nil {
				return err
			}

			cases, err := ioevent.ReadCSV(input)
			if err != nil {
				return err
			}

			logger := newLogger()
			defer logger.Sync()

			result, err := pipeline.Run(cases, params, logger)
			if err != nil {
				return err
			}

			if err := ioevent.WriteCSV(output, result.Rows); err != nil {
				return err
			}

			if dotPath != "" {
				dot, err := dotrender.DOT(result.Automaton)
				if err != nil {
					return err
				}
				if err := dotrender.RenderPNG(dot, dotPath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "input CSV log path (CaseID,Activity,Timestamp)")
	cmd.Flags().StringVar(&output, "output", "anonymized.csv", "output CSV path")
	cmd.Flags().StringVar(&dotPath, "dot", "", "optional PNG path for a DAFSA rendering (requires Graphviz's dot binary)")
	cmd.MarkFlagRequired("input")

	return cmd
}
