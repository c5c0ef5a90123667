package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dpseq/dafsa-privacy/config"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "dpseq",
		Short:         "DAFSA-annotated differential-privacy event-log anonymizer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.BindFlags(root)

	root.AddCommand(newRunCommand())
	root.AddCommand(newInteractiveCommand())
	root.AddCommand(newPatternsCommand())
	root.AddCommand(newGenerateCommand())
	return root
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
