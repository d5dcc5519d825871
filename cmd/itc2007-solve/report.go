package main

import (
	"os"

	"github.com/spf13/cobra"

	"itc2007-cct/internal/itcio"
	"itc2007-cct/internal/report"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report INPUT SOLUTION",
		Short: "Print the itemized cost breakdown of a solution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readInstance(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			sol, err := itcio.ReadSolution(args[1], f, m)
			if err != nil {
				return err
			}

			return report.Summary(os.Stdout, sol)
		},
	}
}
