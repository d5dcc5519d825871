package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"itc2007-cct/internal/itcio"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate INPUT SOLUTION",
		Short: "Check a solution file against an instance and report hard-constraint violations",
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

			if sol.SatisfiesHard() {
				fmt.Println("feasible: no hard constraint violations")
				return nil
			}
			fmt.Printf("infeasible: %d hard constraint violation(s)\n", sol.TotalViolations())
			return nil
		},
	}
}
