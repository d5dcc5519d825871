package main

import (
	"errors"

	"github.com/spf13/cobra"

	"itc2007-cct/internal/obs"
	"itc2007-cct/internal/xerrors"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "itc2007-solve",
		Short: "Curriculum-based course timetabling solver (ITC-2007 track 3)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			obs.Init(verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise logging to debug level")

	root.AddCommand(newSolveCmd(), newValidateCmd(), newReportCmd())
	return root
}

// exitCodeFor maps an error to the process exit code SPEC_FULL §6.3
// documents: 0 success, 1 input error, 2 configuration error, 3
// infeasible instance, 4 internal invariant violation.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var cat xerrors.Categorized
	if errors.As(err, &cat) {
		switch cat.Category() {
		case xerrors.CategoryInput:
			return 1
		case xerrors.CategoryConfig:
			return 2
		case xerrors.CategoryInfeasible:
			return 3
		case xerrors.CategoryInternal:
			return 4
		}
	}
	return 1
}
