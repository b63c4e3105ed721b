package main

import (
	"fmt"

	"github.com/falvamo/qams-core/internal/scorecard"
	"github.com/spf13/cobra"
)

func newScorecardsCmd(c *cli) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "scorecards",
		Short: "List built-in scorecards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScorecards(c, show)
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Print every criterion and option")
	return cmd
}

func runScorecards(c *cli, show bool) error {
	names, err := scorecard.List()
	if err != nil {
		return fmt.Errorf("failed to list scorecards: %w", err)
	}
	for _, name := range names {
		if !show {
			fmt.Fprintln(c.out, name)
			continue
		}
		sc, err := scorecard.LoadBuiltin(name)
		if err != nil {
			return exitError(5, "%v", err)
		}
		fmt.Fprintln(c.out, scorecard.FormatOutline(sc))
	}
	return nil
}
