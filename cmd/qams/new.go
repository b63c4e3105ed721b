package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/falvamo/qams-core/internal/reviewfile"
	"github.com/falvamo/qams-core/internal/scorecard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type newFlags struct {
	out      string
	subject  string
	reviewer string
	force    bool
}

func newNewCmd(c *cli) *cobra.Command {
	f := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new <scorecard>",
		Short: "Start a review from a built-in scorecard name or a scorecard YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(c, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.out, "out", "review.json", "Review file to create")
	flags.StringVar(&f.subject, "subject", "", "What is being reviewed (call, ticket, PR...)")
	flags.StringVar(&f.reviewer, "reviewer", envOr(envReviewer, ""), "Reviewer name (env "+envReviewer+")")
	flags.BoolVar(&f.force, "force", false, "Overwrite an existing review file")

	return cmd
}

func runNew(c *cli, scorecardArg string, f *newFlags) error {
	sc, err := scorecard.Resolve(scorecardArg)
	if err != nil {
		return exitError(3, "failed to load scorecard: %v", err)
	}
	c.logger.Debug("Loaded scorecard",
		zap.String("name", sc.Name),
		zap.Int("criteria", len(sc.Criteria)))

	if !f.force {
		if _, err := os.Stat(f.out); err == nil {
			return exitError(3, "%s already exists (use --force to overwrite)", f.out)
		} else if !errors.Is(err, os.ErrNotExist) {
			return exitError(3, "failed to check %s: %v", f.out, err)
		}
	}

	r, err := sc.NewReview()
	if err != nil {
		return exitError(5, "scorecard %s: %v", sc.Name, err)
	}
	doc := reviewfile.New(sc.Name, f.subject, f.reviewer, r)
	if err := reviewfile.Save(f.out, doc); err != nil {
		return fmt.Errorf("failed to write review: %w", err)
	}
	c.logger.Info("Created review", zap.String("id", doc.ID), zap.String("path", f.out))

	fmt.Fprintf(c.out, "Created %s (%s, %d criteria)\n", f.out, sc.Name, len(r.Criteria))
	return nil
}
