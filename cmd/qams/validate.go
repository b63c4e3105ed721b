package main

import (
	"fmt"

	"github.com/falvamo/qams-core/internal/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <review-file>",
		Short: "Check a review file for problems that would prevent scoring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(c, args[0])
		},
	}
}

func runValidate(c *cli, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	errs := schema.Validate(&doc.Review)
	if len(errs) > 0 {
		c.logger.Debug("Validation failed", zap.String("review", doc.ID), zap.Int("errors", len(errs)))
		for _, e := range errs {
			fmt.Fprintf(c.out, "  %s\n", e)
		}
		return exitError(5, "%s: %d problem(s) found", path, len(errs))
	}

	fmt.Fprintf(c.out, "%s: OK (%d criteria)\n", path, len(doc.Review.Criteria))
	return nil
}
