package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/falvamo/qams-core/internal/reviewfile"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSelectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "select <review-file> <criterion> <option>",
		Short: "Answer a criterion",
		Long: `Answer a criterion in a review file.

Criterion and option may be given as a 1-based number or as a label. Labels
match case-insensitively; a partial label is accepted when it picks out a
single best match.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(c, args[0], args[1], args[2])
		},
	}
}

func runSelect(c *cli, path, criterionArg, optionArg string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	labels := make([]string, len(doc.Review.Criteria))
	for i, cr := range doc.Review.Criteria {
		labels[i] = cr.Label
	}
	ci, err := resolveChoice("criterion", labels, criterionArg)
	if err != nil {
		return exitError(3, "%v", err)
	}
	cr := &doc.Review.Criteria[ci]

	labels = make([]string, len(cr.Options))
	for i, opt := range cr.Options {
		labels[i] = opt.Label
	}
	oi, err := resolveChoice("option", labels, optionArg)
	if err != nil {
		return exitError(3, "criterion %d (%s): %v", ci+1, cr.Label, err)
	}

	if err := cr.SetSelection(oi); err != nil {
		return exitError(3, "criterion %d (%s): %v", ci+1, cr.Label, err)
	}
	if err := reviewfile.Save(path, doc); err != nil {
		return fmt.Errorf("failed to write review: %w", err)
	}
	c.logger.Debug("Selection updated",
		zap.String("review", doc.ID),
		zap.Int("criterion", ci),
		zap.Int("option", oi))

	fmt.Fprintf(c.out, "%d. %s -> %s\n", ci+1, cr.Label, cr.Options[oi].Label)
	return nil
}

// resolveChoice maps arg to an index into labels. It accepts a 1-based
// number, an exact label (any case), or a fuzzy label match with a single
// best candidate.
func resolveChoice(kind string, labels []string, arg string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("no %ss to choose from", kind)
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(labels) {
			return 0, fmt.Errorf("%s %d not in 1..%d", kind, n, len(labels))
		}
		return n - 1, nil
	}

	exact := -1
	for i, l := range labels {
		if strings.EqualFold(l, arg) {
			if exact >= 0 {
				return 0, fmt.Errorf("%s %q is ambiguous", kind, arg)
			}
			exact = i
		}
	}
	if exact >= 0 {
		return exact, nil
	}

	ranks := fuzzy.RankFindFold(arg, labels)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("no %s matches %q", kind, arg)
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return 0, fmt.Errorf("%s %q is ambiguous: %q or %q", kind, arg, ranks[0].Target, ranks[1].Target)
	}
	return ranks[0].OriginalIndex, nil
}
