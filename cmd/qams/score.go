package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/falvamo/qams-core/internal/render"
	"github.com/falvamo/qams-core/internal/review"
	"github.com/falvamo/qams-core/internal/reviewfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type scoreFlags struct {
	format       string
	out          string
	color        bool
	failBelow    int
	hasFailBelow bool
}

func newScoreCmd(c *cli) *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score <review-file>",
		Short: "Score a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasFailBelow = cmd.Flags().Changed("fail-below")
			return runScore(c, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", envOr(envFormat, "text"), "Output format: text, json, or md (env "+envFormat+")")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.color, "color", false, "Colour text output")
	flags.IntVar(&f.failBelow, "fail-below", 0, "Exit 2 if the score is below this value")

	return cmd
}

// scoreOutput is the JSON form of a scored review.
type scoreOutput struct {
	ID        string         `json:"id"`
	Scorecard string         `json:"scorecard"`
	Subject   string         `json:"subject,omitempty"`
	Summary   review.Summary `json:"summary"`
}

func runScore(c *cli, path string, f *scoreFlags) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	summary, err := doc.Review.Summarize()
	if err != nil {
		var se *review.ScoringError
		if errors.As(err, &se) {
			return exitError(5, "cannot score %s: criterion %d (%s): %v",
				path, se.Criterion+1, doc.Review.Criteria[se.Criterion].Label, se.Err)
		}
		return exitError(5, "cannot score %s: %v", path, err)
	}
	c.logger.Debug("Scored review",
		zap.String("review", doc.ID),
		zap.Int("score", summary.Score),
		zap.Bool("fatal", summary.Fatal))

	var output string
	switch f.format {
	case "text":
		output = render.Text(doc, summary, f.color)
	case "md":
		output = render.Markdown(doc, summary)
	case "json":
		data, err := json.MarshalIndent(scoreOutput{
			ID:        doc.ID,
			Scorecard: doc.Scorecard,
			Subject:   doc.Subject,
			Summary:   summary,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		c.logger.Debug("Writing output", zap.String("path", f.out))
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(c.out, output)
	}

	if f.hasFailBelow && summary.Score < f.failBelow {
		return exitError(2, "score %d is below %d", summary.Score, f.failBelow)
	}
	return nil
}

// loadDocument maps review file failures to exit codes: 5 for a malformed
// document, 3 for anything else.
func loadDocument(path string) (*reviewfile.Document, error) {
	doc, err := reviewfile.Load(path)
	if err != nil {
		if errors.Is(err, reviewfile.ErrInvalidDocument) {
			return nil, exitError(5, "%v", err)
		}
		return nil, exitError(3, "failed to load review: %v", err)
	}
	return doc, nil
}
