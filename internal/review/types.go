// Package review defines the shared QA review model and its scoring rule.
package review

// CriterionOptionScore is the scoring rule attached to an option: either a
// signed point value or the fatal marker. The zero value is Points(0).
type CriterionOptionScore struct {
	fatal  bool
	points int
}

// Points returns a score that adds v to the review total when selected.
func Points(v int) CriterionOptionScore {
	return CriterionOptionScore{points: v}
}

// Fatal returns a score that forces the review total to zero when selected.
func Fatal() CriterionOptionScore {
	return CriterionOptionScore{fatal: true}
}

// Contribution reports what selecting this option adds to a review.
// For a fatal score points is always 0 and fatal is true.
func (s CriterionOptionScore) Contribution() (points int, fatal bool) {
	if s.fatal {
		return 0, true
	}
	return s.points, false
}

func (s CriterionOptionScore) IsFatal() bool { return s.fatal }

// CriterionOption is one selectable answer to a criterion.
type CriterionOption struct {
	Label string               `json:"label"`
	Score CriterionOptionScore `json:"score"`
}

// NewOption pairs a label with a score.
func NewOption(label string, score CriterionOptionScore) CriterionOption {
	return CriterionOption{Label: label, Score: score}
}

// Criterion is a single question in a review with a menu of options and a
// pointer to the chosen one.
//
// The selection is stored as an index. Replacing Options does not revalidate
// it; a stale index is reported by SelectedOption and Review.Score.
type Criterion struct {
	Label   string
	Options []CriterionOption

	selection int
}

// NewCriterion returns a criterion with the first option selected.
func NewCriterion(label string, options ...CriterionOption) Criterion {
	return Criterion{Label: label, Options: options}
}

// SelectionIndex returns the raw selection index, which may be stale.
func (c *Criterion) SelectionIndex() int { return c.selection }

// SelectedOption returns the currently selected option.
func (c *Criterion) SelectedOption() (CriterionOption, error) {
	if c.selection < 0 || c.selection >= len(c.Options) {
		return CriterionOption{}, &SelectionError{Index: c.selection, Len: len(c.Options)}
	}
	return c.Options[c.selection], nil
}

// SetSelection selects Options[i]. On error the selection is unchanged.
func (c *Criterion) SetSelection(i int) error {
	if i < 0 || i >= len(c.Options) {
		return &SelectionError{Index: i, Len: len(c.Options)}
	}
	c.selection = i
	return nil
}

// SelectionScore returns the score of the selected option.
func (c *Criterion) SelectionScore() (CriterionOptionScore, error) {
	opt, err := c.SelectedOption()
	if err != nil {
		return CriterionOptionScore{}, err
	}
	return opt.Score, nil
}

// MaxPoints returns the highest point value among the options, ignoring
// fatal options. It is never negative.
func (c *Criterion) MaxPoints() int {
	best := 0
	for _, opt := range c.Options {
		if p, fatal := opt.Score.Contribution(); !fatal && p > best {
			best = p
		}
	}
	return best
}

// Review is the complete set of criteria and selections for one QA evaluation.
type Review struct {
	Criteria []Criterion `json:"criteria"`
}

// MaxPoints returns the sum of each criterion's MaxPoints.
func (r *Review) MaxPoints() int {
	total := 0
	for i := range r.Criteria {
		total += r.Criteria[i].MaxPoints()
	}
	return total
}
