package review

// Summary holds the derived figures a front end displays for a review.
type Summary struct {
	Score         int     `json:"score"`
	MaxPoints     int     `json:"max_points"`
	Percent       float64 `json:"percent"`
	Fatal         bool    `json:"fatal"`
	FatalCriteria []int   `json:"fatal_criteria,omitempty"`
}

// Summarize scores the review and derives the percentage of available points.
// It fails exactly when Score fails.
func (r *Review) Summarize() (Summary, error) {
	total, fatal, err := r.tally()
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Score:         total,
		MaxPoints:     r.MaxPoints(),
		Fatal:         len(fatal) > 0,
		FatalCriteria: fatal,
	}
	if s.Fatal {
		s.Score = 0
	}
	if s.MaxPoints > 0 {
		s.Percent = float64(s.Score) / float64(s.MaxPoints) * 100
	}
	return s, nil
}
