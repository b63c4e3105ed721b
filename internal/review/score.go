package review

// Score computes the review total: the signed sum of each selected option's
// points, or 0 if any selected option is fatal. An empty review scores 0.
//
// Every criterion must have a valid selection; the first stale one aborts
// scoring with a *ScoringError, even when a fatal selection is also present.
func (r *Review) Score() (int, error) {
	total, fatal, err := r.tally()
	if err != nil {
		return 0, err
	}
	if len(fatal) > 0 {
		return 0, nil
	}
	return total, nil
}

// tally resolves every selection in order, summing points and collecting the
// positions of fatal selections.
func (r *Review) tally() (int, []int, error) {
	var (
		total int
		fatal []int
	)
	for i := range r.Criteria {
		opt, err := r.Criteria[i].SelectedOption()
		if err != nil {
			return 0, nil, &ScoringError{Criterion: i, Err: err}
		}
		points, isFatal := opt.Score.Contribution()
		if isFatal {
			fatal = append(fatal, i)
			continue
		}
		total += points
	}
	return total, fatal, nil
}
