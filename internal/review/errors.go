package review

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports a selection index outside a criterion's options.
	ErrIndexOutOfRange = errors.New("selection index out of range")

	// ErrInvalidSelection reports that a review could not be scored because a
	// criterion's selection is stale.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidOptionScore reports text that is neither FATAL nor an integer.
	ErrInvalidOptionScore = errors.New("invalid option score")
)

// SelectionError is returned when an index does not address an option.
type SelectionError struct {
	Index int
	Len   int
}

func (e *SelectionError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%v: index %d, criterion has no options", ErrIndexOutOfRange, e.Index)
	}
	return fmt.Sprintf("%v: index %d, want 0..%d", ErrIndexOutOfRange, e.Index, e.Len-1)
}

func (e *SelectionError) Unwrap() error { return ErrIndexOutOfRange }

// ScoringError identifies the criterion, by position, that stopped scoring.
type ScoringError struct {
	Criterion int
	Err       error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("%v at criterion %d: %v", ErrInvalidSelection, e.Criterion, e.Err)
}

// Unwrap exposes both the sentinel and the underlying selection error, so
// errors.Is matches ErrInvalidSelection and ErrIndexOutOfRange.
func (e *ScoringError) Unwrap() []error { return []error{ErrInvalidSelection, e.Err} }
