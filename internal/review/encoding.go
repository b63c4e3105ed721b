package review

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FatalLabel is the text form of a fatal option score.
const FatalLabel = "FATAL"

// ParseOptionScore parses "FATAL" (any case) or a signed base-10 integer.
func ParseOptionScore(s string) (CriterionOptionScore, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, FatalLabel) {
		return Fatal(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return CriterionOptionScore{}, fmt.Errorf("%w: %q", ErrInvalidOptionScore, s)
	}
	return Points(n), nil
}

// String returns "FATAL" or the decimal point value.
func (s CriterionOptionScore) String() string {
	if s.fatal {
		return FatalLabel
	}
	return strconv.Itoa(s.points)
}

// MarshalJSON encodes points as a JSON number and fatal as "FATAL".
func (s CriterionOptionScore) MarshalJSON() ([]byte, error) {
	if s.fatal {
		return json.Marshal(FatalLabel)
	}
	return json.Marshal(s.points)
}

// UnmarshalJSON accepts a JSON integer or a string understood by ParseOptionScore.
func (s *CriterionOptionScore) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := ParseOptionScore(text)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOptionScore, data)
	}
	*s = Points(n)
	return nil
}

type criterionJSON struct {
	Label          string            `json:"label"`
	Options        []CriterionOption `json:"options"`
	SelectionIndex int               `json:"selection_index"`
}

// MarshalJSON writes the selection index verbatim, stale or not.
func (c Criterion) MarshalJSON() ([]byte, error) {
	opts := c.Options
	if opts == nil {
		opts = []CriterionOption{}
	}
	return json.Marshal(criterionJSON{Label: c.Label, Options: opts, SelectionIndex: c.selection})
}

// UnmarshalJSON restores the selection index without bounds checking;
// an out-of-range index surfaces when the criterion is scored.
func (c *Criterion) UnmarshalJSON(data []byte) error {
	var raw criterionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Label = raw.Label
	c.Options = raw.Options
	c.selection = raw.SelectionIndex
	return nil
}
