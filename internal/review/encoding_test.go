package review

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseOptionScore(t *testing.T) {
	tests := []struct {
		input   string
		want    CriterionOptionScore
		wantErr bool
	}{
		{"FATAL", Fatal(), false},
		{"fatal", Fatal(), false},
		{" Fatal ", Fatal(), false},
		{"5", Points(5), false},
		{"-2", Points(-2), false},
		{"0", Points(0), false},
		{"", CriterionOptionScore{}, true},
		{"1.5", CriterionOptionScore{}, true},
		{"FATALITY", CriterionOptionScore{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOptionScore(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOptionScore) {
					t.Errorf("ParseOptionScore(%q) error = %v, want ErrInvalidOptionScore", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptionScore(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOptionScore(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptionScoreString(t *testing.T) {
	if got := Fatal().String(); got != "FATAL" {
		t.Errorf("Fatal().String() = %q", got)
	}
	if got := Points(-7).String(); got != "-7" {
		t.Errorf("Points(-7).String() = %q", got)
	}
}

func TestOptionScoreJSON(t *testing.T) {
	data, err := json.Marshal([]CriterionOptionScore{Points(4), Fatal()})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[4,"FATAL"]` {
		t.Errorf("Marshal = %s", data)
	}

	var got []CriterionOptionScore
	if err := json.Unmarshal([]byte(`[-3,"fatal","12"]`), &got); err != nil {
		t.Fatal(err)
	}
	want := []CriterionOptionScore{Points(-3), Fatal(), Points(12)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	var bad CriterionOptionScore
	if err := json.Unmarshal([]byte(`2.5`), &bad); !errors.Is(err, ErrInvalidOptionScore) {
		t.Errorf("Unmarshal(2.5) error = %v, want ErrInvalidOptionScore", err)
	}
}

func TestCriterionJSONKeepsStaleIndex(t *testing.T) {
	input := `{"criteria":[{"label":"Greeting","options":[{"label":"YES","score":2}],"selection_index":4}]}`

	var r Review
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatal(err)
	}
	if got := r.Criteria[0].SelectionIndex(); got != 4 {
		t.Errorf("SelectionIndex() = %d, want 4", got)
	}
	if _, err := r.Score(); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Score() error = %v, want ErrInvalidSelection", err)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != input {
		t.Errorf("round trip:\n got %s\nwant %s", out, input)
	}
}

func TestCriterionJSONEmptyOptions(t *testing.T) {
	data, err := json.Marshal(NewCriterion("Empty"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"options":[]`) {
		t.Errorf("expected empty options array, got %s", data)
	}
}
