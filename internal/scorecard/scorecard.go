// Package scorecard loads review templates: the criteria, options, and point
// values a content author defines for one kind of QA review.
package scorecard

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/falvamo/qams-core/internal/review"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Scorecard defines the criteria a review is built from.
type Scorecard struct {
	Name        string         `yaml:"name"`
	Version     int            `yaml:"version"`
	Description string         `yaml:"description"`
	Criteria    []CriterionDef `yaml:"criteria"`
}

// CriterionDef is one question on the scorecard.
type CriterionDef struct {
	Label   string      `yaml:"label"`
	Default int         `yaml:"default"`
	Options []OptionDef `yaml:"options"`
}

// OptionDef is one answer. Score is "FATAL" or an integer.
type OptionDef struct {
	Label string `yaml:"label"`
	Score string `yaml:"score"`
}

// LoadBuiltin loads a built-in scorecard by name.
func LoadBuiltin(name string) (*Scorecard, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scorecard.LoadBuiltin: unknown scorecard %q: %w", name, err)
	}
	sc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("scorecard.LoadBuiltin: parse %q: %w", name, err)
	}
	return sc, nil
}

// Load reads a scorecard from a YAML file.
func Load(path string) (*Scorecard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scorecard.Load: %w", err)
	}
	sc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("scorecard.Load: parse %s: %w", path, err)
	}
	return sc, nil
}

// Resolve treats nameOrPath as a file if one exists there, otherwise as a
// built-in scorecard name.
func Resolve(nameOrPath string) (*Scorecard, error) {
	if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
		return Load(nameOrPath)
	}
	return LoadBuiltin(nameOrPath)
}

func parse(data []byte) (*Scorecard, error) {
	var sc Scorecard
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// List returns the names of all built-in scorecards.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Validate reports every authoring problem found in the scorecard.
func (sc *Scorecard) Validate() error {
	var errs []error
	if sc.Name == "" {
		errs = append(errs, errors.New("name: required"))
	}
	if len(sc.Criteria) == 0 {
		errs = append(errs, errors.New("criteria: at least one criterion required"))
	}
	for i, c := range sc.Criteria {
		prefix := fmt.Sprintf("criteria[%d]", i)
		if c.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label: required", prefix))
		}
		if len(c.Options) == 0 {
			errs = append(errs, fmt.Errorf("%s.options: at least one option required", prefix))
		} else if c.Default < 0 || c.Default >= len(c.Options) {
			errs = append(errs, fmt.Errorf("%s.default: %d not in 0..%d", prefix, c.Default, len(c.Options)-1))
		}
		for j, o := range c.Options {
			if o.Label == "" {
				errs = append(errs, fmt.Errorf("%s.options[%d].label: required", prefix, j))
			}
			if _, err := review.ParseOptionScore(o.Score); err != nil {
				errs = append(errs, fmt.Errorf("%s.options[%d].score: %w", prefix, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

// NewReview builds a review from the scorecard with each criterion's default
// option selected.
func (sc *Scorecard) NewReview() (review.Review, error) {
	r := review.Review{Criteria: make([]review.Criterion, 0, len(sc.Criteria))}
	for i, def := range sc.Criteria {
		opts := make([]review.CriterionOption, 0, len(def.Options))
		for j, o := range def.Options {
			score, err := review.ParseOptionScore(o.Score)
			if err != nil {
				return review.Review{}, fmt.Errorf("scorecard.NewReview: criteria[%d].options[%d]: %w", i, j, err)
			}
			opts = append(opts, review.NewOption(o.Label, score))
		}
		c := review.NewCriterion(def.Label, opts...)
		if err := c.SetSelection(def.Default); err != nil {
			return review.Review{}, fmt.Errorf("scorecard.NewReview: criteria[%d]: %w", i, err)
		}
		r.Criteria = append(r.Criteria, c)
	}
	return r, nil
}

// FormatOutline renders the scorecard as a plain-text outline for listing.
func FormatOutline(sc *Scorecard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (v%d)\n", sc.Name, sc.Version)
	if sc.Description != "" {
		fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(sc.Description))
	}
	for i, c := range sc.Criteria {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, c.Label)
		for _, o := range c.Options {
			fmt.Fprintf(&b, "     - %s [%s]\n", o.Label, o.Score)
		}
	}
	return b.String()
}
