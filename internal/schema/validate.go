// Package schema checks review documents and review models for structural
// problems before they reach scoring.
package schema

import (
	"fmt"

	"github.com/falvamo/qams-core/internal/review"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "scorecard", "review"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "scorecard": {"type": "string"},
    "subject": {"type": "string"},
    "reviewer": {"type": "string"},
    "created_at": {"type": "string", "format": "date-time"},
    "updated_at": {"type": "string", "format": "date-time"},
    "review": {
      "type": "object",
      "required": ["criteria"],
      "properties": {
        "criteria": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["label", "options", "selection_index"],
            "properties": {
              "label": {"type": "string"},
              "selection_index": {"type": "integer"},
              "options": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["label", "score"],
                  "properties": {
                    "label": {"type": "string"},
                    "score": {
                      "oneOf": [
                        {"type": "integer"},
                        {"type": "string", "pattern": "^\\s*([Ff][Aa][Tt][Aa][Ll]|[-+]?[0-9]+)\\s*$"}
                      ]
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var documentSchema = gojsonschema.NewStringLoader(documentSchemaJSON)

// ValidateDocument checks the shape of an encoded review document. It does
// not check selection bounds; use Validate on the decoded review for that.
func ValidateDocument(data []byte) []ValidationError {
	result, err := gojsonschema.Validate(documentSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return []ValidationError{{"(root)", fmt.Sprintf("not a valid JSON document: %v", err)}}
	}
	if result.Valid() {
		return nil
	}
	var errs []ValidationError
	for _, re := range result.Errors() {
		errs = append(errs, ValidationError{re.Field(), re.Description()})
	}
	return errs
}

// Validate checks a review for problems that would make it unscoreable or
// unreadable: missing labels, criteria without options, stale selections.
func Validate(r *review.Review) []ValidationError {
	var errs []ValidationError

	for i := range r.Criteria {
		c := &r.Criteria[i]
		prefix := fmt.Sprintf("criteria[%d]", i)
		if c.Label == "" {
			errs = append(errs, ValidationError{prefix + ".label", "required"})
		}
		if len(c.Options) == 0 {
			errs = append(errs, ValidationError{prefix + ".options", "at least one option required"})
		}
		for j, opt := range c.Options {
			if opt.Label == "" {
				errs = append(errs, ValidationError{fmt.Sprintf("%s.options[%d].label", prefix, j), "required"})
			}
		}
		if _, err := c.SelectedOption(); err != nil {
			errs = append(errs, ValidationError{prefix + ".selection_index", err.Error()})
		}
	}

	return errs
}
