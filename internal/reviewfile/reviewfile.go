// Package reviewfile reads and writes review documents: a review plus the
// metadata a front end tracks about it.
package reviewfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/falvamo/qams-core/internal/review"
	"github.com/falvamo/qams-core/internal/schema"
	"github.com/google/uuid"
)

// ErrInvalidDocument is wrapped by *InvalidDocumentError.
var ErrInvalidDocument = errors.New("invalid review document")

// InvalidDocumentError lists the schema violations found in a document.
type InvalidDocumentError struct {
	Path   string
	Errors []schema.ValidationError
}

func (e *InvalidDocumentError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("%s: %v: %s", e.Path, ErrInvalidDocument, strings.Join(msgs, "; "))
}

func (e *InvalidDocumentError) Unwrap() error { return ErrInvalidDocument }

// Document is the persisted form of one review.
type Document struct {
	ID        string        `json:"id"`
	Scorecard string        `json:"scorecard"`
	Subject   string        `json:"subject,omitempty"`
	Reviewer  string        `json:"reviewer,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Review    review.Review `json:"review"`
}

var now = func() time.Time { return time.Now().UTC() }

// New wraps r in a document with a fresh ID.
func New(scorecard, subject, reviewer string, r review.Review) *Document {
	t := now()
	return &Document{
		ID:        uuid.New().String(),
		Scorecard: scorecard,
		Subject:   subject,
		Reviewer:  reviewer,
		CreatedAt: t,
		UpdatedAt: t,
		Review:    r,
	}
}

// Load reads a document and checks its shape. Selections are restored as
// stored, so a stale index is only reported when the review is scored.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reviewfile.Load: %w", err)
	}
	if errs := schema.ValidateDocument(data); len(errs) > 0 {
		return nil, &InvalidDocumentError{Path: path, Errors: errs}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reviewfile.Load: decode %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes the document as indented JSON, replacing path atomically, and
// sets UpdatedAt.
func Save(path string, doc *Document) error {
	doc.UpdatedAt = now()
	if doc.Review.Criteria == nil {
		doc.Review.Criteria = []review.Criterion{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("reviewfile.Save: marshal: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".qams-*.json")
	if err != nil {
		return fmt.Errorf("reviewfile.Save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("reviewfile.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("reviewfile.Save: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("reviewfile.Save: %w", err)
	}
	return nil
}
