package render

import (
	"strings"
	"testing"

	"github.com/falvamo/qams-core/internal/review"
	"github.com/falvamo/qams-core/internal/reviewfile"
)

func sampleDoc(t *testing.T, fatal bool) (*reviewfile.Document, review.Summary) {
	t.Helper()
	verify := review.NewCriterion("Verified identity",
		review.NewOption("YES", review.Points(3)),
		review.NewOption("NO", review.Fatal()),
	)
	if fatal {
		if err := verify.SetSelection(1); err != nil {
			t.Fatal(err)
		}
	}
	doc := &reviewfile.Document{
		ID:        "doc-1",
		Scorecard: "call-center",
		Subject:   "Ticket 4411",
		Reviewer:  "sam",
		Review: review.Review{Criteria: []review.Criterion{
			review.NewCriterion("Greeting | opener",
				review.NewOption("YES", review.Points(2)),
				review.NewOption("NO", review.Points(0)),
			),
			verify,
		}},
	}
	s, err := doc.Review.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	return doc, s
}

func TestMarkdown(t *testing.T) {
	doc, s := sampleDoc(t, false)
	md := Markdown(doc, s)

	checks := []string{
		"# QA Review",
		"**Subject:** Ticket 4411",
		"**Scorecard:** call-center",
		"**Reviewer:** sam",
		"**Score:** 5 / 5 (100.0%)",
		"| 1 | Greeting \\| opener | YES | 2 |",
		"| 2 | Verified identity | YES | 3 |",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "FATAL:") {
		t.Error("non-fatal review rendered a fatal notice")
	}
}

func TestMarkdownFatal(t *testing.T) {
	doc, s := sampleDoc(t, true)
	md := Markdown(doc, s)

	for _, want := range []string{
		"**Score:** 0 / 5 (0.0%)",
		"> **FATAL:**",
		"> - Verified identity",
		"| 2 | Verified identity | NO | FATAL |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownEmpty(t *testing.T) {
	doc := &reviewfile.Document{Scorecard: "empty"}
	md := Markdown(doc, review.Summary{})
	if !strings.Contains(md, "No criteria.") {
		t.Error("expected 'No criteria.' for empty review")
	}
}

func TestText(t *testing.T) {
	doc, s := sampleDoc(t, false)
	out := Text(doc, s, false)

	for _, want := range []string{
		"call-center - Ticket 4411",
		" 1. Greeting | opener",
		"YES (2)",
		"Score: 5 / 5 (100.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text missing %q\n%s", want, out)
		}
	}
}

func TestTextFatal(t *testing.T) {
	doc, s := sampleDoc(t, true)
	for _, styled := range []bool{false, true} {
		out := Text(doc, s, styled)
		if !strings.Contains(out, "FATAL") {
			t.Errorf("styled=%v: expected FATAL verdict\n%s", styled, out)
		}
	}
}

func TestSelectionInvalid(t *testing.T) {
	c := review.NewCriterion("Empty")
	label, points := selection(&c)
	if label != "(invalid selection)" || points != "-" {
		t.Errorf("selection() = %q, %q", label, points)
	}
}
