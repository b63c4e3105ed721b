// Package render produces Markdown and terminal output from a scored review.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/falvamo/qams-core/internal/review"
	"github.com/falvamo/qams-core/internal/reviewfile"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fatalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Markdown renders a review document and its summary as a Markdown report.
func Markdown(doc *reviewfile.Document, s review.Summary) string {
	var b strings.Builder

	b.WriteString("# QA Review\n\n")
	if doc.Subject != "" {
		fmt.Fprintf(&b, "**Subject:** %s\n", doc.Subject)
	}
	fmt.Fprintf(&b, "**Scorecard:** %s\n", doc.Scorecard)
	if doc.Reviewer != "" {
		fmt.Fprintf(&b, "**Reviewer:** %s\n", doc.Reviewer)
	}
	fmt.Fprintf(&b, "**Score:** %d / %d (%.1f%%)\n\n", s.Score, s.MaxPoints, s.Percent)

	if s.Fatal {
		b.WriteString("> **FATAL:** the review scores 0 because of:\n")
		for _, i := range s.FatalCriteria {
			fmt.Fprintf(&b, "> - %s\n", doc.Review.Criteria[i].Label)
		}
		b.WriteString("\n")
	}

	if len(doc.Review.Criteria) == 0 {
		b.WriteString("No criteria.\n")
		return b.String()
	}

	b.WriteString("| # | Criterion | Selection | Points |\n")
	b.WriteString("|---|-----------|-----------|--------|\n")
	for i := range doc.Review.Criteria {
		c := &doc.Review.Criteria[i]
		label, points := selection(c)
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, escapeCell(c.Label), escapeCell(label), points)
	}
	b.WriteString("\n")

	return b.String()
}

// Text renders a compact terminal summary. When styled is set the verdict
// and headings are coloured.
func Text(doc *reviewfile.Document, s review.Summary, styled bool) string {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder
	heading := doc.Scorecard
	if doc.Subject != "" {
		heading += " - " + doc.Subject
	}
	b.WriteString(paint(titleStyle, heading) + "\n")

	for i := range doc.Review.Criteria {
		c := &doc.Review.Criteria[i]
		label, points := selection(c)
		fmt.Fprintf(&b, "  %2d. %s\n      %s %s\n", i+1, c.Label, label, paint(dimStyle, "("+points+")"))
	}

	verdict := fmt.Sprintf("Score: %d / %d (%.1f%%)", s.Score, s.MaxPoints, s.Percent)
	if s.Fatal {
		b.WriteString(paint(fatalStyle, verdict+" FATAL") + "\n")
	} else {
		b.WriteString(paint(passStyle, verdict) + "\n")
	}
	return b.String()
}

func selection(c *review.Criterion) (label, points string) {
	opt, err := c.SelectedOption()
	if err != nil {
		return "(invalid selection)", "-"
	}
	return opt.Label, opt.Score.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
