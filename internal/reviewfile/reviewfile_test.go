package reviewfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/falvamo/qams-core/internal/review"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReview(t *testing.T) review.Review {
	t.Helper()
	fatal := review.NewCriterion("Verified identity",
		review.NewOption("YES", review.Points(3)),
		review.NewOption("NO", review.Fatal()),
	)
	return review.Review{Criteria: []review.Criterion{
		review.NewCriterion("Greeting",
			review.NewOption("YES", review.Points(2)),
			review.NewOption("NO", review.Points(0)),
		),
		fatal,
	}}
}

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestNew(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	fixedClock(t, at)

	doc := New("call-center", "Ticket 4411", "sam", sampleReview(t))
	_, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "call-center", doc.Scorecard)
	assert.Equal(t, at, doc.CreatedAt)
	assert.Equal(t, at, doc.UpdatedAt)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.json")

	doc := New("call-center", "Ticket 4411", "sam", sampleReview(t))
	require.NoError(t, doc.Review.Criteria[1].SetSelection(1))

	later := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	fixedClock(t, later)
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, "Ticket 4411", loaded.Subject)
	assert.Equal(t, later, loaded.UpdatedAt)
	require.Len(t, loaded.Review.Criteria, 2)
	assert.Equal(t, 1, loaded.Review.Criteria[1].SelectionIndex())

	score, err := loaded.Review.Score()
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestLoadStaleSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.json")
	content := `{
  "id": "doc-1",
  "scorecard": "custom",
  "review": {"criteria": [
    {"label": "A", "options": [{"label": "YES", "score": 1}], "selection_index": 3}
  ]}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	_, err = doc.Review.Score()
	var se *review.ScoringError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 0, se.Criterion)
}

func TestLoadInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "x"}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDocument))

	var ide *InvalidDocumentError
	require.ErrorAs(t, err, &ide)
	assert.NotEmpty(t, ide.Errors)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLoadEmptyReview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, New("blank", "", "", review.Review{})))

	doc, err := Load(path)
	require.NoError(t, err)
	score, err := doc.Review.Score()
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}
