package outline

import (
	"os"
	"testing"

	"github.com/gerunddev/wordcraft/internal/plaintext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDraft(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile("testdata/draft.md")
	require.NoError(t, err)
	return string(content)
}

func TestSplit(t *testing.T) {
	sections := Split("draft.md", loadDraft(t))
	require.Len(t, sections, 4)

	expected := []struct {
		title  string
		level  int
		words  int
		scenes int
		tasks  int
	}{
		{title: "", level: 0, words: 5, scenes: 1},
		{title: "Part One", level: 1, words: 5, scenes: 1},
		{title: "Scene A", level: 2, words: 9, scenes: 2, tasks: 1},
		{title: "Scene B", level: 2, words: 3, scenes: 1},
	}

	for i, want := range expected {
		s := sections[i]
		assert.Equal(t, i, s.Ordinal, "section %d ordinal", i)
		assert.Equal(t, want.title, s.Title, "section %d title", i)
		assert.Equal(t, want.level, s.Level, "section %d level", i)
		assert.Equal(t, want.words, s.Words, "section %d words", i)
		assert.Equal(t, want.scenes, s.Scenes, "section %d scenes", i)
		assert.Equal(t, want.tasks, s.Tasks, "section %d tasks", i)
		assert.NotEmpty(t, s.ID)
	}
}

func TestSplitTotalsMatchDocumentCount(t *testing.T) {
	draft := loadDraft(t)
	sum := Totals(Split("draft.md", draft))

	assert.Equal(t, plaintext.WordCount(draft), sum.Words)
	assert.Equal(t, 4, sum.Sections)
	assert.Equal(t, 1, sum.Tasks)
	assert.Equal(t, 5, sum.Scenes)
}

func TestSplitHeadingsInsideFencesAndComments(t *testing.T) {
	for _, s := range Split("draft.md", loadDraft(t)) {
		assert.NotEqual(t, "not a heading", s.Title)
		assert.NotEqual(t, "also not a heading", s.Title)
	}
}

func TestSplitEmptyPreambleIsDropped(t *testing.T) {
	sections := Split("x", "\n<!-- ::task:: only a note -->\n# First\nbody")
	require.Len(t, sections, 1)
	assert.Equal(t, "First", sections[0].Title)
}

func TestSplitEmptyHeadingIsKept(t *testing.T) {
	sections := Split("x", "# Heading only")
	require.Len(t, sections, 1)
	assert.Equal(t, 2, sections[0].Words)
	assert.Equal(t, 0, sections[0].Scenes)
}

func TestSplitStripsMarkupFromTitles(t *testing.T) {
	sections := Split("x", "## The **Long** [Rain](rain.md) ##\ntext")
	require.Len(t, sections, 1)
	assert.Equal(t, "The Long Rain", sections[0].Title)
}

func TestCharacters(t *testing.T) {
	sections := Split("x", "## Scene B\nDone.")
	require.Len(t, sections, 1)
	assert.Equal(t, len("Scene B Done."), sections[0].Characters)

	// Combining accent and skin-tone emoji each count as one character
	sections = Split("x", "# Cafe\u0301 \U0001F44D\U0001F3FD")
	require.Len(t, sections, 1)
	assert.Equal(t, 6, sections[0].Characters)
}

func TestSectionIDsAreStable(t *testing.T) {
	draft := loadDraft(t)
	first := Split("draft.md", draft)
	second := Split("draft.md", draft)
	other := Split("other.md", draft)

	seen := map[string]bool{}
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.NotEqual(t, first[i].ID, other[i].ID)
		assert.False(t, seen[first[i].ID], "duplicate section ID")
		seen[first[i].ID] = true
	}

	found, ok := Find(first, first[2].ID)
	require.True(t, ok)
	assert.Equal(t, "Scene A", found.Title)

	_, ok = Find(first, "missing")
	assert.False(t, ok)
}
