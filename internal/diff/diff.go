package diff

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gerunddev/wordcraft/internal/document"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Mode selects what text of the two documents is compared
type Mode int

const (
	// ModeProse diffs the normalized plain text, so markup-only edits vanish
	ModeProse Mode = iota
	// ModeMarkdown diffs the raw bodies
	ModeMarkdown
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeProse:
		return "prose"
	case ModeMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Unified returns a unified diff of before and after, or "" when they match
func Unified(oldName, newName, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(oldName), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, before, edits))
}

// Generate diffs two manuscript files. Front matter is never compared.
func Generate(oldPath, newPath string, mode Mode) (string, error) {
	oldDoc, err := document.Load(oldPath)
	if err != nil {
		return "", err
	}
	newDoc, err := document.Load(newPath)
	if err != nil {
		return "", err
	}

	var before, after string
	switch mode {
	case ModeProse:
		before, after = proseLines(oldDoc), proseLines(newDoc)
	case ModeMarkdown:
		before, after = withNewline(oldDoc.Body), withNewline(newDoc.Body)
	default:
		return "", fmt.Errorf("unsupported diff mode: %d", mode)
	}

	return Unified(filepath.Base(oldPath), filepath.Base(newPath), before, after), nil
}

// proseLines returns the plain text with blank lines dropped, so paragraphs
// that only moved apart don't show up as changes
func proseLines(doc *document.Document) string {
	var b strings.Builder
	for _, line := range strings.Split(doc.Plain(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Render renders a unified diff for the terminal with Glamour
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", withNewline(unified))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return fenced
	}

	rendered, err := renderer.Render(fenced)
	if err != nil {
		return fenced
	}
	return rendered
}
