package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/wordcraft/internal/goals"
	"github.com/gerunddev/wordcraft/internal/plaintext"
	"gopkg.in/yaml.v3"
)

// Meta is the YAML front matter of a manuscript
type Meta struct {
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Goal     int      `yaml:"goal"`
	GoalType string   `yaml:"goal_type"`
	Deadline string   `yaml:"deadline"`
}

// Document is a manuscript split into front matter and body
type Document struct {
	Path           string
	Meta           Meta
	HasFrontMatter bool
	Body           string
	// BodyLine is the 1-based line of the body's first line in the file
	BodyLine int
}

// Load reads and parses a manuscript file
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc := Parse(string(data))
	doc.Path = path
	return doc, nil
}

// Parse splits content into front matter and body.
// Content without a closed, valid front matter block is all body.
func Parse(content string) *Document {
	doc := &Document{Body: content, BodyLine: 1}

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return doc
	}

	// Find end of front matter
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return doc
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &meta); err != nil {
		// Not front matter after all, probably a horizontal rule
		return doc
	}

	doc.Meta = meta
	doc.HasFrontMatter = true
	doc.Body = strings.Join(lines[end+1:], "\n")
	doc.BodyLine = end + 2
	return doc
}

// Plain returns the body as plain prose
func (d *Document) Plain() string {
	return plaintext.Normalize(d.Body)
}

// Words returns the body word count
func (d *Document) Words() int {
	return plaintext.WordCount(d.Body)
}

// Annotations returns the body's annotation blocks with file line numbers
func (d *Document) Annotations() []plaintext.Annotation {
	annotations := plaintext.Annotations(d.Body)
	for i := range annotations {
		annotations[i].Line += d.BodyLine - 1
	}
	return annotations
}

// Title returns the front matter title, or the first heading, or ""
func (d *Document) Title() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	for _, line := range strings.Split(d.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// Goal returns the goal declared in front matter, or fallback when none is
// declared or the declared type is invalid.
func (d *Document) Goal(fallback goals.Goal) goals.Goal {
	if d.Meta.Goal <= 0 {
		return fallback
	}
	typ, err := goals.ParseType(d.Meta.GoalType)
	if err != nil {
		return fallback
	}
	return goals.Goal{Type: typ, Target: d.Meta.Goal}
}
