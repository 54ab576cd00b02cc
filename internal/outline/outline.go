package outline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gerunddev/wordcraft/internal/plaintext"
	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

var headingPattern = regexp.MustCompile(`^(#{1,6})[ \t]+(.*?)[ \t#]*$`)

// Section is one heading and the text under it, up to the next heading
type Section struct {
	ID      string
	Ordinal int
	Title   string
	Level   int // 0 for text before the first heading
	Heading string
	Body    string

	Words      int
	Characters int
	Scenes     int
	Tasks      int
}

// Summary totals a list of sections
type Summary struct {
	Sections   int
	Words      int
	Characters int
	Scenes     int
	Tasks      int
}

// Split breaks a markdown body into sections at ATX headings. Headings inside
// fenced code or inside a comment block do not start a section. key identifies
// the document and seeds the section IDs.
func Split(key, body string) []Section {
	var sections []Section
	current := Section{}
	var lines []string

	flush := func() {
		current.Body = strings.Join(lines, "\n")
		if current.Level > 0 || plaintext.WordCount(current.Body) > 0 {
			current.Ordinal = len(sections)
			sections = append(sections, measure(key, current))
		}
		lines = nil
	}

	inFence, inComment := false, false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case inComment:
			if strings.Contains(line, "-->") {
				inComment = false
			}
		case strings.HasPrefix(trimmed, "```"):
			inFence = !inFence
		case inFence:
		case opensComment(line):
			inComment = true
		default:
			if m := headingPattern.FindStringSubmatch(line); m != nil {
				flush()
				current = Section{
					Level:   len(m[1]),
					Heading: line,
					Title:   strings.TrimSpace(plaintext.Normalize(m[2])),
				}
				continue
			}
		}
		lines = append(lines, line)
	}
	flush()

	return sections
}

// opensComment reports whether line leaves a comment open at its end
func opensComment(line string) bool {
	open := strings.LastIndex(line, "<!--")
	if open == -1 {
		return false
	}
	return !strings.Contains(line[open:], "-->")
}

func measure(key string, s Section) Section {
	text := s.Body
	if s.Heading != "" {
		text = s.Heading + "\n" + s.Body
	}

	plain := plaintext.Normalize(text)
	s.Words = plaintext.CountPlain(plain)
	s.Characters = uniseg.GraphemeClusterCount(strings.Join(strings.Fields(plain), " "))

	for _, a := range plaintext.Annotations(s.Body) {
		switch {
		case a.IsBreak():
			s.Scenes++
		case a.Type == plaintext.TagTask:
			s.Tasks++
		}
	}
	if plaintext.WordCount(s.Body) > 0 {
		s.Scenes++
	}

	s.ID = sectionID(key, s.Ordinal, s.Title)
	return s
}

// sectionID is stable for the same document, position and title
func sectionID(key string, ordinal int, title string) string {
	name := fmt.Sprintf("%s#%d:%s", key, ordinal, title)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Totals sums the statistics of sections
func Totals(sections []Section) Summary {
	sum := Summary{Sections: len(sections)}
	for _, s := range sections {
		sum.Words += s.Words
		sum.Characters += s.Characters
		sum.Scenes += s.Scenes
		sum.Tasks += s.Tasks
	}
	return sum
}

// Find returns the section with the given ID
func Find(sections []Section, id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
