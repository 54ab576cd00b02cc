package plaintext

import (
	"regexp"
	"strings"
)

// Known annotation tags. The stripper accepts any tag; these are the ones the
// editor writes today.
const (
	TagTask         = "task"
	TagComment      = "comment"
	TagReference    = "reference"
	TagBreak        = "break"
	TagBibliography = "bibliography-auto"
)

// annotationPattern matches <!-- ::tag:: payload -->, shortest span first.
// (?s) lets the payload cross line boundaries.
var annotationPattern = regexp.MustCompile(`(?s)<!--[ \t]*::([A-Za-z0-9_-]+)::(.*?)-->`)

// Annotation is a single annotation block found in a document
type Annotation struct {
	Type    string
	Payload string
	Start   int // byte offset of "<!--"
	End     int // byte offset just past "-->"
	Line    int // 1-based line of Start
}

// IsBreak reports whether the annotation is a section break sentinel
func (a Annotation) IsBreak() bool {
	return a.Type == TagBreak && a.Payload == ""
}

// StripAnnotations removes every annotation block, tag and payload included,
// and leaves all other markdown untouched.
func StripAnnotations(text string) string {
	if !strings.Contains(text, "<!--") {
		return text
	}
	return annotationPattern.ReplaceAllString(text, "")
}

// Annotations returns the annotation blocks in document order
func Annotations(text string) []Annotation {
	matches := annotationPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Annotation, 0, len(matches))
	line, scanned := 1, 0
	for _, m := range matches {
		line += strings.Count(text[scanned:m[0]], "\n")
		scanned = m[0]

		out = append(out, Annotation{
			Type:    text[m[2]:m[3]],
			Payload: strings.TrimSpace(text[m[4]:m[5]]),
			Start:   m[0],
			End:     m[1],
			Line:    line,
		})
	}
	return out
}

// FilterAnnotations keeps the annotations whose type is tag
func FilterAnnotations(annotations []Annotation, tag string) []Annotation {
	var out []Annotation
	for _, a := range annotations {
		if a.Type == tag {
			out = append(out, a)
		}
	}
	return out
}
