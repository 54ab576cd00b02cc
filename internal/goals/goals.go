package goals

import (
	"fmt"
	"math"
	"strings"
)

// Type is the kind of word goal
type Type string

const (
	// Minimum is met once the count reaches the target
	Minimum Type = "minimum"
	// Maximum is met while the count stays at or below the target
	Maximum Type = "maximum"
	// Approximate is met within Tolerance of the target, either side
	Approximate Type = "approximate"
)

// Tolerance is the allowed deviation for Approximate goals
const Tolerance = 0.05

// Status values reported in Progress
const (
	StatusNone  = "none"
	StatusUnder = "under"
	StatusMet   = "met"
	StatusOver  = "over"
)

// ParseType parses a goal type name. An empty name means Minimum.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", Minimum, "min":
		return Minimum, nil
	case Maximum, "max":
		return Maximum, nil
	case Approximate, "approx", "about":
		return Approximate, nil
	default:
		return "", fmt.Errorf("invalid goal type '%s': must be one of: minimum, maximum, approximate", s)
	}
}

// Goal is a word-count target
type Goal struct {
	Type   Type `json:"type"`
	Target int  `json:"target"`
}

// IsZero reports whether no goal is set
func (g Goal) IsZero() bool {
	return g.Target == 0
}

// Valid checks the goal type and target
func (g Goal) Valid() error {
	if g.Target < 0 {
		return fmt.Errorf("goal target cannot be negative")
	}
	if _, err := ParseType(string(g.Type)); err != nil {
		return err
	}
	return nil
}

// Progress is the evaluation of a word count against a goal
type Progress struct {
	Goal      Goal
	Words     int
	Ratio     float64 // words / target, unclamped
	Percent   float64 // Ratio clamped to 0..1 for progress bars
	Remaining int     // words to add (positive) or cut (negative) to reach the target
	Met       bool
	Status    string
}

// Evaluate measures words against g
func Evaluate(g Goal, words int) Progress {
	p := Progress{Goal: g, Words: words}
	if g.IsZero() {
		p.Status = StatusNone
		return p
	}

	p.Ratio = float64(words) / float64(g.Target)
	p.Percent = math.Min(math.Max(p.Ratio, 0), 1)
	p.Remaining = g.Target - words

	switch g.Type {
	case Maximum:
		p.Met = words <= g.Target
		if p.Met {
			// Nothing to cut
			p.Remaining = 0
		}
	case Approximate:
		allowed := int(math.Floor(float64(g.Target) * Tolerance))
		p.Met = abs(words-g.Target) <= allowed
	default:
		p.Met = words >= g.Target
		if p.Met {
			p.Remaining = 0
		}
	}

	switch {
	case p.Met:
		p.Status = StatusMet
	case words < g.Target:
		p.Status = StatusUnder
	default:
		p.Status = StatusOver
	}
	return p
}

// String renders progress as "1200/1500 words (80%, under minimum)"
func (p Progress) String() string {
	if p.Status == StatusNone {
		return fmt.Sprintf("%d words (no goal)", p.Words)
	}
	return fmt.Sprintf("%d/%d words (%.0f%%, %s %s)",
		p.Words, p.Goal.Target, p.Ratio*100, p.Status, p.Goal.Type)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
