package plaintext

import (
	"regexp"
	"strings"
)

// Rule is one named stripping step of the normalizer
type Rule struct {
	Name string
	re   *regexp.Regexp
	sub  string
	fn   func(string) string
}

// NewRule builds a rule that replaces every match of pattern with sub.
// sub may reference capture groups ($1). A bad pattern panics.
func NewRule(name, pattern, sub string) Rule {
	return Rule{Name: name, re: regexp.MustCompile(pattern), sub: sub}
}

// FuncRule wraps an arbitrary text transformation as a rule
func FuncRule(name string, fn func(string) string) Rule {
	return Rule{Name: name, fn: fn}
}

// Apply runs the rule over text
func (r Rule) Apply(text string) string {
	if r.fn != nil {
		return r.fn(text)
	}
	return r.re.ReplaceAllString(text, r.sub)
}

// Rule names, in pipeline order
const (
	RuleHeading       = "heading"
	RuleBold          = "bold"
	RuleItalic        = "italic"
	RuleStrikethrough = "strikethrough"
	RuleCode          = "code"
	RuleImage         = "image"
	RuleLink          = "link"
	RuleList          = "list"
	RuleBlockquote    = "blockquote"
	RuleBreak         = "break"
	RuleFence         = "fence"
	RuleHorizontal    = "rule"
	RuleAnnotation    = "annotation"
)

// prefixChain matches any run of further line markers after the first one,
// so "- # > 1. text" loses every marker in a single match.
const prefixChain = `(?:[ \t]*(?:#{1,6}[ \t]+|(?:[-*+]|\d+\.)[ \t]+|>[ \t]*))*`

// Order matters. Bold must run before italic so the inner asterisks of a bold
// pair are gone before italic looks for single ones, and images must run before
// links because "![alt](url)" contains a link.
var defaultRules = []Rule{
	// # Heading, # # Heading
	NewRule(RuleHeading, `(?m)^#{1,6}[ \t]+`+prefixChain, ""),
	// **bold** and __bold__, ****nested**** included
	NewRule(RuleBold, `\*{2,}([^*\n].*?)\*{2,}`, "$1"),
	NewRule(RuleBold, `_{2,}([^_\n].*?)_{2,}`, "$1"),
	// *italic* and _italic_
	NewRule(RuleItalic, `\*([^*\n]+)\*`, "$1"),
	NewRule(RuleItalic, `_([^_\n]+)_`, "$1"),
	// ~~struck~~
	NewRule(RuleStrikethrough, `~{2,}([^~\n].*?)~{2,}`, "$1"),
	// `code`
	NewRule(RuleCode, "`([^`\n]+)`", "$1"),
	// ![alt](src), alt text included
	NewRule(RuleImage, `!\[[^\]]*\]\([^)]*\)`, ""),
	// [label](href), [[nested](a)](b)
	FuncRule(RuleLink, stripLinks),
	// - item, * item, + item, 1. item
	NewRule(RuleList, `(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`+prefixChain, ""),
	// > quote, >> nested, > > nested
	NewRule(RuleBlockquote, `(?m)^[ \t]*>[ \t]*`+prefixChain, ""),
	// <!-- ::break:: -->
	NewRule(RuleBreak, `<!--[ \t]*::break::[ \t]*-->`, ""),
	// ```lang
	NewRule(RuleFence, "(?m)^[ \\t]*```+[\\w+#.-]*[ \\t\\r]*$", ""),
	// ---, ***, ___
	NewRule(RuleHorizontal, `(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t\r]*$`, ""),
	// <!-- ::tag:: payload -->
	FuncRule(RuleAnnotation, StripAnnotations),
}

// stripLinks replaces every [label](href) with its label in one scan.
// Brackets nest, so "[[a](b)](c)" becomes "a".
func stripLinks(text string) string {
	if !strings.Contains(text, "](") {
		return text
	}

	// closeAt[i] is the index of the first ')' at or after i, or -1
	closeAt := make([]int, len(text)+1)
	closeAt[len(text)] = -1
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == ')' {
			closeAt[i] = i
		} else {
			closeAt[i] = closeAt[i+1]
		}
	}

	drop := make([]bool, len(text))
	var open []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			open = append(open, i)
		case ']':
			if len(open) == 0 {
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			if i+1 < len(text) && text[i+1] == '(' && closeAt[i+1] >= 0 {
				end := closeAt[i+1]
				drop[start] = true
				for j := i; j <= end; j++ {
					drop[j] = true
				}
				i = end
			}
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if !drop[i] {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// Pipeline is an ordered list of rules applied one after another
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline running rules in the given order
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: append([]Rule(nil), rules...)}
}

var defaultPipeline = NewPipeline(defaultRules...)

// DefaultPipeline returns the pipeline used by Normalize
func DefaultPipeline() *Pipeline {
	return defaultPipeline
}

// Rules returns a copy of the pipeline's rules
func (p *Pipeline) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// With returns a new pipeline with rule appended
func (p *Pipeline) With(rule Rule) *Pipeline {
	return NewPipeline(append(p.Rules(), rule)...)
}

// Without returns a new pipeline minus every rule called name
func (p *Pipeline) Without(name string) *Pipeline {
	var kept []Rule
	for _, r := range p.rules {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	return NewPipeline(kept...)
}

// Pass runs every rule once, in order
func (p *Pipeline) Pass(text string) string {
	for _, r := range p.rules {
		text = r.Apply(text)
	}
	return text
}

// MaxPasses bounds how many times Apply reruns the pipeline. The default rules
// remove whole marker runs per match, so ordinary documents settle in two.
const MaxPasses = 8

// Apply runs passes until the text stops changing, at most MaxPasses times.
func (p *Pipeline) Apply(text string) string {
	for passes := 0; passes < MaxPasses; passes++ {
		next := p.Pass(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

// RuleByName returns a pipeline of the default rules called name, so a single
// step can be exercised on its own.
func RuleByName(name string) (*Pipeline, bool) {
	var rules []Rule
	for _, r := range defaultRules {
		if r.Name == name {
			rules = append(rules, r)
		}
	}
	if len(rules) == 0 {
		return nil, false
	}
	return NewPipeline(rules...), true
}

// Normalize strips markdown syntax, structural sentinels and annotation
// blocks from text and returns the remaining prose.
// Malformed markup is left in place as literal text.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return defaultPipeline.Apply(text)
}
