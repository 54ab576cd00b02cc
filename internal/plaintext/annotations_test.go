package plaintext

import (
	"testing"
)

func TestStripAnnotations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no annotations",
			input:    "# Heading\n\nplain **prose**",
			expected: "# Heading\n\nplain **prose**",
		},
		{
			name:     "single comment",
			input:    "a <!-- ::comment:: hidden --> b",
			expected: "a  b",
		},
		{
			name:     "adjacent annotations are removed separately",
			input:    "a <!-- ::task:: x --> b <!-- ::comment:: y --> c",
			expected: "a  b  c",
		},
		{
			name:     "multi-line payload",
			input:    "before\n<!-- ::comment:: first line\nsecond line\n-->\nafter",
			expected: "before\n\nafter",
		},
		{
			name:     "bibliography tag",
			input:    "text<!-- ::bibliography-auto:: Smith 2020; Jones 2021 -->",
			expected: "text",
		},
		{
			name:     "unknown future tag",
			input:    "x <!-- ::future42:: anything --> y",
			expected: "x  y",
		},
		{
			name:     "no space after opener",
			input:    "x<!--::reference::@smith2020-->y",
			expected: "xy",
		},
		{
			name:     "markdown around annotation is preserved",
			input:    "# Head\n**b** <!-- ::comment:: x -->",
			expected: "# Head\n**b** ",
		},
		{
			name:     "markdown inside payload",
			input:    "<!-- ::comment:: **bold** [link](url) -->kept",
			expected: "kept",
		},
		{
			name:     "comment-like text inside payload ends at first close",
			input:    "<!-- ::comment:: x <!-- y --> z",
			expected: " z",
		},
		{
			name:     "plain html comment is not an annotation",
			input:    "<!-- just a comment -->",
			expected: "<!-- just a comment -->",
		},
		{
			name:     "unterminated annotation is left alone",
			input:    "a <!-- ::task:: never closed",
			expected: "a <!-- ::task:: never closed",
		},
		{
			name:     "section break",
			input:    "one<!-- ::break:: -->two",
			expected: "onetwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := StripAnnotations(tt.input)
			if actual != tt.expected {
				t.Errorf("StripAnnotations(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestAnnotations(t *testing.T) {
	text := "line one\n<!-- ::task:: write intro -->\ntext <!-- ::break:: -->\n<!-- ::comment:: spans\ntwo lines -->"

	got := Annotations(text)
	if len(got) != 3 {
		t.Fatalf("Expected 3 annotations, got %d: %+v", len(got), got)
	}

	expected := []struct {
		typ     string
		payload string
		line    int
		isBreak bool
	}{
		{typ: TagTask, payload: "write intro", line: 2},
		{typ: TagBreak, payload: "", line: 3, isBreak: true},
		{typ: TagComment, payload: "spans\ntwo lines", line: 4},
	}

	for i, want := range expected {
		a := got[i]
		if a.Type != want.typ {
			t.Errorf("Annotation %d type = %q, want %q", i, a.Type, want.typ)
		}
		if a.Payload != want.payload {
			t.Errorf("Annotation %d payload = %q, want %q", i, a.Payload, want.payload)
		}
		if a.Line != want.line {
			t.Errorf("Annotation %d line = %d, want %d", i, a.Line, want.line)
		}
		if a.IsBreak() != want.isBreak {
			t.Errorf("Annotation %d IsBreak = %v, want %v", i, a.IsBreak(), want.isBreak)
		}
		if text[a.Start:a.Start+4] != "<!--" {
			t.Errorf("Annotation %d Start does not point at the opener: %q", i, text[a.Start:])
		}
		if text[a.End-3:a.End] != "-->" {
			t.Errorf("Annotation %d End does not follow the closer: %q", i, text[:a.End])
		}
	}
}

func TestAnnotationsNone(t *testing.T) {
	if got := Annotations("no annotations here"); got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
}

func TestFilterAnnotations(t *testing.T) {
	all := Annotations("<!-- ::task:: a --><!-- ::comment:: b --><!-- ::task:: c -->")

	tasks := FilterAnnotations(all, TagTask)
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Payload != "a" || tasks[1].Payload != "c" {
		t.Errorf("Unexpected task payloads: %q, %q", tasks[0].Payload, tasks[1].Payload)
	}

	if refs := FilterAnnotations(all, TagReference); len(refs) != 0 {
		t.Errorf("Expected no references, got %d", len(refs))
	}
}
