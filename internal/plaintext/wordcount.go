package plaintext

import (
	"strings"
)

// WordCount returns the number of prose words in raw markdown text.
// Markup, image alt text, link targets and annotation payloads are not counted.
func WordCount(text string) int {
	return CountPlain(Normalize(text))
}

// CountPlain counts whitespace-separated tokens in already normalized text.
// Any Unicode space (tabs, newlines, no-break space, line separators) splits.
func CountPlain(plain string) int {
	plain = strings.TrimSpace(plain)
	if plain == "" {
		return 0
	}
	return len(strings.Fields(plain))
}
