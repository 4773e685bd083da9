package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// MinLineChars is the length at or below which a line is treated as
// layout noise (stray bullets, pagination, "|" separators) and dropped.
const MinLineChars = 3

// Clean normalizes extracted text for grading. It collapses runs of
// whitespace, drops lines of MinLineChars runes or fewer, and keeps only
// the first occurrence of repeated lines such as "Edit this page" or
// cookie banners. Lines inside fenced code blocks are kept as written,
// apart from trailing whitespace.
func Clean(text string) string {
	seen := make(map[uint64]struct{})

	var out []string
	inFence := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			out = append(out, strings.TrimSpace(line))
			continue
		}
		if inFence {
			out = append(out, strings.TrimRightFunc(line, unicode.IsSpace))
			continue
		}

		line = strings.Join(strings.Fields(line), " ")
		if utf8.RuneCountInString(line) <= MinLineChars {
			continue
		}

		h := xxhash.Sum64String(line)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Truncate cuts text to at most budget runes on a rune boundary and
// reports whether anything was removed. A budget of zero or less
// disables truncation.
func Truncate(text string, budget int) (string, bool) {
	if budget <= 0 || utf8.RuneCountInString(text) <= budget {
		return text, false
	}

	n := 0
	for i := range text {
		if n == budget {
			return text[:i], true
		}
		n++
	}
	return text, false
}
