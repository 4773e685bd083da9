package docreview

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*#*\s*$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Section represents a heading in extracted markdown text.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// ExtractSections returns all H1-H6 headings in document order.
// Headings inside fenced code blocks are ignored.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	cleaned := codeBlockRe.ReplaceAllString(markdown, "")
	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		if title == "" {
			continue
		}
		sections = append(sections, Section{Level: len(m[1]), Title: title})
	}
	return sections
}

// SkippedLevels reports headings that jump more than one level deeper
// than the heading before them (e.g., H2 followed by H4).
func SkippedLevels(sections []Section) []Section {
	var skipped []Section
	prev := 0
	for _, s := range sections {
		if prev > 0 && s.Level > prev+1 {
			skipped = append(skipped, s)
		}
		prev = s.Level
	}
	return skipped
}
