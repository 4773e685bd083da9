package docreview

import (
	"fmt"
	"strings"
)

// PromptTemplate is the fixed grading instruction for one category.
type PromptTemplate struct {
	Category Category
	Focus    string
	Criteria []string

	// IncludeOutline adds the document's heading outline ahead of the content.
	IncludeOutline bool
}

// templates holds one immutable instruction per category.
var templates = map[Category]PromptTemplate{
	CategoryReadability: {
		Category: CategoryReadability,
		Focus:    "how easily a non-technical reader can understand the page",
		Criteria: []string{
			"Sentence length and complexity; long or nested sentences reduce clarity",
			"Jargon and acronyms used without explanation",
			"Use of plain language and active voice",
			"Paragraph length and density of information",
			"Whether examples make abstract concepts concrete",
		},
	},
	CategoryStructure: {
		Category: CategoryStructure,
		Focus:    "how clearly the page is organized",
		Criteria: []string{
			"Logical heading hierarchy without skipped levels",
			"Whether sections follow a sensible order (overview, prerequisites, steps, reference)",
			"Use of lists, tables, and code blocks where they aid scanning",
			"Length and focus of each section",
			"Presence of navigation aids such as an introduction or summary",
		},
		IncludeOutline: true,
	},
	CategoryCompleteness: {
		Category: CategoryCompleteness,
		Focus:    "whether the page gives readers everything they need",
		Criteria: []string{
			"Prerequisites, requirements, and assumptions are stated",
			"Every step needed to complete the described task is present",
			"Examples, expected results, and edge cases are covered",
			"Error conditions and troubleshooting guidance are included",
			"Links or pointers to related material are provided",
		},
	},
	CategoryStyle: {
		Category: CategoryStyle,
		Focus:    "adherence to common documentation style guidelines",
		Criteria: []string{
			"Consistent terminology, capitalization, and formatting",
			"Second person, present tense, and active voice",
			"Descriptive link text and headings",
			"Consistent formatting of code, UI labels, and notes",
			"Inclusive, neutral, and professional tone",
		},
	},
}

// Template returns the instruction template for the category.
func Template(c Category) (PromptTemplate, bool) {
	t, ok := templates[c]
	return t, ok
}

// Render interpolates content into the template.
func (t PromptTemplate) Render(content string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert technical writer reviewing documentation for %s.\n", strings.ToLower(t.Category.Title()))
	fmt.Fprintf(&sb, "Focus on %s.\n\n", t.Focus)

	sb.WriteString("Evaluate the content against these criteria:\n")
	for _, c := range t.Criteria {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	sb.WriteString("\nThe score MUST be EXACTLY one of: \"Excellent\", \"Good\", \"Fair\", \"Poor\".\n")
	sb.WriteString("If the content cannot be properly analyzed (e.g., error pages, security checks), score it \"Poor\" and explain why.\n")
	sb.WriteString("List at least one specific issue and at least one actionable suggestion.\n\n")
	sb.WriteString("Respond with a single JSON object and nothing else:\n")
	sb.WriteString(`{"score": "Good", "issues": ["..."], "suggestions": ["..."]}`)
	sb.WriteString("\n\n")

	if t.IncludeOutline {
		sections := ExtractSections(content)
		if outline := formatOutline(sections); outline != "" {
			sb.WriteString("<outline>\n")
			sb.WriteString(outline)
			sb.WriteString("</outline>\n")
			for _, s := range SkippedLevels(sections) {
				fmt.Fprintf(&sb, "Note: heading %q skips a level.\n", s.Title)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("<content>\n")
	sb.WriteString(content)
	sb.WriteString("\n</content>")
	return sb.String()
}

// Overhead returns the prompt length, in runes, excluding the content itself.
func (t PromptTemplate) Overhead() int {
	return len([]rune(t.Render("")))
}

func formatOutline(sections []Section) string {
	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(strings.Repeat("  ", s.Level-1))
		sb.WriteString(strings.Repeat("#", s.Level))
		sb.WriteString(" ")
		sb.WriteString(s.Title)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RevisionPrompt builds the instruction asking the model to rewrite content
// so that it addresses the given feedback.
func RevisionPrompt(content string, result *AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString("You are an expert technical writer.\n")
	sb.WriteString("Revise the documentation below based on the analysis feedback to improve its quality.\n")
	sb.WriteString("Keep the core information intact while improving readability, structure, completeness, and style consistency.\n")
	sb.WriteString("Return only the revised content.\n\n")
	sb.WriteString("<feedback>\n")
	sb.WriteString(FormatFeedback(result))
	sb.WriteString("\n</feedback>\n\n")
	sb.WriteString("<content>\n")
	sb.WriteString(content)
	sb.WriteString("\n</content>")
	return sb.String()
}
