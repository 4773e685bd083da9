package docreview

import "strings"

// FormatFeedback formats analysis feedback as plain text for LLM context.
// Categories appear in display order separated by blank lines.
func FormatFeedback(result *AnalysisResult) string {
	if result == nil || len(result.Analysis) == 0 {
		return ""
	}

	parts := make([]string, 0, len(result.Analysis))
	for _, c := range result.Categories() {
		fb := result.Analysis[c]

		var sb strings.Builder
		sb.WriteString(c.Title() + " Analysis:\n")
		sb.WriteString("Score: " + fb.Score.String())
		if len(fb.Issues) > 0 {
			sb.WriteString("\nIssues:")
			for _, issue := range fb.Issues {
				sb.WriteString("\n- " + issue)
			}
		}
		if len(fb.Suggestions) > 0 {
			sb.WriteString("\nSuggestions:")
			for _, s := range fb.Suggestions {
				sb.WriteString("\n- " + s)
			}
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
