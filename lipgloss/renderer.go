// Package lipgloss renders analysis results for the terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docreview"
)

// Ensure Renderer implements docreview.Renderer at compile time.
var _ docreview.Renderer = (*Renderer)(nil)

// scoreColors maps each score to its foreground color.
var scoreColors = map[docreview.Score]lipgloss.Color{
	docreview.ScoreExcellent: lipgloss.Color("#04B575"),
	docreview.ScoreGood:      lipgloss.Color("#3C9DD0"),
	docreview.ScoreFair:      lipgloss.Color("#E5C07B"),
	docreview.ScorePoor:      lipgloss.Color("#FF5F56"),
}

// Renderer writes a styled plain-text report. Colors are dropped
// automatically when the writer is not a terminal.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes result to w.
func (r *Renderer) Render(w io.Writer, result *docreview.AnalysisResult) error {
	if result == nil {
		return docreview.Errorf(docreview.EINVALID, "result required")
	}

	lr := lipgloss.NewRenderer(w)
	title := lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	heading := lr.NewStyle().Bold(true)
	muted := lr.NewStyle().Foreground(lipgloss.Color("#737373")).Italic(true)
	score := func(s docreview.Score) string {
		return lr.NewStyle().Bold(true).Foreground(scoreColors[s]).Render(s.String())
	}

	var sb strings.Builder
	sb.WriteString(title.Render("Documentation Analysis") + "\n")
	fmt.Fprintf(&sb, "URL: %s\n", result.URL)
	fmt.Fprintf(&sb, "Overall Score: %s\n", score(result.OverallScore))
	if result.ExtractionMethod != "" {
		fmt.Fprintf(&sb, "Extraction: %s\n", result.ExtractionMethod)
	}
	if result.Truncated {
		sb.WriteString(muted.Render("Content was truncated; feedback covers the first part of the page.") + "\n")
	}

	for _, c := range result.Categories() {
		fb := result.Analysis[c]
		sb.WriteString("\n")
		sb.WriteString(heading.Render(c.Title()) + ": " + score(fb.Score) + "\n")
		writeList(&sb, "Issues", fb.Issues)
		writeList(&sb, "Suggestions", fb.Suggestions)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("  " + label + ":\n")
	for _, item := range items {
		sb.WriteString("    - " + item + "\n")
	}
}
