// Package markdown renders analysis results as GitHub-flavored Markdown.
package markdown

import (
	"fmt"
	"io"

	"github.com/fwojciec/docreview"
	"github.com/nao1215/markdown"
)

// Ensure Renderer implements docreview.Renderer at compile time.
var _ docreview.Renderer = (*Renderer)(nil)

// Renderer writes a Markdown report.
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

	md := markdown.NewMarkdown(w)
	md.H1("Documentation Analysis")
	md.PlainText("")

	rows := [][]string{
		{"URL", result.URL},
		{"Analyzed", result.Timestamp.Format("2006-01-02 15:04:05 MST")},
		{"Overall Score", "**" + result.OverallScore.String() + "**"},
	}
	if result.ExtractionMethod != "" {
		rows = append(rows, []string{"Extraction", "`" + string(result.ExtractionMethod) + "`"})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	writeAlert(md, result)

	summary := make([][]string, 0, len(result.Analysis))
	for _, c := range result.Categories() {
		summary = append(summary, []string{c.Title(), result.Analysis[c].Score.String()})
	}
	md.H2("Scores")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score"},
		Rows:   summary,
	})
	md.PlainText("")

	for _, c := range result.Categories() {
		fb := result.Analysis[c]
		md.H2(c.Title() + ": " + fb.Score.String())
		md.PlainText("")
		if len(fb.Issues) > 0 {
			md.H3("Issues")
			md.PlainText("")
			md.BulletList(fb.Issues...)
			md.PlainText("")
		}
		if len(fb.Suggestions) > 0 {
			md.H3("Suggestions")
			md.PlainText("")
			md.BulletList(fb.Suggestions...)
			md.PlainText("")
		}
	}

	return md.Build()
}

func writeAlert(md *markdown.Markdown, result *docreview.AnalysisResult) {
	if result.Truncated {
		md.Note("The page was truncated before analysis; feedback covers its first part only.")
		md.PlainText("")
	}

	switch result.OverallScore {
	case docreview.ScorePoor:
		md.Cautionf("At least one category scored %s.", result.OverallScore)
	case docreview.ScoreFair:
		md.Warningf("At least one category scored %s.", result.OverallScore)
	default:
		md.Tip(fmt.Sprintf("Every category scored %s or better.", result.OverallScore))
	}
	md.PlainText("")
}
