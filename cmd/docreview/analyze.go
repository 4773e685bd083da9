package main

import (
	"fmt"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/json"
	"github.com/fwojciec/docreview/lipgloss"
	"github.com/fwojciec/docreview/markdown"
)

// renderers maps --format values to renderers.
var renderers = map[string]docreview.Renderer{
	"text":     lipgloss.NewRenderer(),
	"markdown": markdown.NewRenderer(),
	"json":     json.NewRenderer(),
}

// request validates the URL and categories.
func (c *AnalyzeCmd) request() (*docreview.AnalysisRequest, error) {
	categories := make([]docreview.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := docreview.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return docreview.NewAnalysisRequest(c.URL, categories...)
}

// Run executes the analyze command. Degraded categories are reported in
// the output; only validation and extraction failures return an error.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	req, err := c.request()
	if err != nil {
		return err
	}

	renderer, ok := renderers[c.Format]
	if !ok {
		return docreview.Errorf(docreview.EINVALID, "unknown format %q", c.Format)
	}

	doc, err := deps.Extractor.Extract(deps.Ctx, req.URL())
	if err != nil {
		return err
	}

	result := deps.Service.Analyze(deps.Ctx, req, doc)
	if err := renderer.Render(deps.Stdout, result); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	var writer docreview.ResultWriter
	if c.Save != "" {
		writer = deps.NewWriter(c.Save)
		path, err := writer.WriteResult(result)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not save analysis: %s\n", docreview.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "Analysis saved to %s\n", path)
		}
	}

	if c.Revise {
		c.revise(deps, doc, result, writer)
	}
	return nil
}

// revise generates and saves or prints a revision. Failures only warn.
func (c *AnalyzeCmd) revise(deps *Dependencies, doc *docreview.ExtractedDocument, result *docreview.AnalysisResult, writer docreview.ResultWriter) {
	revised, err := deps.Reviser.Revise(deps.Ctx, doc, result)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: could not generate revision: %s\n", errorText(err))
		return
	}

	if writer != nil {
		path, err := writer.WriteRevision(result, revised)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not save revision: %s\n", docreview.ErrorMessage(err))
			return
		}
		fmt.Fprintf(deps.Stderr, "Revised content saved to %s\n", path)
		return
	}

	if c.Format == "json" {
		fmt.Fprintln(deps.Stderr, "note: use --save to keep the revision when --format=json")
		return
	}
	fmt.Fprintf(deps.Stdout, "\nRevised Content\n\n%s\n", revised)
}

// errorText prefers an application message and falls back to err.Error.
func errorText(err error) string {
	if docreview.ErrorCode(err) == docreview.EINTERNAL {
		return err.Error()
	}
	return docreview.ErrorMessage(err)
}
