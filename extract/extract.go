// Package extract turns a documentation URL into cleaned plain text.
// It tries an ordered list of strategies (a plain HTTP fetch, then a
// headless browser render) and returns the first usable document.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docreview"
)

// Outcome is the tagged result of one strategy attempt: either a Document
// or the Reason the strategy failed.
type Outcome struct {
	Method   docreview.ExtractionMethod
	Document *docreview.ExtractedDocument
	Reason   string
}

// OK reports whether the attempt produced a document.
func (o Outcome) OK() bool {
	return o.Document != nil
}

// Failed builds a failed Outcome.
func Failed(method docreview.ExtractionMethod, format string, args ...any) Outcome {
	return Outcome{Method: method, Reason: fmt.Sprintf(format, args...)}
}

// Strategy attempts to produce a document for url. Strategies report every
// failure through the Outcome; they never return errors or panic.
type Strategy func(ctx context.Context, url string) Outcome

// FetchStrategy fetches HTML with fetcher and runs it through pipeline,
// tagging the document with method.
func FetchStrategy(method docreview.ExtractionMethod, fetcher docreview.Fetcher, pipeline *Pipeline) Strategy {
	return func(ctx context.Context, url string) (out Outcome) {
		defer func() {
			if r := recover(); r != nil {
				out = Failed(method, "panic: %v", r)
			}
		}()

		html, err := fetcher.Fetch(ctx, url)
		if err != nil {
			return Failed(method, "fetch: %s", docreview.ErrorMessage(err))
		}

		content, err := pipeline.Process(html)
		if err != nil {
			return Failed(method, "%s", docreview.ErrorMessage(err))
		}

		return Outcome{
			Method: method,
			Document: &docreview.ExtractedDocument{
				URL:       url,
				Title:     content.Title,
				Text:      content.Text,
				Method:    method,
				Truncated: content.Truncated,
			},
		}
	}
}

// Ensure Chain implements docreview.DocumentExtractor at compile time.
var _ docreview.DocumentExtractor = (*Chain)(nil)

// Chain runs strategies in order until one succeeds. Later strategies are
// never invoked once an earlier one has produced a document.
type Chain struct {
	Strategies []Strategy

	// OnOutcome, if set, is called after every attempt.
	OnOutcome func(Outcome)
}

// Extract validates url and returns the first successful strategy's
// document. It fails with EEXTRACT only after every strategy has failed.
func (c *Chain) Extract(ctx context.Context, url string) (*docreview.ExtractedDocument, error) {
	if _, err := docreview.ValidateURL(url); err != nil {
		return nil, err
	}

	var reasons []string
	for _, strategy := range c.Strategies {
		if err := ctx.Err(); err != nil {
			reasons = append(reasons, err.Error())
			break
		}

		out := strategy(ctx, url)
		if c.OnOutcome != nil {
			c.OnOutcome(out)
		}
		if out.OK() {
			return out.Document, nil
		}
		reasons = append(reasons, fmt.Sprintf("%s: %s", out.Method, out.Reason))
	}

	if len(reasons) == 0 {
		return nil, docreview.Errorf(docreview.EEXTRACT, "no extraction strategies configured")
	}
	return nil, docreview.Errorf(docreview.EEXTRACT, "could not extract content from %s (%s)", url, strings.Join(reasons, "; "))
}
