// Package review grades extracted documentation with a language model.
// A Synthesizer turns one document and one category into feedback; a
// Service runs extraction and every requested category for a URL.
package review

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/extract"
	"golang.org/x/time/rate"
)

// Defaults applied when the corresponding Synthesizer field is zero.
const (
	DefaultMaxPromptChars = 30000
	DefaultTimeout        = 60 * time.Second
)

// minContentChars is the smallest content budget the prompt shrinker will go to.
const minContentChars = 500

// maxShrinkRounds bounds the token-count loop.
const maxShrinkRounds = 5

// Ensure Synthesizer implements docreview.Analyzer at compile time.
var _ docreview.Analyzer = (*Synthesizer)(nil)

// Synthesizer grades a document for one category per call.
type Synthesizer struct {
	Completer docreview.Completer

	// TokenCounter and MaxPromptTokens, when both set, shrink the content
	// until the rendered prompt fits the provider's input limit.
	TokenCounter    docreview.TokenCounter
	MaxPromptTokens int

	MaxPromptChars int
	Timeout        time.Duration
	RetryDelays    []time.Duration

	// Limiter, if set, spaces provider calls.
	Limiter *rate.Limiter

	// Logf, if set, receives retry and budget messages.
	Logf LogFunc
}

// Analyze grades doc for category. Provider failures and unparseable
// responses are reported as Poor feedback rather than errors.
func (s *Synthesizer) Analyze(ctx context.Context, doc *docreview.ExtractedDocument, category docreview.Category) *docreview.CategoryFeedback {
	tmpl, ok := docreview.Template(category)
	if !ok {
		return docreview.DegradedFeedback(category, "Unknown category %q", string(category))
	}
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return docreview.DegradedFeedback(category, "No content was available to analyze")
	}

	prompt := s.prompt(ctx, tmpl, doc.Text)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return docreview.DegradedFeedback(category, "Analysis failed: %s", reason(err))
	}
	return ParseFeedback(category, text)
}

// prompt renders tmpl with as much of content as the budgets allow.
func (s *Synthesizer) prompt(ctx context.Context, tmpl docreview.PromptTemplate, content string) string {
	maxChars := s.MaxPromptChars
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}

	budget := max(maxChars-tmpl.Overhead(), minContentChars)
	text, truncated := extract.Truncate(content, budget)
	if truncated {
		s.logf("%s: content truncated to %d chars for prompt", tmpl.Category, budget)
	}
	prompt := tmpl.Render(text)

	// The outline grows with the content, so Overhead alone can undercount.
	for n := len([]rune(prompt)); n > maxChars && budget > minContentChars; n = len([]rune(prompt)) {
		budget = max(budget-(n-maxChars), minContentChars)
		text, _ = extract.Truncate(content, budget)
		prompt = tmpl.Render(text)
		s.logf("%s: prompt has %d chars, shrinking content to %d chars", tmpl.Category, n, budget)
	}

	if s.TokenCounter == nil || s.MaxPromptTokens <= 0 {
		return prompt
	}

	for range maxShrinkRounds {
		tokens, err := s.TokenCounter.CountTokens(ctx, prompt)
		if err != nil {
			s.logf("%s: token count failed: %v", tmpl.Category, err)
			return prompt
		}
		if tokens <= s.MaxPromptTokens || budget <= minContentChars {
			return prompt
		}

		// Scale the content budget by the overshoot, with headroom.
		budget = max(int(float64(budget)*float64(s.MaxPromptTokens)/float64(tokens)*0.9), minContentChars)
		text, _ = extract.Truncate(content, budget)
		prompt = tmpl.Render(text)
		s.logf("%s: prompt has %d tokens, shrinking content to %d chars", tmpl.Category, tokens, budget)
	}
	return prompt
}

func (s *Synthesizer) complete(ctx context.Context, prompt string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	call := func(ctx context.Context) (string, error) {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return s.Completer.Complete(callCtx, prompt)
	}

	return CallWithRetry(ctx, call, s.Logf, delays)
}

func (s *Synthesizer) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
