package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docreview"
)

// Ensure LoggingAnalyzer implements docreview.Analyzer.
var _ docreview.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   docreview.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next docreview.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze logs the category score and delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, doc *docreview.ExtractedDocument, category docreview.Category) (fb *docreview.CategoryFeedback) {
	defer func(begin time.Time) {
		score := "(none)"
		issues := 0
		if fb != nil {
			score = fb.Score.String()
			issues = len(fb.Issues)
		}
		a.logger.Info("analyze",
			"category", category,
			"score", score,
			"issues", issues,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Analyze(ctx, doc, category)
}
