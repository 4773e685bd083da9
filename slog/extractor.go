package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docreview"
)

// Ensure LoggingExtractor implements docreview.DocumentExtractor.
var _ docreview.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with debug logging.
type LoggingExtractor struct {
	next   docreview.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docreview.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the chosen method and text size.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (doc *docreview.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if doc != nil {
			attrs = append(attrs,
				"method", doc.Method,
				"chars", len([]rune(doc.Text)),
				"truncated", doc.Truncated,
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
