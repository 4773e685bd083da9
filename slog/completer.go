package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docreview"
)

// Ensure LoggingCompleter implements docreview.Completer.
var _ docreview.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
// Prompts and responses are logged by size only.
type LoggingCompleter struct {
	next   docreview.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next docreview.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs the call and delegates to the wrapped completer.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("complete",
			"prompt_chars", len([]rune(prompt)),
			"response_chars", len([]rune(text)),
			"duration", time.Since(begin),
			"code", docreview.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
