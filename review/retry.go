package review

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/docreview"
)

// CallFunc performs one provider call.
type CallFunc func(ctx context.Context) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for provider retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// CallWithRetry invokes call, retrying transient failures after each of the
// given delays. Non-transient errors are returned immediately.
// The logger, if provided, is called before each retry.
func CallWithRetry(ctx context.Context, call CallFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := call(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isTransient(ctx, err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// isTransient reports whether err is worth retrying. A per-call deadline
// counts as transient as long as the parent context is still live.
func isTransient(ctx context.Context, err error) bool {
	if docreview.ErrorCode(err) == docreview.ETRANSIENT {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
}

// reason returns a human-readable description of err.
func reason(err error) string {
	var e *docreview.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
