package docreview

import "context"

// Completer is the boundary to a large language model: prompt in, text out.
type Completer interface {
	// Complete sends the prompt and returns the model's text response.
	// Rate limits, 5xx responses, and timeouts are reported with code
	// ETRANSIENT so callers can retry; other failures use EPROVIDER.
	Complete(ctx context.Context, prompt string) (string, error)
}
