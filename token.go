package docreview

import "context"

// TokenCounter counts tokens in text for a specific model.
// It is used to keep prompts within the provider's input limit.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
