// Package gemini implements docreview.Completer and docreview.TokenCounter
// on top of Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/docreview"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature keeps grading stable between runs.
const DefaultTemperature = float32(0.2)

// SystemInstruction frames every request.
const SystemInstruction = "You are an expert technical writer who reviews documentation pages and gives specific, actionable feedback."

// Ensure Completer implements docreview.Completer at compile time.
var _ docreview.Completer = (*Completer)(nil)

// Completer sends prompts to a Gemini model.
type Completer struct {
	client      *genai.Client
	model       string
	temperature float32
	mimeType    string
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel selects the Gemini model.
func WithModel(model string) Option {
	return func(c *Completer) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *Completer) {
		c.temperature = t
	}
}

// WithJSONResponse asks the model to reply with a JSON document.
func WithJSONResponse() Option {
	return func(c *Completer) {
		c.mimeType = "application/json"
	}
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, docreview.Errorf(docreview.EINVALID, "Gemini API key required (set GOOGLE_API_KEY or GEMINI_API)")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewCompleter creates a Completer using client.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends prompt as a single user turn and returns the response text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", docreview.Errorf(docreview.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		BuildConfig(c.temperature, c.mimeType),
	)
	if err != nil {
		return "", classify(ctx, err)
	}
	if result == nil {
		return "", docreview.Errorf(docreview.EPROVIDER, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", docreview.Errorf(docreview.EPROVIDER, "gemini returned an empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// An empty mimeType leaves the response format to the model.
func BuildConfig(temperature float32, mimeType string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		ResponseMIMEType:  mimeType,
	}
}

// classify maps Gemini errors onto docreview codes: rate limits, server
// errors, and deadlines are ETRANSIENT, everything else EPROVIDER.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return docreview.Errorf(docreview.ETRANSIENT, "gemini: request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return docreview.Errorf(docreview.EPROVIDER, "gemini: request canceled")
	}

	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}

	if code == http.StatusTooManyRequests || code >= 500 {
		return docreview.Errorf(docreview.ETRANSIENT, "gemini: %v", err)
	}
	return docreview.Errorf(docreview.EPROVIDER, "gemini: %v", err)
}
