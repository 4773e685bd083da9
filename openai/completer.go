// Package openai implements docreview.Completer for OpenAI-compatible chat
// completion endpoints (OpenAI, vLLM, Ollama, LM Studio, ...).
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/docreview"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// SystemInstruction frames every request.
const SystemInstruction = "You are an expert technical writer who reviews documentation pages and gives specific, actionable feedback."

// ChatClient is the subset of *goopenai.Client used by Completer.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Ensure Completer implements docreview.Completer at compile time.
var _ docreview.Completer = (*Completer)(nil)

// Completer sends prompts to an OpenAI-compatible chat model.
type Completer struct {
	client      ChatClient
	model       string
	temperature float32
	jsonMode    bool
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel selects the model.
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

// WithJSONResponse requests a JSON object response format.
func WithJSONResponse() Option {
	return func(c *Completer) {
		c.jsonMode = true
	}
}

// NewClient builds a go-openai client. An empty baseURL targets api.openai.com.
func NewClient(apiKey, baseURL string) (*goopenai.Client, error) {
	if apiKey == "" && baseURL == "" {
		return nil, docreview.Errorf(docreview.EINVALID, "OpenAI API key required (set OPENAI_API_KEY)")
	}
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(cfg), nil
}

// NewCompleter creates a Completer using client.
func NewCompleter(client ChatClient, opts ...Option) *Completer {
	c := &Completer{
		client:      client,
		model:       DefaultModel,
		temperature: 0.2,
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

// Complete sends prompt as a user message and returns the first choice.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", docreview.Errorf(docreview.EINVALID, "prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, c.temperature, c.jsonMode, prompt))
	if err != nil {
		return "", classify(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return "", docreview.Errorf(docreview.EPROVIDER, "openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", docreview.Errorf(docreview.EPROVIDER, "openai returned an empty response")
	}
	return text, nil
}

// BuildRequest assembles the chat completion request for prompt.
func BuildRequest(model string, temperature float32, jsonMode bool, prompt string) goopenai.ChatCompletionRequest {
	req := goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: SystemInstruction},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return req
}

// classify maps go-openai errors onto docreview codes.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return docreview.Errorf(docreview.ETRANSIENT, "openai: request timed out")
	}

	status := 0
	var apiErr *goopenai.APIError
	var reqErr *goopenai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	if status == http.StatusTooManyRequests || status >= 500 {
		return docreview.Errorf(docreview.ETRANSIENT, "openai: %v", err)
	}
	return docreview.Errorf(docreview.EPROVIDER, "openai: %v", err)
}
