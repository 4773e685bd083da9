package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/review"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractor docreview.DocumentExtractor
	Reviser   docreview.Reviser
	Service   *review.Service

	// NewWriter creates the result writer for a --save directory.
	NewWriter func(dir string) docreview.ResultWriter
}

// Flag defaults, shared with ApplyFileConfig to detect unset flags.
const (
	defaultProvider    = "gemini"
	defaultFetchTime   = 10 * time.Second
	defaultLLMTimeout  = 60 * time.Second
	defaultMaxChars    = 50000
	defaultMinChars    = 100
	defaultConcurrency = 4
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Analyze a documentation page (default command)"`
	Serve   ServeCmd   `cmd:"" help:"Serve the web form and JSON API"`

	Provider        string        `enum:"gemini,openai" default:"gemini" help:"LLM provider (gemini, openai)"`
	Model           string        `short:"m" help:"Model name (provider default if empty)"`
	BaseURL         string        `name:"base-url" help:"Base URL for an OpenAI-compatible endpoint"`
	Timeout         time.Duration `short:"t" default:"10s" help:"Fetch timeout per extraction strategy"`
	LLMTimeout      time.Duration `name:"llm-timeout" default:"60s" help:"Timeout per LLM call"`
	LLMRate         float64       `name:"llm-rps" default:"0" help:"Maximum LLM calls per second (0 for unlimited)"`
	MaxPromptTokens int           `name:"max-prompt-tokens" default:"0" help:"Shrink prompts above this many tokens (gemini only, 0 disables)"`
	MaxChars        int           `name:"max-chars" default:"50000" help:"Character budget for extracted text"`
	MinChars        int           `name:"min-chars" default:"100" help:"Minimum extracted characters to accept a strategy"`
	Concurrency     int           `default:"4" help:"Categories analyzed concurrently"`
	NoBrowser       bool          `name:"no-browser" help:"Never fall back to a headless browser"`
	Config          string        `help:"YAML config file providing defaults"`
	Verbose         bool          `short:"v" help:"Log progress to stderr"`
}

// AnalyzeCmd is the "analyze" command.
type AnalyzeCmd struct {
	URL        string   `arg:"" help:"Documentation page URL"`
	Categories []string `name:"category" short:"c" help:"Category to analyze: readability, structure, completeness, style (repeatable, default all)"`
	Format     string   `short:"f" enum:"text,markdown,json" default:"text" help:"Output format (text, markdown, json)"`
	Save       string   `short:"s" placeholder:"DIR" help:"Save the analysis (and revision) into DIR"`
	Revise     bool     `short:"r" help:"Ask the model to rewrite the page using the feedback"`
}

// ServeCmd is the "serve" command.
type ServeCmd struct {
	Port      string  `env:"PORT" default:"8080" help:"Port to listen on"`
	GinMode   string  `name:"gin-mode" env:"GIN_MODE" default:"release" help:"Gin mode (debug, release, test)"`
	RateLimit float64 `name:"rate-limit" default:"2" help:"Analysis requests per second per client"`
}
