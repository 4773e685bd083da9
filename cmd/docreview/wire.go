package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/extract"
	"github.com/fwojciec/docreview/gemini"
	"github.com/fwojciec/docreview/goquery"
	"github.com/fwojciec/docreview/htmltomarkdown"
	"github.com/fwojciec/docreview/openai"
	"github.com/fwojciec/docreview/readability"
	"github.com/fwojciec/docreview/review"
	drslog "github.com/fwojciec/docreview/slog"
	"github.com/fwojciec/docreview/trafilatura"
	"golang.org/x/time/rate"
)

// Ensure pageExtractor implements docreview.DocumentExtractor at compile time.
var _ docreview.DocumentExtractor = (*pageExtractor)(nil)

// pageExtractor builds a strategy chain for each URL so that link
// resolution in the extractors and converter uses the page's own origin.
// The fetchers are shared between calls.
type pageExtractor struct {
	httpFetcher    docreview.Fetcher
	browserFetcher docreview.Fetcher // nil disables the headless fallback
	registry       docreview.ContentSelectorRegistry
	minChars       int
	maxChars       int
	logger         *slog.Logger
}

func (e *pageExtractor) Extract(ctx context.Context, rawURL string) (*docreview.ExtractedDocument, error) {
	u, err := docreview.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	pipeline := &extract.Pipeline{
		Extractors: []docreview.Extractor{
			goquery.NewContentExtractor(e.registry),
			trafilatura.NewExtractor(),
			readability.NewExtractor().ForURL(u),
		},
		Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(u.Scheme + "://" + u.Host)),
		MinChars:  e.minChars,
		MaxChars:  e.maxChars,
	}

	chain := &extract.Chain{
		Strategies: []extract.Strategy{
			extract.FetchStrategy(docreview.MethodSimpleFetch, e.httpFetcher, pipeline),
		},
		OnOutcome: func(o extract.Outcome) {
			e.logger.Debug("strategy",
				"method", o.Method,
				"ok", o.OK(),
				"reason", o.Reason,
			)
		},
	}
	if e.browserFetcher != nil {
		chain.Strategies = append(chain.Strategies,
			extract.FetchStrategy(docreview.MethodHeadlessRender, e.browserFetcher, pipeline))
	}

	return chain.Extract(ctx, u.String())
}

// newCompleter builds the completer for the configured provider.
func newCompleter(ctx context.Context, cli *CLI, key string) (docreview.Completer, error) {
	switch cli.Provider {
	case "openai":
		client, err := openai.NewClient(key, cli.BaseURL)
		if err != nil {
			return nil, err
		}
		return openai.NewCompleter(client, openai.WithModel(cli.Model), openai.WithJSONResponse()), nil
	case "gemini", "":
		if key == "" {
			return nil, docreview.Errorf(docreview.EINVALID, "Gemini API key required (set GOOGLE_API_KEY or GEMINI_API). Get a key at https://aistudio.google.com/apikey")
		}
		client, err := gemini.NewClient(ctx, key)
		if err != nil {
			return nil, err
		}
		return gemini.NewCompleter(client, gemini.WithModel(cli.Model), gemini.WithJSONResponse()), nil
	}
	return nil, docreview.Errorf(docreview.EINVALID, "unknown provider %q", cli.Provider)
}

// newSynthesizer configures the per-category analyzer.
func newSynthesizer(cli *CLI, completer docreview.Completer, logger *slog.Logger) *review.Synthesizer {
	s := &review.Synthesizer{
		Completer: completer,
		Timeout:   cli.LLMTimeout,
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	}
	if cli.LLMRate > 0 {
		s.Limiter = rate.NewLimiter(rate.Limit(cli.LLMRate), 1)
	}
	if cli.Provider == "gemini" && cli.MaxPromptTokens > 0 {
		model := cli.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		if counter, err := gemini.NewTokenCounter(model); err == nil {
			s.TokenCounter = counter
			s.MaxPromptTokens = cli.MaxPromptTokens
		} else {
			logger.Warn("token counting disabled", "model", model, "err", err)
		}
	}
	return s
}

// newRegistry returns the content selector registry, logging detection
// when verbose.
func newRegistry(logger *slog.Logger) docreview.ContentSelectorRegistry {
	registry := goquery.NewDefaultRegistry()
	return drslog.NewLoggingRegistry(registry, goquery.NewDetector(), logger)
}
