package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/fs"
	docreviewhttp "github.com/fwojciec/docreview/http"
	"github.com/fwojciec/docreview/review"
	"github.com/fwojciec/docreview/rod"
	drslog "github.com/fwojciec/docreview/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadEnv()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", docreview.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// loadEnv reads .env.development, then .env, if present.
func loadEnv() {
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads credentials. Defaults to os.Getenv.
	Getenv func(string) string

	// Services for end-to-end testing. Nil values are built from flags.
	HTTPFetcher    docreview.Fetcher
	BrowserFetcher docreview.Fetcher
	Completer      docreview.Completer
	Now            func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docreview"),
		kong.Description("Grade documentation pages for readability, structure, completeness, and style"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return docreview.Errorf(docreview.EINVALID, "no URL provided. Run 'docreview --help' for usage")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return docreview.Errorf(docreview.EINVALID, "%v", err)
	}

	// Validate the request before any network or browser work.
	if strings.HasPrefix(kongCtx.Command(), "analyze") {
		if _, err := cli.Analyze.request(); err != nil {
			return err
		}
	}

	var fileKey string
	if cli.Config != "" {
		fc, err := LoadConfigFile(cli.Config)
		if err != nil {
			return docreview.Errorf(docreview.EINVALID, "config %s: %v", cli.Config, err)
		}
		fileKey = ApplyFileConfig(cli, fc)
	}

	deps.Logger = newLogger(cli.Verbose, stderr)

	completer := m.Completer
	if completer == nil {
		getenv := m.Getenv
		if getenv == nil {
			getenv = os.Getenv
		}
		completer, err = newCompleter(ctx, cli, apiKey(cli.Provider, getenv, fileKey))
		if err != nil {
			return err
		}
	}
	completer = drslog.NewLoggingCompleter(completer, deps.Logger)

	httpFetcher := m.HTTPFetcher
	if httpFetcher == nil {
		httpFetcher = docreviewhttp.NewFetcher(docreviewhttp.WithTimeout(cli.Timeout))
	}
	httpFetcher = drslog.NewLoggingFetcher(httpFetcher, "http", deps.Logger)
	defer httpFetcher.Close()

	var browserFetcher docreview.Fetcher
	if !cli.NoBrowser {
		browserFetcher = m.BrowserFetcher
		if browserFetcher == nil {
			browserFetcher = rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		}
		browserFetcher = drslog.NewLoggingFetcher(browserFetcher, "rod", deps.Logger)
		defer browserFetcher.Close()
	}

	deps.Extractor = drslog.NewLoggingExtractor(&pageExtractor{
		httpFetcher:    httpFetcher,
		browserFetcher: browserFetcher,
		registry:       newRegistry(deps.Logger),
		minChars:       cli.MinChars,
		maxChars:       cli.MaxChars,
		logger:         deps.Logger,
	}, deps.Logger)

	deps.Service = &review.Service{
		Extractor:   deps.Extractor,
		Analyzer:    drslog.NewLoggingAnalyzer(newSynthesizer(cli, completer, deps.Logger), deps.Logger),
		Concurrency: cli.Concurrency,
		Now:         m.Now,
	}
	deps.Reviser = &review.Reviser{
		Completer: completer,
		Timeout:   cli.LLMTimeout,
	}
	deps.NewWriter = func(dir string) docreview.ResultWriter {
		return fs.NewResultWriter(dir)
	}

	return kongCtx.Run(deps)
}

// newLogger logs to stderr when verbose and discards otherwise.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(drslog.NewSecretHandler(handler))
}
