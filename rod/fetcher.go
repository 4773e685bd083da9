// Package rod provides a headless Chrome implementation of docreview.Fetcher
// for pages that render their content with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/docreview"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// DefaultSettle is how long the DOM must stay unchanged before the page is
// considered rendered.
const DefaultSettle = 500 * time.Millisecond

// Ensure Fetcher implements docreview.Fetcher at compile time.
var _ docreview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The browser starts on the first Fetch; constructing a Fetcher is free.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	settle    time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout. A value that is not
// positive keeps DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettle sets how long the DOM must be stable before HTML is read.
// Zero disables the stability wait.
func WithSettle(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithManager uses an existing BrowserManager instead of creating one.
func WithManager(m *BrowserManager) Option {
	return func(f *Fetcher) {
		f.manager = m
	}
}

// NewFetcher creates a Fetcher. Close must be called when the Fetcher is
// no longer needed, even if Fetch was never called.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		settle:  DefaultSettle,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.timeout <= 0 {
		f.timeout = DefaultFetchTimeout
	}
	if f.manager == nil {
		f.manager = NewBrowserManager()
	}
	return f
}

// Timeout returns the per-page render timeout in effect.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch navigates to the URL, waits for load and DOM stability, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.manager.closed.Load() {
		return "", docreview.Errorf(docreview.EINVALID, "fetcher closed")
	}

	browser, err := f.manager.Browser()
	if err != nil {
		return "", docreview.Errorf(docreview.EEXTRACT, "start browser: %v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", docreview.Errorf(docreview.EEXTRACT, "open page: %v", err)
	}
	defer page.Close()
	defer f.manager.IncrementPageCount()

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", docreview.Errorf(docreview.EEXTRACT, "set user agent: %v", err)
		}
	}

	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		return "", wrapPageError(ctx, url, "navigate", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapPageError(ctx, url, "wait for load", err)
	}
	if f.settle > 0 {
		if err := page.WaitDOMStable(f.settle, 0); err != nil {
			return "", wrapPageError(ctx, url, "wait for DOM", err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrapPageError(ctx, url, "read HTML", err)
	}
	return html, nil
}

// LauncherPID returns the browser launcher's process ID, or 0 before the
// first Fetch and after Close.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Launched reports whether the browser has ever been started.
func (f *Fetcher) Launched() bool {
	return f.manager.Launched() > 0
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// wrapPageError keeps caller cancellation visible to errors.Is and reports
// everything else as an extraction failure.
func wrapPageError(ctx context.Context, url, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return docreview.Errorf(docreview.EEXTRACT, "%s %s: %v", op, url, err)
}
