package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager owns the headless Chrome process. The browser is launched
// on the first call to Browser, so a manager that is never used costs
// nothing, and it is recycled after maxPages pages because Chrome's memory
// baseline grows over time even with proper page cleanup.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount atomic.Int64
	maxPages  int64
	launches  atomic.Int64
	mu        sync.Mutex
	closed    atomic.Bool

	// launch starts a browser process.
	launch func() (*rod.Browser, *launcher.Launcher, error)
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager creates a BrowserManager. No browser is started until
// Browser is first called. Close must be called when the manager is no
// longer needed.
func NewBrowserManager(opts ...ManagerOption) *BrowserManager {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		launch:   launchBrowser,
	}
	for _, opt := range opts {
		opt(bm)
	}
	return bm
}

// Browser returns the current browser, launching it on first use and
// recycling it once maxPages pages have been processed. Callers should call
// IncrementPageCount after using the browser to process a page.
func (bm *BrowserManager) Browser() (*rod.Browser, error) {
	if bm.closed.Load() {
		return nil, fmt.Errorf("browser manager closed")
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.browser == nil {
		browser, l, err := bm.launch()
		if err != nil {
			return nil, err
		}
		bm.browser, bm.launcher = browser, l
		bm.launches.Add(1)
		return bm.browser, nil
	}

	if bm.pageCount.Load() >= bm.maxPages {
		bm.recycleBrowser()
	}
	return bm.browser, nil
}

// Launched reports how many browser processes this manager has started.
func (bm *BrowserManager) Launched() int64 {
	return bm.launches.Load()
}

// IncrementPageCount increments the page counter. Call this after
// processing a page to track progress toward the recycling threshold.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pageCount.Add(1)
}

// Close releases browser resources. Close is safe to call multiple times
// and is a no-op if the browser was never launched.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

// LauncherPID returns the process ID of the browser launcher, or 0 if no
// browser is running. It exists so tests can verify cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// launchBrowser starts a headless browser with stability flags.
func launchBrowser() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching fails the old browser is kept.
// Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	browser, l, err := bm.launch()
	if err != nil {
		return
	}
	bm.launches.Add(1)

	if bm.browser != nil {
		_ = bm.browser.Close()
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
	}
	bm.browser, bm.launcher = browser, l
	bm.pageCount.Store(0)
}
