package mock

import (
	"context"

	"github.com/fwojciec/docreview"
)

var _ docreview.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docreview.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn when set so tests that don't care about
// cleanup can leave it nil.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
