package mock

import "github.com/fwojciec/docreview"

var _ docreview.ContentSelectorRegistry = (*ContentSelectorRegistry)(nil)

// ContentSelectorRegistry is a mock implementation of docreview.ContentSelectorRegistry.
type ContentSelectorRegistry struct {
	GetFn        func(framework docreview.Framework) docreview.ContentSelectors
	GetForHTMLFn func(html string) docreview.ContentSelectors
	RegisterFn   func(framework docreview.Framework, selectors docreview.ContentSelectors)
}

func (r *ContentSelectorRegistry) Get(framework docreview.Framework) docreview.ContentSelectors {
	return r.GetFn(framework)
}

func (r *ContentSelectorRegistry) GetForHTML(html string) docreview.ContentSelectors {
	return r.GetForHTMLFn(html)
}

func (r *ContentSelectorRegistry) Register(framework docreview.Framework, selectors docreview.ContentSelectors) {
	r.RegisterFn(framework, selectors)
}
