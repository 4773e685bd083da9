package goquery

import "github.com/fwojciec/docreview"

var _ docreview.ContentSelectorRegistry = (*Registry)(nil)

// GenericSelectors locate the main content region on pages built without a
// recognised framework. They are tried after any framework selectors.
var GenericSelectors = docreview.ContentSelectors{
	"main",
	"article",
	"[role=main]",
	".main-content",
	"#main-content",
	".article-content",
	".content",
	".post-content",
	".entry-content",
}

// frameworkSelectors are the content regions of each supported framework,
// validated against current major versions.
var frameworkSelectors = map[docreview.Framework]docreview.ContentSelectors{
	docreview.FrameworkDocusaurus: {".theme-doc-markdown", "article .markdown"},
	docreview.FrameworkMkDocs:     {".md-content__inner", ".md-content"},
	docreview.FrameworkSphinx:     {"div[itemprop=articleBody]", ".rst-content .document", "div.body"},
	docreview.FrameworkVitePress:  {".vp-doc", ".VPDoc .content"},
	docreview.FrameworkVuePress:   {".theme-default-content"},
	docreview.FrameworkGitBook:    {"[data-testid='page.contentEditor']"},
	docreview.FrameworkNextra:     {".nextra-content article", "article main"},
}

// Registry maps frameworks to content selectors. It uses a
// FrameworkDetector to pick selectors for a page and always appends the
// generic selectors so unknown layouts still find a region.
type Registry struct {
	detector  docreview.FrameworkDetector
	generic   docreview.ContentSelectors
	selectors map[docreview.Framework]docreview.ContentSelectors
}

// NewRegistry creates an empty Registry with the given detector and generic selectors.
func NewRegistry(detector docreview.FrameworkDetector, generic docreview.ContentSelectors) *Registry {
	return &Registry{
		detector:  detector,
		generic:   generic,
		selectors: make(map[docreview.Framework]docreview.ContentSelectors),
	}
}

// NewDefaultRegistry creates a Registry populated with selectors for every
// supported framework.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), GenericSelectors)
	for f, s := range frameworkSelectors {
		r.Register(f, s)
	}
	return r
}

// Get returns the selectors registered for a framework, or nil.
func (r *Registry) Get(framework docreview.Framework) docreview.ContentSelectors {
	return r.selectors[framework]
}

// GetForHTML detects the framework and returns its selectors followed by
// the generic selectors.
func (r *Registry) GetForHTML(html string) docreview.ContentSelectors {
	framework := r.detector.Detect(html)
	specific := r.selectors[framework]

	out := make(docreview.ContentSelectors, 0, len(specific)+len(r.generic))
	out = append(out, specific...)
	return append(out, r.generic...)
}

// Register sets the selectors for a framework, replacing any existing entry.
func (r *Registry) Register(framework docreview.Framework, selectors docreview.ContentSelectors) {
	r.selectors[framework] = selectors
}
