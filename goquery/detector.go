package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docreview"
)

var _ docreview.FrameworkDetector = (*Detector)(nil)

// marker ties a set of framework-specific selectors to the framework
// they identify. Any one match is enough.
type marker struct {
	framework docreview.Framework
	selectors []string
}

// markers are checked in order. VitePress precedes VuePress because it
// reuses some VuePress class names.
var markers = []marker{
	{docreview.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", ".theme-doc-markdown"}},
	{docreview.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{docreview.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"}},
	{docreview.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".vp-doc"}},
	{docreview.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{docreview.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.contentEditor']"}},
	{docreview.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-content", ".nextra-toc"}},
}

// generators maps substrings of <meta name="generator"> to frameworks.
var generators = []struct {
	needle    string
	framework docreview.Framework
}{
	{"sphinx", docreview.FrameworkSphinx},
	{"gitbook", docreview.FrameworkGitBook},
	{"docusaurus", docreview.FrameworkDocusaurus},
	{"mkdocs", docreview.FrameworkMkDocs},
	{"vitepress", docreview.FrameworkVitePress},
	{"vuepress", docreview.FrameworkVuePress},
	{"nextra", docreview.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content using
// generator meta tags and structural markers unique to each generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) docreview.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docreview.FrameworkUnknown
	}
	return d.detectDocument(doc)
}

func (d *Detector) detectDocument(doc *goquery.Document) docreview.Framework {
	// Generator tags are the most reliable signal when present.
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, g := range generators {
			if strings.Contains(generator, g.needle) {
				return g.framework
			}
		}
	}

	for _, m := range markers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	if hasGitBookClasses(doc) {
		return docreview.FrameworkGitBook
	}
	return docreview.FrameworkUnknown
}

// hasGitBookClasses reports whether the html element carries at least two
// of GitBook's theme classes.
func hasGitBookClasses(doc *goquery.Document) bool {
	class, _ := doc.Find("html").Attr("class")
	count := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			count++
		}
	}
	return count >= 2
}
