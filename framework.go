package docreview

// Framework identifies a documentation framework.
type Framework string

// Supported documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// ContentSelectors lists CSS selectors for a page's main content region,
// most specific first.
type ContentSelectors []string

// ContentSelectorRegistry manages framework-specific content selectors.
type ContentSelectorRegistry interface {
	// Get returns the selectors registered for a framework, or nil.
	Get(framework Framework) ContentSelectors

	// GetForHTML detects the framework from HTML and returns its selectors
	// followed by the generic selectors.
	GetForHTML(html string) ContentSelectors

	// Register sets the selectors for a framework.
	Register(framework Framework, selectors ContentSelectors)
}
