package docreview

import (
	"net/url"
	"slices"
	"strings"
)

// ValidateURL checks that rawURL is an absolute http or https URL with a host.
// It performs no network access.
func ValidateURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, Errorf(EINVALID, "invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return nil, Errorf(EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return u, nil
}

// AnalysisRequest is a validated request to grade a documentation page.
type AnalysisRequest struct {
	url        string
	categories []Category
}

// NewAnalysisRequest validates input and builds an AnalysisRequest.
// Duplicate categories are dropped; an empty list selects all categories.
func NewAnalysisRequest(rawURL string, categories ...Category) (*AnalysisRequest, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		categories = AllCategories()
	}

	unique := make([]Category, 0, len(categories))
	for _, c := range categories {
		if !c.Valid() {
			return nil, Errorf(EINVALID, "unknown category %q", string(c))
		}
		if !slices.Contains(unique, c) {
			unique = append(unique, c)
		}
	}

	return &AnalysisRequest{url: u.String(), categories: unique}, nil
}

// URL returns the normalized page URL.
func (r *AnalysisRequest) URL() string {
	return r.url
}

// Categories returns a copy of the requested categories in request order.
func (r *AnalysisRequest) Categories() []Category {
	return slices.Clone(r.categories)
}
