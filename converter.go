package docreview

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms content HTML (e.g., from an Extractor) into Markdown,
	// keeping headings and lists visible to the model.
	Convert(html string) (string, error)
}
