package docreview

// ResultWriter saves analysis output for later reference.
type ResultWriter interface {
	// WriteResult saves the result as JSON and returns the file path.
	WriteResult(result *AnalysisResult) (string, error)

	// WriteRevision saves revised content produced for result and returns the file path.
	WriteRevision(result *AnalysisResult, content string) (string, error)
}
