// Package fs provides file-based storage for analysis results.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docreview"
)

// timestampLayout names saved files, e.g. analysis_20260301_123000.json.
const timestampLayout = "20060102_150405"

// Ensure ResultWriter implements docreview.ResultWriter at compile time.
var _ docreview.ResultWriter = (*ResultWriter)(nil)

// ResultWriter saves analysis results and revisions into a directory.
// Files are written to a temporary name and renamed into place so a
// partially written file is never visible.
type ResultWriter struct {
	dir string
}

// NewResultWriter creates a ResultWriter that writes into dir.
func NewResultWriter(dir string) *ResultWriter {
	return &ResultWriter{dir: dir}
}

// WriteResult saves result as indented JSON.
func (w *ResultWriter) WriteResult(result *docreview.AnalysisResult) (string, error) {
	if result == nil {
		return "", docreview.Errorf(docreview.EINVALID, "result required")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	return w.write(fileName("analysis", result, "json"), data)
}

// WriteRevision saves revised content with a frontmatter header naming
// the analyzed page.
func (w *ResultWriter) WriteRevision(result *docreview.AnalysisResult, content string) (string, error) {
	if result == nil {
		return "", docreview.Errorf(docreview.EINVALID, "result required")
	}
	if strings.TrimSpace(content) == "" {
		return "", docreview.Errorf(docreview.EINVALID, "revised content is empty")
	}

	return w.write(fileName("revised_content", result, "txt"), []byte(FormatRevision(result, content)))
}

// FormatRevision formats revised content with YAML frontmatter.
func FormatRevision(result *docreview.AnalysisResult, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(result.URL)
	b.WriteString("\nanalyzed: ")
	b.WriteString(result.Timestamp.Format("2006-01-02"))
	b.WriteString("\noverall_score: ")
	b.WriteString(result.OverallScore.String())
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}

// fileName builds prefix_<timestamp>.ext, adding the first block of the
// result ID when present so two results in the same second don't collide.
func fileName(prefix string, result *docreview.AnalysisResult, ext string) string {
	name := prefix + "_" + result.Timestamp.UTC().Format(timestampLayout)
	if id, _, _ := strings.Cut(result.ID, "-"); id != "" {
		name += "_" + id
	}
	return name + "." + ext
}

func (w *ResultWriter) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	// CreateTemp uses 0600; saved results are meant to be shared.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	path := filepath.Join(w.dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return path, nil
}
