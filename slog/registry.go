package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docreview"
)

// Ensure LoggingRegistry implements docreview.ContentSelectorRegistry.
var _ docreview.ContentSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ContentSelectorRegistry with debug logging for framework detection.
type LoggingRegistry struct {
	next     docreview.ContentSelectorRegistry
	detector docreview.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docreview.ContentSelectorRegistry, detector docreview.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework docreview.Framework) docreview.ContentSelectors {
	return r.next.Get(framework)
}

// GetForHTML logs the detected framework and how many selectors will be tried.
func (r *LoggingRegistry) GetForHTML(html string) docreview.ContentSelectors {
	begin := time.Now()
	framework := r.detector.Detect(html)
	name := string(framework)
	if framework == docreview.FrameworkUnknown {
		name = "(unknown)"
	}
	selectors := r.next.GetForHTML(html)
	r.logger.Info("framework detection",
		"framework", name,
		"selectors", len(selectors),
		"duration", time.Since(begin),
	)
	return selectors
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework docreview.Framework, selectors docreview.ContentSelectors) {
	r.next.Register(framework, selectors)
}
