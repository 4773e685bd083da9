// Package docreview provides a documentation-quality checker.
// It fetches a documentation page, extracts its readable text, asks a
// large language model to grade it per category (readability, structure,
// completeness, style), and renders the structured feedback.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, gemini/).
package docreview
