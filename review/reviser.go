package review

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/docreview"
)

// Ensure Reviser implements docreview.Reviser at compile time.
var _ docreview.Reviser = (*Reviser)(nil)

// Reviser asks the model to rewrite a document so it addresses its feedback.
type Reviser struct {
	Completer   docreview.Completer
	Timeout     time.Duration
	RetryDelays []time.Duration
	Logf        LogFunc
}

// Revise returns the rewritten content.
func (r *Reviser) Revise(ctx context.Context, doc *docreview.ExtractedDocument, result *docreview.AnalysisResult) (string, error) {
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return "", docreview.Errorf(docreview.EINVALID, "document content required")
	}
	if result == nil {
		return "", docreview.Errorf(docreview.EINVALID, "analysis result required")
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	prompt := docreview.RevisionPrompt(doc.Text, result)
	text, err := CallWithRetry(ctx, func(ctx context.Context) (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return r.Completer.Complete(callCtx, prompt)
	}, r.Logf, delays)
	if err != nil {
		return "", err
	}

	revised := unfence(strings.TrimSpace(text))
	if revised == "" {
		return "", docreview.Errorf(docreview.EPROVIDER, "model returned an empty revision")
	}
	return revised, nil
}

// unfence strips a single code fence wrapped around the whole text.
func unfence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	body := strings.TrimSuffix(text, "```")
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		return text
	}
	return strings.TrimSpace(body)
}
