package slog

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// Redacted replaces credential values in log output.
const Redacted = "***REDACTED***"

// secretKeywords mark attribute keys whose values are never logged.
var secretKeywords = []string{
	"api_key", "apikey", "api-key", "authorization", "password", "secret", "token",
}

// secretValues match provider key formats regardless of the attribute key.
var secretValues = []*regexp.Regexp{
	regexp.MustCompile(`^AIza[0-9A-Za-z_-]{35}$`),
	regexp.MustCompile(`^sk-[A-Za-z0-9_-]{16,}$`),
	regexp.MustCompile(`(?i)^bearer\s+.+`),
}

// Ensure SecretHandler implements slog.Handler.
var _ slog.Handler = (*SecretHandler)(nil)

// SecretHandler wraps a slog.Handler and masks credentials in attributes.
type SecretHandler struct {
	next slog.Handler
}

// NewSecretHandler creates a new SecretHandler wrapping next.
func NewSecretHandler(next slog.Handler) *SecretHandler {
	return &SecretHandler{next: next}
}

// Enabled delegates to the wrapped handler.
func (h *SecretHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle masks secret attributes and passes the record on.
func (h *SecretHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(redact(a))
		return true
	})
	return h.next.Handle(ctx, masked)
}

// WithAttrs masks attrs before adding them.
func (h *SecretHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = redact(a)
	}
	return &SecretHandler{next: h.next.WithAttrs(masked)}
}

// WithGroup delegates to the wrapped handler.
func (h *SecretHandler) WithGroup(name string) slog.Handler {
	return &SecretHandler{next: h.next.WithGroup(name)}
}

func redact(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, g := range group {
			masked[i] = redact(g)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	key := strings.ToLower(a.Key)
	for _, kw := range secretKeywords {
		if strings.Contains(key, kw) {
			return slog.String(a.Key, Redacted)
		}
	}

	if a.Value.Kind() == slog.KindString {
		v := a.Value.String()
		for _, re := range secretValues {
			if re.MatchString(v) {
				return slog.String(a.Key, Redacted)
			}
		}
	}
	return a
}
