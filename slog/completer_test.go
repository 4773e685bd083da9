package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/mock"
	drslog "github.com/fwojciec/docreview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes but not the prompt", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Completer{
			CompleteFn: func(ctx context.Context, prompt string) (string, error) {
				return "fine", nil
			},
		}

		text, err := drslog.NewLoggingCompleter(inner, logger).Complete(context.Background(), "secret prompt body")

		require.NoError(t, err)
		assert.Equal(t, "fine", text)
		output := buf.String()
		assert.Contains(t, output, "prompt_chars=18")
		assert.Contains(t, output, "response_chars=4")
		assert.NotContains(t, output, "secret prompt body")
	})

	t.Run("logs error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Completer{
			CompleteFn: func(ctx context.Context, prompt string) (string, error) {
				return "", docreview.Errorf(docreview.ETRANSIENT, "rate limited")
			},
		}

		_, err := drslog.NewLoggingCompleter(inner, logger).Complete(context.Background(), "p")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=transient")
	})
}
