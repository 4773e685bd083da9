package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docreview"
	"github.com/fwojciec/docreview/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("sets system instruction and temperature", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(0.3, "")

		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Equal(t, gemini.SystemInstruction, config.SystemInstruction.Parts[0].Text)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.3, *config.Temperature, 0.0001)
		assert.Empty(t, config.ResponseMIMEType)
	})

	t.Run("requests JSON when asked", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(0.3, "application/json")

		assert.Equal(t, "application/json", config.ResponseMIMEType)
	})
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("returns response text and sends prompt", func(t *testing.T) {
		t.Parallel()

		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\":\"Good\"}"}]}}]}`))
		})

		c := gemini.NewCompleter(client, gemini.WithJSONResponse())
		text, err := c.Complete(context.Background(), "grade this")

		require.NoError(t, err)
		assert.JSONEq(t, `{"score":"Good"}`, text)
		assert.Contains(t, mustJSON(t, body), "grade this")
	})

	t.Run("rate limit is transient", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		})

		_, err := gemini.NewCompleter(client).Complete(context.Background(), "grade this")

		require.Error(t, err)
		assert.Equal(t, docreview.ETRANSIENT, docreview.ErrorCode(err))
	})

	t.Run("bad request is a provider error", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := gemini.NewCompleter(client).Complete(context.Background(), "grade this")

		require.Error(t, err)
		assert.Equal(t, docreview.EPROVIDER, docreview.ErrorCode(err))
	})

	t.Run("empty response is a provider error", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := gemini.NewCompleter(client).Complete(context.Background(), "grade this")

		require.Error(t, err)
		assert.Equal(t, docreview.EPROVIDER, docreview.ErrorCode(err))
	})

	t.Run("empty prompt is rejected without a request", func(t *testing.T) {
		t.Parallel()

		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

		_, err := gemini.NewCompleter(client).Complete(context.Background(), "  ")

		assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
		assert.Zero(t, calls)
	})
}

func TestNewClient_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewClient(context.Background(), "")

	assert.Equal(t, docreview.EINVALID, docreview.ErrorCode(err))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
