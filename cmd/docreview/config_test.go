package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCLI() *CLI {
	return &CLI{
		Provider:    defaultProvider,
		Timeout:     defaultFetchTime,
		LLMTimeout:  defaultLLMTimeout,
		MaxChars:    defaultMaxChars,
		MinChars:    defaultMinChars,
		Concurrency: defaultConcurrency,
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("parses nested sections and durations", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docreview.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
provider: openai
model: llama3
llm:
  base: http://localhost:11434/v1
  key: sk-local
  timeout: 90s
  rps: 0.5
fetch:
  timeout: 20s
  noBrowser: true
content:
  maxChars: 20000
concurrency: 2
`), 0o644))

		fc, err := LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "openai", fc.Provider)
		assert.Equal(t, "http://localhost:11434/v1", fc.LLM.BaseURL)
		assert.Equal(t, 90*time.Second, fc.LLM.Timeout)
		assert.Equal(t, 20*time.Second, fc.Fetch.Timeout)
		assert.True(t, fc.Fetch.NoBrowser)
		assert.Equal(t, 20000, fc.Content.MaxChars)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

		_, err := LoadConfigFile(path)

		assert.ErrorContains(t, err, "parse yaml")
	})
}

func TestApplyFileConfig(t *testing.T) {
	t.Parallel()

	t.Run("file fills flags left at defaults", func(t *testing.T) {
		t.Parallel()

		var fc FileConfig
		fc.Provider = "openai"
		fc.Model = "llama3"
		fc.LLM.APIKey = "sk-file"
		fc.LLM.Timeout = 90 * time.Second
		fc.Fetch.NoBrowser = true
		fc.Concurrency = 2

		cli := defaultCLI()
		key := ApplyFileConfig(cli, fc)

		assert.Equal(t, "sk-file", key)
		assert.Equal(t, "openai", cli.Provider)
		assert.Equal(t, "llama3", cli.Model)
		assert.Equal(t, 90*time.Second, cli.LLMTimeout)
		assert.True(t, cli.NoBrowser)
		assert.Equal(t, 2, cli.Concurrency)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		t.Parallel()

		var fc FileConfig
		fc.Model = "from-file"
		fc.Content.MaxChars = 1000

		cli := defaultCLI()
		cli.Model = "from-flag"
		cli.MaxChars = 8000
		ApplyFileConfig(cli, fc)

		assert.Equal(t, "from-flag", cli.Model)
		assert.Equal(t, 8000, cli.MaxChars)
	})
}

func TestAPIKey(t *testing.T) {
	t.Parallel()

	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	t.Run("GOOGLE_API_KEY wins over GEMINI_API", func(t *testing.T) {
		t.Parallel()

		got := apiKey("gemini", env(map[string]string{"GOOGLE_API_KEY": "g", "GEMINI_API": "x"}), "")

		assert.Equal(t, "g", got)
	})

	t.Run("falls back to GEMINI_API", func(t *testing.T) {
		t.Parallel()

		got := apiKey("gemini", env(map[string]string{"GEMINI_API": "x"}), "file")

		assert.Equal(t, "x", got)
	})

	t.Run("openai reads OPENAI_API_KEY", func(t *testing.T) {
		t.Parallel()

		got := apiKey("openai", env(map[string]string{"OPENAI_API_KEY": "sk", "GOOGLE_API_KEY": "g"}), "")

		assert.Equal(t, "sk", got)
	})

	t.Run("file key is the last resort", func(t *testing.T) {
		t.Parallel()

		got := apiKey("openai", env(nil), "file")

		assert.Equal(t, "file", got)
	})
}
