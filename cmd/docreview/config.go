package main

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Every field supplies
// a default that an explicit flag overrides.
type FileConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	LLM struct {
		BaseURL         string        `yaml:"base"`
		APIKey          string        `yaml:"key"`
		Timeout         time.Duration `yaml:"timeout"`
		Rate            float64       `yaml:"rps"`
		MaxPromptTokens int           `yaml:"maxPromptTokens"`
	} `yaml:"llm"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout"`
		NoBrowser bool          `yaml:"noBrowser"`
	} `yaml:"fetch"`

	Content struct {
		MinChars int `yaml:"minChars"`
		MaxChars int `yaml:"maxChars"`
	} `yaml:"content"`

	Concurrency int `yaml:"concurrency"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays fc onto cli for every flag still at its default.
// It returns the API key from the file, if any.
func ApplyFileConfig(cli *CLI, fc FileConfig) string {
	if cli.Provider == defaultProvider && fc.Provider != "" {
		cli.Provider = fc.Provider
	}
	if cli.Model == "" && fc.Model != "" {
		cli.Model = fc.Model
	}
	if cli.BaseURL == "" && fc.LLM.BaseURL != "" {
		cli.BaseURL = fc.LLM.BaseURL
	}
	if cli.LLMTimeout == defaultLLMTimeout && fc.LLM.Timeout > 0 {
		cli.LLMTimeout = fc.LLM.Timeout
	}
	if cli.LLMRate == 0 && fc.LLM.Rate > 0 {
		cli.LLMRate = fc.LLM.Rate
	}
	if cli.MaxPromptTokens == 0 && fc.LLM.MaxPromptTokens > 0 {
		cli.MaxPromptTokens = fc.LLM.MaxPromptTokens
	}
	if cli.Timeout == defaultFetchTime && fc.Fetch.Timeout > 0 {
		cli.Timeout = fc.Fetch.Timeout
	}
	if !cli.NoBrowser && fc.Fetch.NoBrowser {
		cli.NoBrowser = true
	}
	if cli.MinChars == defaultMinChars && fc.Content.MinChars > 0 {
		cli.MinChars = fc.Content.MinChars
	}
	if cli.MaxChars == defaultMaxChars && fc.Content.MaxChars > 0 {
		cli.MaxChars = fc.Content.MaxChars
	}
	if cli.Concurrency == defaultConcurrency && fc.Concurrency > 0 {
		cli.Concurrency = fc.Concurrency
	}
	return fc.LLM.APIKey
}

// apiKey returns the first non-empty credential for provider.
func apiKey(provider string, getenv func(string) string, fileKey string) string {
	var names []string
	switch provider {
	case "openai":
		names = []string{"OPENAI_API_KEY"}
	default:
		names = []string{"GOOGLE_API_KEY", "GEMINI_API", "GEMINI_API_KEY"}
	}
	for _, name := range names {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return fileKey
}
