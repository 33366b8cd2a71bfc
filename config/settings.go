// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Translation-provider API key lookup
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds all application configuration.
type Settings struct {
	Log       LogConfig
	Knowledge KnowledgeConfig
	Translate TranslateConfig
}

// LogConfig holds communication log configuration.
type LogConfig struct {
	MaxEntries   int
	DatabasePath string // empty disables durable storage
}

// KnowledgeConfig holds corpus query configuration.
type KnowledgeConfig struct {
	ConfidenceThreshold float64
	MaxSources          int
}

// TranslateConfig holds translation provider configuration.
type TranslateConfig struct {
	Provider string
	Model    string
}

// providerInfo holds configuration for an LLM translation provider.
type providerInfo struct {
	modelEnv  string
	apiKeyEnv string
}

// LLM translation providers and their environment variables. The
// lexicon provider needs neither a model nor a key.
var providers = map[string]providerInfo{
	"openai":    {"OPENAI_MODEL", "OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_MODEL", "ANTHROPIC_API_KEY"},
	"gemini":    {"GEMINI_MODEL", "GEMINI_API_KEY"},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"google": "gemini",
	"gpt":    "openai",
}

// New loads settings from environment variables.
// Returns an error if a variable contains an invalid value.
func New() (Settings, error) {
	maxEntries, err := getEnvInt("LOG_MAX_ENTRIES", 10000)
	if err != nil {
		return Settings{}, err
	}

	threshold, err := getEnvFloat64("KNOWLEDGE_CONFIDENCE_THRESHOLD", 0.6)
	if err != nil {
		return Settings{}, err
	}
	if threshold < 0 || threshold > 1 {
		return Settings{}, fmt.Errorf("KNOWLEDGE_CONFIDENCE_THRESHOLD must be in [0,1], got %v", threshold)
	}

	maxSources, err := getEnvInt("KNOWLEDGE_MAX_SOURCES", 5)
	if err != nil {
		return Settings{}, err
	}

	provider := normalizeProvider(os.Getenv("TRANSLATE_PROVIDER"))
	if provider == "" {
		provider = "lexicon"
	}

	model := ""
	if info, ok := providers[provider]; ok {
		model = os.Getenv(info.modelEnv)
	}

	return Settings{
		Log: LogConfig{
			MaxEntries:   maxEntries,
			DatabasePath: os.Getenv("LOG_DATABASE_PATH"),
		},
		Knowledge: KnowledgeConfig{
			ConfidenceThreshold: threshold,
			MaxSources:          maxSources,
		},
		Translate: TranslateConfig{
			Provider: provider,
			Model:    model,
		},
	}, nil
}

// MustNew loads settings and panics on invalid environment values.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// normalizeProvider converts provider aliases to canonical names.
func normalizeProvider(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if canonical, ok := providerAliases[provider]; ok {
		return canonical
	}
	return provider
}

// APIKeyFor returns the API key for an LLM translation provider from
// environment variables. The lexicon provider returns an empty key.
func APIKeyFor(provider string) (string, error) {
	provider = normalizeProvider(provider)
	if provider == "lexicon" || provider == "" {
		return "", nil
	}

	info, ok := providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown provider: %q", provider)
	}

	key := os.Getenv(info.apiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", info.apiKeyEnv)
	}
	return key, nil
}

// SupportedProviders returns the list of translation provider names.
func SupportedProviders() []string {
	result := []string{"lexicon"}
	for name := range providers {
		result = append(result, name)
	}
	return result
}

// Environment variable helpers with proper error handling

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvFloat64(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return f, nil
}
