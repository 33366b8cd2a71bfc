package config

import (
	"os"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{
		"LOG_MAX_ENTRIES", "LOG_DATABASE_PATH",
		"KNOWLEDGE_CONFIDENCE_THRESHOLD", "KNOWLEDGE_MAX_SOURCES",
		"TRANSLATE_PROVIDER",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Log.MaxEntries != 10000 {
		t.Errorf("expected default 10000 log entries, got %d", settings.Log.MaxEntries)
	}
	if settings.Knowledge.ConfidenceThreshold != 0.6 {
		t.Errorf("expected default threshold 0.6, got %v", settings.Knowledge.ConfidenceThreshold)
	}
	if settings.Knowledge.MaxSources != 5 {
		t.Errorf("expected default 5 sources, got %d", settings.Knowledge.MaxSources)
	}
	if settings.Translate.Provider != "lexicon" {
		t.Errorf("expected default lexicon provider, got %q", settings.Translate.Provider)
	}
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("LOG_MAX_ENTRIES", "500")
	t.Setenv("KNOWLEDGE_CONFIDENCE_THRESHOLD", "0.8")
	t.Setenv("TRANSLATE_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_MODEL", "claude-test")

	settings, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Log.MaxEntries != 500 {
		t.Errorf("expected 500, got %d", settings.Log.MaxEntries)
	}
	if settings.Knowledge.ConfidenceThreshold != 0.8 {
		t.Errorf("expected 0.8, got %v", settings.Knowledge.ConfidenceThreshold)
	}
	if settings.Translate.Provider != "anthropic" {
		t.Errorf("expected alias normalized to anthropic, got %q", settings.Translate.Provider)
	}
	if settings.Translate.Model != "claude-test" {
		t.Errorf("expected model from environment, got %q", settings.Translate.Model)
	}
}

func TestNewInvalidValues(t *testing.T) {
	t.Setenv("LOG_MAX_ENTRIES", "lots")
	if _, err := New(); err == nil {
		t.Error("expected error for non-numeric LOG_MAX_ENTRIES")
	}
	os.Unsetenv("LOG_MAX_ENTRIES")

	t.Setenv("KNOWLEDGE_CONFIDENCE_THRESHOLD", "1.5")
	if _, err := New(); err == nil {
		t.Error("expected error for threshold outside [0,1]")
	}
}

func TestAPIKeyFor(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	key, err := APIKeyFor("openai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "test-key" {
		t.Errorf("expected test-key, got %q", key)
	}
}

func TestAPIKeyForMissing(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")
	if _, err := APIKeyFor("gemini"); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestAPIKeyForLexicon(t *testing.T) {
	key, err := APIKeyFor("lexicon")
	if err != nil {
		t.Fatalf("lexicon must not require a key: %v", err)
	}
	if key != "" {
		t.Errorf("expected empty key, got %q", key)
	}
}

func TestAPIKeyForUnknownProvider(t *testing.T) {
	if _, err := APIKeyFor("cohere"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
