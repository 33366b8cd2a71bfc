// Package translate converts message content between Sanskrit and
// English. The built-in lexicon translator works offline; LLM-backed
// translators cover vocabulary beyond the lexicon.
//
// Information Hiding:
// - Provider credentials and wire formats stay inside each implementation
// - Callers see only the Translator interface and Result
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Result is one translation with its supporting annotations.
type Result struct {
	Text            string   `json:"text"`
	Transliteration string   `json:"transliteration,omitempty"`
	Confidence      float64  `json:"confidence"`
	CulturalNotes   []string `json:"cultural_notes,omitempty"`
}

// Translator converts text between Sanskrit and English.
type Translator interface {
	// Name identifies the implementation.
	Name() string
	// SanskritToEnglish translates Devanagari content to English.
	SanskritToEnglish(ctx context.Context, text string) (Result, error)
	// EnglishToSanskrit translates English content to Devanagari.
	EnglishToSanskrit(ctx context.Context, text string) (Result, error)
}

// Provider selects a translator implementation by name.
type Provider string

const (
	ProviderLexicon   Provider = "lexicon"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// ParseProvider converts a configuration string to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderLexicon, "":
		return ProviderLexicon, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown translation provider: %q", s)
	}
}

// New constructs the translator for a provider. LLM providers read
// their API key from the argument; the lexicon needs none.
func New(provider Provider, apiKey, model string) (Translator, error) {
	switch provider {
	case ProviderLexicon:
		return NewLexicon(), nil
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("openai translator requires an API key")
		}
		return NewOpenAI(apiKey, model), nil
	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic translator requires an API key")
		}
		return NewAnthropic(apiKey, model), nil
	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("gemini translator requires an API key")
		}
		return NewGemini(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %q", provider)
	}
}
