// Google Gemini-backed translator using the official genai SDK.
//
// Information Hiding:
// - API authentication and client creation
// - Request/response format for the Gemini API
package translate

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator implements Translator using the Gemini API.
type GeminiTranslator struct {
	client  *genai.Client
	model   string
	initErr error // Stores client initialization error for deferred reporting
}

var _ Translator = (*GeminiTranslator)(nil)

// NewGemini creates a Gemini translator. If client initialization
// fails, the error is stored and returned on first use.
func NewGemini(apiKey, model string) *GeminiTranslator {
	if model == "" {
		model = defaultGeminiModel
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &GeminiTranslator{
			model:   model,
			initErr: fmt.Errorf("failed to initialize Gemini client: %w", err),
		}
	}
	return &GeminiTranslator{client: client, model: model}
}

// Name identifies the implementation.
func (t *GeminiTranslator) Name() string { return "gemini" }

// SanskritToEnglish translates Devanagari content to English.
func (t *GeminiTranslator) SanskritToEnglish(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, sanskritToEnglishPrompt(text))
}

// EnglishToSanskrit translates English content to Devanagari.
func (t *GeminiTranslator) EnglishToSanskrit(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, englishToSanskritPrompt(text))
}

func (t *GeminiTranslator) translate(ctx context.Context, prompt string) (Result, error) {
	if t.initErr != nil {
		return Result{}, t.initErr
	}
	if t.client == nil {
		return Result{}, fmt.Errorf("gemini client not initialized")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(translationSystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	response, err := t.client.Models.GenerateContent(ctx, t.model,
		genai.Text(prompt), config)
	if err != nil {
		return Result{}, fmt.Errorf("translation request failed: %w", err)
	}

	content := response.Text()
	if content == "" {
		return Result{}, fmt.Errorf("empty response from Gemini")
	}
	return parseTranslation(content)
}
