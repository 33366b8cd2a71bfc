// Anthropic-backed translator using the official anthropic-sdk-go.
//
// Information Hiding:
// - API endpoint and authentication
// - Request/response format for the Anthropic Messages API
package translate

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel     = "claude-3-5-haiku-latest"
	anthropicTranslationLimit = 1024
)

// AnthropicTranslator implements Translator using the Messages API.
type AnthropicTranslator struct {
	client anthropic.Client
	model  string
}

var _ Translator = (*AnthropicTranslator)(nil)

// NewAnthropic creates an Anthropic translator. An empty model selects
// the default.
func NewAnthropic(apiKey, model string) *AnthropicTranslator {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicTranslator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Name identifies the implementation.
func (t *AnthropicTranslator) Name() string { return "anthropic" }

// SanskritToEnglish translates Devanagari content to English.
func (t *AnthropicTranslator) SanskritToEnglish(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, sanskritToEnglishPrompt(text))
}

// EnglishToSanskrit translates English content to Devanagari.
func (t *AnthropicTranslator) EnglishToSanskrit(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, englishToSanskritPrompt(text))
}

func (t *AnthropicTranslator) translate(ctx context.Context, prompt string) (Result, error) {
	message, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: anthropicTranslationLimit,
		System: []anthropic.TextBlockParam{
			{Text: translationSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("translation request failed: %w", err)
	}

	content := ""
	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += variant.Text
		}
	}
	if content == "" {
		return Result{}, fmt.Errorf("empty response from Anthropic")
	}
	return parseTranslation(content)
}
