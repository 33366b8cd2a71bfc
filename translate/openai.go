// OpenAI-backed translator using the go-openai library.
//
// Information Hiding:
// - API endpoint and authentication
// - Request/response format for OpenAI Chat Completions API
package translate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAITranslator implements Translator using OpenAI chat completions.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

var _ Translator = (*OpenAITranslator)(nil)

// NewOpenAI creates an OpenAI translator. An empty model selects the
// default.
func NewOpenAI(apiKey, model string) *OpenAITranslator {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAITranslator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name identifies the implementation.
func (t *OpenAITranslator) Name() string { return "openai" }

// SanskritToEnglish translates Devanagari content to English.
func (t *OpenAITranslator) SanskritToEnglish(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, sanskritToEnglishPrompt(text))
}

// EnglishToSanskrit translates English content to Devanagari.
func (t *OpenAITranslator) EnglishToSanskrit(ctx context.Context, text string) (Result, error) {
	return t.translate(ctx, englishToSanskritPrompt(text))
}

func (t *OpenAITranslator) translate(ctx context.Context, prompt string) (Result, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("empty response from OpenAI")
	}
	return parseTranslation(resp.Choices[0].Message.Content)
}
