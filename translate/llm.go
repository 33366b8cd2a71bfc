package translate

import (
	"fmt"

	jsonutil "github.com/samskrita/samvada/internal/json"
)

// llmResult is the JSON shape translators ask the model to return.
type llmResult struct {
	Translation     string   `json:"translation"`
	Transliteration string   `json:"transliteration"`
	Confidence      float64  `json:"confidence"`
	CulturalNotes   []string `json:"cultural_notes"`
}

const translationSystemPrompt = "You are a Sanskrit translation assistant. " +
	"Respond with a single JSON object: " +
	`{"translation": string, "transliteration": string, "confidence": number between 0 and 1, "cultural_notes": array of strings}. ` +
	"Use IAST for transliteration. Include cultural_notes only for terms whose meaning a plain gloss would lose. " +
	"No text outside the JSON object."

func sanskritToEnglishPrompt(text string) string {
	return fmt.Sprintf("Translate this Sanskrit text to English:\n\n%s", text)
}

func englishToSanskritPrompt(text string) string {
	return fmt.Sprintf("Translate this English text to Sanskrit in Devanagari script:\n\n%s", text)
}

// parseTranslation decodes a model response into a Result. Confidence
// outside [0,1] is clamped.
func parseTranslation(response string) (Result, error) {
	parsed, err := jsonutil.ExtractJSONFromResponse[llmResult](response)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse translation response: %w", err)
	}
	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Result{
		Text:            parsed.Translation,
		Transliteration: parsed.Transliteration,
		Confidence:      confidence,
		CulturalNotes:   parsed.CulturalNotes,
	}, nil
}
