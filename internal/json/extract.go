// Package json extracts JSON payloads from LLM responses.
//
// Models often wrap JSON in prose or markdown code fences. This package
// recovers the object so translation responses can be parsed.
package json

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON finds and returns the JSON portion of a response string.
// Handles pure JSON, markdown code fences, and a JSON object embedded
// in surrounding text (first '{' to last '}').
//
// Limitations:
// - Only handles JSON objects, not arrays
// - Uses simple brace matching, not full JSON parsing
func extractJSON(response string) (string, error) {
	response = stripMarkdownCodeBlocks(response)

	var test interface{}
	if err := json.Unmarshal([]byte(response), &test); err == nil {
		return response, nil
	}

	start := strings.Index(response, "{")
	if start != -1 {
		end := strings.LastIndex(response, "}")
		if end != -1 && end > start {
			jsonStr := response[start : end+1]
			var test interface{}
			if err := json.Unmarshal([]byte(jsonStr), &test); err == nil {
				return jsonStr, nil
			}
		}
	}

	preview := response
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return "", fmt.Errorf("failed to extract valid JSON from response: %q", preview)
}

func stripMarkdownCodeBlocks(response string) string {
	trimmed := strings.TrimSpace(response)

	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimSpace(trimmed)
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSuffix(trimmed, "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	return trimmed
}

// ExtractJSONFromResponse extracts and parses a JSON object from an LLM
// response into T.
func ExtractJSONFromResponse[T any](response string) (T, error) {
	var result T
	jsonStr, err := extractJSON(response)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}

// ExtractJSON extracts the raw JSON portion from a response string.
func ExtractJSON(response string) (string, error) {
	return extractJSON(response)
}
