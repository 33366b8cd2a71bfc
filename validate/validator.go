// Package validate scores short text fragments for structural plausibility
// as Sanskrit. It is a best-effort heuristic signal, not a grammatical
// parser: script membership and suffix pattern counting only.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/samskrita/samvada/model"
)

// Default confidence decay per finding. Heuristic constants, tunable per
// deployment.
const (
	DefaultErrorPenalty   = 0.2
	DefaultWarningPenalty = 0.1
)

// Validator checks text against permitted script ranges and counts
// heuristic grammar patterns. Safe for concurrent use: it holds no
// mutable state.
type Validator struct {
	// ErrorPenalty and WarningPenalty are subtracted from confidence per
	// error and warning respectively.
	ErrorPenalty   float64
	WarningPenalty float64
}

// New creates a validator with the default confidence decay.
func New() *Validator {
	return &Validator{
		ErrorPenalty:   DefaultErrorPenalty,
		WarningPenalty: DefaultWarningPenalty,
	}
}

// Validate scores one text fragment. Empty input yields an empty but valid
// result; Validate never fails.
func (v *Validator) Validate(text string) model.ValidationResult {
	result := model.ValidationResult{
		IsValid:     true,
		Errors:      []model.Issue{},
		Warnings:    []model.Issue{},
		Suggestions: []model.Issue{},
		Confidence:  1.0,
	}

	normalized := norm.NFC.String(strings.TrimSpace(text))
	if normalized == "" {
		return result
	}

	if invalid, pos := findInvalidRunes(normalized); len(invalid) > 0 {
		result.Errors = append(result.Errors, model.Issue{
			Kind:     "invalid_characters",
			Message:  fmt.Sprintf("invalid characters: %s", strings.Join(invalid, ", ")),
			Position: pos,
			Severity: model.SeverityHigh,
		})
	}

	if hasMixedScripts(normalized) {
		result.Warnings = append(result.Warnings, model.Issue{
			Kind:     "mixed_scripts",
			Message:  "text mixes Devanagari and Latin scripts",
			Position: 0,
			Severity: model.SeverityMedium,
		})
		result.Suggestions = append(result.Suggestions, model.Issue{
			Kind:     "script_consistency",
			Message:  "prefer a single script per message",
			Position: 0,
			Severity: model.SeverityLow,
		})
	}

	result.Patterns = countGrammarPatterns(normalized)
	result.Confidence = v.confidence(result)
	result.IsValid = len(result.Errors) == 0

	return result
}

// confidence starts at 1.0 and decays per finding, clamped to [0,1].
func (v *Validator) confidence(r model.ValidationResult) float64 {
	c := 1.0
	c -= float64(len(r.Errors)) * v.ErrorPenalty
	c -= float64(len(r.Warnings)) * v.WarningPenalty
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// findInvalidRunes returns the distinct runes outside every permitted
// script range, and the rune position of the first offender.
func findInvalidRunes(text string) ([]string, int) {
	var invalid []string
	seen := make(map[rune]bool)
	firstPos := 0
	pos := 0
	for _, r := range text {
		if !runeAllowed(r) {
			if !seen[r] {
				seen[r] = true
				invalid = append(invalid, string(r))
				if len(invalid) == 1 {
					firstPos = pos
				}
			}
		}
		pos++
	}
	return invalid, firstPos
}

// allowedPunctuation covers ordinary sentence punctuation; the danda marks
// । and ॥ sit inside the Devanagari block.
const allowedPunctuation = `.,;:!?'"()[]-_|/`

// runeAllowed reports whether r belongs to a permitted script range:
// Devanagari, ASCII Latin, the extended Latin blocks used by IAST
// transliteration, digits, whitespace, or ordinary punctuation.
func runeAllowed(r rune) bool {
	switch {
	case r >= 0x0900 && r <= 0x097F: // Devanagari, incl. digits and dandas
		return true
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return true
	case r >= 0x00C0 && r <= 0x024F: // Latin-1 suppl. + Latin Extended-A/B
		return true
	case r >= 0x1E00 && r <= 0x1EFF: // Latin Extended Additional (ṁ ṣ ḥ ...)
		return true
	case r >= 0x0300 && r <= 0x036F: // combining diacritics
		return true
	case r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	case strings.ContainsRune(allowedPunctuation, r):
		return true
	}
	return false
}

// hasMixedScripts reports whether text contains Devanagari and Latin
// characters simultaneously.
func hasMixedScripts(text string) bool {
	hasDevanagari, hasLatin := false, false
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			hasDevanagari = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		}
		if hasDevanagari && hasLatin {
			return true
		}
	}
	return false
}

// countGrammarPatterns scans text against the heuristic pattern tables.
// Deterministic for identical input; purely diagnostic.
func countGrammarPatterns(text string) model.GrammarPatterns {
	var p model.GrammarPatterns

	for _, re := range sandhiPatterns {
		p.Sandhi += len(re.FindAllString(text, -1))
	}

	for _, word := range tokenize(text) {
		if longDevanagariToken.MatchString(word) && runeLen(word) >= compoundLengthThreshold {
			p.Compound++
		} else {
			for _, re := range compoundSuffixPatterns {
				if re.MatchString(word) {
					p.Compound++
					break
				}
			}
		}

		for _, re := range caseEndingPatterns {
			if re.MatchString(word) {
				p.CaseEnding++
				break
			}
		}

		for _, re := range verbFormPatterns {
			if re.MatchString(word) {
				p.VerbForm++
				break
			}
		}
	}

	return p
}

func tokenize(text string) []string {
	parts := tokenSplitter.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
