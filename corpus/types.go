// Package corpus provides the attributed knowledge base and its query
// engine. Every answer is grounded in seeded source passages; a query
// that matches nothing yields an explicit refusal, never a fabrication.
package corpus

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Reference identifies where a passage sits in its source text.
type Reference struct {
	Text    string `json:"text"`
	Chapter int    `json:"chapter,omitempty"`
	Verse   int    `json:"verse,omitempty"`
	Section string `json:"section,omitempty"`
	Edition string `json:"edition,omitempty"`
}

// String renders the reference as "Text (chapter.verse)" where available.
func (r Reference) String() string {
	if r.Chapter > 0 && r.Verse > 0 {
		return fmt.Sprintf("%s (%d.%d)", r.Text, r.Chapter, r.Verse)
	}
	if r.Verse > 0 {
		return fmt.Sprintf("%s (%d)", r.Text, r.Verse)
	}
	return r.Text
}

// Commentary is a traditional commentary attached to a passage.
type Commentary struct {
	Author      string  `json:"author"`
	Text        string  `json:"text"`
	Date        string  `json:"date"`
	Tradition   string  `json:"tradition"`
	Reliability float64 `json:"reliability"`
}

// Passage is one attributed unit of source text. Corpus content is static
// seed data: passages are loaded once at startup and never mutated.
type Passage struct {
	Sanskrit        string       `json:"sanskrit"`
	Transliteration string       `json:"transliteration"`
	Translation     string       `json:"translation"`
	Reference       Reference    `json:"reference"`
	Context         string       `json:"context"`
	Commentaries    []Commentary `json:"commentaries"`
	Reliability     float64      `json:"reliability"`
	Keywords        []string     `json:"keywords"`
}

// Hash returns a stable identity for the passage, used for de-duplication
// when a query reaches the same passage through several keywords.
func (p *Passage) Hash() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(p.Sanskrit)
	_, _ = h.WriteString(p.Reference.Text)
	_, _ = h.WriteString(p.Reference.Section)
	return h.Sum64()
}

// Risk classifies the hallucination risk of a query answer.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// QueryResult is the outcome of one corpus query. A result with no
// passages is a refusal: zero confidence, high risk, and no synthesized
// claim beyond the refusal text.
type QueryResult struct {
	Query             string      `json:"query"`
	Passages          []*Passage  `json:"passages"`
	SynthesizedAnswer string      `json:"synthesized_answer"`
	Sources           []Reference `json:"sources"`
	Confidence        float64     `json:"confidence"`
	HallucinationRisk Risk        `json:"hallucination_risk"`
	Warnings          []string    `json:"warnings"`
}

// Refused reports whether the result is the empty-corpus refusal.
func (q QueryResult) Refused() bool {
	return len(q.Passages) == 0
}

// Stats summarizes corpus coverage for diagnostics.
type Stats struct {
	TotalPassages int            `json:"total_passages"`
	Texts         int            `json:"texts"`
	Keywords      int            `json:"keywords"`
	Concepts      int            `json:"concepts"`
	Coverage      map[string]int `json:"coverage"`
}
