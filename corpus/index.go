package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samskrita/samvada/internal/dsa"
)

//go:embed seed.json
var seedData []byte

// Stop words excluded from keyword extraction. Tokens shorter than
// three runes are dropped as well.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "what": {}, "how": {}, "why": {},
	"where": {}, "when": {}, "about": {}, "of": {}, "in": {}, "and": {}, "or": {},
}

// Index holds the seeded passages with a keyword index and a one-hop
// concept graph. It is immutable after Load and safe for concurrent reads.
type Index struct {
	passages []*Passage
	keywords *dsa.Trie[[]*Passage]
	concepts map[string][]string
	texts    map[string]int
}

type seedFile struct {
	Passages []*Passage          `json:"passages"`
	Concepts map[string][]string `json:"concepts"`
}

// Load builds the index from the embedded seed corpus.
func Load() (*Index, error) {
	var seed seedFile
	if err := json.Unmarshal(seedData, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed corpus: %w", err)
	}
	if len(seed.Passages) == 0 {
		return nil, fmt.Errorf("seed corpus contains no passages")
	}

	idx := &Index{
		passages: seed.Passages,
		keywords: dsa.NewTrie[[]*Passage](),
		concepts: seed.Concepts,
		texts:    make(map[string]int),
	}
	for _, p := range seed.Passages {
		idx.texts[p.Reference.Text]++
		for _, kw := range p.Keywords {
			key := strings.ToLower(kw)
			existing, _ := idx.keywords.Search(key)
			idx.keywords.Insert(key, append(existing, p))
		}
	}
	return idx, nil
}

// Query answers a free-text question from the seeded corpus. Candidate
// passages are gathered by keyword match plus one hop through the
// concept graph, de-duplicated, and ranked by source reliability. A
// query that reaches no passage returns a refusal rather than a guess.
func (idx *Index) Query(text string) QueryResult {
	result := QueryResult{Query: text}

	terms := extractKeywords(text)
	seen := make(map[uint64]struct{})
	var matched []*Passage
	add := func(p *Passage) {
		h := p.Hash()
		if _, dup := seen[h]; dup {
			return
		}
		seen[h] = struct{}{}
		matched = append(matched, p)
	}

	for _, term := range terms {
		if passages, ok := idx.keywords.Search(term); ok {
			for _, p := range passages {
				add(p)
			}
		}
		for _, related := range idx.concepts[term] {
			if passages, ok := idx.keywords.Search(related); ok {
				for _, p := range passages {
					add(p)
				}
			}
		}
	}

	if len(matched) == 0 {
		result.SynthesizedAnswer = "I cannot find reliable source material to answer this query. " +
			"Rather than risk providing inaccurate information, I must decline to answer."
		result.Confidence = 0
		result.HallucinationRisk = RiskHigh
		result.Warnings = []string{"No source material found for this query"}
		return result
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Reliability != matched[j].Reliability {
			return matched[i].Reliability > matched[j].Reliability
		}
		return matched[i].Reference.String() < matched[j].Reference.String()
	})
	if len(matched) > 5 {
		matched = matched[:5]
	}

	result.Passages = matched
	for _, p := range matched {
		result.Sources = append(result.Sources, p.Reference)
	}

	var sum float64
	for _, p := range matched {
		sum += p.Reliability
	}
	avg := sum / float64(len(matched))
	volume := float64(len(matched)) / 5.0
	if volume > 1 {
		volume = 1
	}
	result.Confidence = avg * (0.8 + 0.2*volume)
	result.HallucinationRisk = classifyRisk(result.Confidence, len(matched))
	result.SynthesizedAnswer = synthesize(matched)
	result.Warnings = collectWarnings(result.Confidence, matched)
	return result
}

func classifyRisk(confidence float64, sources int) Risk {
	switch {
	case confidence > 0.8 && sources >= 2:
		return RiskLow
	case confidence > 0.6 && sources >= 1:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// synthesize composes an answer from the top passages, quoting each with
// its reference and appending commentary from the most reliable source.
func synthesize(passages []*Passage) string {
	var b strings.Builder
	b.WriteString("Based on the source texts:\n\n")

	n := len(passages)
	if n > 3 {
		n = 3
	}
	for i := 0; i < n; i++ {
		p := passages[i]
		fmt.Fprintf(&b, "%d. From %s:\n", i+1, p.Reference.String())
		fmt.Fprintf(&b, "   Sanskrit: %s\n", p.Sanskrit)
		fmt.Fprintf(&b, "   Translation: %s\n", p.Translation)
		if p.Context != "" {
			fmt.Fprintf(&b, "   Context: %s\n", p.Context)
		}
		b.WriteString("\n")
	}

	top := passages[0]
	if len(top.Commentaries) > 0 {
		b.WriteString("Traditional commentary:\n")
		cn := len(top.Commentaries)
		if cn > 2 {
			cn = 2
		}
		for i := 0; i < cn; i++ {
			c := top.Commentaries[i]
			fmt.Fprintf(&b, "- %s (%s): %s\n", c.Author, c.Tradition, c.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func collectWarnings(confidence float64, passages []*Passage) []string {
	var warnings []string
	if confidence < 0.7 {
		warnings = append(warnings, "Lower confidence due to limited source material")
	}
	if len(passages) < 2 {
		warnings = append(warnings, "Answer based on limited number of sources")
	}
	for _, p := range passages {
		if p.Reliability < 0.8 {
			warnings = append(warnings, "Some sources have lower reliability scores")
			break
		}
	}
	return warnings
}

// extractKeywords lowercases, splits on whitespace, trims punctuation,
// and drops stop words and very short tokens.
func extractKeywords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?'\"()[]")
		if len([]rune(f)) < 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// Statistics reports corpus coverage for diagnostics. Coverage groups
// source texts into broad canonical categories by name.
func (idx *Index) Statistics() Stats {
	stats := Stats{
		TotalPassages: len(idx.passages),
		Texts:         len(idx.texts),
		Keywords:      idx.keywords.Len(),
		Concepts:      len(idx.concepts),
		Coverage:      make(map[string]int),
	}
	for name, count := range idx.texts {
		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "upani"):
			stats.Coverage["upaniṣads"] += count
		case strings.Contains(lower, "gītā") || strings.Contains(lower, "gita"):
			stats.Coverage["bhagavad gītā"] += count
		case strings.Contains(lower, "veda"):
			stats.Coverage["vedas"] += count
		case strings.Contains(lower, "bhāgavatam") || strings.Contains(lower, "purāṇa"):
			stats.Coverage["purāṇas"] += count
		default:
			stats.Coverage["other"] += count
		}
	}
	return stats
}
