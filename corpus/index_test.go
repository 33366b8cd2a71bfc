package corpus

import (
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Index {
	t.Helper()
	idx, err := Load()
	if err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}
	return idx
}

func TestQueryDharma(t *testing.T) {
	idx := mustLoad(t)

	result := idx.Query("what is dharma")
	if result.Refused() {
		t.Fatal("expected dharma query to find passages")
	}
	if result.Confidence <= 0.8 {
		t.Errorf("expected high confidence for well-attested concept, got %v", result.Confidence)
	}
	if result.HallucinationRisk != RiskLow {
		t.Errorf("expected low risk with multiple reliable sources, got %v", result.HallucinationRisk)
	}
	if len(result.Sources) != len(result.Passages) {
		t.Errorf("sources and passages out of step: %d vs %d", len(result.Sources), len(result.Passages))
	}
	if !strings.Contains(result.SynthesizedAnswer, "Bhagavad Gītā") {
		t.Errorf("expected the most reliable source to be cited, got:\n%s", result.SynthesizedAnswer)
	}
}

func TestQueryRefusal(t *testing.T) {
	idx := mustLoad(t)

	result := idx.Query("quantum computing blockchain")
	if !result.Refused() {
		t.Fatal("expected refusal for out-of-corpus query")
	}
	if result.Confidence != 0 {
		t.Errorf("refusal must carry zero confidence, got %v", result.Confidence)
	}
	if result.HallucinationRisk != RiskHigh {
		t.Errorf("refusal must carry high risk, got %v", result.HallucinationRisk)
	}
	if len(result.Warnings) == 0 {
		t.Error("refusal must carry a warning")
	}
	if !strings.Contains(result.SynthesizedAnswer, "decline") {
		t.Errorf("refusal text missing, got: %s", result.SynthesizedAnswer)
	}
}

func TestQueryConceptExpansion(t *testing.T) {
	idx := mustLoad(t)

	// ātman is linked to brahman through the concept graph, so the query
	// should reach passages indexed only under brahman.
	result := idx.Query("ātman")
	if result.Refused() {
		t.Fatal("expected matches for ātman")
	}

	foundBrahman := false
	for _, p := range result.Passages {
		for _, kw := range p.Keywords {
			if kw == "brahman" {
				foundBrahman = true
			}
		}
	}
	if !foundBrahman {
		t.Error("expected concept expansion to reach brahman-indexed passages")
	}
}

func TestQuerySingleSourceWarns(t *testing.T) {
	idx := mustLoad(t)

	result := idx.Query("renunciation")
	if result.Refused() {
		t.Fatal("expected a match for renunciation")
	}
	if len(result.Passages) != 1 {
		t.Fatalf("expected exactly one passage, got %d", len(result.Passages))
	}
	if result.HallucinationRisk != RiskMedium {
		t.Errorf("single source should be medium risk, got %v", result.HallucinationRisk)
	}
	warned := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "limited number of sources") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a limited-sources warning, got %v", result.Warnings)
	}
}

func TestQueryCapsPassages(t *testing.T) {
	idx := mustLoad(t)

	result := idx.Query("consciousness brahman dharma liberation surrender")
	if len(result.Passages) > 5 {
		t.Errorf("expected at most 5 passages, got %d", len(result.Passages))
	}
	for i := 1; i < len(result.Passages); i++ {
		if result.Passages[i].Reliability > result.Passages[i-1].Reliability {
			t.Errorf("passages not sorted by reliability at %d", i)
		}
	}
}

func TestQueryDeduplicates(t *testing.T) {
	idx := mustLoad(t)

	// dharma appears both as a direct keyword and via concept expansion;
	// each passage must still appear once.
	result := idx.Query("dharma karma duty")
	seen := make(map[uint64]bool)
	for _, p := range result.Passages {
		h := p.Hash()
		if seen[h] {
			t.Errorf("duplicate passage %s in result", p.Reference.String())
		}
		seen[h] = true
	}
}

func TestStatistics(t *testing.T) {
	idx := mustLoad(t)

	stats := idx.Statistics()
	if stats.TotalPassages != 11 {
		t.Errorf("expected 11 seeded passages, got %d", stats.TotalPassages)
	}
	if stats.Texts != 6 {
		t.Errorf("expected 6 distinct texts, got %d", stats.Texts)
	}
	if stats.Keywords == 0 {
		t.Error("expected a populated keyword index")
	}
	if stats.Coverage["upaniṣads"] != 2 {
		t.Errorf("expected 2 upaniṣad passages, got %d", stats.Coverage["upaniṣads"])
	}
	if stats.Coverage["purāṇas"] != 6 {
		t.Errorf("expected 6 purāṇa passages, got %d", stats.Coverage["purāṇas"])
	}
}
