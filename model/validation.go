package model

// Severity grades a validation finding.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is a single validation finding (error, warning, or suggestion).
type Issue struct {
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
	Position int      `json:"position"`
	Severity Severity `json:"severity"`
}

// GrammarPatterns holds diagnostic counts of heuristic grammar features.
// The counts never influence validity or confidence.
type GrammarPatterns struct {
	Sandhi     int `json:"sandhi"`
	Compound   int `json:"compound"`
	CaseEnding int `json:"case_ending"`
	VerbForm   int `json:"verb_form"`
}

// ValidationResult is the outcome of structural validation of one text.
// Confidence stays within [0,1] and decreases with every error or warning.
type ValidationResult struct {
	IsValid     bool            `json:"is_valid"`
	Errors      []Issue         `json:"errors"`
	Warnings    []Issue         `json:"warnings"`
	Suggestions []Issue         `json:"suggestions"`
	Confidence  float64         `json:"confidence"`
	Patterns    GrammarPatterns `json:"grammar_patterns"`
}

// IssueMessages flattens a list of issues to their message strings.
func IssueMessages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}
