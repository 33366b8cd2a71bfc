package logbook

import (
	"strings"
	"time"

	"github.com/samskrita/samvada/model"
)

// Analysis summarizes one session's recorded exchanges.
type Analysis struct {
	SessionID        string           `json:"session_id"`
	MessageCount     int              `json:"message_count"`
	Participants     []string         `json:"participants"`
	Timespan         Timespan         `json:"timespan"`
	Languages        LanguageStats    `json:"languages"`
	AverageLength    float64          `json:"average_length"`
	CulturalElements CulturalElements `json:"cultural_elements"`
	Efficiency       Efficiency       `json:"efficiency"`
}

// Timespan bounds a session in time.
type Timespan struct {
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Duration   time.Duration `json:"-"`
	DurationMs int64         `json:"duration_ms"`
}

// LanguageStats counts entries by the scripts their content contains.
// An entry with both scripts counts toward both sanskrit and english.
type LanguageStats struct {
	Sanskrit int `json:"sanskrit"`
	English  int `json:"english"`
	Mixed    int `json:"mixed"`
}

// CulturalElements counts occurrences of culturally significant
// vocabulary across a session's messages.
type CulturalElements struct {
	Religious     int `json:"religious"`
	Philosophical int `json:"philosophical"`
	Greetings     int `json:"greetings"`
	Honorifics    int `json:"honorifics"`
}

// Efficiency summarizes responsiveness and validation outcomes.
// AverageResponseTimeMs covers only entries that carry a measurement.
type Efficiency struct {
	AverageResponseTimeMs float64 `json:"average_response_time_ms"`
	SuccessRate           float64 `json:"success_rate"`
}

var (
	religiousTerms     = []string{"धर्म", "कर्म", "मोक्ष", "आत्मा", "ब्रह्म", "योग", "पूजा", "मन्त्र"}
	philosophicalTerms = []string{"सत्य", "अहिंसा", "ज्ञान", "विद्या", "चित्त", "बुद्धि", "मनस्", "विवेक"}
	greetingTerms      = []string{"नमस्ते", "नमस्कार", "प्रणाम", "स्वागतम्"}
	honorificTerms     = []string{"श्री", "महा", "गुरु", "आचार्य", "पण्डित", "भगवान्"}
)

func analyzeEntries(sessionID string, entries []model.LogEntry) Analysis {
	analysis := Analysis{SessionID: sessionID, MessageCount: len(entries)}
	if len(entries) == 0 {
		return analysis
	}

	seen := make(map[string]struct{})
	var totalLength int
	var responseSum int64
	var responseCount int
	var successes int

	analysis.Timespan.Start = entries[0].Timestamp
	analysis.Timespan.End = entries[0].Timestamp

	for _, e := range entries {
		for _, id := range []string{e.FromAgent, e.ToAgent} {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				analysis.Participants = append(analysis.Participants, id)
			}
		}

		if e.Timestamp.Before(analysis.Timespan.Start) {
			analysis.Timespan.Start = e.Timestamp
		}
		if e.Timestamp.After(analysis.Timespan.End) {
			analysis.Timespan.End = e.Timestamp
		}

		switch model.DetectLanguage(e.Message.Content) {
		case model.LanguageSanskrit:
			analysis.Languages.Sanskrit++
		case model.LanguageMixed:
			analysis.Languages.Sanskrit++
			analysis.Languages.English++
			analysis.Languages.Mixed++
		default:
			analysis.Languages.English++
		}

		totalLength += len([]rune(e.Message.Content))
		countCulturalElements(e.Message.Content, &analysis.CulturalElements)

		if e.ResponseTimeMs > 0 {
			responseSum += e.ResponseTimeMs
			responseCount++
		}
		if e.Success {
			successes++
		}
	}

	analysis.Timespan.Duration = analysis.Timespan.End.Sub(analysis.Timespan.Start)
	analysis.Timespan.DurationMs = analysis.Timespan.Duration.Milliseconds()
	analysis.AverageLength = float64(totalLength) / float64(len(entries))
	if responseCount > 0 {
		analysis.Efficiency.AverageResponseTimeMs = float64(responseSum) / float64(responseCount)
	}
	analysis.Efficiency.SuccessRate = float64(successes) / float64(len(entries))
	return analysis
}

func countCulturalElements(content string, out *CulturalElements) {
	for _, term := range religiousTerms {
		out.Religious += strings.Count(content, term)
	}
	for _, term := range philosophicalTerms {
		out.Philosophical += strings.Count(content, term)
	}
	for _, term := range greetingTerms {
		out.Greetings += strings.Count(content, term)
	}
	for _, term := range honorificTerms {
		out.Honorifics += strings.Count(content, term)
	}
}
