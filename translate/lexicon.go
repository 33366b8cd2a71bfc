package translate

import (
	"context"
	"strings"
	"sync"
)

// Lexicon is an offline dictionary translator. Word-by-word lookup with
// IAST transliteration and cultural notes for terms that carry meaning
// a bare gloss would lose. Results are cached per input.
type Lexicon struct {
	mu    sync.RWMutex
	cache map[string]Result
}

var _ Translator = (*Lexicon)(nil)

// NewLexicon creates the dictionary translator.
func NewLexicon() *Lexicon {
	return &Lexicon{cache: make(map[string]Result)}
}

// Name identifies the implementation.
func (l *Lexicon) Name() string { return "lexicon" }

var sanskritToEnglish = map[string]string{
	"नमस्ते":    "greetings",
	"नमस्कार":   "salutations",
	"धन्यवाद":   "thank you",
	"स्वागतम्":  "welcome",
	"कृपया":     "please",
	"क्षम्यताम्": "forgive me",
	"आम्":       "yes",
	"न":         "no",
	"धर्म":      "dharma",
	"कर्म":      "karma",
	"योग":       "yoga",
	"मोक्ष":     "liberation",
	"आत्मा":     "soul",
	"ब्रह्म":    "the absolute",
	"ज्ञान":     "knowledge",
	"सत्य":      "truth",
	"शान्ति":    "peace",
	"गुरु":      "teacher",
	"शिष्य":     "student",
	"मित्र":     "friend",
	"जल":        "water",
	"अग्नि":     "fire",
	"सूर्य":     "sun",
	"चन्द्र":    "moon",
	"पुस्तक":    "book",
	"गृह":       "house",
	"मार्ग":     "path",
	"काल":       "time",
	"लोक":       "world",
	"देव":       "deity",
	"मनस्":      "mind",
	"वाक्":      "speech",
	"नाम":       "name",
	"फल":        "fruit",
	"वन":        "forest",
}

var englishToSanskrit = map[string]string{
	"greetings":  "नमस्ते",
	"hello":      "नमस्ते",
	"thanks":     "धन्यवाद",
	"thank":      "धन्यवाद",
	"welcome":    "स्वागतम्",
	"please":     "कृपया",
	"yes":        "आम्",
	"no":         "न",
	"dharma":     "धर्म",
	"duty":       "धर्म",
	"karma":      "कर्म",
	"action":     "कर्म",
	"yoga":       "योग",
	"liberation": "मोक्ष",
	"soul":       "आत्मा",
	"self":       "आत्मा",
	"knowledge":  "ज्ञान",
	"truth":      "सत्य",
	"peace":      "शान्ति",
	"teacher":    "गुरु",
	"student":    "शिष्य",
	"friend":     "मित्र",
	"water":      "जल",
	"fire":       "अग्नि",
	"sun":        "सूर्य",
	"moon":       "चन्द्र",
	"book":       "पुस्तक",
	"house":      "गृह",
	"path":       "मार्ग",
	"time":       "काल",
	"world":      "लोक",
	"mind":       "मनस्",
	"speech":     "वाक्",
	"name":       "नाम",
	"fruit":      "फल",
	"forest":     "वन",
}

// culturalNotes flags terms whose full meaning a one-word gloss loses.
var culturalNotes = map[string]string{
	"धर्म":   "dharma: righteous duty, cosmic law, and individual purpose together",
	"कर्म":   "karma: action and its consequences across time",
	"मोक्ष":  "mokṣa: liberation from the cycle of rebirth",
	"आत्मा":  "ātman: the individual self held to be identical with Brahman",
	"ब्रह्म": "brahman: the ultimate unchanging reality",
	"गुरु":   "guru: a teacher revered as a remover of darkness",
	"नमस्ते": "namaste: a greeting acknowledging the divine in the other",
}

// Devanagari to IAST tables. Consonants carry no vowel; the inherent
// "a" is supplied unless a vowel sign or virama follows.
var consonantMap = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ṅ",
	'च': "c", 'छ': "ch", 'ज': "j", 'झ': "jh", 'ञ': "ñ",
	'ट': "ṭ", 'ठ': "ṭh", 'ड': "ḍ", 'ढ': "ḍh", 'ण': "ṇ",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "ś", 'ष': "ṣ", 'स': "s", 'ह': "h",
}

var vowelMap = map[rune]string{
	'अ': "a", 'आ': "ā", 'इ': "i", 'ई': "ī", 'उ': "u", 'ऊ': "ū",
	'ऋ': "ṛ", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
}

// matraMap holds the dependent vowel signs that replace the inherent a.
var matraMap = map[rune]string{
	'ा': "ā", 'ि': "i", 'ी': "ī", 'ु': "u", 'ू': "ū", 'ृ': "ṛ",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au",
}

var signMap = map[rune]string{
	'ं': "ṁ", 'ः': "ḥ", 'ऽ': "'", '।': "|", '॥': "||",
}

// SanskritToEnglish translates word by word. Words outside the
// dictionary pass through unchanged and lower the confidence.
func (l *Lexicon) SanskritToEnglish(_ context.Context, text string) (Result, error) {
	if cached, ok := l.lookup("s2e:" + text); ok {
		return cached, nil
	}

	words := strings.Fields(text)
	translated := make([]string, 0, len(words))
	var notes []string
	known := 0
	for _, w := range words {
		trimmed := strings.Trim(w, "।॥.,!?")
		if gloss, ok := sanskritToEnglish[trimmed]; ok {
			translated = append(translated, gloss)
			known++
			if note, hasNote := culturalNotes[trimmed]; hasNote {
				notes = append(notes, note)
			}
		} else {
			translated = append(translated, w)
		}
	}

	result := Result{
		Text:            strings.Join(translated, " "),
		Transliteration: Transliterate(text),
		Confidence:      coverage(known, len(words)),
		CulturalNotes:   notes,
	}
	l.remember("s2e:"+text, result)
	return result, nil
}

// EnglishToSanskrit translates word by word in the other direction.
func (l *Lexicon) EnglishToSanskrit(_ context.Context, text string) (Result, error) {
	if cached, ok := l.lookup("e2s:" + text); ok {
		return cached, nil
	}

	words := strings.Fields(strings.ToLower(text))
	translated := make([]string, 0, len(words))
	var notes []string
	known := 0
	for _, w := range words {
		trimmed := strings.Trim(w, ".,!?;:'\"")
		if sa, ok := englishToSanskrit[trimmed]; ok {
			translated = append(translated, sa)
			known++
			if note, hasNote := culturalNotes[sa]; hasNote {
				notes = append(notes, note)
			}
		} else {
			translated = append(translated, w)
		}
	}

	out := strings.Join(translated, " ")
	result := Result{
		Text:            out,
		Transliteration: Transliterate(out),
		Confidence:      coverage(known, len(words)),
		CulturalNotes:   notes,
	}
	l.remember("e2s:"+text, result)
	return result, nil
}

// Transliterate renders Devanagari text in IAST. A consonant's inherent
// "a" is written unless a vowel sign or virama follows it. Characters
// outside the tables, Latin letters included, pass through unchanged.
func Transliterate(text string) string {
	const virama = '्'
	var b strings.Builder
	pendingA := false

	flush := func() {
		if pendingA {
			b.WriteString("a")
			pendingA = false
		}
	}

	for _, r := range text {
		switch {
		case r == virama:
			pendingA = false
		case consonantMap[r] != "":
			flush()
			b.WriteString(consonantMap[r])
			pendingA = true
		case matraMap[r] != "":
			b.WriteString(matraMap[r])
			pendingA = false
		case vowelMap[r] != "":
			flush()
			b.WriteString(vowelMap[r])
		case signMap[r] != "":
			flush()
			b.WriteString(signMap[r])
		default:
			flush()
			b.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

func coverage(known, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(known) / float64(total)
}

func (l *Lexicon) lookup(key string) (Result, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.cache[key]
	return r, ok
}

func (l *Lexicon) remember(key string, r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache[key] = r
}
