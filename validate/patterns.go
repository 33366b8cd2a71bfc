package validate

import "regexp"

// Heuristic pattern tables. Each category is plain data so categories can
// be tuned or extended without touching the scan logic.

// sandhiPatterns match known phonetic-junction substrings anywhere in the text.
var sandhiPatterns = compileAll(
	`[ाेौ]ऽ`, // vowel sandhi with avagraha
	`त्य`,    // dental-palatal
	`स्य`,    // sibilant
	`श्च`,    // palatal
	`त्त`,    // dental gemination
	`च्च`,    // palatal gemination
	`द्य`,    // dental-semivowel
	`ञ्च`,    // nasal-palatal
)

// caseEndingPatterns match case-marker suffixes at token end.
var caseEndingPatterns = compileAll(
	`[ाःंम्]$`,  // nominative/accusative
	`[ेः]$`,     // ablative/genitive
	`ाय$`,       // dative
	`ात्$`,      // ablative
	`स्य$`,      // genitive
	`[िीुूृे]$`, // assorted oblique endings
)

// verbFormPatterns match tense/aspect suffixes at token end.
var verbFormPatterns = compileAll(
	`ति$`,          // 3rd singular present
	`न्ति$`,        // 3rd plural present
	`[तन]्त$`,      // past participle
	`त्वा$`,        // gerund
	`स्य(ति|न्ति)$`, // future
)

// compoundSuffixPatterns match abstract-noun suffixes that mark compounds.
var compoundSuffixPatterns = compileAll(
	`त्वम्$`,
	`ता$`,
)

// compoundLengthThreshold is the minimum Devanagari rune count for a token
// to count as a probable compound.
const compoundLengthThreshold = 8

var longDevanagariToken = regexp.MustCompile(`^[\x{0900}-\x{097F}]{8,}`)

// tokenSplitter breaks text on whitespace and danda punctuation.
var tokenSplitter = regexp.MustCompile(`[\s।॥]+`)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}
