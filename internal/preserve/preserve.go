// Package preserve protects literal terms that must survive translation
// untouched — proper nouns (capitalized Latin words) and numeric or date
// tokens — by replacing them with numbered markers ([TRM0], [TRM1], …)
// before the text is sent to a translation service. After translation,
// Restore substitutes the originals back.
//
// Bracketed markers are used instead of plain words so translation services
// pass them through verbatim; Restore resolves indices with a submatch
// regexp, so [TRM1] is never confused with a prefix of [TRM10].
package preserve

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// capitalized Latin words: an uppercase letter followed by zero or more letters
	reProperNoun = regexp.MustCompile(`\b[A-Z][a-zA-Z]*\b`)

	// numbers and dates: digit groups joined by -, / or .
	reNumeric = regexp.MustCompile(`\b\d+(?:[-/.]\d+)*\b`)

	// marker reference in translated text
	reMarker = regexp.MustCompile(`\[TRM(\d+)\]`)
)

// Term is a literal captured by Mask, restored exactly once by Restore.
type Term struct {
	Index    int
	Original string
}

// Mask replaces capitalized words, then numeric/date tokens, with numbered
// markers in order of appearance. The index sequence is shared across both
// passes, so it forms a contiguous range [0, len(terms)).
func Mask(text string) (string, []Term) {
	var terms []Term

	replace := func(match string) string {
		id := fmt.Sprintf("[TRM%d]", len(terms))
		terms = append(terms, Term{Index: len(terms), Original: match})
		return id
	}

	// Order matters: proper nouns first, then numbers, continuing the indices.
	text = reProperNoun.ReplaceAllStringFunc(text, replace)
	text = reNumeric.ReplaceAllStringFunc(text, replace)

	return text, terms
}

// Restore substitutes [TRMn] markers in text back with the originals captured
// by Mask. Markers missing from the translated text are silently ignored;
// unrecognised indices leave the marker as-is.
func Restore(text string, terms []Term) string {
	return reMarker.ReplaceAllStringFunc(text, func(match string) string {
		sub := reMarker.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 0 || idx >= len(terms) {
			return match
		}
		return terms[idx].Original
	})
}

// Validate checks whether every marker created by Mask is still present in
// the translated text. It returns the list of missing indices.
func Validate(text string, terms []Term) []int {
	var missing []int
	for i := range terms {
		if !strings.Contains(text, fmt.Sprintf("[TRM%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
