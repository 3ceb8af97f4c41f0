// Package script classifies text by the writing systems it contains.
// Hindi presence means at least one code point in the Devanagari block
// (U+0900–U+097F); English presence means at least one ASCII letter.
package script

// Mix describes which scripts appear in a span of text.
type Mix struct {
	HasHindi   bool
	HasEnglish bool
}

// Detect reports whether text contains Devanagari and/or ASCII letters.
// Empty or whitespace-only text yields (false, false).
func Detect(text string) (hasHindi, hasEnglish bool) {
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			hasHindi = true
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			hasEnglish = true
		}
		if hasHindi && hasEnglish {
			break
		}
	}
	return hasHindi, hasEnglish
}

// DetectMix is Detect with the result packed into a Mix.
func DetectMix(text string) Mix {
	h, e := Detect(text)
	return Mix{HasHindi: h, HasEnglish: e}
}
