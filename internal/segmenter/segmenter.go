// Package segmenter splits text into sentence-like spans on a fixed set of
// terminator characters. Terminators stay attached to the sentence they end,
// so concatenating the returned spans reproduces the input byte for byte.
package segmenter

import "strings"

// terminators are the characters that close a sentence. The last three cover
// section and list markers that show up in scanned Hindi study material.
const terminators = ".!?‡•§"

// Split scans text rune by rune and emits a span each time a terminator is
// reached, terminator included. Trailing runes without a terminator form a
// final span. Empty input yields a nil slice.
func Split(text string) []string {
	var spans []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(terminators, r) {
			spans = append(spans, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		spans = append(spans, current.String())
	}

	return spans
}
