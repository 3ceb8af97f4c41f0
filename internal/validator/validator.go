// Package validator checks that the final output of the pipeline reads as
// English rather than untranslated Hindi or Hinglish.
package validator

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// minValidationLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unvalidated.
const minValidationLength = 20

// Validator decides whether translated text is plausibly English. The
// underlying detector is expensive to build; reuse the instance.
type Validator struct {
	det lingua.LanguageDetector
}

// New creates a Validator backed by a lingua detector restricted to the two
// languages this pipeline can produce or leave behind.
func New() *Validator {
	det := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Hindi).
		Build()

	return &Validator{det: det}
}

// IsEnglish returns true when text appears to be written in English.
//
// Short texts and texts whose language cannot be determined pass without
// error. When Hindi is detected instead, the returned error says so.
func (v *Validator) IsEnglish(text string) (bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, fmt.Errorf("translation is empty")
	}

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(trimmed)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectLanguageOf(trimmed)
	if !ok {
		// Ambiguous language, cannot validate; pass through.
		return true, nil
	}

	if detected != lingua.English {
		return false, fmt.Errorf("expected English but detected %s", detected)
	}

	return true, nil
}
