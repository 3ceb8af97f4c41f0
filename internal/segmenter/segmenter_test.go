package segmenter

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "single sentence with period",
			text: "Hello world.",
			want: []string{"Hello world."},
		},
		{
			name: "two sentences",
			text: "Hello. World!",
			want: []string{"Hello.", " World!"},
		},
		{
			name: "trailing text without terminator",
			text: "First. second half",
			want: []string{"First.", " second half"},
		},
		{
			name: "no terminator at all",
			text: "kya haal hai",
			want: []string{"kya haal hai"},
		},
		{
			name: "question and exclamation",
			text: "Kaise ho? Badhiya!",
			want: []string{"Kaise ho?", " Badhiya!"},
		},
		{
			name: "section markers",
			text: "pehla‡dusra•tisra§chautha",
			want: []string{"pehla‡", "dusra•", "tisra§", "chautha"},
		},
		{
			name: "devanagari text",
			text: "मैं ठीक हूँ. आप कैसे हैं?",
			want: []string{"मैं ठीक हूँ.", " आप कैसे हैं?"},
		},
		{
			name: "consecutive terminators",
			text: "Really?!",
			want: []string{"Really?", "!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Concatenating the spans must reproduce the input exactly, whatever the input.
func TestSplit_Lossless(t *testing.T) {
	inputs := []string{
		"",
		"plain text with no terminator",
		"One. Two! Three? Four",
		"मैं movie dekhne ja raha hoon. Kal milte hain!",
		"‡•§...???",
		"a.b.c.",
		"\n\t . spaced ! out ? ",
	}

	for _, in := range inputs {
		if got := strings.Join(Split(in), ""); got != in {
			t.Errorf("lossless violated: join(Split(%q)) = %q", in, got)
		}
	}
}
