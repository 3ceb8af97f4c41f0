package session

import (
	"testing"
)

func TestSession_AppendAndEntries(t *testing.T) {
	s := New()

	if s.ID() == "" {
		t.Error("expected non-empty session ID")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", s.Len())
	}

	s.Append("namaste duniya", "hello world")
	s.Append("kaise ho?", "how are you?")

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Original != "namaste duniya" || entries[0].Translation != "hello world" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Original != "kaise ho?" {
		t.Errorf("expected submission order preserved, got %+v", entries[1])
	}
	if entries[0].At.IsZero() {
		t.Error("expected entry timestamp to be set")
	}
}

func TestSession_EntriesReturnsCopy(t *testing.T) {
	s := New()
	s.Append("ek", "one")

	entries := s.Entries()
	entries[0].Translation = "mutated"

	if s.Entries()[0].Translation != "one" {
		t.Error("mutating the returned slice must not affect the session")
	}
}

func TestSession_AppendNormalizesOriginal(t *testing.T) {
	s := New()

	// U+0958 (QA) is a composition exclusion: its NFC form is KA + NUKTA.
	s.Append("  \u0958  ", "qa")

	got := s.Entries()[0].Original
	if got != "\u0915\u093c" {
		t.Errorf("expected NFC-normalized original, got %q", got)
	}
}

func TestSession_DistinctIDs(t *testing.T) {
	if New().ID() == New().ID() {
		t.Error("expected distinct session IDs")
	}
}
