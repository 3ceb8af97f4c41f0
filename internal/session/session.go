// Package session holds the per-session translation history. A Session is an
// explicit object owned by the surface that created it; nothing here is
// persisted, and the history disappears with the Session.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Entry is one completed translation, appended only after the whole input
// translated successfully.
type Entry struct {
	Original    string
	Translation string
	At          time.Time
}

type Session struct {
	id      string
	started time.Time
	entries []Entry
}

func New() *Session {
	return &Session{
		id:      uuid.New().String(),
		started: time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) StartedAt() time.Time {
	return s.started
}

// Append records a completed translation. The original is NFC-normalized so
// visually identical Devanagari inputs render consistently in the history.
func (s *Session) Append(original, translation string) {
	s.entries = append(s.entries, Entry{
		Original:    norm.NFC.String(strings.TrimSpace(original)),
		Translation: translation,
		At:          time.Now(),
	})
}

// Entries returns the history in submission order. The slice is a copy; the
// caller cannot mutate the session through it.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Len() int {
	return len(s.entries)
}
