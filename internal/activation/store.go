package activation

import (
	"sort"
	"time"

	"github.com/PixPMusic/gopher-regions/internal/midi"
)

// Channel and note bounds of the hardware protocol
const (
	MinChannel   = 1
	MaxChannel   = 16
	MaxVelocity  = 127
	noteKeySpace = 256
)

// Key identifies a sounding note
type Key struct {
	Channel uint8 // 1-16
	Note    uint8
}

// Entry records a currently sounding note
type Entry struct {
	Intensity   float64 // 0-127
	ActivatedAt time.Time
}

// Store tracks which (channel, note) pairs are currently on.
// It is not safe for concurrent use; all mutation must happen on one goroutine.
type Store struct {
	entries map[Key]Entry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{entries: make(map[Key]Entry)}
}

// NoteOn records a sounding note. Zero intensity is the alternate
// note-off encoding and removes the entry instead.
func (s *Store) NoteOn(channel, note uint8, intensity float64, now time.Time) {
	if intensity <= 0 {
		s.NoteOff(channel, note)
		return
	}
	s.entries[Key{channel, note}] = Entry{Intensity: intensity, ActivatedAt: now}
}

// NoteOff removes a sounding note. Removing an absent note is a no-op.
func (s *Store) NoteOff(channel, note uint8) {
	delete(s.entries, Key{channel, note})
}

// Apply routes a decoded event. Commands other than note on/off are ignored.
func (s *Store) Apply(ev midi.Event, now time.Time) {
	switch ev.Command {
	case midi.CommandNoteOn:
		s.NoteOn(ev.Channel, ev.Note, float64(ev.Velocity), now)
	case midi.CommandNoteOff:
		s.NoteOff(ev.Channel, ev.Note)
	}
}

// Clear drops every entry, e.g. when the input source changes
func (s *Store) Clear() {
	clear(s.entries)
}

// Len returns the number of sounding notes
func (s *Store) Len() int {
	return len(s.entries)
}

// Snapshot returns an immutable copy of the current entries
func (s *Store) Snapshot() Snapshot {
	entries := make(map[Key]Entry, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	return Snapshot{entries: entries}
}

// Snapshot is a read-only view of the store at one instant.
// The zero value is an empty snapshot.
type Snapshot struct {
	entries map[Key]Entry
}

// Lookup returns the entry for a key
func (s Snapshot) Lookup(k Key) (Entry, bool) {
	e, ok := s.entries[k]
	return e, ok
}

// Len returns the number of entries
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Keys returns the sounding keys ordered by channel then note
func (s Snapshot) Keys() []Key {
	keys := make([]Key, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Channel != keys[j].Channel {
			return keys[i].Channel < keys[j].Channel
		}
		return keys[i].Note < keys[j].Note
	})
	return keys
}
