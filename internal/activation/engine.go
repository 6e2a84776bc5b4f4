package activation

import (
	"io"
	"log"
	"time"

	"github.com/PixPMusic/gopher-regions/internal/midi"
)

// Engine feeds raw hardware messages into a Store.
// It has the same single-goroutine contract as Store.
type Engine struct {
	store   *Store
	logger  *log.Logger
	dropped int
}

// NewEngine creates an engine with an empty store. A nil logger discards
// diagnostics.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		store:  NewStore(),
		logger: logger,
	}
}

// OnEvent decodes a raw message and applies it. Malformed messages are
// dropped without touching the store.
func (e *Engine) OnEvent(raw []byte, now time.Time) {
	ev, ok := midi.Decode(raw)
	if !ok {
		e.dropped++
		e.logger.Printf("dropped malformed message % x", raw)
		return
	}
	e.store.Apply(ev, now)
}

// Reset clears all sounding notes, used when the input source is reselected
func (e *Engine) Reset() {
	e.store.Clear()
}

// Snapshot returns the current activation state for a matching pass
func (e *Engine) Snapshot() Snapshot {
	return e.store.Snapshot()
}

// Store exposes the underlying store
func (e *Engine) Store() *Store {
	return e.store
}

// Dropped returns how many malformed messages have been discarded
func (e *Engine) Dropped() int {
	return e.dropped
}
