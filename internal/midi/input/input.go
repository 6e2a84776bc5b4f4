// Package input discovers MIDI input ports and forwards their raw messages.
package input

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// ErrPortNotFound is returned when a named input port is not present
var ErrPortNotFound = errors.New("input port not found")

// RawCallback receives every message read from an input port, untouched.
// received is the wall clock time the driver delivered the message.
type RawCallback func(msg []byte, received time.Time)

// Manager handles MIDI input port discovery and listening
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// GetInPort returns an input port by name
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

// StartListening begins listening for MIDI input on the named port.
// An empty port name is not an error; it returns a nil stop func.
func (m *Manager) StartListening(inPortName string, callback RawCallback) (func(), error) {
	if inPortName == "" {
		return nil, nil
	}

	inPort, err := m.GetInPort(inPortName)
	if err != nil {
		return nil, err
	}

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		// The driver reuses its buffer between callbacks
		raw := make([]byte, len(msg))
		copy(raw, msg)
		callback(raw, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening on %s: %w", inPortName, err)
	}

	return stop, nil
}
