package region

import (
	"github.com/google/uuid"
)

// IntensityMode selects how an active region derives its visual strength
type IntensityMode string

const (
	IntensityFixed    IntensityMode = "fixed"    // always BaseIntensity while active
	IntensityVelocity IntensityMode = "velocity" // BaseIntensity scaled by the loudest matching note
)

// MinPoints is the smallest vertex count of a committed polygon
const MinPoints = 3

// OmniChannel matches notes on any channel
const OmniChannel = 0

// Point is a position on the normalized surface, each axis 0-100
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is a user-authored polygon with a note trigger.
// NoteLow > NoteHigh is kept as authored and simply never matches.
type Region struct {
	ID            string        `json:"id"`
	Name          string        `json:"name,omitempty"`
	Points        []Point       `json:"points"`
	Channel       int           `json:"channel"` // 0 = omni, 1-16 exact
	NoteLow       int           `json:"note_low"`
	NoteHigh      int           `json:"note_high"`
	Mode          IntensityMode `json:"mode"`
	BaseIntensity float64       `json:"base_intensity"` // (0, 1]
	Color         string        `json:"color"`          // hex, e.g. "#3fa9f5"
}

// Valid reports whether the region satisfies the trigger and polygon invariants.
// Nothing rejects invalid regions; hosts use this for display.
func (r Region) Valid() bool {
	if len(r.Points) < MinPoints {
		return false
	}
	if r.Channel < 0 || r.Channel > 16 {
		return false
	}
	if r.NoteLow < 0 || r.NoteHigh > 127 || r.NoteLow > r.NoteHigh {
		return false
	}
	return r.BaseIntensity > 0 && r.BaseIntensity <= 1
}

// Clone returns a copy that does not share the point slice
func (r Region) Clone() Region {
	c := r
	c.Points = append([]Point(nil), r.Points...)
	return c
}

// Defaults is the configuration applied to regions created from a drawing
type Defaults struct {
	Channel       int           `json:"channel"`
	Note          int           `json:"note"` // single-note trigger [Note, Note]
	Mode          IntensityMode `json:"mode"`
	BaseIntensity float64       `json:"base_intensity"`
	Color         string        `json:"color"`
}

// DefaultDefaults returns the stock creation settings: omni channel,
// middle C, velocity scaled at full strength.
func DefaultDefaults() Defaults {
	return Defaults{
		Channel:       OmniChannel,
		Note:          60,
		Mode:          IntensityVelocity,
		BaseIntensity: 1.0,
		Color:         "#3fa9f5",
	}
}

// New creates a region with a generated ID from the given points
func (d Defaults) New(points []Point) Region {
	return Region{
		ID:            uuid.New().String(),
		Points:        append([]Point(nil), points...),
		Channel:       d.Channel,
		NoteLow:       d.Note,
		NoteHigh:      d.Note,
		Mode:          d.Mode,
		BaseIntensity: d.BaseIntensity,
		Color:         d.Color,
	}
}
