package authoring

import (
	"github.com/PixPMusic/gopher-regions/internal/region"
)

// State of an authoring surface
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DefaultHandleRadius is the vertex pick distance in surface units
const DefaultHandleRadius = 2.5

// Regions is the part of the region registry the machine mutates through
type Regions interface {
	Create(points []region.Point) region.Region
	Get(id string) (region.Region, bool)
	UpdatePoint(id string, index int, p region.Point) bool
	HitBody(p region.Point) (region.Region, bool)
}

// DragSession identifies the vertex being repositioned
type DragSession struct {
	RegionID   string
	PointIndex int
}

// Machine is the draw/drag state machine for one surface. All coordinates
// it receives are already normalized to 0-100. It is driven from a single
// goroutine.
type Machine struct {
	regions      Regions
	handleRadius float64

	state    State
	draft    []region.Point
	drag     DragSession
	selected string

	// OnChange, if set, runs after every transition that alters what is drawn
	OnChange func()
}

// NewMachine creates an idle machine with nothing selected
func NewMachine(regions Regions) *Machine {
	return &Machine{
		regions:      regions,
		handleRadius: DefaultHandleRadius,
	}
}

// SetHandleRadius changes the vertex pick distance
func (m *Machine) SetHandleRadius(r float64) {
	if r > 0 {
		m.handleRadius = r
	}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Selected returns the selected region ID, or "" when nothing is selected
func (m *Machine) Selected() string {
	return m.selected
}

// DrawPoints returns a copy of the in-progress polygon
func (m *Machine) DrawPoints() []region.Point {
	return append([]region.Point(nil), m.draft...)
}

// Drag returns the active drag session
func (m *Machine) Drag() (DragSession, bool) {
	return m.drag, m.state == StateDragging
}

// Click handles a tap on the surface.
//
// While drawing, the point is appended as-is; drawn points are not clamped.
// While idle, a hit on a region body selects it, a hit on the background
// clears an existing selection, and otherwise starts a new drawing.
func (m *Machine) Click(p region.Point) {
	switch m.state {
	case StateDrawing:
		m.draft = append(m.draft, p)
		m.changed()

	case StateIdle:
		if hit, ok := m.regions.HitBody(p); ok {
			if hit.ID != m.selected {
				m.selected = hit.ID
				m.changed()
			}
			return
		}
		if m.selected != "" {
			m.selected = ""
			m.changed()
			return
		}
		m.state = StateDrawing
		m.draft = []region.Point{p}
		m.changed()
	}
}

// Commit turns the drawing into a region. Fewer than three points leaves
// the drawing open and reports false.
func (m *Machine) Commit() (region.Region, bool) {
	if m.state != StateDrawing || len(m.draft) < region.MinPoints {
		return region.Region{}, false
	}

	created := m.regions.Create(m.draft)
	m.draft = nil
	m.state = StateIdle
	m.changed()
	return created, true
}

// Cancel discards the drawing regardless of its size
func (m *Machine) Cancel() {
	if m.state != StateDrawing {
		return
	}
	m.draft = nil
	m.state = StateIdle
	m.changed()
}

// GlobalCancel is the surface-independent escape: it abandons a drawing,
// or clears the selection when idle. A drag in progress is left to PointerUp.
func (m *Machine) GlobalCancel() {
	switch m.state {
	case StateDrawing:
		m.Cancel()
	case StateIdle:
		if m.selected != "" {
			m.selected = ""
			m.changed()
		}
	}
}

// Select makes id the selected region. It is refused while drawing or
// dragging, or when the region does not exist. An empty id clears.
func (m *Machine) Select(id string) bool {
	if m.state != StateIdle {
		return false
	}
	if id != "" {
		if _, ok := m.regions.Get(id); !ok {
			return false
		}
	}
	if id != m.selected {
		m.selected = id
		m.changed()
	}
	return true
}

// Forget drops any reference to a region that was deleted by the host
func (m *Machine) Forget(id string) {
	changed := false
	if m.state == StateDragging && m.drag.RegionID == id {
		m.endDrag()
		changed = true
	}
	if m.selected == id {
		m.selected = ""
		changed = true
	}
	if changed {
		m.changed()
	}
}

// PointerDown starts a vertex drag when p is on a handle of the selected
// region. It reports whether the press was taken.
func (m *Machine) PointerDown(p region.Point) bool {
	if m.state != StateIdle || m.selected == "" {
		return false
	}
	reg, ok := m.regions.Get(m.selected)
	if !ok {
		return false
	}
	idx, ok := region.NearestVertex(reg.Points, p, m.handleRadius)
	if !ok {
		return false
	}

	m.state = StateDragging
	m.drag = DragSession{RegionID: reg.ID, PointIndex: idx}
	m.changed()
	return true
}

// PointerMove writes the clamped position of the dragged vertex back to the
// registry.
func (m *Machine) PointerMove(p region.Point) {
	if m.state != StateDragging {
		return
	}
	if !m.regions.UpdatePoint(m.drag.RegionID, m.drag.PointIndex, p.Clamp()) {
		// Region or vertex vanished under the drag
		m.endDrag()
	}
	m.changed()
}

// PointerUp ends a drag. It is fed from anywhere, not only over the surface,
// so a drag that leaves the surface still terminates.
func (m *Machine) PointerUp() {
	if m.state != StateDragging {
		return
	}
	m.endDrag()
	m.changed()
}

func (m *Machine) endDrag() {
	m.drag = DragSession{}
	m.state = StateIdle
}

func (m *Machine) changed() {
	if m.OnChange != nil {
		m.OnChange()
	}
}
