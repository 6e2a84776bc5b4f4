package window

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/PixPMusic/gopher-regions/internal/authoring"
	"github.com/PixPMusic/gopher-regions/internal/region"
)

// ============ AUTHORING SURFACE WIDGET ============

// Surface is the drawing area. It converts pointer positions into
// normalized surface coordinates and feeds them to the authoring machine.
type Surface struct {
	widget.BaseWidget

	machine *authoring.Machine
	raster  *canvas.Raster

	// set when a press grabbed a vertex, so the tap that follows the
	// release is not taken as a click
	pressTaken bool
}

var (
	_ fyne.Tappable     = (*Surface)(nil)
	_ fyne.Draggable    = (*Surface)(nil)
	_ desktop.Mouseable = (*Surface)(nil)
)

// NewSurface creates a surface driven by machine and drawn by paint
func NewSurface(machine *authoring.Machine, paint func(w, h int) image.Image) *Surface {
	s := &Surface{machine: machine}
	s.raster = canvas.NewRaster(paint)
	s.raster.SetMinSize(fyne.NewSize(480, 480))
	s.ExtendBaseWidget(s)
	return s
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

// normalize maps a widget-relative position to 0-100 units. Event positions
// are already relative to the widget, so the surface origin is zero.
func (s *Surface) normalize(pos fyne.Position) region.Point {
	size := s.Size()
	return region.Normalize(
		float64(pos.X), float64(pos.Y),
		0, 0,
		float64(size.Width), float64(size.Height),
	)
}

func (s *Surface) Tapped(e *fyne.PointEvent) {
	if s.pressTaken {
		s.pressTaken = false
		return
	}
	s.machine.Click(s.normalize(e.Position))
}

func (s *Surface) MouseDown(e *desktop.MouseEvent) {
	s.pressTaken = false
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pressTaken = s.machine.PointerDown(s.normalize(e.Position))
}

// MouseUp and DragEnd both end a drag. Fyne keeps delivering drag events to
// the widget that started them, so release outside the surface still lands here.
func (s *Surface) MouseUp(_ *desktop.MouseEvent) {
	s.machine.PointerUp()
}

func (s *Surface) Dragged(e *fyne.DragEvent) {
	s.machine.PointerMove(s.normalize(e.Position))
}

func (s *Surface) DragEnd() {
	s.machine.PointerUp()
	s.pressTaken = false
}
