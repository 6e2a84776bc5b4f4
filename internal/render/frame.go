package render

import (
	"image/color"

	"github.com/PixPMusic/gopher-regions/internal/activation"
	"github.com/PixPMusic/gopher-regions/internal/region"
	"github.com/lucasb-eyer/go-colorful"
)

// StrokeState reflects selection and authoring mode of a shape
type StrokeState int

const (
	StrokeNormal   StrokeState = iota
	StrokeSelected             // selected, handles shown
	StrokeEditing              // selected and a vertex is being dragged
)

func (s StrokeState) String() string {
	switch s {
	case StrokeSelected:
		return "selected"
	case StrokeEditing:
		return "editing"
	default:
		return "normal"
	}
}

// FallbackColor is used when a region color does not parse
var FallbackColor = color.NRGBA{R: 0x3f, G: 0xa9, B: 0xf5, A: 0xff}

// Shape is the per-tick drawing instruction for one region
type Shape struct {
	ID          string
	Points      []region.Point
	Stroke      StrokeState
	FillColor   color.NRGBA
	FillOpacity float64 // evaluated intensity, 0 when inactive
	Active      bool
}

// View is the authoring state that affects drawing
type View struct {
	Selected string
	Dragging bool
	Draft    []region.Point // in-progress polygon, drawn as an open path
}

// Frame is everything needed to draw one tick
type Frame struct {
	Shapes []Shape
	Draft  []region.Point
}

// Build evaluates every region against snap and produces the frame.
// Shapes keep registry order, so later regions draw on top.
func Build(regions []region.Region, snap activation.Snapshot, view View) Frame {
	results := activation.EvaluateAll(regions, snap)

	f := Frame{
		Shapes: make([]Shape, len(regions)),
		Draft:  append([]region.Point(nil), view.Draft...),
	}
	for i, r := range regions {
		stroke := StrokeNormal
		if r.ID == view.Selected {
			stroke = StrokeSelected
			if view.Dragging {
				stroke = StrokeEditing
			}
		}
		f.Shapes[i] = Shape{
			ID:          r.ID,
			Points:      append([]region.Point(nil), r.Points...),
			Stroke:      stroke,
			FillColor:   ParseColor(r.Color),
			FillOpacity: results[i].Intensity,
			Active:      results[i].Active,
		}
	}
	return f
}

// ParseColor reads a hex color, falling back to FallbackColor
func ParseColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return FallbackColor
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// ValidColor reports whether hex is a color ParseColor understands
func ValidColor(hex string) bool {
	_, err := colorful.Hex(hex)
	return err == nil
}
