package render

import (
	"image/color"
	"testing"

	"github.com/PixPMusic/gopher-regions/internal/region"
)

func closeTo(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestPaintFillsActiveRegion(t *testing.T) {
	p := NewPainter()
	p.Background = color.NRGBA{A: 0xff}

	f := Frame{Shapes: []Shape{{
		ID:          "a",
		Points:      []region.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}},
		FillColor:   color.NRGBA{R: 0xff, A: 0xff},
		FillOpacity: 1,
		Active:      true,
	}}}

	img := p.Paint(f, 100, 100)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	inside := img.RGBAAt(50, 50)
	if !closeTo(inside.R, 0xff) || inside.G > 2 || inside.B > 2 {
		t.Errorf("expected red interior, got %v", inside)
	}

	outside := img.RGBAAt(3, 3)
	if outside.R > 2 || outside.G > 2 || outside.B > 2 {
		t.Errorf("expected background outside, got %v", outside)
	}
}

func TestPaintInactiveIsDim(t *testing.T) {
	p := NewPainter()
	p.Background = color.NRGBA{A: 0xff}

	f := Frame{Shapes: []Shape{{
		Points:    []region.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}},
		FillColor: color.NRGBA{R: 0xff, A: 0xff},
	}}}

	inside := p.Paint(f, 100, 100).RGBAAt(50, 50)
	if inside.R == 0 || inside.R > 0x40 {
		t.Errorf("expected faint idle tint, got %v", inside)
	}
}

func TestPaintSkipsDegenerate(t *testing.T) {
	p := NewPainter()
	p.Background = color.NRGBA{A: 0xff}

	f := Frame{Shapes: []Shape{{
		Points:      []region.Point{{X: 10, Y: 10}, {X: 90, Y: 90}},
		FillColor:   color.NRGBA{R: 0xff, A: 0xff},
		FillOpacity: 1,
		Active:      true,
	}}}

	if px := p.Paint(f, 100, 100).RGBAAt(50, 50); px.R != 0 {
		t.Errorf("two-point region should not draw, got %v", px)
	}
}

func TestPaintEmptySize(t *testing.T) {
	img := NewPainter().Paint(Frame{}, 0, 0)
	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}

func TestPaintDraftHandles(t *testing.T) {
	p := NewPainter()
	p.Background = color.NRGBA{A: 0xff}

	img := p.Paint(Frame{Draft: []region.Point{{X: 50, Y: 50}}}, 100, 100)
	if px := img.RGBAAt(50, 50); px.R < 0x80 {
		t.Errorf("expected draft handle drawn at its point, got %v", px)
	}
}
