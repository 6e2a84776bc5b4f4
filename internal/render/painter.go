package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/PixPMusic/gopher-regions/internal/region"
	"github.com/golang/freetype/raster"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/fixed"
)

// Painter rasterizes frames into RGBA images
type Painter struct {
	Background  color.Color
	StrokeWidth float64 // pixels
	HandleSize  float64 // pixels, side of a vertex handle
	IdleOpacity float64 // fill of inactive regions so they stay visible while authoring
}

// NewPainter returns a painter with the default look
func NewPainter() *Painter {
	return &Painter{
		Background:  color.NRGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff},
		StrokeWidth: 2,
		HandleSize:  8,
		IdleOpacity: 0.08,
	}
}

var (
	selectedStroke = colorful.Color{R: 1, G: 1, B: 1}
	editingStroke  = colorful.Color{R: 1, G: 0.85, B: 0.2}
	draftStroke    = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
)

// Paint draws the frame at the given pixel size
func (p *Painter) Paint(f Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)
	if width <= 0 || height <= 0 {
		return img
	}

	ras := raster.NewRasterizer(width, height)
	painter := raster.NewRGBAPainter(img)
	w, h := float64(width), float64(height)

	for _, s := range f.Shapes {
		if len(s.Points) < region.MinPoints {
			continue
		}

		opacity := s.FillOpacity
		if !s.Active {
			opacity = p.IdleOpacity
		}
		if opacity > 0 {
			ras.Clear()
			addPolygon(ras, s.Points, w, h)
			painter.SetColor(withAlpha(s.FillColor, opacity))
			ras.Rasterize(painter)
		}

		stroke := strokeColor(s)
		p.strokePath(ras, painter, s.Points, true, w, h, stroke)

		if s.Stroke != StrokeNormal {
			for _, pt := range s.Points {
				p.handle(ras, painter, pt, w, h, stroke)
			}
		}
	}

	if len(f.Draft) > 0 {
		stroke := toNRGBA(draftStroke)
		if len(f.Draft) > 1 {
			p.strokePath(ras, painter, f.Draft, false, w, h, stroke)
		}
		for _, pt := range f.Draft {
			p.handle(ras, painter, pt, w, h, stroke)
		}
	}

	return img
}

func (p *Painter) strokePath(ras *raster.Rasterizer, painter *raster.RGBAPainter, pts []region.Point, closed bool, w, h float64, c color.NRGBA) {
	if p.StrokeWidth <= 0 {
		return
	}
	var path raster.Path
	path.Start(toFixed(pts[0], w, h))
	for _, pt := range pts[1:] {
		path.Add1(toFixed(pt, w, h))
	}
	if closed {
		path.Add1(toFixed(pts[0], w, h))
	}

	ras.Clear()
	raster.Stroke(ras, path, fixed.Int26_6(p.StrokeWidth*64), raster.RoundCapper, raster.RoundJoiner)
	painter.SetColor(c)
	ras.Rasterize(painter)
}

func (p *Painter) handle(ras *raster.Rasterizer, painter *raster.RGBAPainter, pt region.Point, w, h float64, c color.NRGBA) {
	half := p.HandleSize / 2
	x, y := region.Denormalize(pt, w, h)
	corners := []fixed.Point26_6{
		fixedXY(x-half, y-half),
		fixedXY(x+half, y-half),
		fixedXY(x+half, y+half),
		fixedXY(x-half, y+half),
	}

	ras.Clear()
	ras.Start(corners[0])
	for _, corner := range corners[1:] {
		ras.Add1(corner)
	}
	ras.Add1(corners[0])
	painter.SetColor(c)
	ras.Rasterize(painter)
}

func addPolygon(ras *raster.Rasterizer, pts []region.Point, w, h float64) {
	ras.Start(toFixed(pts[0], w, h))
	for _, pt := range pts[1:] {
		ras.Add1(toFixed(pt, w, h))
	}
	ras.Add1(toFixed(pts[0], w, h))
}

func strokeColor(s Shape) color.NRGBA {
	switch s.Stroke {
	case StrokeSelected:
		return toNRGBA(selectedStroke)
	case StrokeEditing:
		return toNRGBA(editingStroke)
	}
	base, _ := colorful.MakeColor(s.FillColor)
	// Active outlines light up toward white with intensity
	return toNRGBA(base.BlendLab(selectedStroke, clamp01(s.FillOpacity)*0.6).Clamped())
}

func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(opacity) * 0xff))
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func toFixed(pt region.Point, w, h float64) fixed.Point26_6 {
	x, y := region.Denormalize(pt, w, h)
	return fixedXY(x, y)
}

func fixedXY(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
