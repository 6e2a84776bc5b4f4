package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ============ COLOR SWATCH WIDGET ============

// colorSwatch previews a region color and opens a picker when tapped
type colorSwatch struct {
	widget.BaseWidget
	rect  *canvas.Rectangle
	onTap func()
}

func newColorSwatch(onTap func()) *colorSwatch {
	rect := canvas.NewRectangle(color.Transparent)
	rect.CornerRadius = 3
	rect.SetMinSize(fyne.NewSize(28, 28))

	s := &colorSwatch{rect: rect, onTap: onTap}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

// ============ ESCAPE-AWARE INPUTS ============

// Focused widgets receive keys before the canvas does. These wrappers hand
// Escape back to the window so cancel works wherever focus is.

type escapeEntry struct {
	widget.Entry
	onEscape func()
}

func newEscapeEntry(onEscape func()) *escapeEntry {
	e := &escapeEntry{onEscape: onEscape}
	e.ExtendBaseWidget(e)
	return e
}

func (e *escapeEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(ev)
}

type escapeSelect struct {
	widget.Select
	onEscape func()
}

func newEscapeSelect(options []string, onEscape func()) *escapeSelect {
	s := &escapeSelect{onEscape: onEscape}
	s.Options = options
	s.PlaceHolder = "(Select one)"
	s.ExtendBaseWidget(s)
	return s
}

func (s *escapeSelect) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && s.onEscape != nil {
		s.onEscape()
		return
	}
	s.Select.TypedKey(ev)
}

type escapeSlider struct {
	widget.Slider
	onEscape func()
}

func newEscapeSlider(min, max float64, onEscape func()) *escapeSlider {
	s := &escapeSlider{onEscape: onEscape}
	s.Min, s.Max, s.Step = min, max, 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *escapeSlider) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && s.onEscape != nil {
		s.onEscape()
		return
	}
	s.Slider.TypedKey(ev)
}
