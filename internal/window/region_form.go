package window

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/PixPMusic/gopher-regions/internal/region"
	"github.com/PixPMusic/gopher-regions/internal/render"
	"github.com/lucasb-eyer/go-colorful"
)

const omniOption = "Omni"

var modeOptions = []string{"Velocity", "Fixed"}

// formValues is the raw text of the region editor
type formValues struct {
	Name      string
	Channel   string
	Low       string
	High      string
	Mode      string
	Intensity float64
	Color     string
}

// applyValues writes form values onto a copy of base. Numbers must parse, but
// an inverted note range is accepted and simply never matches.
func applyValues(base region.Region, v formValues) (region.Region, error) {
	r := base.Clone()
	r.Name = strings.TrimSpace(v.Name)

	if v.Channel == omniOption || v.Channel == "" {
		r.Channel = region.OmniChannel
	} else {
		ch, err := strconv.Atoi(v.Channel)
		if err != nil || ch < 1 || ch > 16 {
			return base, fmt.Errorf("channel must be Omni or 1-16, got %q", v.Channel)
		}
		r.Channel = ch
	}

	low, err := parseNote(v.Low)
	if err != nil {
		return base, fmt.Errorf("low note: %w", err)
	}
	high, err := parseNote(v.High)
	if err != nil {
		return base, fmt.Errorf("high note: %w", err)
	}
	r.NoteLow, r.NoteHigh = low, high

	switch v.Mode {
	case "Fixed":
		r.Mode = region.IntensityFixed
	default:
		r.Mode = region.IntensityVelocity
	}

	if v.Intensity <= 0 || v.Intensity > 1 {
		return base, fmt.Errorf("intensity must be in (0, 1], got %v", v.Intensity)
	}
	r.BaseIntensity = v.Intensity

	hex := strings.TrimSpace(v.Color)
	if !render.ValidColor(hex) {
		return base, fmt.Errorf("color must be a hex value like #3fa9f5, got %q", v.Color)
	}
	r.Color = hex

	return r, nil
}

var errNoteRange = errors.New("must be a number between 0 and 127")

func parseNote(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 127 {
		return 0, fmt.Errorf("%q %w", s, errNoteRange)
	}
	return n, nil
}

func modeOption(m region.IntensityMode) string {
	if m == region.IntensityFixed {
		return "Fixed"
	}
	return "Velocity"
}

func channelOption(ch int) string {
	if ch == region.OmniChannel {
		return omniOption
	}
	return strconv.Itoa(ch)
}

// regionForm edits the trigger and look of the selected region
type regionForm struct {
	container *fyne.Container
	parent    fyne.Window
	onApply   func(region.Region)

	current region.Region
	loaded  bool

	name           *escapeEntry
	channel        *escapeSelect
	low, high      *escapeEntry
	mode           *escapeSelect
	intensity      *escapeSlider
	intensityLabel *widget.Label
	color          *escapeEntry
	swatch         *colorSwatch
	warning        *widget.Label
	applyBtn       *widget.Button
}

// onEscape runs when Escape is typed into any field of the form.
func newRegionForm(parent fyne.Window, onApply func(region.Region), onEscape func()) *regionForm {
	f := &regionForm{parent: parent, onApply: onApply}

	channels := []string{omniOption}
	for ch := 1; ch <= 16; ch++ {
		channels = append(channels, strconv.Itoa(ch))
	}

	f.name = newEscapeEntry(onEscape)
	f.name.SetPlaceHolder("Region name")
	f.channel = newEscapeSelect(channels, onEscape)
	f.low = newEscapeEntry(onEscape)
	f.high = newEscapeEntry(onEscape)
	f.mode = newEscapeSelect(modeOptions, onEscape)

	f.intensityLabel = widget.NewLabel("")
	f.intensity = newEscapeSlider(0.05, 1, onEscape)
	f.intensity.Step = 0.05
	f.intensity.OnChanged = func(v float64) {
		f.intensityLabel.SetText(fmt.Sprintf("%.2f", v))
	}

	f.color = newEscapeEntry(onEscape)
	f.swatch = newColorSwatch(f.pickColor)
	f.color.OnChanged = func(s string) {
		if render.ValidColor(s) {
			f.swatch.SetColor(render.ParseColor(s))
		}
	}

	f.warning = widget.NewLabel("")
	f.warning.Wrapping = fyne.TextWrapWord
	f.applyBtn = widget.NewButton("Apply", f.apply)
	f.applyBtn.Importance = widget.HighImportance

	header := widget.NewLabel("Region")
	header.TextStyle = fyne.TextStyle{Bold: true}

	form := widget.NewForm(
		widget.NewFormItem("Name", f.name),
		widget.NewFormItem("Channel", f.channel),
		widget.NewFormItem("Low note", f.low),
		widget.NewFormItem("High note", f.high),
		widget.NewFormItem("Intensity", f.mode),
		widget.NewFormItem("Base", container.NewBorder(nil, nil, nil, f.intensityLabel, f.intensity)),
		widget.NewFormItem("Color", container.NewBorder(nil, nil, nil, f.swatch, f.color)),
	)

	f.container = container.NewVBox(header, form, f.applyBtn, f.warning)
	f.clear()
	return f
}

func (f *regionForm) load(r region.Region) {
	f.current = r.Clone()
	f.loaded = true

	f.name.SetText(r.Name)
	f.channel.SetSelected(channelOption(r.Channel))
	f.low.SetText(strconv.Itoa(r.NoteLow))
	f.high.SetText(strconv.Itoa(r.NoteHigh))
	f.mode.SetSelected(modeOption(r.Mode))
	f.intensity.SetValue(r.BaseIntensity)
	f.color.SetText(r.Color)
	f.swatch.SetColor(render.ParseColor(r.Color))
	f.showValidity(r)

	f.container.Show()
}

func (f *regionForm) clear() {
	f.loaded = false
	f.current = region.Region{}
	f.container.Hide()
}

func (f *regionForm) values() formValues {
	return formValues{
		Name:      f.name.Text,
		Channel:   f.channel.Selected,
		Low:       f.low.Text,
		High:      f.high.Text,
		Mode:      f.mode.Selected,
		Intensity: f.intensity.Value,
		Color:     f.color.Text,
	}
}

func (f *regionForm) apply() {
	if !f.loaded {
		return
	}
	r, err := applyValues(f.current, f.values())
	if err != nil {
		dialog.ShowError(err, f.parent)
		return
	}
	f.current = r
	f.showValidity(r)
	if f.onApply != nil {
		f.onApply(r.Clone())
	}
}

func (f *regionForm) showValidity(r region.Region) {
	switch {
	case r.NoteLow > r.NoteHigh:
		f.warning.SetText("Low note is above high note; this region will never light.")
	case len(r.Points) < region.MinPoints:
		f.warning.SetText("Fewer than 3 points; this region cannot be drawn.")
	default:
		f.warning.SetText("")
	}
}

func (f *regionForm) pickColor() {
	if !f.loaded {
		return
	}
	picker := dialog.NewColorPicker("Region Color", "Fill color when lit", func(c color.Color) {
		cc, ok := colorful.MakeColor(c)
		if !ok {
			return
		}
		f.color.SetText(cc.Hex())
	}, f.parent)
	picker.Advanced = true
	picker.SetColor(render.ParseColor(f.color.Text))
	picker.Show()
}
