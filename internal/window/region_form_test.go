package window

import (
	"testing"

	"github.com/PixPMusic/gopher-regions/internal/region"
)

func baseRegion() region.Region {
	return region.DefaultDefaults().New([]region.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
}

func validValues() formValues {
	return formValues{
		Name:      " Kick ",
		Channel:   "10",
		Low:       "36",
		High:      "38",
		Mode:      "Fixed",
		Intensity: 0.5,
		Color:     "#ff8800",
	}
}

func TestApplyValues(t *testing.T) {
	base := baseRegion()
	r, err := applyValues(base, validValues())
	if err != nil {
		t.Fatalf("applyValues: %v", err)
	}
	if r.ID != base.ID || len(r.Points) != 3 {
		t.Error("identity and points should be kept")
	}
	if r.Name != "Kick" || r.Channel != 10 || r.NoteLow != 36 || r.NoteHigh != 38 {
		t.Errorf("unexpected trigger %+v", r)
	}
	if r.Mode != region.IntensityFixed || r.BaseIntensity != 0.5 || r.Color != "#ff8800" {
		t.Errorf("unexpected look %+v", r)
	}
}

func TestApplyValuesOmniAndInvertedRange(t *testing.T) {
	v := validValues()
	v.Channel = omniOption
	v.Low, v.High = "70", "60"

	r, err := applyValues(baseRegion(), v)
	if err != nil {
		t.Fatalf("inverted range should be accepted: %v", err)
	}
	if r.Channel != region.OmniChannel || r.NoteLow != 70 || r.NoteHigh != 60 {
		t.Errorf("unexpected region %+v", r)
	}
}

func TestApplyValuesErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *formValues)
	}{
		{"channel 0", func(v *formValues) { v.Channel = "0" }},
		{"channel text", func(v *formValues) { v.Channel = "x" }},
		{"low text", func(v *formValues) { v.Low = "C4" }},
		{"high 128", func(v *formValues) { v.High = "128" }},
		{"zero intensity", func(v *formValues) { v.Intensity = 0 }},
		{"bad color", func(v *formValues) { v.Color = "red" }},
	}

	base := baseRegion()
	for _, tt := range tests {
		v := validValues()
		tt.mutate(&v)
		r, err := applyValues(base, v)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if r.NoteLow != base.NoteLow || r.Color != base.Color {
			t.Errorf("%s: base should be returned unchanged on error", tt.name)
		}
	}
}

func TestOptions(t *testing.T) {
	if channelOption(0) != omniOption || channelOption(7) != "7" {
		t.Error("unexpected channel option")
	}
	if modeOption(region.IntensityFixed) != "Fixed" || modeOption(region.IntensityVelocity) != "Velocity" {
		t.Error("unexpected mode option")
	}
}
