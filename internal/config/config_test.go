package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PixPMusic/gopher-regions/internal/activation"
	"github.com/PixPMusic/gopher-regions/internal/authoring"
	"github.com/PixPMusic/gopher-regions/internal/region"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.FrameRate != DefaultFrameRate || cfg.HandleRadius != authoring.DefaultHandleRadius {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Defaults != region.DefaultDefaults() {
		t.Errorf("expected stock region defaults, got %+v", cfg.Defaults)
	}
	if cfg.Regions == nil || len(cfg.Regions) != 0 {
		t.Error("expected empty non-nil regions")
	}
	if cfg.Path() != path {
		t.Errorf("expected path %s, got %s", path, cfg.Path())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	reg := region.NewRegistry(region.DefaultDefaults())
	r := reg.Create([]region.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}})
	r.Channel = 10
	r.NoteLow, r.NoteHigh = 36, 51
	r.Mode = region.IntensityFixed
	r.BaseIntensity = 0.75
	reg.Update(r)

	cfg := Default()
	cfg.InPort = "Launchpad"
	cfg.SyncRegions(reg)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.InPort != "Launchpad" {
		t.Errorf("expected in port kept, got %q", loaded.InPort)
	}
	if len(loaded.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(loaded.Regions))
	}
	got := loaded.Regions[0]
	if got.ID != r.ID || got.Channel != 10 || got.NoteLow != 36 || got.NoteHigh != 51 ||
		got.Mode != region.IntensityFixed || got.BaseIntensity != 0.75 || len(got.Points) != 3 {
		t.Errorf("region did not survive round trip: %+v", got)
	}
}

func TestLoadKeepsInvalidRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"regions":[{"id":"x","points":[{"x":1,"y":1}],"note_low":90,"note_high":10}],"frame_rate":-4}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(cfg.Regions) != 1 || cfg.Regions[0].ID != "x" {
		t.Fatalf("expected lenient load, got %+v", cfg.Regions)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("expected frame rate reset, got %d", cfg.FrameRate)
	}
	if cfg.Defaults != region.DefaultDefaults() {
		t.Errorf("missing defaults should fall back, got %+v", cfg.Defaults)
	}

	reg := cfg.NewRegistry()
	if reg.Len() != 1 {
		t.Error("registry should carry loaded regions")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadCustomDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults":{"channel":10,"note":36,"mode":"fixed","base_intensity":0.5,"color":"#ffffff"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	r := cfg.NewRegistry().Create([]region.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	if r.Channel != 10 || r.NoteLow != 36 || r.Mode != region.IntensityFixed || r.Color != "#ffffff" {
		t.Errorf("custom defaults not applied: %+v", r)
	}
}

func TestLoadPartialDefaults(t *testing.T) {
	stock := region.DefaultDefaults()
	tests := []struct {
		name string
		data string
		want region.Defaults
	}{
		{
			name: "note only",
			data: `{"defaults":{"note":64}}`,
			want: region.Defaults{Channel: stock.Channel, Note: 64, Mode: stock.Mode, BaseIntensity: stock.BaseIntensity, Color: stock.Color},
		},
		{
			name: "unusable fields",
			data: `{"defaults":{"channel":40,"note":30,"mode":"loud","base_intensity":-1,"color":"nope"}}`,
			want: region.Defaults{Channel: stock.Channel, Note: 30, Mode: stock.Mode, BaseIntensity: stock.BaseIntensity, Color: stock.Color},
		},
		{
			name: "intensity above one",
			data: `{"defaults":{"channel":2,"base_intensity":4}}`,
			want: region.Defaults{Channel: 2, Note: stock.Note, Mode: stock.Mode, BaseIntensity: stock.BaseIntensity, Color: stock.Color},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			if cfg.Defaults != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, cfg.Defaults)
			}
		})
	}
}

func TestPartialDefaultsRegionLightsUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"defaults":{"note":64}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	r := cfg.NewRegistry().Create([]region.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
	engine := activation.NewEngine(nil)
	engine.OnEvent([]byte{0x90, 64, 127}, time.Now())

	res := activation.Evaluate(r, engine.Snapshot())
	if !res.Active || res.Intensity != 1 {
		t.Errorf("expected full intensity, got %+v", res)
	}
}
