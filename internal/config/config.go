package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/PixPMusic/gopher-regions/internal/authoring"
	"github.com/PixPMusic/gopher-regions/internal/region"
)

const (
	DefaultFrameRate = 30
	maxFrameRate     = 240
)

// Config holds application configuration and the authored regions
type Config struct {
	InPort       string          `json:"in_port"`       // MIDI input port name
	FrameRate    int             `json:"frame_rate"`    // render ticks per second
	HandleRadius float64         `json:"handle_radius"` // vertex pick distance, surface units
	Debug        bool            `json:"debug"`         // log dropped messages
	Defaults     region.Defaults `json:"defaults"`
	Regions      []region.Region `json:"regions"`

	path string
}

// Default returns a config with no regions and stock settings
func Default() *Config {
	return &Config{
		FrameRate:    DefaultFrameRate,
		HandleRadius: authoring.DefaultHandleRadius,
		Defaults:     region.DefaultDefaults(),
		Regions:      []region.Region{},
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-regions"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default location, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, returning defaults if it does not exist.
// Regions are loaded as stored; they are not validated.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Fields the file omits keep their stock values
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.path = path
	cfg.normalize()

	return cfg, nil
}

func (c *Config) normalize() {
	if c.Regions == nil {
		c.Regions = []region.Region{}
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.FrameRate > maxFrameRate {
		c.FrameRate = maxFrameRate
	}
	if c.HandleRadius <= 0 {
		c.HandleRadius = authoring.DefaultHandleRadius
	}
	c.Defaults = normalizeDefaults(c.Defaults)
}

// normalizeDefaults replaces unusable creation defaults field by field so
// new regions always light up visibly.
func normalizeDefaults(d region.Defaults) region.Defaults {
	stock := region.DefaultDefaults()
	if d.Channel < region.OmniChannel || d.Channel > 16 {
		d.Channel = stock.Channel
	}
	if d.Mode != region.IntensityFixed && d.Mode != region.IntensityVelocity {
		d.Mode = stock.Mode
	}
	if !(d.BaseIntensity > 0 && d.BaseIntensity <= 1) {
		d.BaseIntensity = stock.BaseIntensity
	}
	if _, err := colorful.Hex(d.Color); err != nil {
		d.Color = stock.Color
	}
	return d
}

// Save writes the config back to where it was loaded from
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.path = path
	return nil
}

// Path returns where the config will be saved, if known
func (c *Config) Path() string {
	return c.path
}

// SyncRegions copies the registry contents into the config for saving
func (c *Config) SyncRegions(reg *region.Registry) {
	c.Regions = reg.Snapshot()
	c.Defaults = reg.Defaults()
}

// NewRegistry builds a registry populated with the config's regions
func (c *Config) NewRegistry() *region.Registry {
	reg := region.NewRegistry(c.Defaults)
	reg.Replace(c.Regions)
	return reg
}
