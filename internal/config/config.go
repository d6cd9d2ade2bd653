package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/mandel"
)

const (
	DefaultWidth         = 1200
	DefaultHeight        = 800
	DefaultZoom          = 0
	DefaultCenterRe      = -0.56267837374
	DefaultCenterIm      = 0.65679461735
	DefaultMaxIterations = 600
	DefaultBackground    = "#000000"
	DefaultOriginX       = 2
	DefaultOriginY       = 2
)

type Config struct {
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	Zoom          int          `yaml:"zoom"`
	CenterRe      float64      `yaml:"center_re"`
	CenterIm      float64      `yaml:"center_im"`
	MaxIterations int          `yaml:"max_iterations"`
	Backend       string       `yaml:"backend,omitempty"`
	Workers       int          `yaml:"workers,omitempty"`
	Background    string       `yaml:"background"`
	Output        string       `yaml:"output,omitempty"`
	Origin        OriginConfig `yaml:"origin"`
}

// OriginConfig is the offset at which the display surface places the image.
type OriginConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Zoom:          DefaultZoom,
		CenterRe:      DefaultCenterRe,
		CenterIm:      DefaultCenterIm,
		MaxIterations: DefaultMaxIterations,
		Background:    DefaultBackground,
		Origin:        OriginConfig{X: DefaultOriginX, Y: DefaultOriginY},
	}
}

// Load reads a YAML file on top of the defaults; keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) View() mandel.ViewParameters {
	return mandel.ViewParameters{
		Width:         c.Width,
		Height:        c.Height,
		Zoom:          c.Zoom,
		CenterRe:      c.CenterRe,
		CenterIm:      c.CenterIm,
		MaxIterations: c.MaxIterations,
	}
}

func (c *Config) Validate() error {
	if err := c.View().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if c.Backend != "" && compute.ByName(c.Backend, c.Workers) == nil {
		return fmt.Errorf("config: unknown backend %q (available: serial, cpu)", c.Backend)
	}
	return nil
}

// BackgroundColor returns the parsed background, falling back to black.
func (c *Config) BackgroundColor() mandel.Color {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return mandel.Black
	}
	return bg
}

// ComputeBackend resolves the configured backend. An empty name defers the
// choice to the renderer.
func (c *Config) ComputeBackend() compute.Backend {
	if c.Backend == "" {
		if c.Workers > 0 {
			return compute.NewCPUBackend(c.Workers)
		}
		return nil
	}
	return compute.ByName(c.Backend, c.Workers)
}

// ParseHexColor accepts "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (mandel.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mandel.Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mandel.Color{}, fmt.Errorf("invalid hex colour %q", s)
	}
	return mandel.Unpack(uint32(v)), nil
}
