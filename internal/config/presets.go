package config

import "sort"

// Presets are named views. Landmark regions are framed so that the view width
// covers roughly the region's real extent.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"full": {
		Width: 1200, Height: 800, Zoom: -2, CenterRe: -0.5, CenterIm: 0,
		MaxIterations: 200, Background: DefaultBackground,
	},
	"seahorse": {
		Width: 1200, Height: 800, Zoom: 3, CenterRe: -0.75, CenterIm: 0.1,
		MaxIterations: 600, Background: DefaultBackground,
	},
	"elephant": {
		Width: 1200, Height: 800, Zoom: 3, CenterRe: -1.8, CenterIm: -0.06,
		MaxIterations: 600, Background: DefaultBackground,
	},
	"spiral": {
		Width: 1200, Height: 800, Zoom: 9, CenterRe: -0.74275, CenterIm: 0.13175,
		MaxIterations: 1500, Background: DefaultBackground,
	},
	"triple": {
		Width: 1200, Height: 800, Zoom: 8, CenterRe: -0.7465, CenterIm: 0.0965,
		MaxIterations: 1200, Background: DefaultBackground,
	},
	"dragon": {
		Width: 1200, Height: 800, Zoom: 8, CenterRe: -0.7375, CenterIm: 0.1825,
		MaxIterations: 1200, Background: DefaultBackground,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
