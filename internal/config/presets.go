package config

import (
	"math"
	"sort"

	"github.com/san-kum/trapsim/internal/atom"
)

var Presets = map[string]*Config{
	"dipole": {
		Species: "Rb87", FScale: 10, Seed: 1,
		Cloud: CloudConfig{N: 2000, Radius: 100e-6, TemperatureUK: 50},
		Fields: []FieldConfig{
			{Kind: "uniform", Strength: [3]float64{0, -atom.G, 0}},
			{Kind: "gaussian", Direction: [3]float64{0, 0, 1}, Power: 5.0, Waist: 50e-6, Wavelength: 1064e-9},
		},
		Evaporation: EvapConfig{Policy: "none"},
	},
	"crossed": {
		Species: "Rb87", FScale: 10, Seed: 1,
		Cloud: CloudConfig{N: 4000, Radius: 60e-6, TemperatureUK: 20},
		Fields: []FieldConfig{
			{Kind: "uniform", Strength: [3]float64{0, -atom.G, 0}},
			{Kind: "gaussian", Direction: [3]float64{0, 0, 1}, Power: 8.0, Waist: 60e-6, Wavelength: 1064e-9},
			{Kind: "gaussian", Direction: [3]float64{1, 0, 0}, Power: 8.0, Waist: 60e-6, Wavelength: 1064e-9},
		},
		Evaporation: EvapConfig{Policy: "energy", DepthUK: 120, RampEndUK: 15, RampTime: 4.0},
		Loss:        LossConfig{ThreeBodyRate: 4.3e-41, BackgroundTime: 60},
	},
	"magnetic": {
		Species: "Na23", FScale: 20, Seed: 1,
		Cloud: CloudConfig{N: 5000, Radius: 200e-6, TemperatureUK: 100},
		Fields: []FieldConfig{
			{Kind: "uniform", Strength: [3]float64{0, -atom.G, 0}},
			{Kind: "harmonic", OmegaX: 2 * math.Pi * 120, OmegaY: 2 * math.Pi * 120, OmegaZ: 2 * math.Pi * 15},
		},
		Evaporation: EvapConfig{Policy: "radius", Radius: 500e-6},
		Loss:        LossConfig{BackgroundTime: 90},
	},
}

// GetPreset returns a named preset, or nil when unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
