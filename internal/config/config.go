// Package config loads and builds trap descriptions from YAML.
package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/cloud"
	"github.com/san-kum/trapsim/internal/evaporate"
	"github.com/san-kum/trapsim/internal/field"
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/sim"
	"github.com/san-kum/trapsim/internal/timefn"
)

const (
	DefaultFScale        = 10.0
	DefaultCloudN        = 2000
	DefaultCloudRadius   = 100e-6 // m
	DefaultTemperatureUK = 50.0   // microkelvin
)

// Config describes one trap setup. All lengths are in meters, powers in
// watts; temperatures and evaporation depths are quoted in microkelvin.
type Config struct {
	Species     string        `yaml:"species"`
	FScale      float64       `yaml:"f_scale"`
	Seed        int64         `yaml:"seed"`
	Cloud       CloudConfig   `yaml:"cloud"`
	Fields      []FieldConfig `yaml:"fields"`
	Evaporation EvapConfig    `yaml:"evaporation"`
	Loss        LossConfig    `yaml:"loss"`
}

type CloudConfig struct {
	N             int     `yaml:"n"`
	Radius        float64 `yaml:"radius"`
	TemperatureUK float64 `yaml:"temperature_uk"`
}

// FieldConfig is a tagged field description; Kind selects which parameter
// block applies.
type FieldConfig struct {
	Kind string `yaml:"kind"` // uniform | harmonic | gaussian

	// uniform
	Strength [3]float64 `yaml:"strength"`
	Origin   [3]float64 `yaml:"origin"`

	// harmonic
	OmegaX float64 `yaml:"omega_x"`
	OmegaY float64 `yaml:"omega_y"`
	OmegaZ float64 `yaml:"omega_z"`

	// gaussian
	Focus      [3]float64 `yaml:"focus"`
	Direction  [3]float64 `yaml:"direction"`
	Power      float64    `yaml:"power"`
	Waist      float64    `yaml:"waist"`
	Wavelength float64    `yaml:"wavelength"`
}

type EvapConfig struct {
	Policy  string  `yaml:"policy"` // none | energy | radius
	DepthUK float64 `yaml:"depth_uk"`
	Radius  float64 `yaml:"radius"`

	// Optional linear forced-evaporation ramp of the energy depth.
	RampEndUK float64 `yaml:"ramp_end_uk"`
	RampTime  float64 `yaml:"ramp_time"`
}

type LossConfig struct {
	ThreeBodyRate  float64 `yaml:"three_body_rate"`
	BackgroundTime float64 `yaml:"background_time"`
}

// Default returns a single-beam dipole trap with gravity for Rb87.
func Default() *Config {
	return &Config{
		Species: "Rb87",
		FScale:  DefaultFScale,
		Seed:    1,
		Cloud: CloudConfig{
			N:             DefaultCloudN,
			Radius:        DefaultCloudRadius,
			TemperatureUK: DefaultTemperatureUK,
		},
		Fields: []FieldConfig{
			{Kind: "uniform", Strength: [3]float64{0, -atom.G, 0}},
			{
				Kind:       "gaussian",
				Direction:  [3]float64{0, 0, 1},
				Power:      5.0,
				Waist:      50e-6,
				Wavelength: 1064e-9,
			},
		},
		Evaporation: EvapConfig{Policy: "none"},
	}
}

// Load reads a config file, applying defaults for absent keys.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a config file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildFields constructs the field variants described by cfg.
func BuildFields(cfg *Config) ([]field.Field, error) {
	fields := make([]field.Field, 0, len(cfg.Fields))
	for i, fc := range cfg.Fields {
		switch fc.Kind {
		case "uniform":
			fields = append(fields, field.NewUniform(
				timefn.ConstVec(phase.Vec3(fc.Strength)),
				timefn.ConstVec(phase.Vec3(fc.Origin)),
			))
		case "harmonic":
			fields = append(fields, field.NewHarmonic(
				timefn.Const(fc.OmegaX),
				timefn.Const(fc.OmegaY),
				timefn.Const(fc.OmegaZ),
			))
		case "gaussian":
			fields = append(fields, field.NewGaussianBeam(
				timefn.ConstVec(phase.Vec3(fc.Focus)),
				timefn.ConstVec(phase.Vec3(fc.Direction)),
				timefn.Const(fc.Power),
				timefn.Const(fc.Waist),
				timefn.Const(fc.Wavelength),
			))
		default:
			return nil, fmt.Errorf("config: field %d: unknown kind %q", i, fc.Kind)
		}
	}
	return fields, nil
}

func buildPolicy(cfg *Config, bound *field.Bound) (sim.EvaporationFunc, error) {
	ec := cfg.Evaporation
	switch ec.Policy {
	case "", "none":
		return evaporate.None(), nil
	case "energy":
		depth := timefn.Const(ec.DepthUK * 1e-6 * atom.Kb)
		if ec.RampTime > 0 {
			depth = timefn.Ramp(ec.DepthUK*1e-6*atom.Kb, ec.RampEndUK*1e-6*atom.Kb, ec.RampTime)
		}
		return evaporate.EnergyThreshold(bound.Potential, depth), nil
	case "radius":
		return evaporate.RadiusThreshold(timefn.Const(ec.Radius)), nil
	}
	return nil, fmt.Errorf("config: unknown evaporation policy %q", ec.Policy)
}

// Build samples the initial cloud and assembles the full conditions
// record for one run. The returned fields are the individual sources
// behind the composite, for inspection tooling.
func Build(cfg *Config) (*sim.Conditions, []field.Field, error) {
	sp, err := atom.ByName(cfg.Species)
	if err != nil {
		return nil, nil, err
	}
	fields, err := BuildFields(cfg)
	if err != nil {
		return nil, nil, err
	}
	bound := field.Combine(fields...)

	policy, err := buildPolicy(cfg, bound)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	pos := cloud.UniformBall(rng, cfg.Cloud.N, cfg.Cloud.Radius)
	vel := cloud.Boltzmann(rng, cfg.Cloud.N, cfg.Cloud.TemperatureUK*1e-6, sp)

	opts := []sim.Option{sim.WithEvaporation(policy)}
	if cfg.Loss.ThreeBodyRate > 0 {
		opts = append(opts, sim.WithThreeBodyLossRate(cfg.Loss.ThreeBodyRate))
	}
	if cfg.Loss.BackgroundTime > 0 {
		opts = append(opts, sim.WithBackgroundLossTime(cfg.Loss.BackgroundTime))
	}

	c, err := sim.New(sp, cfg.FScale, pos, vel, bound.Acceleration, bound.Potential, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, fields, nil
}
