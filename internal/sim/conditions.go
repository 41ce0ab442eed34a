// Package sim defines the simulation-conditions aggregate consumed by an
// external time integrator: species, initial ensemble state, the composed
// field callables and the loss model.
package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
)

// AccelerationFunc evaluates per-particle acceleration at time t,
// overwriting and returning out (3xN).
type AccelerationFunc func(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords

// PotentialFunc evaluates per-particle potential energy at time t,
// overwriting and returning out (length N).
type PotentialFunc func(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64

// EvaporationFunc maps current ensemble state to a per-particle removal
// probability vector with values in {0, 1}.
type EvaporationFunc func(pos, vel phase.Coords, c *Conditions, t float64) []float64

// NoEvaporation keeps every particle. It is the default policy.
func NoEvaporation(pos, vel phase.Coords, c *Conditions, t float64) []float64 {
	return make([]float64, pos.N())
}

// Conditions binds everything one simulation run needs. The record is
// read-only once constructed; the integrator mutates the contents of
// Positions/Velocities in place between steps but never replaces the
// record.
type Conditions struct {
	Species atom.Species

	// FScale is the number of real atoms represented by one test
	// particle.
	FScale float64

	Positions  phase.Coords
	Velocities phase.Coords

	Acceleration AccelerationFunc
	Potential    PotentialFunc

	// ThreeBodyLossRate is the density-dependent loss constant [m^6/s].
	ThreeBodyLossRate float64

	Evaporate EvaporationFunc

	// BackgroundLossTime is the 1/e lifetime against background-gas
	// collisions [s]. +Inf disables the loss channel.
	BackgroundLossTime float64
}

// Option adjusts the defaulted loss fields of Conditions.
type Option func(*Conditions)

// WithThreeBodyLossRate sets the three-body loss constant (default 0).
func WithThreeBodyLossRate(rate float64) Option {
	return func(c *Conditions) { c.ThreeBodyLossRate = rate }
}

// WithEvaporation sets the evaporation policy (default NoEvaporation).
func WithEvaporation(fn EvaporationFunc) Option {
	return func(c *Conditions) { c.Evaporate = fn }
}

// WithBackgroundLossTime sets the background lifetime (default +Inf).
func WithBackgroundLossTime(tau float64) Option {
	return func(c *Conditions) { c.BackgroundLossTime = tau }
}

// New validates the ensemble arrays and assembles the conditions record.
// Validation order: both arrays must have exactly 3 component rows, then
// they must agree on particle count. No other field is validated.
func New(sp atom.Species, fScale float64, pos, vel phase.Coords, accel AccelerationFunc, pot PotentialFunc, opts ...Option) (*Conditions, error) {
	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid positions: %w", err)
	}
	if err := vel.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid velocities: %w", err)
	}
	if pos.N() != vel.N() {
		return nil, fmt.Errorf("sim: %w (positions %d, velocities %d)",
			phase.ErrParticleMismatch, pos.N(), vel.N())
	}

	c := &Conditions{
		Species:            sp,
		FScale:             fScale,
		Positions:          pos,
		Velocities:         vel,
		Acceleration:       accel,
		Potential:          pot,
		ThreeBodyLossRate:  0,
		Evaporate:          NoEvaporation,
		BackgroundLossTime: math.Inf(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
