// Package evaporate provides the particle-removal policies consumed by
// the external integrator. Despite the probability vector in their
// signature, the thresholded policies are deterministic: each entry is
// exactly 0 (keep) or 1 (remove).
package evaporate

import (
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/sim"
	"github.com/san-kum/trapsim/internal/timefn"
)

// EnergyThreshold removes a particle when its potential energy, evaluated
// with the supplied potential function (not necessarily the full
// composite), strictly exceeds the depth at time t.
func EnergyThreshold(pot sim.PotentialFunc, depth timefn.Scalar) sim.EvaporationFunc {
	var buf []float64
	return func(pos, vel phase.Coords, c *sim.Conditions, t float64) []float64 {
		n := pos.N()
		if len(buf) != n {
			buf = make([]float64, n)
		}
		buf = pot(pos, c.Species, t, buf)
		limit := depth.At(t)
		out := make([]float64, n)
		for i, u := range buf {
			if u > limit {
				out[i] = 1
			}
		}
		return out
	}
}

// RadiusThreshold removes a particle when its distance from the
// coordinate origin strictly exceeds the radius at time t. A particle
// exactly on the cutoff is kept.
func RadiusThreshold(radius timefn.Scalar) sim.EvaporationFunc {
	return func(pos, vel phase.Coords, c *sim.Conditions, t float64) []float64 {
		limit := radius.At(t)
		n := pos.N()
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			if pos.At(i).Norm() > limit {
				out[i] = 1
			}
		}
		return out
	}
}

// None keeps every particle.
func None() sim.EvaporationFunc {
	return sim.NoEvaporation
}
