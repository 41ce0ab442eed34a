package field

import (
	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
)

// Field is the uniform evaluation contract shared by every variant.
//
// Acceleration fills out (3xN) with the acceleration of each particle at
// time t; Potential fills out (length N) with per-particle potential
// energy. Both overwrite the supplied buffer and return it; passing nil
// allocates a correctly shaped buffer.
type Field interface {
	Acceleration(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords
	Potential(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64
}

func ensureCoords(out phase.Coords, n int) phase.Coords {
	if len(out) != 3 || out.N() != n {
		return phase.New(n)
	}
	return out
}

func ensureScalars(out []float64, n int) []float64 {
	if len(out) != n {
		return make([]float64, n)
	}
	return out
}
