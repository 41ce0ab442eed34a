// Package cloud samples initial particle ensembles.
package cloud

import (
	"math"
	"math/rand"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
)

// UniformBall samples n positions uniformly inside a sphere of the given
// radius centered on the origin.
func UniformBall(rng *rand.Rand, n int, radius float64) phase.Coords {
	pos := phase.New(n)
	for i := 0; i < n; i++ {
		for {
			x := 2*rng.Float64() - 1
			y := 2*rng.Float64() - 1
			z := 2*rng.Float64() - 1
			if x*x+y*y+z*z <= 1 {
				pos.SetAt(i, phase.Vec3{x * radius, y * radius, z * radius})
				break
			}
		}
	}
	return pos
}

// Boltzmann samples n velocities from the Maxwell-Boltzmann distribution
// at the given temperature [K] for one species.
func Boltzmann(rng *rand.Rand, n int, temperature float64, sp atom.Species) phase.Coords {
	sigma := math.Sqrt(atom.Kb * temperature / sp.Mass)
	vel := phase.New(n)
	for axis := 0; axis < 3; axis++ {
		row := vel[axis]
		for i := range row {
			row[i] = sigma * rng.NormFloat64()
		}
	}
	return vel
}
