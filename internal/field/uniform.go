package field

import (
	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/timefn"
)

// Uniform is a spatially uniform acceleration field. Strength is in
// acceleration units [m/s^2]; Origin is the zero reference of the
// potential.
type Uniform struct {
	Strength timefn.Vec
	Origin   timefn.Vec
}

// NewUniform builds a uniform field from a strength vector and a
// potential reference point.
func NewUniform(strength, origin timefn.Vec) *Uniform {
	return &Uniform{Strength: strength, Origin: origin}
}

// Gravity returns the standard gravitational field, pulling along -y
// with the potential referenced to the coordinate origin.
func Gravity() *Uniform {
	return NewUniform(
		timefn.ConstVec(phase.Vec3{0, -atom.G, 0}),
		timefn.ConstVec(phase.Vec3{}),
	)
}

func (u *Uniform) Acceleration(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords {
	n := pos.N()
	out = ensureCoords(out, n)
	s := u.Strength.At(t)
	for axis := 0; axis < 3; axis++ {
		row := out[axis]
		v := s[axis]
		for i := range row {
			row[i] = v
		}
	}
	return out
}

// Potential is the energy of a body in a uniform force field,
// -m * dot(strength, pos - origin).
func (u *Uniform) Potential(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64 {
	n := pos.N()
	out = ensureScalars(out, n)
	s := u.Strength.At(t)
	o := u.Origin.At(t)
	for i := 0; i < n; i++ {
		out[i] = -sp.Mass * (s[0]*(pos[0][i]-o[0]) + s[1]*(pos[1][i]-o[1]) + s[2]*(pos[2][i]-o[2]))
	}
	return out
}
