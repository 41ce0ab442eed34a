package field

import (
	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/timefn"
)

// Harmonic is a three-axis harmonic trap centered on the coordinate
// origin, described by its angular trap frequencies [rad/s].
type Harmonic struct {
	OmegaX timefn.Scalar
	OmegaY timefn.Scalar
	OmegaZ timefn.Scalar
}

// NewHarmonic builds a harmonic trap from per-axis angular frequencies.
func NewHarmonic(wx, wy, wz timefn.Scalar) *Harmonic {
	return &Harmonic{OmegaX: wx, OmegaY: wy, OmegaZ: wz}
}

// NewIsotropicHarmonic builds a trap with the same frequency on all axes.
func NewIsotropicHarmonic(w timefn.Scalar) *Harmonic {
	return &Harmonic{OmegaX: w, OmegaY: w, OmegaZ: w}
}

func (h *Harmonic) omega2(t float64) [3]float64 {
	wx := h.OmegaX.At(t)
	wy := h.OmegaY.At(t)
	wz := h.OmegaZ.At(t)
	return [3]float64{wx * wx, wy * wy, wz * wz}
}

// Acceleration is -omega_axis^2 * x_axis per axis, mass-independent.
func (h *Harmonic) Acceleration(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords {
	n := pos.N()
	out = ensureCoords(out, n)
	w2 := h.omega2(t)
	for axis := 0; axis < 3; axis++ {
		src := pos[axis]
		dst := out[axis]
		k := w2[axis]
		for i := range dst {
			dst[i] = -k * src[i]
		}
	}
	return out
}

// Potential is 0.5 * m * sum over axes of omega^2 * x^2.
func (h *Harmonic) Potential(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64 {
	n := pos.N()
	out = ensureScalars(out, n)
	w2 := h.omega2(t)
	halfMass := 0.5 * sp.Mass
	for i := 0; i < n; i++ {
		x, y, z := pos[0][i], pos[1][i], pos[2][i]
		out[i] = halfMass * (w2[0]*x*x + w2[1]*y*y + w2[2]*z*z)
	}
	return out
}
