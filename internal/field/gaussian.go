package field

import (
	"math"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/timefn"
)

// GaussianBeam models a focused laser beam as an optical dipole trap
// under the paraxial approximation.
//
// The potential reported here is the positive trap-depth scalar
// kappa * I(r, z) with kappa = polarizability / (2*eps0*c); acceleration
// is the corresponding -grad(U)/m. Energy-threshold evaporation compares
// directly against this positive scalar, so the sign convention must not
// be flipped.
type GaussianBeam struct {
	Focus      timefn.Vec
	Direction  timefn.Vec
	Power      timefn.Scalar // [W]
	Waist      timefn.Scalar // beam waist w0 at the focus [m]
	Wavelength timefn.Scalar // [m]
}

// NewGaussianBeam builds a beam; direction need not be normalised, it is
// re-normalised at every evaluated instant.
func NewGaussianBeam(focus, direction timefn.Vec, power, waist, wavelength timefn.Scalar) *GaussianBeam {
	return &GaussianBeam{
		Focus:      focus,
		Direction:  direction,
		Power:      power,
		Waist:      waist,
		Wavelength: wavelength,
	}
}

// DipoleCoefficient is the species-dependent conversion from beam
// intensity to dipole potential, polarizability / (2*eps0*c).
func DipoleCoefficient(sp atom.Species) float64 {
	return sp.Polarizability / (2 * atom.Epsilon0 * atom.C)
}

// beamFrame is the beam geometry frozen at one instant.
type beamFrame struct {
	focus    phase.Vec3
	dir      phase.Vec3 // unit length
	power    float64
	w0       float64
	rayleigh float64
}

func (g *GaussianBeam) frame(t float64) beamFrame {
	w0 := g.Waist.At(t)
	lambda := g.Wavelength.At(t)
	return beamFrame{
		focus:    g.Focus.At(t),
		dir:      g.Direction.At(t).Normalize(),
		power:    g.Power.At(t),
		w0:       w0,
		rayleigh: math.Pi * w0 * w0 / lambda,
	}
}

// geometry resolves a particle position into the beam's cylindrical
// frame: axial coordinate z, squared radial coordinate r2, local squared
// waist w2 and intensity.
func (f beamFrame) geometry(p phase.Vec3) (d phase.Vec3, z, r2, w2, intensity float64) {
	d = p.Sub(f.focus)
	z = d.Dot(f.dir)
	r2 = d.Dot(d) - z*z
	if r2 < 0 {
		// floating-point cancellation for on-axis particles
		r2 = 0
	}
	zn := z / f.rayleigh
	w2 = f.w0 * f.w0 * (1 + zn*zn)
	intensity = 2 * f.power / (math.Pi * w2) * math.Exp(-2*r2/w2)
	return d, z, r2, w2, intensity
}

func (g *GaussianBeam) Potential(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64 {
	n := pos.N()
	out = ensureScalars(out, n)
	f := g.frame(t)
	kappa := DipoleCoefficient(sp)
	for i := 0; i < n; i++ {
		_, _, _, _, intensity := f.geometry(pos.At(i))
		out[i] = kappa * intensity
	}
	return out
}

// Acceleration is the analytic -grad(U)/m of the dipole potential in the
// beam's cylindrical frame, mapped back to Cartesian components along the
// beam direction and the in-plane radial vector.
func (g *GaussianBeam) Acceleration(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords {
	n := pos.N()
	out = ensureCoords(out, n)
	f := g.frame(t)
	kappa := DipoleCoefficient(sp)
	zR2 := f.rayleigh * f.rayleigh
	w02 := f.w0 * f.w0
	invMass := 1 / sp.Mass
	for i := 0; i < n; i++ {
		d, z, r2, w2, intensity := f.geometry(pos.At(i))
		u := kappa * intensity

		// axial: -dU/dz along the beam direction
		az := -u * (2 * w02 * z / (zR2 * w2)) * (2*r2/w2 - 1) * invMass

		// radial: coefficient multiplying the non-normalised in-plane
		// radial vector d - z*dir, whose magnitude is r
		ar := 4 * u / w2 * invMass

		radial := d.Sub(f.dir.Scale(z))
		out.SetAt(i, f.dir.Scale(az).Add(radial.Scale(ar)))
	}
	return out
}
