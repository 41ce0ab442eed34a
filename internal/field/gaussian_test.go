package field

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
	"github.com/san-kum/trapsim/internal/timefn"
)

var _ = Describe("GaussianBeam", func() {
	var (
		sp    atom.Species
		beam  *GaussianBeam
		kappa float64
	)

	const (
		power      = 5.0     // W
		waist      = 50e-6   // m
		wavelength = 1064e-9 // m
	)

	BeforeEach(func() {
		sp = atom.Rubidium87()
		kappa = DipoleCoefficient(sp)
		beam = NewGaussianBeam(
			timefn.ConstVec(phase.Vec3{}),
			timefn.ConstVec(phase.Vec3{0, 0, 1}),
			timefn.Const(power),
			timefn.Const(waist),
			timefn.Const(wavelength),
		)
	})

	It("reproduces the on-axis peak potential kappa*2P/(pi*w0^2)", func() {
		pot := beam.Potential(phase.FromVecs(phase.Vec3{}), sp, 0, nil)
		want := kappa * 2 * power / (math.Pi * waist * waist)
		Expect(pot[0]).To(BeNumerically("~", want, want*1e-12))
		Expect(pot[0]).To(BeNumerically(">", 0))
	})

	It("has an equilibrium at the focus", func() {
		acc := beam.Acceleration(phase.FromVecs(phase.Vec3{}), sp, 0, nil)
		for axis := 0; axis < 3; axis++ {
			Expect(acc.At(0)[axis]).To(BeZero())
		}
	})

	It("has exactly zero radial acceleration anywhere on the axis", func() {
		acc := beam.Acceleration(phase.FromVecs(phase.Vec3{0, 0, 3e-4}), sp, 0, nil)
		Expect(acc.At(0)[0]).To(BeZero())
		Expect(acc.At(0)[1]).To(BeZero())
		Expect(math.IsNaN(acc.At(0)[2])).To(BeFalse())
	})

	It("loses depth monotonically away from the focus on axis", func() {
		zs := []float64{0, 1e-4, 5e-4, 2e-3, 1e-2}
		pos := phase.New(len(zs))
		for i, z := range zs {
			pos.SetAt(i, phase.Vec3{0, 0, z})
		}
		pot := beam.Potential(pos, sp, 0, nil)
		for i := 1; i < len(pot); i++ {
			Expect(pot[i]).To(BeNumerically("<", pot[i-1]),
				"potential must strictly decrease with |z|")
		}
	})

	It("matches the analytic radial gradient near the axis", func() {
		r := 5e-6
		pos := phase.FromVecs(phase.Vec3{r, 0, 0})
		acc := beam.Acceleration(pos, sp, 0, nil)

		w2 := waist * waist
		intensity := 2 * power / (math.Pi * w2) * math.Exp(-2*r*r/w2)
		want := 4 * kappa * intensity / w2 * r / sp.Mass
		Expect(acc.At(0)[0]).To(BeNumerically("~", want, math.Abs(want)*1e-9))
		Expect(acc.At(0)[1]).To(BeZero())
	})

	It("normalises the direction at evaluation time", func() {
		skewed := NewGaussianBeam(
			timefn.ConstVec(phase.Vec3{}),
			timefn.ConstVec(phase.Vec3{0, 0, 7}),
			timefn.Const(power),
			timefn.Const(waist),
			timefn.Const(wavelength),
		)
		pos := phase.FromVecs(phase.Vec3{1e-5, 2e-5, 3e-5})
		a := beam.Potential(pos, sp, 0, nil)
		b := skewed.Potential(pos, sp, 0, nil)
		Expect(b[0]).To(BeNumerically("~", a[0], a[0]*1e-12))
	})

	It("clamps cancellation-induced negative r^2 instead of producing NaN", func() {
		// far down the axis the subtraction |d|^2 - z^2 cancels badly
		pos := phase.FromVecs(phase.Vec3{0, 0, 12.345})
		pot := beam.Potential(pos, sp, 0, nil)
		Expect(math.IsNaN(pot[0])).To(BeFalse())
		acc := beam.Acceleration(pos, sp, 0, nil)
		for axis := 0; axis < 3; axis++ {
			Expect(math.IsNaN(acc.At(0)[axis])).To(BeFalse())
		}
	})

	It("follows a time-dependent power ramp", func() {
		ramped := NewGaussianBeam(
			timefn.ConstVec(phase.Vec3{}),
			timefn.ConstVec(phase.Vec3{0, 0, 1}),
			timefn.Func(func(t float64) float64 { return power * (1 - t/10) }),
			timefn.Const(waist),
			timefn.Const(wavelength),
		)
		origin := phase.FromVecs(phase.Vec3{})
		u0 := ramped.Potential(origin, sp, 0, nil)[0]
		u5 := ramped.Potential(origin, sp, 5, nil)[0]
		Expect(u5).To(BeNumerically("~", u0/2, u0*1e-12))
	})
})

var _ = Describe("Combine", func() {
	sp := atom.Rubidium87()

	It("sums accelerations and potentials of independent sources", func() {
		gravity := Gravity()
		trap := NewIsotropicHarmonic(timefn.Const(100))
		bound := Combine(gravity, trap)

		pos := phase.FromVecs(phase.Vec3{1e-5, -2e-5, 3e-5}, phase.Vec3{0, 1e-4, 0})

		accG := gravity.Acceleration(pos, sp, 0, nil)
		accT := trap.Acceleration(pos, sp, 0, nil)
		acc := bound.Acceleration(pos, sp, 0, nil)
		for i := 0; i < pos.N(); i++ {
			want := accG.At(i).Add(accT.At(i))
			for axis := 0; axis < 3; axis++ {
				Expect(acc.At(i)[axis]).To(BeNumerically("~", want[axis], 1e-18))
			}
		}

		potG := gravity.Potential(pos, sp, 0, nil)
		potT := trap.Potential(pos, sp, 0, nil)
		pot := bound.Potential(pos, sp, 0, nil)
		for i := range pot {
			Expect(pot[i]).To(BeNumerically("~", potG[i]+potT[i], 1e-40))
		}
	})

	It("zeroes the buffer when no fields are bound", func() {
		bound := Combine()
		pos := phase.FromVecs(phase.Vec3{1, 2, 3})

		dirty := phase.New(1)
		dirty.SetAt(0, phase.Vec3{9, 9, 9})
		acc := bound.Acceleration(pos, sp, 0, dirty)
		Expect(acc.At(0)).To(Equal(phase.Vec3{}))

		pot := bound.Potential(pos, sp, 0, []float64{42})
		Expect(pot[0]).To(BeZero())
	})

	It("overwrites the caller's buffer on repeated calls", func() {
		bound := Combine(Gravity(), NewIsotropicHarmonic(timefn.Const(10)))
		buf := phase.New(1)

		buf = bound.Acceleration(phase.FromVecs(phase.Vec3{1, 0, 0}), sp, 0, buf)
		buf = bound.Acceleration(phase.FromVecs(phase.Vec3{0, 0, 0}), sp, 0, buf)
		Expect(buf.At(0)).To(Equal(phase.Vec3{0, -atom.G, 0}))
	})

	It("survives a change in particle count between calls", func() {
		bound := Combine(Gravity(), NewIsotropicHarmonic(timefn.Const(10)))

		acc3 := bound.Acceleration(phase.New(3), sp, 0, nil)
		Expect(acc3.N()).To(Equal(3))
		acc5 := bound.Acceleration(phase.New(5), sp, 0, nil)
		Expect(acc5.N()).To(Equal(5))
	})
})
