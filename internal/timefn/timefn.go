// Package timefn adapts constants and time-dependent functions into one
// uniform "value as of time t" representation.
//
// Every configurable physical quantity in a trap description — a beam
// power, a trap frequency, an evaporation depth — is wrapped in a Scalar
// or Vec. Downstream code queries the wrapper with an explicit time and
// never branches on whether the underlying quantity actually varies.
//
// Evaluating a genuinely time-dependent quantity without an explicit time
// falls back to DefaultTime and emits a counted diagnostic: that silent
// assumption is the classic way to mis-evaluate a ramped parameter, so it
// is made observable rather than fatal.
package timefn

import (
	"log"
	"sync/atomic"

	"github.com/san-kum/trapsim/internal/phase"
)

// DefaultTime is the instant assumed when no explicit time is supplied.
const DefaultTime = 0.0

var defaultTimeWarnings atomic.Uint64

// Warnings reports how many times a time-dependent quantity has been
// evaluated without an explicit time since the last reset.
func Warnings() uint64 { return defaultTimeWarnings.Load() }

// ResetWarnings zeroes the diagnostic counter.
func ResetWarnings() { defaultTimeWarnings.Store(0) }

func warnDefaultTime() {
	defaultTimeWarnings.Add(1)
	log.Printf("timefn: time-dependent quantity evaluated without explicit time, assuming t=%v", DefaultTime)
}

// Scalar is a possibly time-dependent scalar quantity.
type Scalar struct {
	fn      func(t float64) float64
	varying bool
}

// Const wraps a constant scalar.
func Const(v float64) Scalar {
	return Scalar{fn: func(float64) float64 { return v }}
}

// Func wraps a time-dependent scalar function.
func Func(g func(t float64) float64) Scalar {
	return Scalar{fn: g, varying: true}
}

// At evaluates the quantity at time t.
func (s Scalar) At(t float64) float64 { return s.fn(t) }

// AtDefault evaluates at DefaultTime. Warns once per call when the
// quantity is genuinely time-dependent; constant wrappers never warn.
func (s Scalar) AtDefault() float64 {
	if s.varying {
		warnDefaultTime()
	}
	return s.fn(DefaultTime)
}

// Varying reports whether the wrapped quantity is time-dependent.
func (s Scalar) Varying() bool { return s.varying }

// Vec is a possibly time-dependent vector quantity.
type Vec struct {
	fn      func(t float64) phase.Vec3
	varying bool
}

// ConstVec wraps a constant vector.
func ConstVec(v phase.Vec3) Vec {
	return Vec{fn: func(float64) phase.Vec3 { return v }}
}

// VecFunc wraps a time-dependent vector function.
func VecFunc(g func(t float64) phase.Vec3) Vec {
	return Vec{fn: g, varying: true}
}

// At evaluates the quantity at time t.
func (v Vec) At(t float64) phase.Vec3 { return v.fn(t) }

// AtDefault evaluates at DefaultTime, warning for time-dependent
// quantities.
func (v Vec) AtDefault() phase.Vec3 {
	if v.varying {
		warnDefaultTime()
	}
	return v.fn(DefaultTime)
}

// Varying reports whether the wrapped quantity is time-dependent.
func (v Vec) Varying() bool { return v.varying }

// Ramp builds a linear ramp from v0 at t=0 to v1 at t=duration, clamped
// outside that interval. Commonly used for forced-evaporation depths.
func Ramp(v0, v1, duration float64) Scalar {
	if duration <= 0 {
		return Const(v1)
	}
	return Func(func(t float64) float64 {
		switch {
		case t <= 0:
			return v0
		case t >= duration:
			return v1
		}
		return v0 + (v1-v0)*t/duration
	})
}
