// Package profile samples a field model along a coordinate axis for
// terminal inspection. It renders the configured trap itself, never
// simulation trajectories.
package profile

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/field"
	"github.com/san-kum/trapsim/internal/phase"
)

// Axis selects the sampling direction.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// ParseAxis maps "x", "y", "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("profile: unknown axis %q", s)
}

// Options controls where and how densely a field is sampled.
type Options struct {
	Axis    Axis
	Through phase.Vec3 // point the sampling line passes through
	Span    float64    // total line length [m]
	Points  int
	Time    float64
}

// Line returns the sampling offsets and the matching 3xN position array.
func Line(o Options) ([]float64, phase.Coords) {
	n := o.Points
	if n < 2 {
		n = 2
	}
	offsets := make([]float64, n)
	pos := phase.New(n)
	for i := 0; i < n; i++ {
		off := -o.Span/2 + o.Span*float64(i)/float64(n-1)
		offsets[i] = off
		p := o.Through
		p[int(o.Axis)] += off
		pos.SetAt(i, p)
	}
	return offsets, pos
}

// Potential samples per-particle potential energy [J] along the line.
func Potential(f field.Field, sp atom.Species, o Options) (offsets, values []float64) {
	offsets, pos := Line(o)
	values = f.Potential(pos, sp, o.Time, nil)
	return offsets, values
}

// AccelerationMagnitude samples |a| [m/s^2] along the line.
func AccelerationMagnitude(f field.Field, sp atom.Species, o Options) (offsets, values []float64) {
	offsets, pos := Line(o)
	acc := f.Acceleration(pos, sp, o.Time, nil)
	values = make([]float64, pos.N())
	for i := range values {
		values[i] = acc.At(i).Norm()
	}
	return offsets, values
}

// Depth evaluates the potential at a single point, the conventional trap
// depth readout at the trap center.
func Depth(f field.Field, sp atom.Species, center phase.Vec3, t float64) float64 {
	pot := f.Potential(phase.FromVecs(center), sp, t, nil)
	return pot[0]
}

// ToMicroKelvin rescales energies [J] to microkelvin in place and
// returns the slice.
func ToMicroKelvin(energies []float64) []float64 {
	for i, e := range energies {
		energies[i] = e / atom.Kb * 1e6
	}
	return energies
}

// Render plots sampled values as an ASCII graph.
func Render(values []float64, height int, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}
