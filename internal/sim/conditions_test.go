package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
)

func stubAccel(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords {
	if len(out) != 3 || out.N() != pos.N() {
		out = phase.New(pos.N())
	}
	return out
}

func stubPot(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64 {
	if len(out) != pos.N() {
		out = make([]float64, pos.N())
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	c, err := New(atom.Rubidium87(), 10, phase.New(5), phase.New(5), stubAccel, stubPot)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.ThreeBodyLossRate != 0 {
		t.Errorf("default three-body rate %g, expected 0", c.ThreeBodyLossRate)
	}
	if !math.IsInf(c.BackgroundLossTime, 1) {
		t.Errorf("default background lifetime %g, expected +Inf", c.BackgroundLossTime)
	}
	probs := c.Evaporate(c.Positions, c.Velocities, c, 0)
	for i, p := range probs {
		if p != 0 {
			t.Errorf("default policy removed particle %d", i)
		}
	}
}

func TestNewParticleMismatch(t *testing.T) {
	_, err := New(atom.Rubidium87(), 10, phase.New(5), phase.New(4), stubAccel, stubPot)
	if !errors.Is(err, phase.ErrParticleMismatch) {
		t.Errorf("expected ErrParticleMismatch, got %v", err)
	}
}

func TestNewComponentCount(t *testing.T) {
	bad := phase.Coords{make([]float64, 5), make([]float64, 5)}
	_, err := New(atom.Rubidium87(), 10, bad, phase.New(5), stubAccel, stubPot)
	if !errors.Is(err, phase.ErrComponentCount) {
		t.Errorf("expected ErrComponentCount for positions, got %v", err)
	}

	_, err = New(atom.Rubidium87(), 10, phase.New(5), bad, stubAccel, stubPot)
	if !errors.Is(err, phase.ErrComponentCount) {
		t.Errorf("expected ErrComponentCount for velocities, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	called := false
	policy := func(pos, vel phase.Coords, c *Conditions, t float64) []float64 {
		called = true
		return make([]float64, pos.N())
	}

	c, err := New(atom.Rubidium87(), 10, phase.New(2), phase.New(2), stubAccel, stubPot,
		WithThreeBodyLossRate(4.3e-41),
		WithBackgroundLossTime(60),
		WithEvaporation(policy),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.ThreeBodyLossRate != 4.3e-41 {
		t.Errorf("three-body rate = %g", c.ThreeBodyLossRate)
	}
	if c.BackgroundLossTime != 60 {
		t.Errorf("background lifetime = %g", c.BackgroundLossTime)
	}
	c.Evaporate(c.Positions, c.Velocities, c, 0)
	if !called {
		t.Error("custom evaporation policy not installed")
	}
}
