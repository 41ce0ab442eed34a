// Package atom provides physical constants and immutable descriptors for
// the atomic species commonly used in cold-atom trapping experiments.
package atom

import (
	"fmt"
	"math"
)

// Species holds the physical constants of one atomic species. Values are
// set once from literature data and never mutated.
type Species struct {
	Name string

	// Mass of a single atom [kg].
	Mass float64

	// ScatteringLength is the s-wave scattering length [m]. Negative for
	// attractively interacting species.
	ScatteringLength float64

	// ScatteringCrossSection for identical bosons, 8*pi*a^2 [m^2].
	ScatteringCrossSection float64

	// Polarizability is the real part of the dynamic polarizability at the
	// trapping wavelength [C*m^2/V].
	Polarizability float64
}

func newSpecies(name string, massAMU, scatteringAU, polarizabilityAU float64) Species {
	a := scatteringAU * BohrRadius
	return Species{
		Name:                   name,
		Mass:                   massAMU * AMU,
		ScatteringLength:       a,
		ScatteringCrossSection: 8 * math.Pi * a * a,
		Polarizability:         polarizabilityAU * AUPolarizability,
	}
}

// Rubidium87 returns the descriptor for 87Rb, polarizability at 1064 nm.
func Rubidium87() Species {
	return newSpecies("Rb87", 86.909180, 100.4, 687.3)
}

// Sodium23 returns the descriptor for 23Na, polarizability at 1064 nm.
func Sodium23() Species {
	return newSpecies("Na23", 22.989769, 54.5, 131.1)
}

// Lithium7 returns the descriptor for 7Li, polarizability at 1064 nm.
// The triplet scattering length is negative.
func Lithium7() Species {
	return newSpecies("Li7", 7.016003, -27.6, 200.0)
}

// Caesium133 returns the descriptor for 133Cs, polarizability at 1064 nm.
func Caesium133() Species {
	return newSpecies("Cs133", 132.905452, 280.0, 1163.4)
}

// ByName resolves a species descriptor from its short name, e.g. "Rb87".
func ByName(name string) (Species, error) {
	switch name {
	case "Rb87":
		return Rubidium87(), nil
	case "Na23":
		return Sodium23(), nil
	case "Li7":
		return Lithium7(), nil
	case "Cs133":
		return Caesium133(), nil
	}
	return Species{}, fmt.Errorf("atom: unknown species %q", name)
}

// Names lists the species understood by ByName.
func Names() []string {
	return []string{"Rb87", "Na23", "Li7", "Cs133"}
}
