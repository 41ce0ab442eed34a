package atom

// Physical constants, SI units (CODATA 2018).
const (
	Kb       = 1.380649e-23    // Boltzmann constant [J/K]
	C        = 2.99792458e8    // speed of light [m/s]
	Epsilon0 = 8.8541878128e-12 // vacuum permittivity [F/m]
	Hbar     = 1.054571817e-34 // reduced Planck constant [J*s]
	AMU      = 1.66053906660e-27 // atomic mass unit [kg]
	G        = 9.80665         // standard gravity [m/s^2]

	// BohrRadius converts scattering lengths quoted in atomic units.
	BohrRadius = 5.29177210903e-11 // [m]

	// AUPolarizability converts polarizabilities quoted in atomic units
	// (4*pi*eps0*a0^3) to SI [C*m^2/V].
	AUPolarizability = 1.64877727436e-41
)
