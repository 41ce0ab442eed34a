package phase

import "errors"

// Shape errors for coordinate arrays.
var (
	// ErrComponentCount indicates an array whose leading dimension is not 3.
	ErrComponentCount = errors.New("phase: coordinate array must have exactly 3 component rows")

	// ErrRaggedRows indicates component rows of unequal length.
	ErrRaggedRows = errors.New("phase: coordinate component rows differ in length")

	// ErrParticleMismatch indicates two arrays that disagree on particle count.
	ErrParticleMismatch = errors.New("phase: position and velocity arrays disagree on particle count")
)
