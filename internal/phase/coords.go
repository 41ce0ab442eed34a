// Package phase provides the 3xN coordinate arrays that carry particle
// ensemble state, together with their shape invariants.
//
// Positions and velocities are stored component-major: three rows of N
// particle columns. Field evaluators iterate rows in inner loops, so a
// single ensemble evaluation touches each row contiguously.
package phase

// Coords is a 3xN coordinate array: row 0 holds the x component of every
// particle, rows 1 and 2 the y and z components.
type Coords [][]float64

// New allocates a zeroed 3xN coordinate array.
func New(n int) Coords {
	c := make(Coords, 3)
	for axis := range c {
		c[axis] = make([]float64, n)
	}
	return c
}

// N reports the particle count. Zero for an empty array.
func (c Coords) N() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Validate checks the shape invariants: exactly 3 component rows, all of
// equal length.
func (c Coords) Validate() error {
	if len(c) != 3 {
		return ErrComponentCount
	}
	n := len(c[0])
	if len(c[1]) != n || len(c[2]) != n {
		return ErrRaggedRows
	}
	return nil
}

// At returns particle i as a vector.
func (c Coords) At(i int) Vec3 {
	return Vec3{c[0][i], c[1][i], c[2][i]}
}

// SetAt stores v as particle i, overwriting the previous value.
func (c Coords) SetAt(i int, v Vec3) {
	c[0][i] = v[0]
	c[1][i] = v[1]
	c[2][i] = v[2]
}

// Clone returns a deep copy.
func (c Coords) Clone() Coords {
	out := make(Coords, len(c))
	for axis := range c {
		out[axis] = make([]float64, len(c[axis]))
		copy(out[axis], c[axis])
	}
	return out
}

// FromVecs builds a 3xN array from particle column vectors.
func FromVecs(vs ...Vec3) Coords {
	c := New(len(vs))
	for i, v := range vs {
		c.SetAt(i, v)
	}
	return c
}
