// Package field models the forces and potentials acting on a trapped
// atom ensemble.
//
// Three variants cover the standard trap ingredients:
//
//   - [Uniform]: constant acceleration such as gravity
//   - [Harmonic]: magnetic trap approximated by angular frequencies
//   - [GaussianBeam]: focused laser beam as a paraxial dipole trap
//
// Every variant implements [Field], evaluating acceleration and potential
// for a whole 3xN ensemble at one instant. Output buffers are overwritten
// and returned, so a hot integration loop can reuse them across steps; a
// nil buffer allocates a fresh one. The species argument is part of the
// contract even where a variant ignores it, which keeps the dispatch
// signature uniform across variants.
//
// Independent field sources are additive: [Combine] sums any number of
// variants into a single [Bound] evaluator.
//
// # Thread Safety
//
// Field variants are immutable after construction. A [Bound] keeps scratch
// buffers and is NOT safe for concurrent use.
package field
