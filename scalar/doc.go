// Package scalar provides the float32 primitives shared by the vector and
// point-cloud packages: clamping, interpolation, angle conversion, validity
// and tolerance predicates, and division with a fallback for near-zero
// denominators.
//
// Three tolerances are exported so callers can pick the one that matches the
// quantity being compared: [PositionalEpsilon] for positions,
// [NormalEpsilon] for directions and [Epsilon] for exact-zero tests.
package scalar
