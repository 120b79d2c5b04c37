// Package vec3 provides fixed-size 3D vector algebra for orientation and
// sensor samples: arithmetic, dot and cross products, lengths,
// normalization, angles and application of a 3x3 linear transform.
//
// [Vector3] and [Transform] are plain values. Every operation returns a new
// value and never mutates its receiver, so all functions are safe for
// concurrent use.
//
// # Division
//
// Division comes in three tiers:
//
//   - DivScalarUnsafe, DivVectorUnsafe: no check, the caller guarantees a
//     non-zero divisor.
//   - DivScalarWithDefault: returns the default vector wholesale when the
//     divisor is nearly zero.
//   - DivVectorWithDefault: falls back per component, only where that
//     component's divisor is nearly zero.
//
// Validity is never enforced. Vectors holding NaN or Inf can be built and
// combined freely; call [Vector3.IsValid] where it matters.
package vec3
