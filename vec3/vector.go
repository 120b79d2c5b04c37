package vec3

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-motion/scalar"
)

// Vector3 is a position, direction or sensor reading in 3D space.
// The zero value is the zero vector.
type Vector3 struct {
	X, Y, Z float32
}

// XYZ builds a vector from its components. No validation is performed.
func XYZ(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Zero returns (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// One returns (1, 1, 1).
func One() Vector3 { return Vector3{1, 1, 1} }

// I returns the X basis vector (1, 0, 0).
func I() Vector3 { return Vector3{1, 0, 0} }

// J returns the Y basis vector (0, 1, 0).
func J() Vector3 { return Vector3{0, 1, 0} }

// K returns the Z basis vector (0, 0, 1).
func K() Vector3 { return Vector3{0, 0, 1} }

// IsValid reports whether every component is finite and not NaN.
func (v Vector3) IsValid() bool {
	return scalar.IsValid(v.X) && scalar.IsValid(v.Y) && scalar.IsValid(v.Z)
}

// NearlyEqual reports whether each component of v is within eps of the
// matching component of o.
func (v Vector3) NearlyEqual(o Vector3, eps float32) bool {
	return scalar.NearlyEqual(v.X, o.X, eps) &&
		scalar.NearlyEqual(v.Y, o.Y, eps) &&
		scalar.NearlyEqual(v.Z, o.Z, eps)
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// DivScalarUnsafe divides every component by s.
// The caller guarantees s is not zero; otherwise the result holds Inf or NaN.
func (v Vector3) DivScalarUnsafe(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// DivVectorUnsafe divides v by o componentwise.
// The caller guarantees no component of o is zero.
func (v Vector3) DivVectorUnsafe(o Vector3) Vector3 {
	return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// DivScalarWithDefault divides every component by s, or returns def
// unchanged when s is nearly zero.
func (v Vector3) DivScalarWithDefault(s float32, def Vector3) Vector3 {
	if scalar.NearlyZero(s) {
		return def
	}

	return v.DivScalarUnsafe(s)
}

// DivVectorWithDefault divides v by o componentwise. Each component whose
// divisor is nearly zero takes the matching component of def instead.
func (v Vector3) DivVectorWithDefault(o, def Vector3) Vector3 {
	return Vector3{
		X: scalar.SafeDivide(v.X, o.X, def.X),
		Y: scalar.SafeDivide(v.Y, o.Y, def.Y),
		Z: scalar.SafeDivide(v.Z, o.Z, def.Z),
	}
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// MinComponent returns the smallest of X, Y and Z. NaN components are
// skipped unless all three are NaN.
func (v Vector3) MinComponent() float32 {
	return scalar.MinNum(scalar.MinNum(v.X, v.Y), v.Z)
}

// MaxComponent returns the largest of X, Y and Z, skipping NaN components.
func (v Vector3) MaxComponent() float32 {
	return scalar.MaxNum(scalar.MaxNum(v.X, v.Y), v.Z)
}

// Min returns the componentwise minimum of v and o. Where one side is NaN
// the other side's component is taken.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{scalar.MinNum(v.X, o.X), scalar.MinNum(v.Y, o.Y), scalar.MinNum(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o, with the same NaN
// handling as [Vector3.Min].
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{scalar.MaxNum(v.X, o.X), scalar.MaxNum(v.Y, o.Y), scalar.MaxNum(v.Z, o.Z)}
}

// LengthSquared returns v·v.
func (v Vector3) LengthSquared() float32 { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// DistanceSquared returns the squared length of v - o.
func (v Vector3) DistanceSquared(o Vector3) float32 {
	return v.Sub(o).LengthSquared()
}

// Distance returns the length of v - o.
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Length()
}

// NormalizeWithDefault returns v scaled to unit length together with the
// length v had before normalization. A vector of (nearly) zero length is
// replaced by def wholesale; the returned length is then that near-zero
// value.
func (v Vector3) NormalizeWithDefault(def Vector3) (Vector3, float32) {
	length := v.Length()

	return v.DivScalarWithDefault(length, def), length
}

// RadiansBetween returns the angle between a and b in [0, π].
// It returns 0 when either vector has (nearly) zero length. The cosine is
// clamped to [-1, 1] so rounding on parallel inputs cannot produce NaN;
// non-finite inputs still yield NaN.
func RadiansBetween(a, b Vector3) float32 {
	divisor := a.Length() * b.Length()
	if scalar.NearlyZero(divisor) {
		return 0
	}

	cos := a.Dot(b) / divisor
	if math32.IsNaN(cos) {
		return cos
	}

	return math32.Acos(scalar.Clamp(cos, -1, 1))
}

// Sum adds all vectors. It returns the zero vector for no arguments.
func Sum(vs ...Vector3) Vector3 {
	var s Vector3
	for _, v := range vs {
		s = s.Add(v)
	}

	return s
}

// String formats v as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
