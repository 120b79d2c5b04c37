package scalar

import "github.com/chewxy/math32"

// Tolerances for the physical quantities compared throughout the module.
const (
	// PositionalEpsilon is the tolerance for positions and distances.
	PositionalEpsilon float32 = 0.001
	// NormalEpsilon is the tolerance for unit directions and normals.
	NormalEpsilon float32 = 0.0001
	// Epsilon is the float32 machine epsilon, used for exact-zero tests.
	Epsilon float32 = 0x1p-23
)

// Range limits.
const (
	Max float32 = math32.MaxFloat32
	// Min is the smallest positive normal float32.
	Min float32 = 0x1p-126
)

// Angle constants in float32.
const (
	Pi     = math32.Pi
	TwoPi  = 2 * math32.Pi
	HalfPi = 0.5 * math32.Pi
)

// Clamp limits x to the inclusive range [lo, hi].
// Bounds are not reordered: when lo > hi the result is hi.
// A NaN x is treated as lo.
func Clamp(x, lo, hi float32) float32 {
	return MinNum(MaxNum(x, lo), hi)
}

// MinNum returns the smaller of a and b. A NaN operand is ignored: the
// other one is returned, and NaN only when both are NaN.
func MinNum(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	}

	return math32.Min(a, b)
}

// MaxNum returns the larger of a and b, ignoring a NaN operand like [MinNum].
func MaxNum(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	}

	return math32.Max(a, b)
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b. u is not clamped.
func Lerp(a, b, u float32) float32 {
	return a*(1-u) + b*u
}

// LerpClamp interpolates like [Lerp] and clamps the result to the operand
// range [a, b]. u itself is never clamped.
func LerpClamp(a, b, u float32) float32 {
	return Clamp(Lerp(a, b, u), a, b)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(x float32) float32 {
	return (x * Pi) / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(x float32) float32 {
	return (x * 180) / Pi
}

// IsValid reports whether x is neither NaN nor infinite.
func IsValid(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// NearlyEqual reports whether |a-b| <= eps. The tolerance is absolute.
func NearlyEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// NearlyZero reports whether x is within machine epsilon of zero.
func NearlyZero(x float32) bool {
	return NearlyEqual(x, 0, Epsilon)
}

// SafeDivide returns num/den, or def when den is nearly zero.
func SafeDivide(num, den, def float32) float32 {
	if NearlyZero(den) {
		return def
	}

	return num / den
}

// Sign returns 1 for x >= 0 and -1 otherwise.
func Sign(x float32) float32 {
	if x >= 0 {
		return 1
	}

	return -1
}

// Sqr returns x*x.
func Sqr(x float32) float32 {
	return x * x
}
