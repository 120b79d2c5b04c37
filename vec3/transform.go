package vec3

// Transform is a 3x3 linear operator stored as three row vectors.
type Transform [3]Vector3

// ZeroTransform returns the transform with every entry set to 0.
func ZeroTransform() Transform { return Transform{} }

// Identity returns the identity transform.
func Identity() Transform { return Transform{I(), J(), K()} }

// Apply returns the matrix-vector product m·v: component i of the result is
// row i dotted with v.
func (m Transform) Apply(v Vector3) Vector3 {
	return Vector3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// At returns the entry at row r and column c. It panics if either index is
// outside [0, 2].
func (m Transform) At(r, c int) float32 {
	row := m[r]
	switch c {
	case 0:
		return row.X
	case 1:
		return row.Y
	case 2:
		return row.Z
	default:
		panic("vec3: column index out of range")
	}
}

// Transpose swaps rows and columns.
func (m Transform) Transpose() Transform {
	return Transform{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

// NearlyEqual reports whether every entry of m is within eps of o.
func (m Transform) NearlyEqual(o Transform, eps float32) bool {
	return m[0].NearlyEqual(o[0], eps) &&
		m[1].NearlyEqual(o[1], eps) &&
		m[2].NearlyEqual(o[2], eps)
}

// IsValid reports whether every entry is finite and not NaN.
func (m Transform) IsValid() bool {
	return m[0].IsValid() && m[1].IsValid() && m[2].IsValid()
}
