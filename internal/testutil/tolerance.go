package testutil

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-motion/vec3"
)

// RequireVectorNearlyEqual fails t if any component of got differs from want
// by more than eps (absolute tolerance).
func RequireVectorNearlyEqual(t require.TestingT, got, want vec3.Vector3, eps float32) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.InDeltaf(t, want.X, got.X, float64(eps), "X: got %v, want %v", got, want)
	require.InDeltaf(t, want.Y, got.Y, float64(eps), "Y: got %v, want %v", got, want)
	require.InDeltaf(t, want.Z, got.Z, float64(eps), "Z: got %v, want %v", got, want)
}

// RequireTransformNearlyEqual fails t if any entry of got differs from want
// by more than eps.
func RequireTransformNearlyEqual(t require.TestingT, got, want vec3.Transform, eps float32) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for r := range 3 {
		for c := range 3 {
			require.InDeltaf(t, want.At(r, c), got.At(r, c), float64(eps),
				"entry [%d][%d]: got %v, want %v", r, c, got, want)
		}
	}
}

// RequireFinite fails t if any vector holds a NaN or Inf component.
func RequireFinite(t require.TestingT, vs ...vec3.Vector3) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for i, v := range vs {
		require.Truef(t, v.IsValid(), "index %d: non-finite vector %v", i, v)
	}
}

// MaxAbsDiff returns the largest absolute component difference between two
// vector slices. Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []vec3.Vector3) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var maxDiff float32
	for i := range a {
		d := a[i].Sub(b[i])
		maxDiff = math32.Max(maxDiff, math32.Max(math32.Abs(d.X), math32.Max(math32.Abs(d.Y), math32.Abs(d.Z))))
	}

	return maxDiff, nil
}
