package testutil

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-motion/vec3"
)

// DeterministicCloud generates n samples uniformly distributed in the box
// center ± spread, using a fixed seed for reproducibility.
func DeterministicCloud(seed int64, center, spread vec3.Vector3, n int) []vec3.Vector3 {
	out := make([]vec3.Vector3, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		offset := vec3.XYZ(
			(rng.Float32()*2-1)*spread.X,
			(rng.Float32()*2-1)*spread.Y,
			(rng.Float32()*2-1)*spread.Z,
		)
		out[i] = center.Add(offset)
	}
	return out
}

// Ring generates n samples evenly spaced on a circle of the given radius in
// the XY plane around center.
func Ring(center vec3.Vector3, radius float32, n int) []vec3.Vector3 {
	out := make([]vec3.Vector3, n)
	step := 2 * math32.Pi / float32(n)
	for i := range out {
		s, c := math32.Sincos(step * float32(i))
		out[i] = center.Add(vec3.XYZ(radius*c, radius*s, 0))
	}
	return out
}

// Constant returns n copies of v.
func Constant(v vec3.Vector3, n int) []vec3.Vector3 {
	out := make([]vec3.Vector3, n)
	for i := range out {
		out[i] = v
	}
	return out
}
