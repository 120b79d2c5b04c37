package cloud

import (
	"fmt"

	"github.com/cwbudde/algo-motion/vec3"
)

// Accumulator gathers point-cloud statistics incrementally across blocks of
// samples. Mean and co-moments are updated per sample (Welford) in float64.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	n    int
	mean [3]float64
	m2   [3][3]float64
	min  vec3.Vector3
	max  vec3.Vector3
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds samples into the running statistics.
func (a *Accumulator) Add(samples ...vec3.Vector3) {
	for _, s := range samples {
		if a.n == 0 {
			a.min, a.max = s, s
		} else {
			a.min = a.min.Min(s)
			a.max = a.max.Max(s)
		}

		a.n++
		ni := float64(a.n)
		x := [3]float64{float64(s.X), float64(s.Y), float64(s.Z)}

		var delta [3]float64
		for i := range 3 {
			delta[i] = x[i] - a.mean[i]
			a.mean[i] += delta[i] / ni
		}

		// (x_i - mean_old_i)(x_j - mean_new_j) == delta_i*delta_j*(n-1)/n;
		// the right-hand form keeps the matrix exactly symmetric.
		w := (ni - 1) / ni
		for i := range 3 {
			for j := i; j < 3; j++ {
				a.m2[i][j] += delta[i] * delta[j] * w
				a.m2[j][i] = a.m2[i][j]
			}
		}
	}
}

// Count returns the number of samples seen so far.
func (a *Accumulator) Count() int {
	return a.n
}

// Mean returns the running mean, or the zero vector before any sample.
func (a *Accumulator) Mean() vec3.Vector3 {
	return vec3.XYZ(float32(a.mean[0]), float32(a.mean[1]), float32(a.mean[2]))
}

// Covariance returns the sample covariance (divisor N-1). It reports
// ok=false and the zero transform while fewer than two samples were added.
func (a *Accumulator) Covariance() (vec3.Transform, bool) {
	if a.n < MinSamples {
		return vec3.ZeroTransform(), false
	}

	d := float64(a.n - 1)

	var cov vec3.Transform
	for i := range 3 {
		cov[i] = vec3.XYZ(
			float32(a.m2[i][0]/d),
			float32(a.m2[i][1]/d),
			float32(a.m2[i][2]/d),
		)
	}

	return cov, true
}

// Result returns the accumulated statistics.
func (a *Accumulator) Result() (Result, error) {
	cov, ok := a.Covariance()
	if !ok {
		return Result{Count: a.n}, fmt.Errorf("%w: got %d", ErrInsufficientSamples, a.n)
	}

	return Result{
		Count:      a.n,
		Mean:       a.Mean(),
		Covariance: cov,
		Min:        a.min,
		Max:        a.max,
	}, nil
}

// Reset clears all accumulated state.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
