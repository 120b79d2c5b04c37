package cloud

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-motion/vec3"
)

// MinSamples is the smallest sample count for which a covariance exists.
const MinSamples = 2

// ErrInsufficientSamples is returned when fewer than MinSamples samples are
// available.
var ErrInsufficientSamples = errors.New("cloud: at least two samples are required")

// Result holds point-cloud statistics.
type Result struct {
	Count      int
	Mean       vec3.Vector3
	Covariance vec3.Transform
	Min        vec3.Vector3
	Max        vec3.Vector3
}

// Extent returns Max - Min.
func (r Result) Extent() vec3.Vector3 {
	return r.Max.Sub(r.Min)
}

// Covariance returns the mean and the sample covariance (divisor N-1) of
// samples. With fewer than two samples it reports ok=false and returns the
// zero vector and the zero transform.
func Covariance(samples []vec3.Vector3, opts ...Option) (mean vec3.Vector3, cov vec3.Transform, ok bool) {
	if len(samples) < MinSamples {
		return vec3.Zero(), vec3.ZeroTransform(), false
	}

	cfg := ApplyOptions(opts...)
	n := float32(len(samples))

	// n >= 2, the divisor cannot vanish.
	mean = vec3.Sum(samples...).DivScalarUnsafe(n)

	for _, s := range samples {
		cov = accumulate(cfg.Accumulation, cov, s.Sub(mean))
	}

	for i := range cov {
		cov[i] = cov[i].DivScalarUnsafe(n - 1)
	}

	return mean, cov, true
}

// accumulate adds the outer-product terms of one centered sample c.
func accumulate(mode Accumulation, cov vec3.Transform, c vec3.Vector3) vec3.Transform {
	cov[0] = cov[0].Add(c.Scale(c.X))
	cov[1] = cov[1].Add(c.Scale(c.Y))

	if mode == AccumulationLegacy {
		cov[2] = cov[2].Add(vec3.XYZ(c.Z*c.X, c.Z*c.Z, c.Z*c.Z))
	} else {
		cov[2] = cov[2].Add(c.Scale(c.Z))
	}

	return cov
}

// Mean returns the arithmetic mean of samples, or the zero vector when
// samples is empty.
func Mean(samples []vec3.Vector3) vec3.Vector3 {
	return vec3.Sum(samples...).DivScalarWithDefault(float32(len(samples)), vec3.Zero())
}

// Bounds returns the componentwise minimum and maximum of samples.
// It reports ok=false for an empty slice.
func Bounds(samples []vec3.Vector3) (lo, hi vec3.Vector3, ok bool) {
	if len(samples) == 0 {
		return vec3.Zero(), vec3.Zero(), false
	}

	lo, hi = samples[0], samples[0]
	for _, s := range samples[1:] {
		lo = lo.Min(s)
		hi = hi.Max(s)
	}

	return lo, hi, true
}

// Calculate computes mean, covariance and bounds of samples.
// Fewer than MinSamples samples yield ErrInsufficientSamples and a Result
// carrying only Count.
func Calculate(samples []vec3.Vector3, opts ...Option) (Result, error) {
	mean, cov, ok := Covariance(samples, opts...)
	if !ok {
		return Result{Count: len(samples)}, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(samples))
	}

	lo, hi, _ := Bounds(samples)

	return Result{
		Count:      len(samples),
		Mean:       mean,
		Covariance: cov,
		Min:        lo,
		Max:        hi,
	}, nil
}
