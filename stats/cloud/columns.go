package cloud

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-motion/vec3"
)

// Columns stores a point cloud as three float64 columns. Reductions over
// the columns use the vecmath block kernels.
type Columns struct {
	X, Y, Z []float64
}

// NewColumns splits samples into columns.
func NewColumns(samples []vec3.Vector3) Columns {
	c := Columns{
		X: make([]float64, 0, len(samples)),
		Y: make([]float64, 0, len(samples)),
		Z: make([]float64, 0, len(samples)),
	}
	c.Append(samples...)

	return c
}

// Append adds samples to the end of the columns.
func (c *Columns) Append(samples ...vec3.Vector3) {
	for _, s := range samples {
		c.X = append(c.X, float64(s.X))
		c.Y = append(c.Y, float64(s.Y))
		c.Z = append(c.Z, float64(s.Z))
	}
}

// Len returns the number of complete samples, the shortest column length.
func (c Columns) Len() int {
	return min(len(c.X), len(c.Y), len(c.Z))
}

// At returns sample i.
func (c Columns) At(i int) vec3.Vector3 {
	return vec3.XYZ(float32(c.X[i]), float32(c.Y[i]), float32(c.Z[i]))
}

// Mean returns the column means, or the zero vector when empty.
func (c Columns) Mean() vec3.Vector3 {
	n := c.Len()
	if n == 0 {
		return vec3.Zero()
	}

	m := c.mean(n)

	return vec3.XYZ(float32(m[0]), float32(m[1]), float32(m[2]))
}

func (c Columns) mean(n int) [3]float64 {
	nf := float64(n)

	return [3]float64{
		vecmath.Sum(c.X[:n]) / nf,
		vecmath.Sum(c.Y[:n]) / nf,
		vecmath.Sum(c.Z[:n]) / nf,
	}
}

// Covariance returns the mean and symmetric sample covariance (divisor
// N-1). With fewer than two samples it reports ok=false and zero values.
func (c Columns) Covariance() (mean vec3.Vector3, cov vec3.Transform, ok bool) {
	n := c.Len()
	if n < MinSamples {
		return vec3.Zero(), vec3.ZeroTransform(), false
	}

	m := c.mean(n)
	src := [3][]float64{c.X[:n], c.Y[:n], c.Z[:n]}

	// Center each column: centered = column + ones*(-mean). vecmath has no
	// broadcast kernel, so the ones vector is built once and scaled per axis.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	offset := make([]float64, n)
	var centered [3][]float64
	for axis := range 3 {
		vecmath.ScaleBlock(offset, ones, -m[axis])
		centered[axis] = make([]float64, n)
		vecmath.AddBlock(centered[axis], src[axis], offset)
	}

	d := float64(n - 1)
	var m2 [3][3]float64
	for i := range 3 {
		for j := i; j < 3; j++ {
			m2[i][j] = vecmath.DotProduct(centered[i], centered[j]) / d
			m2[j][i] = m2[i][j]
		}
	}

	for i := range 3 {
		cov[i] = vec3.XYZ(float32(m2[i][0]), float32(m2[i][1]), float32(m2[i][2]))
	}

	return vec3.XYZ(float32(m[0]), float32(m[1]), float32(m[2])), cov, true
}
