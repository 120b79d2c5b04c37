package vec3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-motion/internal/testutil"
	"github.com/cwbudde/algo-motion/vec3"
)

func TestIdentityApply(t *testing.T) {
	id := vec3.Transform{vec3.XYZ(1, 0, 0), vec3.XYZ(0, 1, 0), vec3.XYZ(0, 0, 1)}
	assert.Equal(t, vec3.Identity(), id)

	for _, v := range testutil.DeterministicCloud(9, vec3.Zero(), vec3.XYZ(1e3, 1e3, 1e3), 64) {
		assert.Equal(t, v, id.Apply(v))
	}
}

func TestZeroTransform(t *testing.T) {
	m := vec3.ZeroTransform()
	assert.Equal(t, vec3.Transform{}, m)
	assert.Equal(t, vec3.Zero(), m.Apply(vec3.XYZ(3, -4, 5)))
}

func TestApplyUsesRows(t *testing.T) {
	m := vec3.Transform{
		vec3.XYZ(1, 2, 3),
		vec3.XYZ(4, 5, 6),
		vec3.XYZ(7, 8, 9),
	}

	assert.Equal(t, vec3.XYZ(1, 4, 7), m.Apply(vec3.I()))
	assert.Equal(t, vec3.XYZ(3, 6, 9), m.Apply(vec3.K()))
	assert.Equal(t, vec3.XYZ(14, 32, 50), m.Apply(vec3.XYZ(1, 2, 3)))
}

func TestRotationAboutZ(t *testing.T) {
	// 90 degrees counter-clockwise.
	m := vec3.Transform{
		vec3.XYZ(0, -1, 0),
		vec3.XYZ(1, 0, 0),
		vec3.XYZ(0, 0, 1),
	}

	assert.Equal(t, vec3.J(), m.Apply(vec3.I()))
	assert.Equal(t, vec3.I().Scale(-1), m.Apply(vec3.J()))
	assert.Equal(t, vec3.K(), m.Apply(vec3.K()))
}

func TestAtAndTranspose(t *testing.T) {
	m := vec3.Transform{
		vec3.XYZ(1, 2, 3),
		vec3.XYZ(4, 5, 6),
		vec3.XYZ(7, 8, 9),
	}

	assert.Equal(t, float32(2), m.At(0, 1))
	assert.Equal(t, float32(7), m.At(2, 0))

	tr := m.Transpose()
	for r := range 3 {
		for c := range 3 {
			assert.Equal(t, m.At(r, c), tr.At(c, r))
		}
	}
	assert.Equal(t, m, tr.Transpose())
	assert.Panics(t, func() { m.At(0, 3) })
}

func TestTransformNearlyEqual(t *testing.T) {
	a := vec3.Identity()
	b := a
	b[1].Z = 0.0005

	assert.True(t, a.NearlyEqual(b, 0.001))
	assert.False(t, a.NearlyEqual(b, 0.0001))
	assert.True(t, a.IsValid())
}
