package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-motion/vec3"
)

func TestDeterministicCloudReproducible(t *testing.T) {
	a := DeterministicCloud(42, vec3.Zero(), vec3.One(), 64)
	b := DeterministicCloud(42, vec3.Zero(), vec3.One(), 64)
	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

func TestDeterministicCloudStaysInBox(t *testing.T) {
	center := vec3.XYZ(10, -5, 2)
	spread := vec3.XYZ(1, 2, 0.5)
	for i, v := range DeterministicCloud(7, center, spread, 256) {
		d := v.Sub(center)
		require.LessOrEqualf(t, d.X*d.X, spread.X*spread.X, "sample %d", i)
		require.LessOrEqualf(t, d.Y*d.Y, spread.Y*spread.Y, "sample %d", i)
		require.LessOrEqualf(t, d.Z*d.Z, spread.Z*spread.Z, "sample %d", i)
	}
}

func TestDeterministicCloudDifferentSeeds(t *testing.T) {
	a := DeterministicCloud(1, vec3.Zero(), vec3.One(), 16)
	b := DeterministicCloud(2, vec3.Zero(), vec3.One(), 16)
	assert.NotEqual(t, a, b)
}

func TestRing(t *testing.T) {
	center := vec3.XYZ(1, 1, 3)
	ring := Ring(center, 2, 12)
	require.Len(t, ring, 12)
	for i, v := range ring {
		assert.InDeltaf(t, 2, v.Distance(center), 1e-5, "sample %d", i)
		assert.Equalf(t, float32(3), v.Z, "sample %d", i)
	}
}

func TestConstant(t *testing.T) {
	c := Constant(vec3.J(), 3)
	assert.Equal(t, []vec3.Vector3{vec3.J(), vec3.J(), vec3.J()}, c)
}
