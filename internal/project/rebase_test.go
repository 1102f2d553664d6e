package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebaseBoundsContainProjectedBBox(t *testing.T) {
	min := GeoPoint{Lon: 10, Lat: 40}
	max := GeoPoint{Lon: 12, Lat: 42}
	m := Mercator{}

	r := Rebase(m, min, max, 0)
	corner := m.Project(min)
	opposite := m.Project(max)

	assert.LessOrEqual(t, r.MinPoint.X, corner.X)
	assert.LessOrEqual(t, r.MinPoint.Y, corner.Y)
	assert.GreaterOrEqual(t, r.MaxPoint.X, opposite.X)
	assert.GreaterOrEqual(t, r.MaxPoint.Y, opposite.Y)
	require.Greater(t, r.UnitSize, int32(0))
	require.Greater(t, r.MetersPerUnit, float32(0))
}

func TestRebaseUnitSizeDoublesPerZoomLevel(t *testing.T) {
	min := GeoPoint{Lon: 10, Lat: 40}
	max := GeoPoint{Lon: 12, Lat: 42}
	m := Mercator{}

	z0 := Rebase(m, min, max, 0)
	z1 := Rebase(m, min, max, 1)

	assert.Equal(t, z0.UnitSize*2, z1.UnitSize)
}
