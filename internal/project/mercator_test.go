package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMercatorRoundTrip(t *testing.T) {
	m := Mercator{}
	cases := []GeoPoint{
		{Lon: 0, Lat: 0},
		{Lon: 179.999, Lat: 45},
		{Lon: -179.999, Lat: -45},
		{Lon: 12.345, Lat: 67.89},
	}
	for _, c := range cases {
		p := m.Project(c)
		back := m.Unproject(p)
		assert.InDelta(t, c.Lon, back.Lon, 1e-4)
		assert.InDelta(t, c.Lat, back.Lat, 1e-4)
	}
}

func TestMercatorKind(t *testing.T) {
	require.Equal(t, KindMercator, Mercator{}.Kind())
}

func TestMercatorOriginIsZero(t *testing.T) {
	p := Mercator{}.Project(GeoPoint{Lon: 0, Lat: 0})
	assert.Equal(t, int32(0), p.X)
	assert.Equal(t, int32(0), p.Y)
}
