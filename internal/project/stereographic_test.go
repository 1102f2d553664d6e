package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStereographicCenterIsOrigin(t *testing.T) {
	min := GeoPoint{Lon: 10, Lat: 40}
	max := GeoPoint{Lon: 20, Lat: 50}
	s := NewStereographic(min, max)

	center := GeoPoint{Lon: 15, Lat: 45}
	p := s.Project(center)
	assert.InDelta(t, 0, p.X, 2)
	assert.InDelta(t, 0, p.Y, 2)
	assert.Equal(t, KindStereographic, s.Kind())
}

func TestAlbersCenterIsOrigin(t *testing.T) {
	min := GeoPoint{Lon: -10, Lat: 30}
	max := GeoPoint{Lon: 10, Lat: 60}
	a := NewAlbers(min, max)

	center := GeoPoint{Lon: 0, Lat: 45}
	p := a.Project(center)
	assert.InDelta(t, 0, p.X, 2)
	assert.Equal(t, KindAlbers, a.Kind())
}
