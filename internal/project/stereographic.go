package project

import "math"

// stereoScale converts meters on the tangent plane into the same signed
// 32-bit coordinate space Mercator uses, so every later pass (re-basing,
// simplification, chunking) can treat Vertex units uniformly regardless of
// which projection produced them (spec §4.2 "projection kind").
const stereoScale = twoPow31 / (pi * earthRadius)

// Stereographic is an azimuthal projection centered on a data set's bounding
// box, used for polar or regional extracts where Mercator's distortion
// near the poles is unacceptable (spec §4.2).
type Stereographic struct {
	centerLon, centerLat float64
	sinLat0, cosLat0     float64
}

// NewStereographic centers the projection on the midpoint of bboxMin/bboxMax.
func NewStereographic(bboxMin, bboxMax GeoPoint) Stereographic {
	lon0 := (bboxMin.Lon + bboxMax.Lon) * 0.5
	lat0 := (bboxMin.Lat + bboxMax.Lat) * 0.5
	lat0Rad := lat0 * degToRad
	return Stereographic{
		centerLon: lon0,
		centerLat: lat0,
		sinLat0:   math.Sin(lat0Rad),
		cosLat0:   math.Cos(lat0Rad),
	}
}

// Project implements Projection.
func (s Stereographic) Project(p GeoPoint) Point {
	lat := p.Lat * degToRad
	lon := (p.Lon - s.centerLon) * degToRad
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	cosLon := math.Cos(lon)

	k := 2.0 * earthRadius / (1.0 + s.sinLat0*sinLat + s.cosLat0*cosLat*cosLon)
	x := k * cosLat * math.Sin(lon)
	y := k * (s.cosLat0*sinLat - s.sinLat0*cosLat*cosLon)

	return Point{
		X: int32(x * stereoScale),
		Y: int32(y * stereoScale),
	}
}

// Kind implements Projection.
func (Stereographic) Kind() Kind { return KindStereographic }
