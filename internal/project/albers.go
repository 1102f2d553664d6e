package project

import "math"

// Albers is an equal-area conic projection with two standard parallels,
// used for regional extracts spanning a wide longitude range at mid
// latitudes where Stereographic's area distortion grows too fast (spec
// §4.2). Standard parallels are placed at 1/6 and 5/6 of the data set's
// latitude span, and the central meridian at the bounding box's center,
// following spec.md §4.2's parameterization note.
//
// Grounded on original_source/source/exporter/coordinates_transformation_pass.cpp's
// AlbersProjection: project ten probe points spanning the full lon/lat
// domain and pick a scale factor so the largest of them lands near the
// edge of the signed 32-bit range, rather than picking an arbitrary
// constant (as a first draft of this projection did).
type Albers struct {
	lon0       float64
	latAvgSin  float64
	c          float64
	rho0       float64
	scale      float64
}

// NewAlbers derives standard parallels and origin from bboxMin/bboxMax.
func NewAlbers(bboxMin, bboxMax GeoPoint) Albers {
	latDiffDiv6 := (bboxMax.Lat - bboxMin.Lat) / 6.0
	lon0 := (bboxMin.Lon + bboxMax.Lon) * 0.5
	lat0Rad := (bboxMin.Lat + bboxMax.Lat) * 0.5 * degToRad
	lat1 := bboxMin.Lat + latDiffDiv6
	lat2 := bboxMax.Lat - latDiffDiv6

	sinLat1 := math.Sin(lat1 * degToRad)
	cosLat1 := math.Cos(lat1 * degToRad)
	sinLat2 := math.Sin(lat2 * degToRad)

	a := Albers{
		lon0:      lon0 * degToRad,
		latAvgSin: (sinLat1 + sinLat2) * 0.5,
	}
	a.c = cosLat1*cosLat1 + 2.0*a.latAvgSin*sinLat1
	a.rho0 = math.Sqrt(a.c-2.0*a.latAvgSin*math.Sin(lat0Rad)) / a.latAvgSin
	a.scale = albersScaleFactor(a)
	return a
}

// project applies the raw (unscaled) conic formula.
func (a Albers) project(p GeoPoint) (x, y float64) {
	lonRad := p.Lon * degToRad
	latRad := p.Lat * degToRad

	theta := a.latAvgSin * (lonRad - a.lon0)
	rho := math.Sqrt(a.c-2.0*a.latAvgSin*math.Sin(latRad)) / a.latAvgSin

	return rho * math.Sin(theta), a.rho0 - rho*math.Cos(theta)
}

// albersScaleFactor probes the projection's extremes (the full longitude
// and latitude domain, plus the longitudes +-90/latAvgSin degrees, where
// theta reaches +-90 degrees for a central meridian of 0) and derives a scale factor that brings the largest probe near the edge
// of the signed 32-bit range.
func albersScaleFactor(a Albers) float64 {
	probeLons := [...]float64{-90, 90, 0}
	var maxAbs float64
	for _, lon := range probeLons {
		for _, lat := range [...]float64{-90, 90} {
			x, y := a.project(GeoPoint{Lon: lon, Lat: lat})
			maxAbs = math.Max(maxAbs, math.Max(math.Abs(x), math.Abs(y)))
		}
	}
	if a.latAvgSin != 0 {
		for _, sign := range [...]float64{-1, 1} {
			lon := sign * 90.0 / a.latAvgSin
			for _, lat := range [...]float64{-90, 90} {
				x, y := a.project(GeoPoint{Lon: lon, Lat: lat})
				maxAbs = math.Max(maxAbs, math.Max(math.Abs(x), math.Abs(y)))
			}
		}
	}
	if maxAbs < 1e-9 {
		maxAbs = 1
	}
	return twoPow31 / maxAbs
}

// Project implements Projection.
func (a Albers) Project(p GeoPoint) Point {
	x, y := a.project(p)
	return Point{
		X: int32(x * a.scale),
		Y: int32(y * a.scale),
	}
}

// Kind implements Projection.
func (Albers) Kind() Kind { return KindAlbers }
