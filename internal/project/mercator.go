package project

import "math"

// Mercator is the global conformal cylindrical projection (spec §4.2).
// x is proportional to longitude; y is proportional to
// ln(tan(pi/4 + lat/2)). It maps longitudes [-180,180) degrees and
// latitudes within +-MaxMercatorLatitude radians onto the full signed
// 32-bit range.
type Mercator struct{}

// Project implements Projection.
func (Mercator) Project(p GeoPoint) Point {
	x := (twoPow31 / 180.0) * p.Lon
	y := (twoPow31 / pi) * math.Log(math.Tan(pi*0.25+p.Lat*(0.5*degToRad)))
	return Point{X: int32(x), Y: int32(y)}
}

// Unproject inverts Project; used only by round-trip tests (spec §8).
func (Mercator) Unproject(p Point) GeoPoint {
	lon := float64(p.X) * (180.0 / twoPow31)
	lat := radToDeg * (2.0*math.Atan(math.Exp(float64(p.Y)*(pi/twoPow31))) - pi*0.5)
	return GeoPoint{Lon: lon, Lat: lat}
}

// Kind implements Projection.
func (Mercator) Kind() Kind { return KindMercator }
