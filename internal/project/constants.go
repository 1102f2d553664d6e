// Package project implements cartographic projection and the linear
// re-basing/unit-size selection that turns a projection's raw output into
// a zoom level's working coordinate space (spec §4.2).
//
// Grounded on original_source/source/common/coordinates_conversion.{hpp,cpp}
// for Mercator's exact arithmetic; Stereographic and Albers follow spec.md
// §4.2's prose description, since the original's method bodies for those
// two were not part of the retrieved source set.
package project

import "math"

const (
	pi          = 3.1415926535
	earthRadius = 6371000.0 // meters

	degToRad = pi / 180.0
	radToDeg = 180.0 / pi

	twoPow31 = 2147483648.0
)

// MaxMercatorLatitude is the absolute latitude, in radians (about 85.05
// degrees), at which the Mercator
// projection's y coordinate reaches the edge of the signed 32-bit range
// (spec §4.2 "Maps ... onto full signed 32-bit range").
var MaxMercatorLatitude = 2.0*math.Atan(math.Exp(pi)) - pi*0.5

// Point is a raw projection output: signed 32-bit coordinates (spec §3
// "Projected point"), before linear re-basing divides by unit size.
type Point struct {
	X, Y int32
}
