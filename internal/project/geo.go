package project

// GeoPoint is a geodetic coordinate: longitude in [-180, 180), latitude in
// (-90, 90) (spec §3 "Geodetic point"). Kept distinct from orb.Point (used
// one layer up, in the ingest IR) so this package has no dependency on the
// ingest geometry library — projections are pure math over two floats.
type GeoPoint struct {
	Lon, Lat float64
}
