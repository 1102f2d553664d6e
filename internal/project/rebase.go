package project

const (
	tryMeters           = 1000.0
	requiredAccuracyM   = 0.2 // 20cm (spec §4.2)
	earthEquatorLengthM = earthRadius * 2.0 * pi
)

// Rebased carries the linear re-basing outputs a zoom level needs to turn
// a Projection's raw Point output into Vertex-space integers (spec §4.2
// "Linear re-basing" / "Unit size").
type Rebased struct {
	MinPoint, MaxPoint Point
	// UnitSize is the divisor applied to a raw Point's X/Y to land in this
	// zoom level's Vertex space.
	UnitSize int32
	// MetersPerUnit is the real-world size of one coordinate unit at this
	// zoom level, measured at the data set's central meridian (spec §4.2).
	MetersPerUnit float32
}

// specialPoints returns the eight bbox-derived points (four corners, four
// edge midpoints) whose projected extent fixes the re-basing window,
// grounded on coordinates_transformation_pass.cpp's LinearProjectionTransformation
// constructor.
func specialPoints(min, max GeoPoint) [8]GeoPoint {
	midLon := (min.Lon + max.Lon) * 0.5
	midLat := (min.Lat + max.Lat) * 0.5
	return [8]GeoPoint{
		{Lon: min.Lon, Lat: min.Lat},
		{Lon: max.Lon, Lat: min.Lat},
		{Lon: min.Lon, Lat: max.Lat},
		{Lon: max.Lon, Lat: max.Lat},
		{Lon: midLon, Lat: max.Lat},
		{Lon: min.Lon, Lat: midLat},
		{Lon: max.Lon, Lat: midLat},
		{Lon: midLon, Lat: min.Lat},
	}
}

// unitSize derives the zoom-0 coordinate divisor and its real-world meaning,
// grounded on coordinates_transformation_pass.cpp's "Calculate unit size"
// block: project two points 1000m apart (north-south, at the bbox center)
// and scale so the divisor represents requiredAccuracyM of real distance.
func unitSize(proj Projection, min, max GeoPoint, additionalScaleLog2 uint32) (scale int32, metersPerUnit float32) {
	midLon := (min.Lon + max.Lon) * 0.5
	midLat := (min.Lat + max.Lat) * 0.5
	halfOffsetDeg := 0.5 * tryMeters * (360.0 / earthEquatorLengthM)

	y0 := proj.Project(GeoPoint{Lon: midLon, Lat: midLat - halfOffsetDeg}).Y
	y1 := proj.Project(GeoPoint{Lon: midLon, Lat: midLat + halfOffsetDeg}).Y

	diff := int64(y1) - int64(y0)
	if diff == 0 {
		diff = 1
	}
	metersPerUnitInitial := tryMeters / float64(diff)

	s := int64(requiredAccuracyM / metersPerUnitInitial)
	if s < 1 {
		s = 1
	}
	s <<= additionalScaleLog2

	return int32(s), float32(metersPerUnitInitial * float64(s))
}

// Rebase computes the re-basing window and this zoom level's unit size for
// a data set bounded by [min, max] (spec §4.2, §2 step 7). zoomLevelLog2 is
// this zoom level's position in the stack; it coarsens the unit size the
// same way additional_scale_log2 does in the original pass.
func Rebase(proj Projection, min, max GeoPoint, zoomLevelLog2 uint32) Rebased {
	pts := specialPoints(min, max)

	minPt := proj.Project(pts[0])
	maxPt := minPt
	for _, p := range pts[1:] {
		pp := proj.Project(p)
		if pp.X < minPt.X {
			minPt.X = pp.X
		}
		if pp.Y < minPt.Y {
			minPt.Y = pp.Y
		}
		if pp.X > maxPt.X {
			maxPt.X = pp.X
		}
		if pp.Y > maxPt.Y {
			maxPt.Y = pp.Y
		}
	}

	scale, metersPerUnit := unitSize(proj, min, max, zoomLevelLog2)

	return Rebased{
		MinPoint:      minPt,
		MaxPoint:      maxPt,
		UnitSize:      scale,
		MetersPerUnit: metersPerUnit,
	}
}
