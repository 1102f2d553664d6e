package model

import (
	"github.com/paulmach/orb"

	"github.com/panzermaps/compiler/internal/classify"
)

// GeoPointObject is a point object still in geodetic (lon/lat) space, as
// produced by ingest (spec §4.1) before projection.
type GeoPointObject struct {
	Class classify.PointClass
	Point orb.Point
}

// GeoLinearObject is a polyline object in geodetic space.
type GeoLinearObject struct {
	Class  classify.LinearClass
	ZLevel int
	Line   orb.LineString
}

// GeoArealGeometry is the tagged-variant polygon representation spec §9
// calls for: either a single ring (Polygon, ring 0 is the outer boundary
// and the only one used) or a full multipolygon with explicit outer/inner
// rings. Exactly one of Polygon/Multi is populated; IsMulti disambiguates
// the zero value (an empty Polygon and a nil Multi both look "empty").
type GeoArealGeometry struct {
	IsMulti bool
	Polygon orb.Ring
	Multi   orb.MultiPolygon
}

// GeoArealObject is an areal (polygon/multipolygon) object in geodetic
// space.
type GeoArealObject struct {
	Class    classify.ArealClass
	ZLevel   int
	Geometry GeoArealGeometry
}

// GeoData is the ingest-stage intermediate representation: one flat bag of
// objects over geodetic coordinates (spec §3 "IR container", pre-projection
// variant). There is a single data bounding box shared by the whole file,
// computed lazily by Bounds.
type GeoData struct {
	Points  []GeoPointObject
	Lines   []GeoLinearObject
	Areals  []GeoArealObject

	// UnknownCount is the number of nodes/ways ingest saw but could not
	// classify into any point/linear/areal class (spec §7 "Ingest soft"):
	// never fatal, just a count the caller may choose to report.
	UnknownCount int
}

// Bounds returns the geodetic bounding box of every vertex in the data set.
// Returns ok=false if GeoData has no geometry at all (nothing to project).
func (d *GeoData) Bounds() (min, max orb.Point, ok bool) {
	first := true
	extend := func(p orb.Point) {
		if first {
			min, max = p, p
			first = false
			return
		}
		if p[0] < min[0] {
			min[0] = p[0]
		}
		if p[1] < min[1] {
			min[1] = p[1]
		}
		if p[0] > max[0] {
			max[0] = p[0]
		}
		if p[1] > max[1] {
			max[1] = p[1]
		}
	}

	for _, o := range d.Points {
		extend(o.Point)
	}
	for _, o := range d.Lines {
		for _, p := range o.Line {
			extend(p)
		}
	}
	for _, o := range d.Areals {
		if o.Geometry.IsMulti {
			for _, poly := range o.Geometry.Multi {
				for _, ring := range poly {
					for _, p := range ring {
						extend(p)
					}
				}
			}
		} else {
			for _, p := range o.Geometry.Polygon {
				extend(p)
			}
		}
	}
	return min, max, !first
}
