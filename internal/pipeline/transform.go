// Package pipeline implements the per-zoom-level object-transform chain
// run after ingest: projection, linear merge, simplification, polygon
// normalization, and phase sort (spec §4.3-§4.7). Every stage builds a
// fresh model.Data rather than mutating its input, matching the teacher's
// pass-by-pass style.
package pipeline

import (
	"github.com/paulmach/orb"

	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
)

// Transform projects geo into Vertex space for one zoom level and removes
// consecutive duplicate vertices produced by quantization, grounded on
// coordinates_transformation_pass.cpp's "Remove equal adjusted vertices"
// blocks. zoomLevelLog2 is this level's position in the per-level stack
// (spec §2 step 7).
func Transform(geo *model.GeoData, proj project.Projection, geoMin, geoMax project.GeoPoint, zoomLevelLog2 uint32) model.Data {
	rebased := project.Rebase(proj, geoMin, geoMax, zoomLevelLog2)

	toVertex := func(p orb.Point) model.Vertex {
		pp := proj.Project(project.GeoPoint{Lon: p[0], Lat: p[1]})
		return model.Vertex{
			X: (pp.X - rebased.MinPoint.X) / rebased.UnitSize,
			Y: (pp.Y - rebased.MinPoint.Y) / rebased.UnitSize,
		}
	}

	out := model.Data{
		MinPoint:      rebased.MinPoint,
		MaxPoint:      rebased.MaxPoint,
		UnitSize:      rebased.UnitSize,
		MetersPerUnit: rebased.MetersPerUnit,
		ZoomLevelLog2: zoomLevelLog2,
	}

	for _, o := range geo.Points {
		out.Points = append(out.Points, model.PointObject{
			Class:       o.Class,
			VertexIndex: len(out.PointVertices),
		})
		out.PointVertices = append(out.PointVertices, toVertex(o.Point))
	}

	for _, o := range geo.Lines {
		first := len(out.LineVertices)
		for i, p := range o.Line {
			v := toVertex(p)
			if i > 0 && v == out.LineVertices[len(out.LineVertices)-1] {
				continue
			}
			out.LineVertices = append(out.LineVertices, v)
		}
		count := len(out.LineVertices) - first
		if count == 0 {
			continue
		}
		out.Lines = append(out.Lines, model.LinearObject{
			Class:  o.Class,
			ZLevel: o.ZLevel,
			Part:   model.Part{FirstVertex: first, VertexCount: count},
		})
	}

	for _, o := range geo.Areals {
		if o.Geometry.IsMulti {
			var multi model.Multipolygon
			for _, poly := range o.Geometry.Multi {
				for ringIdx, ring := range poly {
					part, ok := transformRing(&out, ring, toVertex)
					if !ok {
						continue
					}
					if ringIdx == 0 {
						multi.Outers = append(multi.Outers, part)
					} else {
						multi.Inners = append(multi.Inners, part)
					}
				}
			}
			if len(multi.Outers) == 0 {
				continue
			}
			out.Areals = append(out.Areals, model.ArealObject{
				Class:  o.Class,
				ZLevel: o.ZLevel,
				Multi:  &multi,
			})
			continue
		}

		part, ok := transformRing(&out, o.Geometry.Polygon, toVertex)
		if !ok {
			continue
		}
		out.Areals = append(out.Areals, model.ArealObject{
			Class:  o.Class,
			ZLevel: o.ZLevel,
			Part:   part,
		})
	}

	return out
}

// transformRing projects one ring's vertices, drops consecutive duplicates,
// strips a closing duplicate of the first vertex, and rejects the ring if
// fewer than 3 vertices remain (spec §3 "Areal object", coordinates_transformation_pass.cpp's
// transform_polygon lambda).
func transformRing(out *model.Data, ring orb.Ring, toVertex func(orb.Point) model.Vertex) (model.Part, bool) {
	first := len(out.ArealVertices)
	for i, p := range ring {
		v := toVertex(p)
		if i > 0 && v == out.ArealVertices[len(out.ArealVertices)-1] {
			continue
		}
		out.ArealVertices = append(out.ArealVertices, v)
	}
	count := len(out.ArealVertices) - first

	if count >= 3 && out.ArealVertices[first] == out.ArealVertices[first+count-1] {
		out.ArealVertices = out.ArealVertices[:len(out.ArealVertices)-1]
		count--
	}
	if count < 3 {
		out.ArealVertices = out.ArealVertices[:first]
		return model.Part{}, false
	}
	return model.Part{FirstVertex: first, VertexCount: count}, true
}
