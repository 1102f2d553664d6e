package pipeline

import "github.com/panzermaps/compiler/internal/model"

// maxEdgeSquareLength bounds the squared length of an edge simplify.go will
// try to collapse a whole span onto; anything longer is split regardless of
// how straight the span is, as a guard against int64 overflow in the dot
// product arithmetic below (spec §4.5 "Max-span overflow guard").
const maxEdgeSquareLength = int64(1) << 40

// adjustedVertexKey identifies one (class, z-level, vertex) triple so the
// shared-vertex guard can count how many polygon rings touch it.
type adjustedVertexKey struct {
	class  int
	zLevel int
	vertex model.Vertex
}

// Simplify runs Douglas-Peucker-style line and polygon simplification with
// the three original-specific guards (spec §4.5): a max-span overflow
// guard, a sharp-corner guard, and (polygons only) a shared-vertex guard
// that refuses to drop a vertex shared by more than one ring of the same
// class and z-level. Grounded on simplification_pass.cpp.
func Simplify(in *model.Data, distanceUnits int32) model.Data {
	if distanceUnits < 1 {
		distanceUnits = 1
	}
	squareDistance := int64(distanceUnits) * int64(distanceUnits)

	out := model.NewData(in)

	for _, lo := range in.Lines {
		verts := in.LineVertices[lo.FirstVertex : lo.FirstVertex+lo.VertexCount]
		first := len(out.LineVertices)
		out.LineVertices = simplifyLine(verts, squareDistance, out.LineVertices)
		out.Lines = append(out.Lines, model.LinearObject{
			Class:  lo.Class,
			ZLevel: lo.ZLevel,
			Part:   model.Part{FirstVertex: first, VertexCount: len(out.LineVertices) - first},
		})
	}

	adjusted := countAdjustedVertices(in)

	for _, ao := range in.Areals {
		if ao.IsMultipolygon() {
			var multi model.Multipolygon
			for _, ring := range ao.Multi.Inners {
				if part, ok := simplifyRingAppend(&out, in.ArealVertices, ring, squareDistance, distanceUnits, adjusted, int(ao.Class), ao.ZLevel); ok {
					multi.Inners = append(multi.Inners, part)
				}
			}
			for _, ring := range ao.Multi.Outers {
				if part, ok := simplifyRingAppend(&out, in.ArealVertices, ring, squareDistance, distanceUnits, adjusted, int(ao.Class), ao.ZLevel); ok {
					multi.Outers = append(multi.Outers, part)
				}
			}
			if len(multi.Outers) > 0 {
				out.Areals = append(out.Areals, model.ArealObject{Class: ao.Class, ZLevel: ao.ZLevel, Multi: &multi})
			}
			continue
		}

		if part, ok := simplifyRingAppend(&out, in.ArealVertices, ao.Part, squareDistance, distanceUnits, adjusted, int(ao.Class), ao.ZLevel); ok {
			out.Areals = append(out.Areals, model.ArealObject{Class: ao.Class, ZLevel: ao.ZLevel, Part: part})
		}
	}

	return out
}

// simplifyLine runs the line variant (no shared-vertex guard) and appends
// its output to dst, returning the extended slice.
func simplifyLine(verts []model.Vertex, squareDistance int64, dst []model.Vertex) []model.Vertex {
	if len(verts) == 1 {
		return append(dst, verts[0])
	}
	dst = simplifyLineRange(verts, 0, len(verts)-1, squareDistance, dst)
	return append(dst, verts[len(verts)-1])
}

func simplifyLineRange(v []model.Vertex, start, end int, squareDistance int64, dst []model.Vertex) []model.Vertex {
	if end-start == 1 {
		return append(dst, v[start])
	}

	if canCollapse(v, start, end, squareDistance, nil, 0, 0) {
		return append(dst, v[start])
	}

	mid := start + (end-start)/2
	dst = simplifyLineRange(v, start, mid, squareDistance, dst)
	return simplifyLineRange(v, mid, end, squareDistance, dst)
}

// canCollapse reports whether the span [start, end] of v can be replaced by
// its two endpoints: every intermediate vertex must lie within
// squareDistance of the chord, and no intermediate vertex may form a sharp
// corner (dot product of its in/out edges <= 0). When adjusted is non-nil,
// an intermediate vertex that is shared by more than one ring of the given
// (class, zLevel) also blocks collapsing (spec §4.5 guard 3).
func canCollapse(v []model.Vertex, start, end int, squareDistance int64, adjusted map[adjustedVertexKey]int, class, zLevel int) bool {
	edgeDx := int64(v[end].X) - int64(v[start].X)
	edgeDy := int64(v[end].Y) - int64(v[start].Y)
	edgeSquareLength := edgeDx*edgeDx + edgeDy*edgeDy
	if edgeSquareLength == 0 || edgeSquareLength >= maxEdgeSquareLength {
		return false
	}

	for i := start + 1; i < end; i++ {
		vDx := int64(v[i].X) - int64(v[start].X)
		vDy := int64(v[i].Y) - int64(v[start].Y)
		dot := edgeDx*vDx + edgeDy*vDy

		distVecDx := vDx - edgeDx*dot/edgeSquareLength
		distVecDy := vDy - edgeDy*dot/edgeSquareLength
		distSquare := distVecDx*distVecDx + distVecDy*distVecDy
		if distSquare > squareDistance {
			return false
		}

		angleDot := (int64(v[i].X)-int64(v[i-1].X))*(int64(v[i+1].X)-int64(v[i].X)) +
			(int64(v[i].Y)-int64(v[i-1].Y))*(int64(v[i+1].Y)-int64(v[i].Y))
		if angleDot <= 0 {
			return false
		}

		if adjusted != nil {
			if n := adjusted[adjustedVertexKey{class, zLevel, v[i]}]; n > 1 {
				return false
			}
		}
	}
	return true
}

func countAdjustedVertices(in *model.Data) map[adjustedVertexKey]int {
	counts := make(map[adjustedVertexKey]int)
	count := func(class, zLevel int, verts []model.Vertex) {
		for _, v := range verts {
			counts[adjustedVertexKey{class, zLevel, v}]++
		}
	}
	for _, ao := range in.Areals {
		if ao.IsMultipolygon() {
			for _, p := range ao.Multi.Inners {
				count(int(ao.Class), ao.ZLevel, in.ArealVertices[p.FirstVertex:p.FirstVertex+p.VertexCount])
			}
			for _, p := range ao.Multi.Outers {
				count(int(ao.Class), ao.ZLevel, in.ArealVertices[p.FirstVertex:p.FirstVertex+p.VertexCount])
			}
			continue
		}
		count(int(ao.Class), ao.ZLevel, in.ArealVertices[ao.FirstVertex:ao.FirstVertex+ao.VertexCount])
	}
	return counts
}

// simplifyRingAppend runs the polygon variant of simplification on one
// ring, appends survivors to out.ArealVertices, and applies the
// back-vertex-near-front collapse and minimum-bbox discard (spec §4.5).
func simplifyRingAppend(out *model.Data, src []model.Vertex, part model.Part, squareDistance int64, distanceUnits int32, adjusted map[adjustedVertexKey]int, class, zLevel int) (model.Part, bool) {
	verts := src[part.FirstVertex : part.FirstVertex+part.VertexCount]
	first := len(out.ArealVertices)

	out.ArealVertices = simplifyPolygonRange(verts, squareDistance, adjusted, class, zLevel, out.ArealVertices)
	out.ArealVertices = append(out.ArealVertices, verts[len(verts)-1])

	if len(out.ArealVertices)-first <= 2 {
		out.ArealVertices = out.ArealVertices[:first]
		return model.Part{}, false
	}

	last := out.ArealVertices[len(out.ArealVertices)-1]
	if adjusted[adjustedVertexKey{class, zLevel, last}] <= 1 {
		dx := int64(last.X) - int64(out.ArealVertices[first].X)
		dy := int64(last.Y) - int64(out.ArealVertices[first].Y)
		if dx*dx+dy*dy <= squareDistance {
			out.ArealVertices = out.ArealVertices[:len(out.ArealVertices)-1]
			if len(out.ArealVertices)-first <= 2 {
				out.ArealVertices = out.ArealVertices[:first]
				return model.Part{}, false
			}
		}
	}

	minP, maxP := out.ArealVertices[first], out.ArealVertices[first]
	for _, v := range out.ArealVertices[first:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	if maxP.X-minP.X <= distanceUnits || maxP.Y-minP.Y <= distanceUnits {
		out.ArealVertices = out.ArealVertices[:first]
		return model.Part{}, false
	}

	return model.Part{FirstVertex: first, VertexCount: len(out.ArealVertices) - first}, true
}

func simplifyPolygonRange(v []model.Vertex, squareDistance int64, adjusted map[adjustedVertexKey]int, class, zLevel int, dst []model.Vertex) []model.Vertex {
	return simplifyPolygonSpan(v, 0, len(v)-1, squareDistance, adjusted, class, zLevel, dst)
}

func simplifyPolygonSpan(v []model.Vertex, start, end int, squareDistance int64, adjusted map[adjustedVertexKey]int, class, zLevel int, dst []model.Vertex) []model.Vertex {
	if end-start == 1 {
		return append(dst, v[start])
	}
	if canCollapse(v, start, end, squareDistance, adjusted, class, zLevel) {
		return append(dst, v[start])
	}
	mid := start + (end-start)/2
	dst = simplifyPolygonSpan(v, start, mid, squareDistance, adjusted, class, zLevel, dst)
	return simplifyPolygonSpan(v, mid, end, squareDistance, adjusted, class, zLevel, dst)
}
