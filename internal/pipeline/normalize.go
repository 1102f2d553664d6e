package pipeline

import "github.com/panzermaps/compiler/internal/model"

// Normalize splits every simple (non-multipolygon) areal object's ring into
// a set of convex pieces (spec §4.6). Grounded on
// polygons_normalization_pass.cpp: orient the ring clockwise by signed
// double area, ear-clip it into triangles with an O(n^2) scan (skip
// "split" vertices whose interior angle is reflex, and vertices whose
// candidate ear contains another ring vertex), then greedily re-merge adjacent pieces
// that share a contiguous vertex run when the merged piece stays convex
// (O(m^3), same complexity class as the original — see its own TODO).
//
// Multipolygon objects pass through unchanged: the original pass never
// triangulates holes either, and chunking's Sutherland-Hodgman clipper
// handles inner rings directly (spec §4.8), so there is nothing here for
// it to normalize.
func Normalize(in *model.Data) model.Data {
	out := model.NewData(in)
	out.Points = in.Points
	out.PointVertices = in.PointVertices
	out.Lines = in.Lines
	out.LineVertices = in.LineVertices

	copyPart := func(p model.Part) model.Part {
		first := len(out.ArealVertices)
		out.ArealVertices = append(out.ArealVertices, in.ArealVertices[p.FirstVertex:p.FirstVertex+p.VertexCount]...)
		return model.Part{FirstVertex: first, VertexCount: p.VertexCount}
	}

	for _, ao := range in.Areals {
		if ao.IsMultipolygon() {
			multi := model.Multipolygon{}
			for _, p := range ao.Multi.Outers {
				multi.Outers = append(multi.Outers, copyPart(p))
			}
			for _, p := range ao.Multi.Inners {
				multi.Inners = append(multi.Inners, copyPart(p))
			}
			out.Areals = append(out.Areals, model.ArealObject{Class: ao.Class, ZLevel: ao.ZLevel, Multi: &multi})
			continue
		}

		ring := append([]model.Vertex{}, in.ArealVertices[ao.FirstVertex:ao.FirstVertex+ao.VertexCount]...)
		for _, part := range splitIntoConvexParts(ring) {
			first := len(out.ArealVertices)
			out.ArealVertices = append(out.ArealVertices, part...)
			out.Areals = append(out.Areals, model.ArealObject{
				Class:  ao.Class,
				ZLevel: ao.ZLevel,
				Part:   model.Part{FirstVertex: first, VertexCount: len(part)},
			})
		}
	}

	return out
}

// signedDoubleArea returns a positive value for a clockwise ring (in this
// package's Y-up Vertex space, where Y grows northward) and negative for
// counterclockwise.
func signedDoubleArea(v []model.Vertex) int64 {
	n := len(v)
	result := int64(v[0].X)*int64(v[n-1].Y) - int64(v[n-1].X)*int64(v[0].Y)
	for i := 1; i < n; i++ {
		result += int64(v[i].X)*int64(v[i-1].Y) - int64(v[i-1].X)*int64(v[i].Y)
	}
	return result
}

// vertexCross is non-negative at a convex vertex of a clockwise polygon.
func vertexCross(p0, p1, p2 model.Vertex) int64 {
	dx0 := int64(p1.X) - int64(p0.X)
	dy0 := int64(p1.Y) - int64(p0.Y)
	dx1 := int64(p2.X) - int64(p1.X)
	dy1 := int64(p2.Y) - int64(p1.Y)
	return dx1*dy0 - dx0*dy1
}

// insideClockwiseConvexPolygon reports whether test lies inside (or on the
// boundary of) the clockwise convex polygon named by vertices.
func insideClockwiseConvexPolygon(vertices []model.Vertex, test model.Vertex) bool {
	n := len(vertices)
	for i := 0; i < n; i++ {
		if vertexCross(vertices[i], vertices[(i+1)%n], test) < 0 {
			return false
		}
	}
	return true
}

// splitIntoConvexParts implements the ear-clip-then-remerge algorithm. The
// returned parts are each clockwise and individually convex.
func splitIntoConvexParts(vertices []model.Vertex) [][]model.Vertex {
	area := signedDoubleArea(vertices)
	if area == 0 {
		return nil
	}
	if area < 0 {
		vertices = reverseVertices(vertices)
	}

	isSplitVertex := func(v []model.Vertex, i int) bool {
		n := len(v)
		cross := vertexCross(v[(i+n-1)%n], v[i%n], v[(i+1)%n])
		return cross < 0
	}

	var result [][]model.Vertex
	for len(vertices) > 3 {
		haveSplit := false
		for i := range vertices {
			if isSplitVertex(vertices, i) {
				haveSplit = true
				break
			}
		}
		if !haveSplit {
			break
		}

		clippedAny := false
		for i := range vertices {
			if isSplitVertex(vertices, i) {
				continue
			}
			n := len(vertices)
			triangle := []model.Vertex{
				vertices[(i+n-1)%n],
				vertices[i%n],
				vertices[(i+1)%n],
			}

			containsOther := false
			for j := 2; j < n-1; j++ {
				if insideClockwiseConvexPolygon(triangle, vertices[(i+j)%n]) {
					containsOther = true
					break
				}
			}
			if containsOther {
				continue
			}

			result = append(result, triangle)
			vertices = removeAt(vertices, i)
			clippedAny = true
			break
		}
		if !clippedAny {
			break
		}
	}
	result = append(result, vertices)

	return mergeConvexParts(result)
}

func removeAt(v []model.Vertex, i int) []model.Vertex {
	out := make([]model.Vertex, 0, len(v)-1)
	out = append(out, v[:i]...)
	out = append(out, v[i+1:]...)
	return out
}

// mergeConvexParts repeatedly looks for a pair of pieces sharing a
// contiguous run of vertices (a shared edge, or chain of edges) whose
// union is still convex, and merges them, until no such pair remains.
func mergeConvexParts(parts [][]model.Vertex) [][]model.Vertex {
	for {
		merged := false
		for p0 := 0; p0 < len(parts) && !merged; p0++ {
			for p1 := 0; p1 < len(parts) && !merged; p1++ {
				if p0 == p1 {
					continue
				}
				if combined, ok := tryMergePair(parts[p0], parts[p1]); ok {
					parts[p0] = combined
					parts[p1] = parts[len(parts)-1]
					parts = parts[:len(parts)-1]
					merged = true
				}
			}
		}
		if !merged {
			return parts
		}
	}
}

// tryMergePair finds a shared vertex between poly0 and poly1, extends the
// shared run in both directions, and merges the two rings into one if the
// two new seam vertices keep the result convex.
func tryMergePair(poly0, poly1 []model.Vertex) ([]model.Vertex, bool) {
	n0, n1 := len(poly0), len(poly1)

	v0, v1, found := -1, -1, false
	for i := 0; i < n0 && !found; i++ {
		for j := 0; j < n1; j++ {
			if poly0[i] == poly1[j] {
				v0, v1, found = i, j, true
				break
			}
		}
	}
	if !found {
		return nil, false
	}

	start0, end0 := v0, v0
	start1, end1 := v1, v1

	for poly0[mod(start0-1, n0)] == poly1[mod(end1+1, n1)] {
		start0 = mod(start0-1, n0)
		end1 = mod(end1+1, n1)
	}
	for poly0[mod(end0+1, n0)] == poly1[mod(start1-1, n1)] {
		end0 = mod(end0+1, n0)
		start1 = mod(start1-1, n1)
	}

	if start0 == end0 {
		return nil, false // only one shared vertex
	}

	cross0 := vertexCross(poly0[mod(start0-1, n0)], poly0[start0], poly1[mod(end1+1, n1)])
	cross1 := vertexCross(poly1[mod(start1-1, n1)], poly1[start1], poly0[mod(end0+1, n0)])
	if cross0 < 0 || cross1 < 0 {
		return nil, false
	}

	poly0Count := n0 - mod(end0-start0, n0)
	poly1Count := n1 - mod(end1-start1, n1)

	combined := make([]model.Vertex, 0, poly0Count+poly1Count)
	for i := 0; i < poly0Count; i++ {
		combined = append(combined, poly0[mod(end0+i, n0)])
	}
	for i := 0; i < poly1Count; i++ {
		combined = append(combined, poly1[mod(end1+i, n1)])
	}
	return combined, true
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
