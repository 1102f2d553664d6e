// Package chunk tiles one zoom level's sorted IR into axis-aligned square
// chunks, clipping every line and polygon to each chunk's bounding box and
// packing the result into 16-bit chunk-local vertices (spec §4.8). Grounded
// on final_export.cpp's SplitPolyline/SplitConvexPolygon/DumpDataChunk.
package chunk

import "github.com/panzermaps/compiler/internal/model"

// plane is one of the four axis-aligned half-planes a chunk bbox is built
// from: points v with v.X*nx + v.Y*ny - distance >= 0 are kept.
type plane struct {
	nx, ny   int32
	distance int32
}

func bboxPlanes(minX, minY, maxX, maxY int32) [4]plane {
	return [4]plane{
		{nx: 1, ny: 0, distance: minX},
		{nx: -1, ny: 0, distance: -maxX},
		{nx: 0, ny: 1, distance: minY},
		{nx: 0, ny: -1, distance: -maxY},
	}
}

func (p plane) signedDistance(v model.Vertex) int64 {
	return int64(v.X)*int64(p.nx) + int64(v.Y)*int64(p.ny) - int64(p.distance)
}

// splitSegment finds the point on the segment v0-v1 where it crosses p's
// line, via a weighted mean of the endpoints by their absolute plane
// distance — grounded on final_export.cpp's split_segment lambda, which
// is an exact-integer substitute for a float line/plane intersection.
func splitSegment(p plane, v0, v1 model.Vertex) model.Vertex {
	dist0 := p.signedDistance(v0)
	if dist0 < 0 {
		dist0 = -dist0
	}
	dist1 := p.signedDistance(v1)
	if dist1 < 0 {
		dist1 = -dist1
	}
	sum := dist0 + dist1
	if sum == 0 {
		return v0
	}
	return model.Vertex{
		X: int32((int64(v0.X)*dist1 + int64(v1.X)*dist0) / sum),
		Y: int32((int64(v0.Y)*dist1 + int64(v1.Y)*dist0) / sum),
	}
}

// clipOpenPolylineToPlane splits polyline against one half-plane, emitting
// one output polyline per maximal inside run (spec §4.8 "clip against the
// chunk bbox using 4-plane Sutherland-Hodgman").
func clipOpenPolylineToPlane(polyline []model.Vertex, p plane) [][]model.Vertex {
	var result [][]model.Vertex
	var current []model.Vertex

	prevPos := p.signedDistance(polyline[0])
	if prevPos >= 0 {
		current = append(current, polyline[0])
	}

	for i := 1; i < len(polyline); i++ {
		curPos := p.signedDistance(polyline[i])
		switch {
		case prevPos >= 0 && curPos >= 0:
			current = append(current, polyline[i])
		case prevPos >= 0 && curPos < 0:
			current = append(current, splitSegment(p, polyline[i-1], polyline[i]))
			result = append(result, current)
			current = nil
		case prevPos < 0 && curPos >= 0:
			current = append(current, splitSegment(p, polyline[i-1], polyline[i]), polyline[i])
		}
		prevPos = curPos
	}

	if len(current) >= 1 {
		result = append(result, current)
	}
	return result
}

// ClipPolylineToBBox clips an open polyline against the chunk's bounding
// box, returning zero or more surviving segments (spec §4.8 "Lines").
func ClipPolylineToBBox(polyline []model.Vertex, minX, minY, maxX, maxY int32) [][]model.Vertex {
	polylines := [][]model.Vertex{polyline}
	for _, p := range bboxPlanes(minX, minY, maxX, maxY) {
		var next [][]model.Vertex
		for _, line := range polylines {
			next = append(next, clipOpenPolylineToPlane(line, p)...)
		}
		polylines = next
	}
	return polylines
}

// clipConvexPolygonToPlane clips a single convex ring against one
// half-plane. The ring may degenerate to nothing if it lies entirely
// outside.
func clipConvexPolygonToPlane(polygon []model.Vertex, p plane) []model.Vertex {
	n := len(polygon)
	firstPos := p.signedDistance(polygon[0])
	prevPos := firstPos
	var result []model.Vertex
	if prevPos >= 0 {
		result = append(result, polygon[0])
	}

	for i := 1; i < n; i++ {
		curPos := p.signedDistance(polygon[i])
		switch {
		case prevPos >= 0 && curPos >= 0:
			result = append(result, polygon[i])
		case prevPos >= 0 && curPos < 0:
			result = append(result, splitSegment(p, polygon[i-1], polygon[i]))
		case prevPos < 0 && curPos >= 0:
			result = append(result, splitSegment(p, polygon[i-1], polygon[i]), polygon[i])
		}
		prevPos = curPos
	}

	if (firstPos >= 0) != (prevPos >= 0) {
		result = append(result, splitSegment(p, polygon[n-1], polygon[0]))
	}

	if len(result) > 0 && len(result) < 3 {
		return nil
	}
	return result
}

// ClipConvexPolygonToBBox clips a convex ring against the chunk's bounding
// box, returning a single surviving ring (possibly empty) (spec §4.8
// "Areals"). The input must already be convex: Normalize guarantees this
// for every non-multipolygon ring it produces.
func ClipConvexPolygonToBBox(polygon []model.Vertex, minX, minY, maxX, maxY int32) []model.Vertex {
	for _, p := range bboxPlanes(minX, minY, maxX, maxY) {
		polygon = clipConvexPolygonToPlane(polygon, p)
		if len(polygon) == 0 {
			return nil
		}
	}
	return polygon
}
