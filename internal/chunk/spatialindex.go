package chunk

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

// lineEntry is one LinearObject's vertex run, indexed by its bounding box
// so a chunk only has to ask the R-tree which lines might intersect it
// instead of testing every line in the zoom level (spec §4.8, grounded on
// pkg/s57/index.go's ChartIndex: "O(log N) with the R-tree, compared to
// O(N) with linear scan").
type lineEntry struct {
	order                  int // position in the phase-sorted Lines slice
	class                  classify.LinearClass
	zLevel                 int
	verts                  []model.Vertex
	minX, minY, maxX, maxY int32
}

func (e *lineEntry) Bounds() rtreego.Rect {
	return mustRect(e.minX, e.minY, e.maxX, e.maxY)
}

// arealEntry is one flattened polygon ring: a simple areal object
// contributes exactly one, a multipolygon contributes one per outer and
// inner ring (see DESIGN.md — the original exporter's chunk writer never
// branches on multipolygon at all, so this flattening is this port's
// resolution of that gap).
type arealEntry struct {
	order                  int
	class                  classify.ArealClass
	zLevel                 int
	verts                  []model.Vertex
	minX, minY, maxX, maxY int32
}

func (e *arealEntry) Bounds() rtreego.Rect {
	return mustRect(e.minX, e.minY, e.maxX, e.maxY)
}

func mustRect(minX, minY, maxX, maxY int32) rtreego.Rect {
	lengths := []float64{float64(maxX-minX) + 1, float64(maxY-minY) + 1}
	rect, err := rtreego.NewRect(rtreego.Point{float64(minX), float64(minY)}, lengths)
	if err != nil {
		// A degenerate (zero-size) bbox; widen by one unit so rtreego accepts it.
		rect, _ = rtreego.NewRect(rtreego.Point{float64(minX), float64(minY)}, []float64{1, 1})
	}
	return rect
}

// spatialIndex is the per-zoom-level spatial index over line and areal
// object bounding boxes, queried once per chunk during BuildChunks.
type spatialIndex struct {
	lineTree   *rtreego.Rtree
	arealTree  *rtreego.Rtree
	lineCount  int
	arealCount int
}

func boundsOf(verts []model.Vertex) (minX, minY, maxX, maxY int32) {
	minX, minY = verts[0].X, verts[0].Y
	maxX, maxY = verts[0].X, verts[0].Y
	for _, v := range verts[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return
}

func newSpatialIndex(data *model.Data) *spatialIndex {
	idx := &spatialIndex{
		lineTree:  rtreego.NewTree(2, 25, 50),
		arealTree: rtreego.NewTree(2, 25, 50),
	}

	for i, lo := range data.Lines {
		verts := data.LineVertices[lo.FirstVertex : lo.FirstVertex+lo.VertexCount]
		if len(verts) == 0 {
			continue
		}
		minX, minY, maxX, maxY := boundsOf(verts)
		e := &lineEntry{order: i, class: lo.Class, zLevel: lo.ZLevel, verts: verts, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
		idx.lineTree.Insert(e)
		idx.lineCount++
	}

	order := 0
	addRing := func(class classify.ArealClass, zLevel int, p model.Part) {
		verts := data.ArealVertices[p.FirstVertex : p.FirstVertex+p.VertexCount]
		if len(verts) == 0 {
			return
		}
		minX, minY, maxX, maxY := boundsOf(verts)
		e := &arealEntry{order: order, class: class, zLevel: zLevel, verts: verts, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
		order++
		idx.arealTree.Insert(e)
		idx.arealCount++
	}
	for _, ao := range data.Areals {
		if ao.IsMultipolygon() {
			for _, p := range ao.Multi.Outers {
				addRing(ao.Class, ao.ZLevel, p)
			}
			for _, p := range ao.Multi.Inners {
				addRing(ao.Class, ao.ZLevel, p)
			}
			continue
		}
		addRing(ao.Class, ao.ZLevel, ao.Part)
	}

	return idx
}

// linesIn returns every indexed line whose bbox intersects [minX,minY,maxX,maxY],
// in original phase-sort order.
func (idx *spatialIndex) linesIn(minX, minY, maxX, maxY int32) []*lineEntry {
	results := idx.lineTree.SearchIntersect(mustRect(minX, minY, maxX, maxY))
	out := make([]*lineEntry, len(results))
	for i, r := range results {
		out[i] = r.(*lineEntry)
	}
	sortLineEntries(out)
	return out
}

// arealsIn returns every indexed areal ring whose bbox intersects the
// query box, in original flattening order.
func (idx *spatialIndex) arealsIn(minX, minY, maxX, maxY int32) []*arealEntry {
	results := idx.arealTree.SearchIntersect(mustRect(minX, minY, maxX, maxY))
	out := make([]*arealEntry, len(results))
	for i, r := range results {
		out[i] = r.(*arealEntry)
	}
	sortArealEntries(out)
	return out
}

func sortLineEntries(e []*lineEntry) {
	sort.Slice(e, func(i, j int) bool { return e[i].order < e[j].order })
}

func sortArealEntries(e []*arealEntry) {
	sort.Slice(e, func(i, j int) bool { return e[i].order < e[j].order })
}
