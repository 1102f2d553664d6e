package pipeline

import (
	"sort"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

// mergeObject is a linear object still under construction: its vertex list
// grows as chains are spliced together (spec §4.4).
type mergeObject struct {
	class    classify.LinearClass
	zLevel   int
	vertices []model.Vertex
}

type mergeKey struct {
	class  classify.LinearClass
	zLevel int
	vertex model.Vertex
}

// MergeLinear concatenates polylines of identical class and z-level that
// share an endpoint (spec §4.4). Grounded on
// linear_objects_merge_pass.cpp's hash-map-of-endpoints algorithm: every
// object is keyed by both its endpoints; inserting a new object looks up
// both its own endpoints, splices onto whichever existing chain matches
// (reversing itself if needed so the endpoints meet), and re-inserts the
// combined chain under its two new endpoints.
//
// Because the Go map has no stable iteration order (deliberately, just
// like the original's unordered_map), output is sorted by
// (class, z-level, first-vertex) before returning, matching spec §4.4's
// explicit determinism requirement.
func MergeLinear(in *model.Data) model.Data {
	objects := make(map[*mergeObject]struct{})
	index := make(map[mergeKey]*mergeObject)

	var putObject func(obj *mergeObject)
	putObject = func(obj *mergeObject) {
		front := mergeKey{obj.class, obj.zLevel, obj.vertices[0]}
		back := mergeKey{obj.class, obj.zLevel, obj.vertices[len(obj.vertices)-1]}

		if other, ok := index[front]; ok && other != obj {
			delete(objects, other)
			eraseObject(index, other)
			putObject(spliceOnto(other, obj, front.vertex))
			return
		}
		if other, ok := index[back]; ok && other != obj {
			delete(objects, other)
			eraseObject(index, other)
			putObject(spliceOnto(other, obj, back.vertex))
			return
		}

		index[front] = obj
		index[back] = obj
		objects[obj] = struct{}{}
	}

	for _, lo := range in.Lines {
		verts := make([]model.Vertex, lo.VertexCount)
		copy(verts, in.LineVertices[lo.FirstVertex:lo.FirstVertex+lo.VertexCount])
		putObject(&mergeObject{class: lo.Class, zLevel: lo.ZLevel, vertices: verts})
	}

	results := make([]*mergeObject, 0, len(objects))
	for obj := range objects {
		results = append(results, obj)
	}
	sort.Slice(results, func(i, j int) bool { return mergeLess(results[i], results[j]) })

	out := model.NewData(in)
	for _, r := range results {
		first := len(out.LineVertices)
		out.LineVertices = append(out.LineVertices, r.vertices...)
		out.Lines = append(out.Lines, model.LinearObject{
			Class:  r.class,
			ZLevel: r.zLevel,
			Part:   model.Part{FirstVertex: first, VertexCount: len(r.vertices)},
		})
	}
	return out
}

func eraseObject(index map[mergeKey]*mergeObject, obj *mergeObject) {
	delete(index, mergeKey{obj.class, obj.zLevel, obj.vertices[0]})
	delete(index, mergeKey{obj.class, obj.zLevel, obj.vertices[len(obj.vertices)-1]})
}

// spliceOnto joins newObj onto other at the shared vertex, reversing
// whichever side needs it so the endpoints meet, and returns other with
// its vertex slice extended in place (spec §4.4's "splice the new object
// onto the matching end").
func spliceOnto(other, newObj *mergeObject, shared model.Vertex) *mergeObject {
	if other.vertices[0] == shared {
		if newObj.vertices[0] == shared {
			other.vertices = append(reverseVertices(newObj.vertices)[:len(newObj.vertices)-1], other.vertices...)
		} else {
			other.vertices = append(append([]model.Vertex{}, newObj.vertices[:len(newObj.vertices)-1]...), other.vertices...)
		}
		return other
	}

	// shared must then be other's back vertex.
	if newObj.vertices[0] == shared {
		other.vertices = append(other.vertices, newObj.vertices[1:]...)
	} else {
		other.vertices = append(other.vertices, reverseVertices(newObj.vertices)[1:]...)
	}
	return other
}

func reverseVertices(v []model.Vertex) []model.Vertex {
	out := make([]model.Vertex, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

func mergeLess(a, b *mergeObject) bool {
	if a.class != b.class {
		return a.class < b.class
	}
	if a.zLevel != b.zLevel {
		return a.zLevel < b.zLevel
	}
	av, bv := a.vertices[0], b.vertices[0]
	if av.X != bv.X {
		return av.X < bv.X
	}
	return av.Y < bv.Y
}
