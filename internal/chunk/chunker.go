package chunk

import (
	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

// maxChunkSize is the side length of a top-level chunk, in zoom-level
// coordinate units (spec §4.8). minChunkSize bounds how far recursive
// subdivision is allowed to go.
const (
	maxChunkSize = int32(64000)
	minChunkSize = maxChunkSize / 512
)

// BuildChunks tiles one zoom level's phase-sorted IR into the chunk grid
// (spec §4.8), recursively splitting any chunk whose packed vertex count
// overflows the wire format's 16-bit indices. Empty chunks are omitted.
func BuildChunks(data *model.Data) []Chunk {
	idx := newSpatialIndex(data)

	spanX := data.MaxPoint.X - data.MinPoint.X
	spanY := data.MaxPoint.Y - data.MinPoint.Y
	if data.UnitSize < 1 {
		data.UnitSize = 1
	}
	chunksX := ceilDiv(spanX/data.UnitSize, maxChunkSize)
	chunksY := ceilDiv(spanY/data.UnitSize, maxChunkSize)
	if chunksX < 1 {
		chunksX = 1
	}
	if chunksY < 1 {
		chunksY = 1
	}

	var result []Chunk
	for x := int32(0); x < chunksX; x++ {
		for y := int32(0); y < chunksY; y++ {
			result = append(result, buildChunk(data, idx, x*maxChunkSize, y*maxChunkSize, maxChunkSize)...)
		}
	}
	return result
}

func ceilDiv(a, b int32) int32 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// buildChunk accumulates one chunk's groups and packed vertices, then
// either returns it or — if it overflowed the wire format's vertex-count
// limits — discards it and recurses into 4 half-size sub-chunks (spec
// §4.8 "Recursive split").
func buildChunk(data *model.Data, idx *spatialIndex, originX, originY, size int32) []Chunk {
	localX := originX - (65535-size)/2
	localY := originY - (65535-size)/2

	c := Chunk{
		CoordStartX: localX,
		CoordStartY: localY,
		MinX:        originX,
		MinY:        originY,
		MaxX:        originX + size,
		MaxY:        originY + size,
		MinZLevel:   100,
		MaxZLevel:   0,
	}

	pack := func(v model.Vertex) PackedVertex {
		return PackedVertex{X: uint16(v.X - localX), Y: uint16(v.Y - localY)}
	}

	appendPoints(data, &c, pack, originX, originY, size)
	appendLines(idx, &c, pack, originX, originY, size)
	appendAreals(idx, &c, pack, originX, originY, size)

	if c.MinZLevel > c.MaxZLevel {
		c.MinZLevel = c.MaxZLevel
	}

	sizeLimit := 65535
	if size >= minChunkSize*4 {
		sizeLimit = 32768
	}
	if len(c.Vertices) >= sizeLimit || c.LinearVertexCount >= 16383 {
		if size <= minChunkSize {
			// Below the split floor: keep the oversized chunk rather than
			// recursing forever (spec §4.8 "below this, no further split
			// is attempted").
		} else {
			half := size / 2
			var sub []Chunk
			for dx := int32(0); dx < 2; dx++ {
				for dy := int32(0); dy < 2; dy++ {
					sub = append(sub, buildChunk(data, idx, originX+dx*half, originY+dy*half, half)...)
				}
			}
			return sub
		}
	}

	if c.Empty() {
		return nil
	}
	return []Chunk{c}
}

func appendPoints(data *model.Data, c *Chunk, pack func(model.Vertex) PackedVertex, originX, originY, size int32) {
	prevClass := classify.PointNone
	var group PointGroup
	flush := func() {
		if prevClass != classify.PointNone {
			group.VertexCount = uint16(len(c.Vertices)) - group.FirstVertex
			c.PointGroups = append(c.PointGroups, group)
		}
	}

	for _, po := range data.Points {
		if po.Class != prevClass {
			flush()
			group = PointGroup{StyleIndex: uint8(po.Class), FirstVertex: uint16(len(c.Vertices))}
			prevClass = po.Class
		}
		v := data.PointVertices[po.VertexIndex]
		if v.X >= originX && v.Y >= originY && v.X < originX+size && v.Y < originY+size {
			c.Vertices = append(c.Vertices, pack(v))
		}
	}
	flush()
}

func appendLines(idx *spatialIndex, c *Chunk, pack func(model.Vertex) PackedVertex, originX, originY, size int32) {
	candidates := idx.linesIn(originX, originY, originX+size, originY+size)

	prevClass := classify.LinearNone
	prevZLevel := model.NoZLevel
	var group LinearGroup
	flush := func() {
		if prevClass != classify.LinearNone {
			group.VertexCount = uint16(len(c.Vertices)) - group.FirstVertex
			c.LinearGroups = append(c.LinearGroups, group)
		}
	}

	for _, e := range candidates {
		if e.class != prevClass || e.zLevel != prevZLevel {
			flush()
			group = LinearGroup{StyleIndex: uint8(e.class), FirstVertex: uint16(len(c.Vertices)), ZLevel: uint16(e.zLevel)}
			updateZLevelRange(c, e.zLevel)
			prevClass, prevZLevel = e.class, e.zLevel
		}

		for _, part := range ClipPolylineToBBox(e.verts, originX, originY, originX+size, originY+size) {
			for _, v := range part {
				c.Vertices = append(c.Vertices, pack(v))
				c.LinearVertexCount++
			}
			c.Vertices = append(c.Vertices, PackedVertex{X: restartX, Y: 0})
			c.LinearVertexCount++
		}
	}
	flush()
}

func appendAreals(idx *spatialIndex, c *Chunk, pack func(model.Vertex) PackedVertex, originX, originY, size int32) {
	candidates := idx.arealsIn(originX, originY, originX+size, originY+size)

	prevZLevel := model.NoZLevel
	var group ArealGroup
	flush := func() {
		if prevZLevel != model.NoZLevel {
			group.VertexCount = uint16(len(c.Vertices)) - group.FirstVertex
			c.ArealGroups = append(c.ArealGroups, group)
		}
	}

	for _, e := range candidates {
		if e.zLevel != prevZLevel {
			flush()
			group = ArealGroup{FirstVertex: uint16(len(c.Vertices)), ZLevel: uint16(e.zLevel)}
			updateZLevelRange(c, e.zLevel)
			prevZLevel = e.zLevel
		}

		clipped := ClipConvexPolygonToBBox(e.verts, originX, originY, originX+size, originY+size)
		if len(clipped) < 3 {
			continue
		}
		for _, v := range clipped {
			c.Vertices = append(c.Vertices, pack(v))
		}
		c.Vertices = append(c.Vertices, PackedVertex{X: restartX, Y: uint16(e.class)})
	}
	flush()
}

func updateZLevelRange(c *Chunk, zLevel int) {
	z := uint16(zLevel)
	if z < c.MinZLevel {
		c.MinZLevel = z
	}
	if z > c.MaxZLevel {
		c.MaxZLevel = z
	}
}
