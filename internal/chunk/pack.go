package chunk

// restartX is the chunk-local x coordinate that marks a primitive restart
// in the packed vertex pool rather than a real vertex (spec §6.3 "Vertex
// sentinels"). It only fits because chunk-local coordinates are packed
// into 16 bits and never reach 65535 themselves (the chunk margin keeps
// real geometry inside [0, 64000+margin]).
const restartX = 65535

// PackedVertex is one chunk-local coordinate pair as written to the wire
// (spec §6.3): plain uint16 x/y, little-endian on disk.
type PackedVertex struct {
	X, Y uint16
}

// PointGroup, LinearGroup and ArealGroup mirror the wire group records
// exactly (spec §6.3 "Group records").
type PointGroup struct {
	StyleIndex  uint8
	FirstVertex uint16
	VertexCount uint16
}

type LinearGroup struct {
	StyleIndex  uint8
	FirstVertex uint16
	VertexCount uint16
	ZLevel      uint16
}

type ArealGroup struct {
	FirstVertex uint16
	VertexCount uint16
	ZLevel      uint16
}

// Chunk is one tile's fully packed geometry, ready for mapfile.Writer to
// serialize (spec §6.3 "Chunk"). All offsets described in the wire format
// are computed by the writer from these slices' lengths; Chunk itself only
// carries the logical content.
type Chunk struct {
	CoordStartX, CoordStartY int32
	MinX, MinY, MaxX, MaxY   int32
	MinZLevel, MaxZLevel     uint16

	PointGroups  []PointGroup
	LinearGroups []LinearGroup
	ArealGroups  []ArealGroup
	Vertices     []PackedVertex

	// LinearVertexCount counts only vertices written for lines (including
	// their restart markers), the quantity the 16 383 recursive-split
	// threshold is measured against (spec §4.8 "Recursive split").
	LinearVertexCount int
}

// Empty reports whether the chunk has no geometry at all — such chunks
// are omitted from the zoom level's chunk list (spec §4.8 "Empty chunks").
func (c *Chunk) Empty() bool { return len(c.Vertices) == 0 }
