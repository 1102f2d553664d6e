// Package mapfile serializes a compiled data set into the PanzerMaps-Data
// binary format and reads it back (spec §6.3). All integers are
// little-endian; encoding/binary.Write/Read handle the byte order, so the
// structs below only need correct field order and fixed-width types.
package mapfile

// Magic is the 16-byte file header, NUL-padded (spec §6.3 "16-byte magic
// PanzerMaps-Data\0").
var Magic = [16]byte{'P', 'a', 'n', 'z', 'e', 'r', 'M', 'a', 'p', 's', '-', 'D', 'a', 't', 'a', 0}

// Version is the only format version this package writes or accepts.
const Version uint32 = 1

// Header is the file's fixed leading record (spec §6.3 "File header").
type Header struct {
	Magic   [16]byte
	Version uint32

	ProjectionKind uint8
	_              [3]byte

	ProjectionMinLon float64
	ProjectionMinLat float64
	ProjectionMaxLon float64
	ProjectionMaxLat float64

	MinX, MinY, MaxX, MaxY int32
	UnitSize               int32

	ZoomLevelsOffset uint32
	ZoomLevelCount   uint32

	BackgroundColor       [4]byte
	CopyrightImageOffset  uint32
	CopyrightImageWidth   uint16
	CopyrightImageHeight  uint16
}

// ZoomLevelRecord is one fixed-stride entry of the zoom level table (spec
// §6.3 "ZoomLevel record").
type ZoomLevelRecord struct {
	ChunksDescriptionOffset uint32
	ChunkCount              uint32
	ZoomLevelLog2           uint32
	UnitSizeM               float32

	PointStylesOffset  uint32
	PointStylesCount   uint32
	LinearStylesOffset uint32
	LinearStylesCount  uint32
	ArealStylesOffset  uint32
	ArealStylesCount   uint32

	PointStylesOrderOffset  uint32
	PointStylesOrderCount   uint32
	LinearStylesOrderOffset uint32
	LinearStylesOrderCount  uint32
}

// ChunkDescription locates one chunk's serialized bytes in the file (spec
// §6.3 "ChunkDescription").
type ChunkDescription struct {
	Offset uint32
	Size   uint32
}

// ChunkHeader is the fixed-size prefix of a serialized chunk.group records
// and the vertex pool follow immediately after it (spec §6.3 "Chunk").
type ChunkHeader struct {
	CoordStartX, CoordStartY uint32
	MinX, MinY, MaxX, MaxY   uint32
	MinZLevel, MaxZLevel     uint16

	PointGroupsOffset  uint32
	LinearGroupsOffset uint32
	ArealGroupsOffset  uint32
	VerticesOffset     uint32

	PointGroupsCount  uint16
	LinearGroupsCount uint16
	ArealGroupsCount  uint16
	VertexCount       uint16
}

// PointObjectStyle carries no renderer payload of its own; its index into
// the point style table is what the renderer cares about (spec §6.2
// "point_styles", SPEC_FULL "point styles present but empty on the wire").
type PointObjectStyle struct{}

// LinearObjectStyle is one zoom level's per-class line appearance (spec
// §6.2 "linear_styles", SPEC_FULL item 4 restoring width/dash payloads the
// distilled §6.3 omitted).
type LinearObjectStyle struct {
	Color        [4]byte
	Color2       [4]byte
	WidthMul256  uint32
	DashMul256   uint32
}

// ArealObjectStyle is one zoom level's per-class fill color (spec §6.2
// "areal_styles").
type ArealObjectStyle struct {
	Color [4]byte
}

// PointStylesOrder and LinearStylesOrder are the paint-order tables a
// renderer walks to draw classes in the style's configured sequence (spec
// §4.7, SPEC_FULL item 4).
type PointStylesOrder struct {
	StyleIndex uint8
	_pad       [3]byte
}

type LinearStylesOrder struct {
	StyleIndex uint8
	_pad       [3]byte
}
