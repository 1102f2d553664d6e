package mapfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/panzermaps/compiler/internal/chunk"
	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
	"github.com/panzermaps/compiler/internal/style"
)

// CopyrightImage is a pre-decoded RGBA attribution overlay (SPEC_FULL item
// 5). A nil image is written as a zero-size placeholder, matching the
// original format's behavior when no copyright art is configured.
type CopyrightImage struct {
	Width, Height uint16
	RGBA          []byte // len == Width*Height*4
}

// ZoomLevelInput bundles one zoom level's IR and its already-built chunks
// — Writer has no dependency on the pipeline or chunk-building logic
// itself, only their outputs.
type ZoomLevelInput struct {
	Data   *model.Data
	Chunks []chunk.Chunk
}

// Write serializes a full compiled data set to w (spec §6.3). levels must
// be non-empty and share the same projection and scene bounding box (the
// first level's values are taken as authoritative for the file header,
// matching final_export.cpp's DumpDataFile: "prepared_data.front()...").
func Write(w io.Writer, projKind project.Kind, projMin, projMax project.GeoPoint, levels []ZoomLevelInput, styles *style.Styles, copyright *CopyrightImage) error {
	if len(levels) == 0 {
		return fmt.Errorf("mapfile: write: no zoom levels")
	}

	var buf bytes.Buffer
	front := levels[0].Data

	header := Header{
		Magic:            Magic,
		Version:          Version,
		ProjectionKind:   uint8(projKind),
		ProjectionMinLon: projMin.Lon,
		ProjectionMinLat: projMin.Lat,
		ProjectionMaxLon: projMax.Lon,
		ProjectionMaxLat: projMax.Lat,
		MinX:             front.MinPoint.X,
		MinY:             front.MinPoint.Y,
		MaxX:             front.MaxPoint.X,
		MaxY:             front.MaxPoint.Y,
		UnitSize:         front.UnitSize,
	}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("mapfile: write header: %w", err)
	}

	header.ZoomLevelsOffset = uint32(buf.Len())
	header.ZoomLevelCount = uint32(len(levels))
	records := make([]ZoomLevelRecord, len(levels))
	recordsOffset := buf.Len()
	if err := binary.Write(&buf, binary.LittleEndian, records); err != nil {
		return fmt.Errorf("mapfile: reserve zoom level records: %w", err)
	}

	for i, level := range levels {
		rec, err := writeZoomLevel(&buf, level, styles)
		if err != nil {
			return fmt.Errorf("mapfile: zoom level %d: %w", i, err)
		}
		records[i] = rec
	}

	header.BackgroundColor = styles.BackgroundColor
	header.CopyrightImageOffset = uint32(buf.Len())
	if copyright != nil {
		header.CopyrightImageWidth = copyright.Width
		header.CopyrightImageHeight = copyright.Height
		buf.Write(copyright.RGBA)
	}

	out := buf.Bytes()
	patchHeader(out, header)
	patchZoomLevelRecords(out, recordsOffset, records)

	_, err := w.Write(out)
	return err
}

func writeZoomLevel(buf *bytes.Buffer, level ZoomLevelInput, styles *style.Styles) (ZoomLevelRecord, error) {
	rec := ZoomLevelRecord{
		ZoomLevelLog2: level.Data.ZoomLevelLog2,
		UnitSizeM:     level.Data.MetersPerUnit,
	}

	rec.ChunksDescriptionOffset = uint32(buf.Len())
	rec.ChunkCount = uint32(len(level.Chunks))
	descriptionsOffset := buf.Len()
	descriptions := make([]ChunkDescription, len(level.Chunks))
	if err := binary.Write(buf, binary.LittleEndian, descriptions); err != nil {
		return rec, err
	}

	for i, c := range level.Chunks {
		offset := buf.Len()
		if err := writeChunk(buf, c); err != nil {
			return rec, err
		}
		descriptions[i] = ChunkDescription{Offset: uint32(offset), Size: uint32(buf.Len() - offset)}
	}
	patchChunkDescriptions(buf.Bytes(), descriptionsOffset, descriptions)

	rec.PointStylesOffset = uint32(buf.Len())
	for class := classify.PointClass(0); int(class) < classify.PointClassCount; class++ {
		if err := binary.Write(buf, binary.LittleEndian, PointObjectStyle{}); err != nil {
			return rec, err
		}
		rec.PointStylesCount++
	}

	rec.LinearStylesOffset = uint32(buf.Len())
	for class := classify.LinearClass(0); int(class) < classify.LinearClassCount; class++ {
		lineStyle, ok := styles.LinearStyles[class]
		wire := LinearObjectStyle{Color: [4]byte{128, 128, 128, 255}, Color2: [4]byte{128, 128, 128, 255}}
		if ok {
			wire.Color = lineStyle.Color
			wire.Color2 = lineStyle.Color
			if level.Data.MetersPerUnit > 0 {
				wire.WidthMul256 = uint32(lineStyle.WidthM / level.Data.MetersPerUnit * 256.0)
			}
		}
		if err := binary.Write(buf, binary.LittleEndian, wire); err != nil {
			return rec, err
		}
		rec.LinearStylesCount++
	}

	rec.ArealStylesOffset = uint32(buf.Len())
	for class := classify.ArealClass(0); int(class) < classify.ArealClassCount; class++ {
		wire := ArealObjectStyle{Color: [4]byte{128, 128, 128, 255}}
		if arealStyle, ok := styles.ArealStyles[class]; ok {
			wire.Color = arealStyle.Color
		}
		if err := binary.Write(buf, binary.LittleEndian, wire); err != nil {
			return rec, err
		}
		rec.ArealStylesCount++
	}

	rec.PointStylesOrderOffset = uint32(buf.Len())
	for class := classify.PointClass(1); int(class) < classify.PointClassCount; class++ {
		if _, ok := styles.PointStyles[class]; !ok {
			continue
		}
		if err := binary.Write(buf, binary.LittleEndian, PointStylesOrder{StyleIndex: uint8(class)}); err != nil {
			return rec, err
		}
		rec.PointStylesOrderCount++
	}

	rec.LinearStylesOrderOffset = uint32(buf.Len())
	for class := classify.LinearClass(1); int(class) < classify.LinearClassCount; class++ {
		if _, ok := styles.LinearStyles[class]; !ok {
			continue
		}
		if err := binary.Write(buf, binary.LittleEndian, LinearStylesOrder{StyleIndex: uint8(class)}); err != nil {
			return rec, err
		}
		rec.LinearStylesOrderCount++
	}

	return rec, nil
}

func writeChunk(buf *bytes.Buffer, c chunk.Chunk) error {
	header := ChunkHeader{
		CoordStartX: uint32(c.CoordStartX), CoordStartY: uint32(c.CoordStartY),
		MinX: uint32(c.MinX), MinY: uint32(c.MinY), MaxX: uint32(c.MaxX), MaxY: uint32(c.MaxY),
		MinZLevel: c.MinZLevel, MaxZLevel: c.MaxZLevel,
		PointGroupsCount:  uint16(len(c.PointGroups)),
		LinearGroupsCount: uint16(len(c.LinearGroups)),
		ArealGroupsCount:  uint16(len(c.ArealGroups)),
		VertexCount:       uint16(len(c.Vertices)),
	}
	headerOffset := buf.Len()
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return err
	}

	header.PointGroupsOffset = uint32(buf.Len() - headerOffset)
	if err := binary.Write(buf, binary.LittleEndian, c.PointGroups); err != nil {
		return err
	}
	header.LinearGroupsOffset = uint32(buf.Len() - headerOffset)
	if err := binary.Write(buf, binary.LittleEndian, c.LinearGroups); err != nil {
		return err
	}
	header.ArealGroupsOffset = uint32(buf.Len() - headerOffset)
	if err := binary.Write(buf, binary.LittleEndian, c.ArealGroups); err != nil {
		return err
	}
	header.VerticesOffset = uint32(buf.Len() - headerOffset)
	if err := binary.Write(buf, binary.LittleEndian, c.Vertices); err != nil {
		return err
	}

	patchChunkHeader(buf.Bytes(), headerOffset, header)
	return nil
}

func patchHeader(out []byte, h Header) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, h)
	copy(out[:b.Len()], b.Bytes())
}

func patchZoomLevelRecords(out []byte, offset int, records []ZoomLevelRecord) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, records)
	copy(out[offset:offset+b.Len()], b.Bytes())
}

func patchChunkDescriptions(out []byte, offset int, descriptions []ChunkDescription) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, descriptions)
	copy(out[offset:offset+b.Len()], b.Bytes())
}

func patchChunkHeader(out []byte, offset int, h ChunkHeader) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, h)
	copy(out[offset:offset+b.Len()], b.Bytes())
}
