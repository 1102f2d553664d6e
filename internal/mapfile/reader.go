package mapfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Read parses a serialized data file back into its header, zoom level
// records and chunk bytes. It exists to give the writer a round-trip
// check in tests (spec §6.3); the renderer this format serves is out of
// scope (spec §1).
func Read(data []byte) (Header, []ZoomLevelRecord, error) {
	r := bytes.NewReader(data)

	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return Header{}, nil, fmt.Errorf("mapfile: read header: %w", err)
	}
	if header.Magic != Magic {
		return Header{}, nil, fmt.Errorf("mapfile: bad magic %q", header.Magic)
	}
	if header.Version != Version {
		return Header{}, nil, fmt.Errorf("mapfile: unsupported version %d", header.Version)
	}

	records := make([]ZoomLevelRecord, header.ZoomLevelCount)
	recordsReader := bytes.NewReader(data[header.ZoomLevelsOffset:])
	if err := binary.Read(recordsReader, binary.LittleEndian, records); err != nil {
		return header, nil, fmt.Errorf("mapfile: read zoom level records: %w", err)
	}

	return header, records, nil
}

// ReadChunkDescriptions reads one zoom level's chunk description table.
func ReadChunkDescriptions(data []byte, rec ZoomLevelRecord) ([]ChunkDescription, error) {
	descriptions := make([]ChunkDescription, rec.ChunkCount)
	r := bytes.NewReader(data[rec.ChunksDescriptionOffset:])
	if err := binary.Read(r, binary.LittleEndian, descriptions); err != nil {
		return nil, fmt.Errorf("mapfile: read chunk descriptions: %w", err)
	}
	return descriptions, nil
}

// ReadChunkHeader parses the fixed-size prefix of one chunk's bytes.
func ReadChunkHeader(chunkBytes []byte) (ChunkHeader, error) {
	var h ChunkHeader
	r := bytes.NewReader(chunkBytes)
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return ChunkHeader{}, fmt.Errorf("mapfile: read chunk header: %w", err)
	}
	return h, nil
}

// ReadChunkVertices extracts the packed vertex pool from one chunk's bytes
// using the offsets in its header.
func ReadChunkVertices(chunkBytes []byte, h ChunkHeader) ([]PackedVertex, error) {
	vertices := make([]PackedVertex, h.VertexCount)
	r := bytes.NewReader(chunkBytes[h.VerticesOffset:])
	if err := binary.Read(r, binary.LittleEndian, vertices); err != nil {
		return nil, fmt.Errorf("mapfile: read chunk vertices: %w", err)
	}
	return vertices, nil
}
