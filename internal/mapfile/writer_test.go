package mapfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/chunk"
	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
	"github.com/panzermaps/compiler/internal/style"
)

func TestWriteReadRoundTrip(t *testing.T) {
	data := &model.Data{
		MinPoint:      model.Vertex{X: 0, Y: 0},
		MaxPoint:      model.Vertex{X: 64000, Y: 64000},
		UnitSize:      1,
		MetersPerUnit: 0.2,
		ZoomLevelLog2: 0,
	}
	chunks := chunk.BuildChunks(data)

	styles := &style.Styles{
		BackgroundColor: style.Color{240, 240, 240, 255},
		PointStyles:     map[classify.PointClass]style.PointStyle{classify.PointStationPlatform: {}},
		LinearStyles:    map[classify.LinearClass]style.LinearStyle{classify.LinearRoad: {Color: style.Color{0, 0, 0, 255}, WidthM: 4}},
		ArealStyles:     map[classify.ArealClass]style.ArealStyle{classify.ArealBuilding: {Color: style.Color{200, 150, 100, 255}}},
	}

	var buf bytes.Buffer
	err := Write(&buf, project.KindMercator, project.GeoPoint{Lon: -1, Lat: -1}, project.GeoPoint{Lon: 1, Lat: 1},
		[]ZoomLevelInput{{Data: data, Chunks: chunks}}, styles, nil)
	require.NoError(t, err)

	header, records, err := Read(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, Magic, header.Magic)
	require.Equal(t, Version, header.Version)
	require.Len(t, records, 1)
	require.Equal(t, uint32(0), records[0].ChunkCount)
}
