package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

func TestBuildChunksSingleLineOneChunk(t *testing.T) {
	data := model.Data{
		MinPoint: model.Vertex{X: 0, Y: 0},
		MaxPoint: model.Vertex{X: maxChunkSize, Y: maxChunkSize},
		UnitSize: 1,
		LineVertices: []model.Vertex{
			v(100, 100), v(200, 200),
		},
		Lines: []model.LinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 2}},
		},
	}
	chunks := BuildChunks(&data)
	require.Len(t, chunks, 1)
	require.Len(t, chunks[0].LinearGroups, 1)
	require.Equal(t, uint16(model.ZeroZLevel), chunks[0].LinearGroups[0].ZLevel)
}

func TestBuildChunksEmptyDataProducesNoChunks(t *testing.T) {
	data := model.Data{
		MinPoint: model.Vertex{X: 0, Y: 0},
		MaxPoint: model.Vertex{X: maxChunkSize, Y: maxChunkSize},
		UnitSize: 1,
	}
	chunks := BuildChunks(&data)
	require.Empty(t, chunks)
}

func TestBuildChunksSplitsOnVertexOverflow(t *testing.T) {
	data := model.Data{
		MinPoint: model.Vertex{X: 0, Y: 0},
		MaxPoint: model.Vertex{X: maxChunkSize, Y: maxChunkSize},
		UnitSize: 1,
	}
	for i := 0; i < 40000; i++ {
		first := len(data.PointVertices)
		data.PointVertices = append(data.PointVertices, v(int32(i%maxChunkSize), int32((i*7)%maxChunkSize)))
		data.Points = append(data.Points, model.PointObject{Class: classify.PointStationPlatform, VertexIndex: first})
	}
	chunks := BuildChunks(&data)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		require.Less(t, len(c.Vertices), 65536)
	}
}
