package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

func TestNormalizeSquareStaysOnePiece(t *testing.T) {
	square := []model.Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	in := model.Data{
		ArealVertices: square,
		Areals: []model.ArealObject{
			{Class: classify.ArealBuilding, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 4}},
		},
	}
	out := Normalize(&in)
	require.Len(t, out.Areals, 1)
	require.Equal(t, 4, out.Areals[0].VertexCount)
}

func TestNormalizeLShapeSplitsIntoConvexParts(t *testing.T) {
	// L-shaped polygon (one reflex vertex at (10,10)).
	lShape := []model.Vertex{
		v(0, 0), v(20, 0), v(20, 10), v(10, 10), v(10, 20), v(0, 20),
	}
	in := model.Data{
		ArealVertices: lShape,
		Areals: []model.ArealObject{
			{Class: classify.ArealBuilding, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: len(lShape)}},
		},
	}
	out := Normalize(&in)
	require.NotEmpty(t, out.Areals)
	for _, ao := range out.Areals {
		require.GreaterOrEqual(t, ao.VertexCount, 3)
	}
}

func TestNormalizePassesMultipolygonThrough(t *testing.T) {
	outer := []model.Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	in := model.Data{
		ArealVertices: outer,
		Areals: []model.ArealObject{
			{
				Class:  classify.ArealWater,
				ZLevel: model.ZeroZLevel,
				Multi: &model.Multipolygon{
					Outers: []model.Part{{FirstVertex: 0, VertexCount: 4}},
				},
			},
		},
	}
	out := Normalize(&in)
	require.Len(t, out.Areals, 1)
	require.True(t, out.Areals[0].IsMultipolygon())
}
