package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

func v(x, y int32) model.Vertex { return model.Vertex{X: x, Y: y} }

func TestMergeLinearJoinsSharedEndpoint(t *testing.T) {
	in := model.Data{
		LineVertices: []model.Vertex{
			v(0, 0), v(1, 0),
			v(1, 0), v(2, 0),
		},
		Lines: []model.LinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 2}},
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 2, VertexCount: 2}},
		},
	}

	out := MergeLinear(&in)
	require.Len(t, out.Lines, 1)
	lo := out.Lines[0]
	require.Equal(t, 3, lo.VertexCount)
	got := out.LineVertices[lo.FirstVertex : lo.FirstVertex+lo.VertexCount]
	require.Equal(t, []model.Vertex{v(0, 0), v(1, 0), v(2, 0)}, got)
}

func TestMergeLinearKeepsDifferentClassesSeparate(t *testing.T) {
	in := model.Data{
		LineVertices: []model.Vertex{
			v(0, 0), v(1, 0),
			v(1, 0), v(2, 0),
		},
		Lines: []model.LinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 2}},
			{Class: classify.LinearWaterway, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 2, VertexCount: 2}},
		},
	}
	out := MergeLinear(&in)
	require.Len(t, out.Lines, 2)
}

func TestMergeLinearReversesWhenNeeded(t *testing.T) {
	in := model.Data{
		LineVertices: []model.Vertex{
			v(2, 0), v(1, 0), // reversed segment: ends at shared vertex (1,0) via its start
			v(1, 0), v(0, 0),
		},
		Lines: []model.LinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 2}},
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 2, VertexCount: 2}},
		},
	}
	out := MergeLinear(&in)
	require.Len(t, out.Lines, 1)
	require.Equal(t, 3, out.Lines[0].VertexCount)
}
