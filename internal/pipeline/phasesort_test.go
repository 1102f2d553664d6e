package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/style"
)

func testStyles() *style.Styles {
	return &style.Styles{
		PointStyles: map[classify.PointClass]style.PointStyle{
			classify.PointStationPlatform: {},
		},
		LinearStyles: map[classify.LinearClass]style.LinearStyle{
			classify.LinearRoad:     {},
			classify.LinearWaterway: {},
		},
		ArealPhases: []style.Phase{
			{Classes: map[classify.ArealClass]struct{}{classify.ArealWater: {}}},
			{Classes: map[classify.ArealClass]struct{}{classify.ArealBuilding: {}}},
		},
	}
}

func TestPhaseSortDropsUnstyledClasses(t *testing.T) {
	in := model.Data{
		PointVertices: []model.Vertex{v(0, 0), v(1, 1)},
		Points: []model.PointObject{
			{Class: classify.PointStationPlatform, VertexIndex: 0},
			{Class: classify.PointSubwayEntrance, VertexIndex: 1},
		},
	}
	out := PhaseSort(&in, testStyles())
	require.Len(t, out.Points, 1)
	require.Equal(t, classify.PointStationPlatform, out.Points[0].Class)
}

func TestPhaseSortOrdersLinesByZLevelThenClass(t *testing.T) {
	in := model.Data{
		LineVertices: []model.Vertex{v(0, 0), v(1, 0), v(0, 0), v(1, 0), v(0, 0), v(1, 0)},
		Lines: []model.LinearObject{
			{Class: classify.LinearWaterway, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 2}},
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel - 1, Part: model.Part{FirstVertex: 2, VertexCount: 2}},
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 4, VertexCount: 2}},
		},
	}
	out := PhaseSort(&in, testStyles())
	require.Len(t, out.Lines, 3)
	require.Equal(t, model.ZeroZLevel-1, out.Lines[0].ZLevel)
	require.Equal(t, model.ZeroZLevel, out.Lines[1].ZLevel)
	require.Equal(t, classify.LinearRoad, out.Lines[1].Class)
	require.Equal(t, classify.LinearWaterway, out.Lines[2].Class)
}

func TestPhaseSortOrdersArealsByPhaseThenArea(t *testing.T) {
	small := []model.Vertex{v(0, 0), v(2, 0), v(2, 2), v(0, 2)}
	large := []model.Vertex{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	in := model.Data{
		ArealVertices: append(append([]model.Vertex{}, small...), large...),
		Areals: []model.ArealObject{
			{Class: classify.ArealWater, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 0, VertexCount: 4}},
			{Class: classify.ArealBuilding, ZLevel: model.ZeroZLevel, Part: model.Part{FirstVertex: 4, VertexCount: 4}},
		},
	}
	out := PhaseSort(&in, testStyles())
	require.Len(t, out.Areals, 2)
	// Water's phase (index 0) precedes Building's (index 1), regardless of area.
	require.Equal(t, classify.ArealWater, out.Areals[0].Class)
	require.Equal(t, classify.ArealBuilding, out.Areals[1].Class)
}
