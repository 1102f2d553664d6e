package pipeline

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
)

func testProjection() (project.Projection, project.GeoPoint, project.GeoPoint) {
	geoMin := project.GeoPoint{Lon: 10.0, Lat: 50.0}
	geoMax := project.GeoPoint{Lon: 10.2, Lat: 50.2}
	return project.New(project.KindMercator, geoMin, geoMax), geoMin, geoMax
}

func TestTransformProjectsPointsLinesAndAreals(t *testing.T) {
	proj, geoMin, geoMax := testProjection()

	geo := &model.GeoData{
		Points: []model.GeoPointObject{
			{Class: classify.PointStationPlatform, Point: orb.Point{10.1, 50.1}},
		},
		Lines: []model.GeoLinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Line: orb.LineString{{10.0, 50.0}, {10.1, 50.0}, {10.2, 50.0}}},
		},
		Areals: []model.GeoArealObject{
			{
				Class:  classify.ArealBuilding,
				ZLevel: model.ZeroZLevel,
				Geometry: model.GeoArealGeometry{
					Polygon: orb.Ring{{10.0, 50.0}, {10.1, 50.0}, {10.1, 50.1}, {10.0, 50.1}, {10.0, 50.0}},
				},
			},
		},
	}

	data := Transform(geo, proj, geoMin, geoMax, 0)

	require.Len(t, data.Points, 1)
	require.Len(t, data.PointVertices, 1)

	require.Len(t, data.Lines, 1)
	require.Equal(t, 3, data.Lines[0].Part.VertexCount)

	require.Len(t, data.Areals, 1)
	require.Equal(t, 4, data.Areals[0].Part.VertexCount, "closing duplicate vertex must be stripped")
}

func TestTransformDropsDegenerateAreal(t *testing.T) {
	proj, geoMin, geoMax := testProjection()

	geo := &model.GeoData{
		Areals: []model.GeoArealObject{
			{
				Class:  classify.ArealBuilding,
				ZLevel: model.ZeroZLevel,
				Geometry: model.GeoArealGeometry{
					// Projects to fewer than 3 distinct vertices once quantized.
					Polygon: orb.Ring{{10.0, 50.0}, {10.0, 50.0}, {10.0, 50.0}},
				},
			},
		},
	}

	data := Transform(geo, proj, geoMin, geoMax, 0)
	require.Empty(t, data.Areals)
}

func TestTransformCollapsesDuplicateLineVertices(t *testing.T) {
	proj, geoMin, geoMax := testProjection()

	geo := &model.GeoData{
		Lines: []model.GeoLinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Line: orb.LineString{{10.0, 50.0}, {10.0, 50.0}, {10.1, 50.0}}},
		},
	}

	data := Transform(geo, proj, geoMin, geoMax, 0)
	require.Len(t, data.Lines, 1)
	require.Equal(t, 2, data.Lines[0].Part.VertexCount)
}

func TestTransformMultipolygonKeepsOutersAndInners(t *testing.T) {
	proj, geoMin, geoMax := testProjection()

	geo := &model.GeoData{
		Areals: []model.GeoArealObject{
			{
				Class:  classify.ArealWater,
				ZLevel: model.ZeroZLevel,
				Geometry: model.GeoArealGeometry{
					IsMulti: true,
					Multi: orb.MultiPolygon{
						{
							orb.Ring{{10.0, 50.0}, {10.2, 50.0}, {10.2, 50.2}, {10.0, 50.2}, {10.0, 50.0}},
							orb.Ring{{10.05, 50.05}, {10.1, 50.05}, {10.1, 50.1}, {10.05, 50.1}, {10.05, 50.05}},
						},
					},
				},
			},
		},
	}

	data := Transform(geo, proj, geoMin, geoMax, 0)
	require.Len(t, data.Areals, 1)
	require.NotNil(t, data.Areals[0].Multi)
	require.Len(t, data.Areals[0].Multi.Outers, 1)
	require.Len(t, data.Areals[0].Multi.Inners, 1)
}

func TestTransformCoarserZoomLevelWidensUnitSize(t *testing.T) {
	proj, geoMin, geoMax := testProjection()

	geo := &model.GeoData{
		Lines: []model.GeoLinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Line: orb.LineString{{10.0, 50.0}, {10.2, 50.2}}},
		},
	}

	level0 := Transform(geo, proj, geoMin, geoMax, 0)
	level2 := Transform(geo, proj, geoMin, geoMax, 2)

	require.Greater(t, level2.UnitSize, level0.UnitSize)
}
