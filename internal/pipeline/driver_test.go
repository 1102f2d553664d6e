package pipeline

import (
	"log"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
)

func TestRunProducesOneDataPerZoomLevel(t *testing.T) {
	geo := &model.GeoData{
		Lines: []model.GeoLinearObject{
			{Class: classify.LinearRoad, ZLevel: model.ZeroZLevel, Line: orb.LineString{{0, 0}, {0.01, 0.01}}},
		},
	}
	min, max, ok := geo.Bounds()
	require.True(t, ok)
	geoMin := project.GeoPoint{Lon: min[0] - 0.01, Lat: min[1] - 0.01}
	geoMax := project.GeoPoint{Lon: max[0] + 0.01, Lat: max[1] + 0.01}
	proj := project.New(project.KindMercator, geoMin, geoMax)

	styles := testStyles()
	levels := []ZoomLevelConfig{
		{ZoomLevelLog2: 0, SimplifyUnits: 1},
		{ZoomLevelLog2: 1, SimplifyUnits: 1},
	}

	out := Run(geo, proj, geoMin, geoMax, styles, levels, log.New(logWriter{}, "", 0))
	require.Len(t, out, 2)
	for _, d := range out {
		require.Len(t, d.Lines, 1)
	}
}

type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) { return len(p), nil }
