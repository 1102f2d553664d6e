package pipeline

import (
	"log"

	"github.com/panzermaps/compiler/internal/model"
	"github.com/panzermaps/compiler/internal/project"
	"github.com/panzermaps/compiler/internal/style"
)

// ZoomLevelConfig names everything the driver needs to build one output
// zoom level from a shared GeoData (spec §2 step 7). ZoomLevelLog2 widens
// the coordinate unit as the spec's coarsening schedule; SimplifyUnits is
// the Douglas-Peucker distance threshold for this level, in the level's
// own coordinate units (spec §4.5).
type ZoomLevelConfig struct {
	ZoomLevelLog2 uint32
	SimplifyUnits int32
}

// Run executes the full per-zoom-level transform chain (spec §2 step 7):
// project once per level, merge touching lines, simplify, normalize
// polygons into convex pieces, then sort into final draw order. Ingest
// happens once upstream of Run and its GeoData is reused across every
// level, matching final_export.cpp's "parse once, export N levels"
// structure.
func Run(geo *model.GeoData, proj project.Projection, geoMin, geoMax project.GeoPoint, styles *style.Styles, levels []ZoomLevelConfig, logger *log.Logger) []model.Data {
	results := make([]model.Data, 0, len(levels))
	for _, lvl := range levels {
		data := Transform(geo, proj, geoMin, geoMax, lvl.ZoomLevelLog2)
		logger.Printf("transform: zoom level log2=%d: %d points, %d lines, %d areals", lvl.ZoomLevelLog2, len(data.Points), len(data.Lines), len(data.Areals))

		data = MergeLinear(&data)
		logger.Printf("linear merge: %d lines", len(data.Lines))

		data = Simplify(&data, lvl.SimplifyUnits)
		logger.Printf("simplify: %d lines, %d areals", len(data.Lines), len(data.Areals))

		data = Normalize(&data)
		logger.Printf("normalize: %d areal pieces", len(data.Areals))

		data = PhaseSort(&data, styles)
		logger.Printf("phase sort: %d points, %d lines, %d areals", len(data.Points), len(data.Lines), len(data.Areals))

		results = append(results, data)
	}
	return results
}
