// Package mapcompiler is the public entry point for turning an OSM XML
// extract and a style document into a PanzerMaps-Data binary map file
// (spec §2 "Pipeline"). It wires together internal/ingest, internal/pipeline,
// internal/chunk and internal/mapfile behind one Compile call, the way the
// teacher's pkg/s57 wraps internal/parser behind Parser.Parse.
package mapcompiler

import (
	"log"
	"os"

	"github.com/panzermaps/compiler/internal/chunk"
	"github.com/panzermaps/compiler/internal/compileerr"
	"github.com/panzermaps/compiler/internal/ingest"
	"github.com/panzermaps/compiler/internal/mapfile"
	"github.com/panzermaps/compiler/internal/pipeline"
	"github.com/panzermaps/compiler/internal/project"
	"github.com/panzermaps/compiler/internal/style"
)

// Options configures one Compile run (spec §6.4 "CLI surface").
type Options struct {
	// ZoomLevels is the number of output zoom levels to produce, each one
	// ZoomLevelLog2 coarser than the last starting at 0 (spec §2 step 7).
	ZoomLevels int
	// Projection selects which of the three closed projections to use
	// (spec §4.2). Defaults to Mercator.
	Projection project.Kind
	// SkipUnknownTags tolerates OSM elements whose tags match nothing in
	// the classification table instead of counting them as a soft ingest
	// failure worth a warning (spec §7 "Ingest soft"). Soft failures are
	// never fatal either way; this only controls whether they're logged.
	SkipUnknownTags bool

	Logger *log.Logger
}

// DefaultOptions returns the options a bare CLI invocation uses.
func DefaultOptions() Options {
	return Options{
		ZoomLevels: 4,
		Projection: project.KindMercator,
	}
}

// Compiler runs the full OSM-to-PanzerMaps-Data pipeline (spec §2).
type Compiler struct {
	opts Options
}

// New builds a Compiler with the given options.
func New(opts Options) *Compiler {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if opts.ZoomLevels < 1 {
		opts.ZoomLevels = 1
	}
	return &Compiler{opts: opts}
}

// Compile reads osmPath and stylePath and writes a compiled data file to
// outputPath (spec §2, §6.4). Errors are one of the compileerr fatal
// types; soft ingest failures never reach this return value.
func (c *Compiler) Compile(osmPath, stylePath, outputPath string) error {
	styles, err := style.Load(stylePath)
	if err != nil {
		return &compileerr.ConfigFatalError{Path: stylePath, Reason: err.Error()}
	}

	osmFile, err := os.Open(osmPath)
	if err != nil {
		return &compileerr.IngestFatalError{Path: osmPath, Reason: err.Error()}
	}
	defer osmFile.Close()

	geo, err := ingest.Parse(osmFile)
	if err != nil {
		return &compileerr.IngestFatalError{Path: osmPath, Reason: err.Error()}
	}
	if geo.UnknownCount > 0 && !c.opts.SkipUnknownTags {
		c.opts.Logger.Printf("ingest: %d elements matched no configured class", geo.UnknownCount)
	}

	// No geometry at all (spec §8 scenario 1, "OSM with no ways/nodes") is
	// a valid, if degenerate, input: fall back to a zero-sized bbox at the
	// origin and let the pipeline produce a header with zero-chunk zoom
	// levels rather than treating empty input as fatal.
	geoMin, geoMax := project.GeoPoint{}, project.GeoPoint{}
	if min, max, ok := geo.Bounds(); ok {
		geoMin = project.GeoPoint{Lon: min[0], Lat: min[1]}
		geoMax = project.GeoPoint{Lon: max[0], Lat: max[1]}
	}
	proj := project.New(c.opts.Projection, geoMin, geoMax)

	levels := make([]pipeline.ZoomLevelConfig, c.opts.ZoomLevels)
	for i := range levels {
		levels[i] = pipeline.ZoomLevelConfig{
			ZoomLevelLog2: uint32(i),
			SimplifyUnits: int32(1) << uint(i),
		}
	}

	datas := pipeline.Run(&geo, proj, geoMin, geoMax, &styles, levels, c.opts.Logger)

	levelInputs := make([]mapfile.ZoomLevelInput, len(datas))
	for i := range datas {
		chunks := chunk.BuildChunks(&datas[i])
		levelInputs[i] = mapfile.ZoomLevelInput{Data: &datas[i], Chunks: chunks}
		c.opts.Logger.Printf("zoom level %d: %d chunks", i, len(chunks))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return &compileerr.OutputFatalError{Path: outputPath, Reason: err.Error()}
	}
	defer out.Close()

	if err := mapfile.Write(out, c.opts.Projection, geoMin, geoMax, levelInputs, &styles, nil); err != nil {
		return &compileerr.OutputFatalError{Path: outputPath, Reason: err.Error()}
	}

	return nil
}

// Compile is a convenience wrapper running a one-shot compile with default
// options, for callers that don't need to tune anything.
func Compile(osmPath, stylePath, outputPath string) error {
	return New(DefaultOptions()).Compile(osmPath, stylePath, outputPath)
}
