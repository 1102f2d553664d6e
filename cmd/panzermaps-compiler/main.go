// Command panzermaps-compiler turns an OSM XML extract into a compiled
// PanzerMaps-Data binary map file (spec §6.4 "CLI surface").
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panzermaps/compiler/internal/project"
	"github.com/panzermaps/compiler/pkg/mapcompiler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		stylePath   string
		outputPath  string
		skipUnknown bool
		zoomLevels  int
		projection  string
	)

	cmd := &cobra.Command{
		Use:   "panzermaps-compiler <osm-file>",
		Short: "Compile an OSM XML extract into a PanzerMaps-Data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseProjectionKind(projection)
			if err != nil {
				return err
			}

			opts := mapcompiler.DefaultOptions()
			opts.ZoomLevels = zoomLevels
			opts.Projection = kind
			opts.SkipUnknownTags = skipUnknown
			opts.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)

			if stylePath == "" {
				return fmt.Errorf("--style is required")
			}
			if outputPath == "" {
				outputPath = defaultOutputPath(args[0])
			}

			return mapcompiler.New(opts).Compile(args[0], stylePath, outputPath)
		},
	}

	cmd.Flags().StringVar(&stylePath, "style", "", "path to the style JSON document (required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the compiled data file to (defaults to the input's basename + .pm)")
	cmd.Flags().BoolVar(&skipUnknown, "skip-unknown", false, "tolerate OSM elements with no matching class instead of warning about them")
	cmd.Flags().IntVar(&zoomLevels, "zoom-levels", mapcompiler.DefaultOptions().ZoomLevels, "number of output zoom levels to produce")
	cmd.Flags().StringVar(&projection, "projection", "mercator", "projection to use: mercator, stereographic or albers")

	return cmd
}

func defaultOutputPath(osmPath string) string {
	base := filepath.Base(osmPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".pm"
}

func parseProjectionKind(name string) (project.Kind, error) {
	switch name {
	case "mercator":
		return project.KindMercator, nil
	case "stereographic":
		return project.KindStereographic, nil
	case "albers":
		return project.KindAlbers, nil
	default:
		return 0, fmt.Errorf("unknown projection %q", name)
	}
}
