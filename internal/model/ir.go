// Package model holds the intermediate representations passed between
// compiler passes (spec §3). Two shapes exist: GeoData (geodetic, produced
// by ingest) and Data (projected/quantized, produced by every later pass).
// A pass never mutates its input in place; it builds a fresh Data and
// returns it, so the previous IR can be discarded (spec §3 "Lifecycle").
package model

import "github.com/panzermaps/compiler/internal/classify"

// Vertex is a projected, quantized, re-based point (spec §3 "Projected
// point" after pass 4.3's linear re-basing). Stored as plain int32 pairs
// rather than a richer type because every later pass does 64-bit-widened
// integer arithmetic directly on X/Y (spec §9 overflow discipline).
type Vertex struct {
	X, Y int32
}

// Part identifies a contiguous run of vertices in a vertex pool: a line, a
// simple polygon ring, or one ring of a multipolygon (spec §3 "Object").
type Part struct {
	FirstVertex int
	VertexCount int
}

// Multipolygon is the areal tagged-variant's multi-ring case (spec §9).
type Multipolygon struct {
	Outers []Part
	Inners []Part
}

// PointObject is a classified point with one vertex.
type PointObject struct {
	Class       classify.PointClass
	VertexIndex int
}

// LinearObject is a classified polyline.
type LinearObject struct {
	Class  classify.LinearClass
	ZLevel int
	Part
}

// ArealObject is a classified polygon or multipolygon. Multi is nil for
// the simple-polygon case, in which case Part names the single ring.
type ArealObject struct {
	Class  classify.ArealClass
	ZLevel int
	Part
	Multi *Multipolygon
}

// IsMultipolygon reports whether this object carries a Multi ring set
// rather than a single Part ring.
func (a *ArealObject) IsMultipolygon() bool { return a.Multi != nil }

// Data is the projected IR container for a single zoom level (spec §3
// "IR container"). Each object kind owns its own vertex pool; indices
// never cross pools.
type Data struct {
	Points        []PointObject
	PointVertices []Vertex

	Lines        []LinearObject
	LineVertices []Vertex

	Areals        []ArealObject
	ArealVertices []Vertex

	// Projection re-basing parameters for this zoom level (spec §4.2).
	MinPoint Vertex // base-projection min corner, pre-unit-division
	MaxPoint Vertex // base-projection max corner
	// UnitSize is the divisor applied to raw base-projection coordinates
	// to obtain this zoom level's Vertex units (spec §4.2 "Unit size").
	UnitSize int32
	// MetersPerUnit is the real-world size of one coordinate unit at the
	// data center, used by the renderer to size line widths (spec §4.2).
	MetersPerUnit float32
	// ZoomLevelLog2 is this IR's position in the zoom stack; coordinate
	// scale for level L is (base scale) << ZoomLevelLog2 (spec §2 step 7).
	ZoomLevelLog2 uint32
}

// cloneMeta returns a Data carrying only d's scalar metadata (re-basing
// window, unit size, meters per unit, zoom level); its object slices and
// vertex pools are empty, for the calling pass to fill.
func (d *Data) cloneMeta() Data {
	return Data{
		MinPoint:      d.MinPoint,
		MaxPoint:      d.MaxPoint,
		UnitSize:      d.UnitSize,
		MetersPerUnit: d.MetersPerUnit,
		ZoomLevelLog2: d.ZoomLevelLog2,
	}
}

// NewData returns an empty Data carrying over in's scalar metadata, ready
// for a pass to append fresh objects and vertices into.
func NewData(in *Data) Data { return in.cloneMeta() }
