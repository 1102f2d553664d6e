// Package ingest parses an OSM XML extract into model.GeoData (spec §4.1).
// Grounded on original_source/source/exporter/primary_export.cpp's
// three-pass structure (node table, way classification, point classification),
// translated from tinyxml2 scanning to Go's encoding/xml streaming decoder.
package ingest

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/orb"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/panzermaps/compiler/internal/model"
)

// osmNode, osmWay, osmMember and osmRelation mirror the subset of OSM XML
// element shapes ingest cares about; unrecognized elements and attributes
// are ignored by encoding/xml automatically.
type osmTag struct {
	K string `xml:"k,attr"`
	V string `xml:"v,attr"`
}

type osmNode struct {
	ID  int64    `xml:"id,attr"`
	Lon float64  `xml:"lon,attr"`
	Lat float64  `xml:"lat,attr"`
	Tag []osmTag `xml:"tag"`
}

type osmND struct {
	Ref int64 `xml:"ref,attr"`
}

type osmWay struct {
	ID  int64    `xml:"id,attr"`
	ND  []osmND  `xml:"nd"`
	Tag []osmTag `xml:"tag"`
}

type osmMember struct {
	Type string `xml:"type,attr"`
	Ref  int64  `xml:"ref,attr"`
	Role string `xml:"role,attr"`
}

type osmRelation struct {
	ID     int64       `xml:"id,attr"`
	Member []osmMember `xml:"member"`
	Tag    []osmTag    `xml:"tag"`
}

type osmRoot struct {
	XMLName  xml.Name      `xml:"osm"`
	Nodes    []osmNode     `xml:"node"`
	Ways     []osmWay      `xml:"way"`
	Relation []osmRelation `xml:"relation"`
}

func tagsOf(raw []osmTag) classify.Tags {
	if len(raw) == 0 {
		return nil
	}
	t := make(classify.Tags, len(raw))
	for _, kv := range raw {
		t[kv.K] = kv.V
	}
	return t
}

// Parse reads a full OSM XML document from r into a model.GeoData. Ways and
// relations referencing unknown node ids are skipped for those vertices
// (spec §4.1 "dangling references are dropped, not fatal"); a way that ends
// up with zero resolved vertices is skipped entirely.
func Parse(r io.Reader) (model.GeoData, error) {
	var root osmRoot
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return model.GeoData{}, fmt.Errorf("ingest: xml decode: %w", err)
	}

	nodes := make(map[int64]orb.Point, len(root.Nodes))
	for _, n := range root.Nodes {
		nodes[n.ID] = orb.Point{n.Lon, n.Lat}
	}

	var data model.GeoData

	// wayLine is resolved for every way, tagged or not, since relation
	// members reference bare geometry: a multipolygon's outer/inner ways
	// usually carry no tags of their own (those live on the relation).
	wayLine := make(map[int64]orb.LineString, len(root.Ways))
	for _, w := range root.Ways {
		line := resolveLine(w.ND, nodes)
		if len(line) > 0 {
			wayLine[w.ID] = line
		}

		tags := tagsOf(w.Tag)
		linearClass, arealClass := classify.WayClass(tags)
		if linearClass == classify.LinearNone && arealClass == classify.ArealNone {
			if len(tags) > 0 {
				data.UnknownCount++
			}
			continue
		}
		if len(line) == 0 {
			continue
		}

		if linearClass != classify.LinearNone {
			data.Lines = append(data.Lines, model.GeoLinearObject{
				Class:  linearClass,
				ZLevel: model.ZeroZLevel,
				Line:   line,
			})
			continue
		}

		// Areal way: a closed ring needs at least 3 distinct vertices plus
		// the closing duplicate (spec §3 "Areal object" count >= 3).
		if len(line) < 4 || !pointsEqual(line[0], line[len(line)-1]) {
			continue
		}
		data.Areals = append(data.Areals, model.GeoArealObject{
			Class:  arealClass,
			ZLevel: model.ZeroZLevel,
			Geometry: model.GeoArealGeometry{
				Polygon: orb.Ring(line),
			},
		})
	}

	data.Areals = append(data.Areals, relationMultipolygons(root.Relation, wayLine)...)

	for _, n := range root.Nodes {
		tags := tagsOf(n.Tag)
		class := classify.NodeClass(tags)
		if class == classify.PointNone {
			if len(tags) > 0 {
				data.UnknownCount++
			}
			continue
		}
		data.Points = append(data.Points, model.GeoPointObject{
			Class: class,
			Point: orb.Point{n.Lon, n.Lat},
		})
	}

	return data, nil
}

func pointsEqual(a, b orb.Point) bool { return a[0] == b[0] && a[1] == b[1] }

func resolveLine(nds []osmND, nodes map[int64]orb.Point) orb.LineString {
	line := make(orb.LineString, 0, len(nds))
	for _, nd := range nds {
		if p, ok := nodes[nd.Ref]; ok {
			line = append(line, p)
		}
	}
	return line
}

// relationMultipolygons builds areal objects for "multipolygon" relations
// (spec §4.1 "Supplemented feature": relation-based multipolygons, absent
// from the way-only original_source but named explicitly by spec.md's areal
// object model, which already supports outer/inner rings).
func relationMultipolygons(relations []osmRelation, wayLine map[int64]orb.LineString) []model.GeoArealObject {
	var out []model.GeoArealObject
	for _, rel := range relations {
		tags := tagsOf(rel.Tag)
		if tags["type"] != "multipolygon" {
			continue
		}
		_, arealClass := classify.WayClass(tags)
		if arealClass == classify.ArealNone {
			continue
		}

		var outers, inners orb.Polygon
		for _, m := range rel.Member {
			if m.Type != "way" {
				continue
			}
			line, ok := wayLine[m.Ref]
			if !ok || len(line) < 4 || !pointsEqual(line[0], line[len(line)-1]) {
				continue
			}
			ring := orb.Ring(line)
			switch m.Role {
			case "inner":
				inners = append(inners, ring)
			default:
				outers = append(outers, ring)
			}
		}
		if len(outers) == 0 {
			continue
		}

		multi := make(orb.MultiPolygon, 0, len(outers))
		for _, outer := range outers {
			poly := orb.Polygon{outer}
			poly = append(poly, inners...)
			multi = append(multi, poly)
		}

		out = append(out, model.GeoArealObject{
			Class:  arealClass,
			ZLevel: model.ZeroZLevel,
			Geometry: model.GeoArealGeometry{
				IsMulti: true,
				Multi:   multi,
			},
		})
	}
	return out
}
