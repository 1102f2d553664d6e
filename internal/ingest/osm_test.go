package ingest

import (
	"strings"
	"testing"

	"github.com/panzermaps/compiler/internal/classify"
	"github.com/stretchr/testify/require"
)

const sampleOSM = `<?xml version="1.0"?>
<osm version="0.6">
  <node id="1" lon="10.0" lat="50.0"/>
  <node id="2" lon="10.1" lat="50.0"/>
  <node id="3" lon="10.1" lat="50.1"/>
  <node id="4" lon="10.0" lat="50.1"/>
  <node id="5" lon="10.05" lat="50.05">
    <tag k="highway" v="bus_stop"/>
  </node>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="primary"/>
  </way>
  <way id="11">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <nd ref="4"/>
    <nd ref="1"/>
    <tag k="building" v="yes"/>
  </way>
</osm>`

func TestParseBasic(t *testing.T) {
	data, err := Parse(strings.NewReader(sampleOSM))
	require.NoError(t, err)

	require.Len(t, data.Lines, 1)
	require.Equal(t, classify.LinearRoad, data.Lines[0].Class)
	require.Len(t, data.Lines[0].Line, 2)

	require.Len(t, data.Areals, 1)
	require.Equal(t, classify.ArealBuilding, data.Areals[0].Class)
	require.False(t, data.Areals[0].Geometry.IsMulti)
	require.Len(t, data.Areals[0].Geometry.Polygon, 5)

	require.Len(t, data.Points, 1)
	require.Equal(t, classify.PointStationPlatform, data.Points[0].Class)
}

func TestParseSkipsDanglingRefs(t *testing.T) {
	const doc = `<osm>
  <node id="1" lon="0" lat="0"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="999"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`
	data, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, data.Lines, 1)
	require.Len(t, data.Lines[0].Line, 1)
}

func TestParseEmptyDocument(t *testing.T) {
	data, err := Parse(strings.NewReader(`<osm></osm>`))
	require.NoError(t, err)
	require.Empty(t, data.Points)
	require.Empty(t, data.Lines)
	require.Empty(t, data.Areals)
}

func TestRelationMultipolygon(t *testing.T) {
	const doc = `<osm>
  <node id="1" lon="0" lat="0"/>
  <node id="2" lon="1" lat="0"/>
  <node id="3" lon="1" lat="1"/>
  <node id="4" lon="0" lat="1"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
  </way>
  <relation id="20">
    <member type="way" ref="10" role="outer"/>
    <tag k="type" v="multipolygon"/>
    <tag k="natural" v="water"/>
  </relation>
</osm>`
	data, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, data.Areals, 1)
	require.True(t, data.Areals[0].Geometry.IsMulti)
	require.Equal(t, classify.ArealWater, data.Areals[0].Class)
}
