package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testOSM = `<?xml version="1.0"?>
<osm version="0.6">
  <node id="1" lon="10.0" lat="50.0"/>
  <node id="2" lon="10.1" lat="50.0"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="primary"/>
  </way>
</osm>`

const testStyle = `{
  "linear_styles": { "Road": { "color": "#000000", "width_m": 4 } }
}`

func TestRootCmdWritesDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	osmPath := filepath.Join(dir, "extract.osm")
	stylePath := filepath.Join(dir, "style.json")
	require.NoError(t, os.WriteFile(osmPath, []byte(testOSM), 0o644))
	require.NoError(t, os.WriteFile(stylePath, []byte(testStyle), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cmd := newRootCmd()
	cmd.SetArgs([]string{osmPath, "--style", stylePath})
	require.NoError(t, cmd.Execute())

	_, err = os.Stat(filepath.Join(dir, "extract.pm"))
	require.NoError(t, err)
}

func TestRootCmdRequiresStyleFlag(t *testing.T) {
	dir := t.TempDir()
	osmPath := filepath.Join(dir, "extract.osm")
	require.NoError(t, os.WriteFile(osmPath, []byte(testOSM), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{osmPath})
	require.Error(t, cmd.Execute())
}

func TestDefaultOutputPath(t *testing.T) {
	require.Equal(t, "extract.pm", defaultOutputPath("/some/dir/extract.osm"))
}

func TestParseProjectionKind(t *testing.T) {
	_, err := parseProjectionKind("nonsense")
	require.Error(t, err)

	kind, err := parseProjectionKind("albers")
	require.NoError(t, err)
	require.Equal(t, uint8(2), uint8(kind))
}
