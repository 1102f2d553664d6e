package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/panzermaps/compiler/internal/model"
)

func v(x, y int32) model.Vertex { return model.Vertex{X: x, Y: y} }

func TestClipPolylineToBBoxKeepsFullyInsideLine(t *testing.T) {
	line := []model.Vertex{v(10, 10), v(20, 20)}
	out := ClipPolylineToBBox(line, 0, 0, 100, 100)
	require.Len(t, out, 1)
	require.Equal(t, line, out[0])
}

func TestClipPolylineToBBoxSplitsCrossingLine(t *testing.T) {
	line := []model.Vertex{v(-10, 50), v(110, 50)}
	out := ClipPolylineToBBox(line, 0, 0, 100, 100)
	require.Len(t, out, 1)
	require.Len(t, out[0], 2)
	require.Equal(t, int32(0), out[0][0].X)
	require.Equal(t, int32(100), out[0][1].X)
}

func TestClipPolylineToBBoxDropsFullyOutsideLine(t *testing.T) {
	line := []model.Vertex{v(200, 200), v(300, 300)}
	out := ClipPolylineToBBox(line, 0, 0, 100, 100)
	require.Empty(t, out)
}

func TestClipConvexPolygonToBBoxClipsCorner(t *testing.T) {
	square := []model.Vertex{v(-10, -10), v(50, -10), v(50, 50), v(-10, 50)}
	out := ClipConvexPolygonToBBox(square, 0, 0, 100, 100)
	require.GreaterOrEqual(t, len(out), 3)
	for _, p := range out {
		require.GreaterOrEqual(t, p.X, int32(0))
		require.GreaterOrEqual(t, p.Y, int32(0))
	}
}

func TestClipConvexPolygonToBBoxDropsOutsidePolygon(t *testing.T) {
	square := []model.Vertex{v(200, 200), v(300, 200), v(300, 300), v(200, 300)}
	out := ClipConvexPolygonToBBox(square, 0, 0, 100, 100)
	require.Empty(t, out)
}
