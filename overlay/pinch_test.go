package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/overlay"
)

// TestOverlay_HoleTouchingShell subtracts a triangle whose apex lies on
// the square's boundary. The resulting ring pinches at the touch point,
// so the maximal ring must decompose into a minimal shell and hole.
func TestOverlay_HoleTouchingShell(t *testing.T) {
	big := mustPolygon(t, square(0, 0, 10))
	triangle := mustPolygon(t, []geom.Coordinate{
		geom.Coord(0, 5), geom.Coord(5, 3), geom.Coord(5, 7), geom.Coord(0, 5),
	})

	res, err := overlay.Overlay(big, triangle, overlay.Difference)
	require.NoError(t, err)

	polys := resultPolygons(res)
	require.Len(t, polys, 1)
	require.Len(t, polys[0].Holes, 1, "the triangle becomes a hole")
	assert.InDelta(t, 90.0, polygonArea(polys[0]), 1e-9)

	assert.Negative(t, signedRingArea(polys[0].Shell.Pts), "shell stays clockwise")
	assert.Positive(t, signedRingArea(polys[0].Holes[0].Pts), "hole stays counter-clockwise")

	pl := geom.NewPointLocator()
	assert.Equal(t, geom.LocExterior, pl.Locate(geom.Coord(4, 5), res), "inside the triangle")
	assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(8, 5), res))
	assert.Equal(t, geom.LocBoundary, pl.Locate(geom.Coord(0, 5), res), "the pinch point stays boundary")
}
