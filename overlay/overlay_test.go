package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/overlay"
)

// TestOverlay_AdjacentSquares covers two unit squares sharing one edge:
// the union welds the wall away, the intersection collapses to the shared
// wall, the difference leaves the first square untouched.
func TestOverlay_AdjacentSquares(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 1))
	b := mustPolygon(t, square(1, 0, 1))

	t.Run("union welds the shared wall", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.Union)
		require.NoError(t, err)

		polys := resultPolygons(res)
		require.Len(t, polys, 1)
		assert.InDelta(t, 2.0, polygonArea(polys[0]), 1e-9)
		assert.Empty(t, polys[0].Holes)

		pl := geom.NewPointLocator()
		assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(1, 0.5), res),
			"the wall is interior to the union")
	})

	t.Run("intersection is the shared wall", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.Intersection)
		require.NoError(t, err)

		lines := resultLines(res)
		require.Len(t, lines, 1)
		endpoints := []geom.Coordinate{lines[0].Pts[0], lines[0].Pts[len(lines[0].Pts)-1]}
		assert.Contains(t, endpoints, geom.Coord(1, 0))
		assert.Contains(t, endpoints, geom.Coord(1, 1))
		assert.InDelta(t, 1.0, lineLength(lines[0]), 1e-9)
		assert.Empty(t, resultPolygons(res), "no area in common")
	})

	t.Run("difference leaves the first square", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.Difference)
		require.NoError(t, err)

		polys := resultPolygons(res)
		require.Len(t, polys, 1)
		assert.InDelta(t, 1.0, polygonArea(polys[0]), 1e-9)

		pl := geom.NewPointLocator()
		assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(0.5, 0.5), res))
		assert.Equal(t, geom.LocExterior, pl.Locate(geom.Coord(1.5, 0.5), res))
	})

	t.Run("symmetric difference covers both squares", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.SymDifference)
		require.NoError(t, err)

		assert.InDelta(t, 2.0, geometryArea(res), 1e-9)

		pl := geom.NewPointLocator()
		assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(0.5, 0.5), res))
		assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(1.5, 0.5), res))
		assert.Equal(t, geom.LocExterior, pl.Locate(geom.Coord(2.5, 0.5), res))
	})
}

// TestOverlay_ConcentricSquares covers a small square inside a big one:
// difference punches a hole, intersection returns the small square, union
// the big one.
func TestOverlay_ConcentricSquares(t *testing.T) {
	big := mustPolygon(t, square(0, 0, 10))
	small := mustPolygon(t, square(2, 2, 6))

	t.Run("difference punches a hole", func(t *testing.T) {
		res, err := overlay.Overlay(big, small, overlay.Difference)
		require.NoError(t, err)

		polys := resultPolygons(res)
		require.Len(t, polys, 1)
		require.Len(t, polys[0].Holes, 1)
		assert.InDelta(t, 64.0, polygonArea(polys[0]), 1e-9)

		pl := geom.NewPointLocator()
		assert.Equal(t, geom.LocInterior, pl.Locate(geom.Coord(1, 1), res))
		assert.Equal(t, geom.LocExterior, pl.Locate(geom.Coord(5, 5), res), "the hole is outside")
	})

	t.Run("intersection is the small square", func(t *testing.T) {
		res, err := overlay.Overlay(big, small, overlay.Intersection)
		require.NoError(t, err)

		polys := resultPolygons(res)
		require.Len(t, polys, 1)
		assert.Empty(t, polys[0].Holes)
		assert.InDelta(t, 36.0, polygonArea(polys[0]), 1e-9)
	})

	t.Run("union is the big square", func(t *testing.T) {
		res, err := overlay.Overlay(big, small, overlay.Union)
		require.NoError(t, err)

		polys := resultPolygons(res)
		require.Len(t, polys, 1)
		assert.Empty(t, polys[0].Holes)
		assert.InDelta(t, 100.0, polygonArea(polys[0]), 1e-9)
	})
}

// TestOverlay_CrossingLines covers two diagonals of a square: the
// intersection is their crossing point, the union the four arms meeting
// there.
func TestOverlay_CrossingLines(t *testing.T) {
	l1 := mustLine(t, geom.Coord(0, 0), geom.Coord(10, 10))
	l2 := mustLine(t, geom.Coord(0, 10), geom.Coord(10, 0))

	t.Run("intersection is the crossing point", func(t *testing.T) {
		res, err := overlay.Overlay(l1, l2, overlay.Intersection)
		require.NoError(t, err)

		points := resultPoints(res)
		require.Len(t, points, 1)
		assert.Equal(t, geom.Coord(5, 5), points[0].C)
		assert.Empty(t, resultLines(res), "no shared linework")
	})

	t.Run("union is four arms meeting at the crossing", func(t *testing.T) {
		res, err := overlay.Overlay(l1, l2, overlay.Union)
		require.NoError(t, err)

		lines := resultLines(res)
		require.Len(t, lines, 4)

		total := 0.0
		for _, l := range lines {
			total += lineLength(l)
			endpoints := []geom.Coordinate{l.Pts[0], l.Pts[len(l.Pts)-1]}
			assert.Contains(t, endpoints, geom.Coord(5, 5), "every arm touches the crossing")
		}
		assert.InDelta(t, 2*lineLength(l1), total, 1e-9)
		assert.Empty(t, resultPoints(res), "the node is covered by the result lines")
	})
}

// TestOverlay_PointAndPolygon covers a point inside a polygon.
func TestOverlay_PointAndPolygon(t *testing.T) {
	pt := geom.NewPoint(geom.Coord(5, 5))
	poly := mustPolygon(t, square(0, 0, 10))

	t.Run("intersection keeps the point", func(t *testing.T) {
		res, err := overlay.Overlay(pt, poly, overlay.Intersection)
		require.NoError(t, err)

		points := resultPoints(res)
		require.Len(t, points, 1)
		assert.Equal(t, geom.Coord(5, 5), points[0].C)
	})

	t.Run("point minus polygon is empty", func(t *testing.T) {
		res, err := overlay.Overlay(pt, poly, overlay.Difference)
		require.NoError(t, err)
		assert.True(t, res.IsEmpty())
	})
}

// TestOverlay_DisjointSquares covers two squares far apart.
func TestOverlay_DisjointSquares(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 1))
	b := mustPolygon(t, square(2, 2, 1))

	t.Run("intersection is empty", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.Intersection)
		require.NoError(t, err)
		assert.True(t, res.IsEmpty())
	})

	t.Run("union keeps both", func(t *testing.T) {
		res, err := overlay.Overlay(a, b, overlay.Union)
		require.NoError(t, err)

		require.IsType(t, &geom.MultiPolygon{}, res)
		polys := resultPolygons(res)
		require.Len(t, polys, 2)
		assert.InDelta(t, 2.0, geometryArea(res), 1e-9)
	})
}

// TestOverlay_LineInsidePolygon verifies dimensional mixing: a line inside
// an area intersects to itself and vanishes from the difference.
func TestOverlay_LineInsidePolygon(t *testing.T) {
	line := mustLine(t, geom.Coord(2, 5), geom.Coord(8, 5))
	poly := mustPolygon(t, square(0, 0, 10))

	res, err := overlay.Overlay(line, poly, overlay.Intersection)
	require.NoError(t, err)

	lines := resultLines(res)
	require.Len(t, lines, 1)
	assert.InDelta(t, 6.0, lineLength(lines[0]), 1e-9)

	res, err = overlay.Overlay(line, poly, overlay.Difference)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty(), "the polygon swallows the line")
}

// TestOverlay_ResultType verifies the factory picks the most specific
// result type.
func TestOverlay_ResultType(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 1))
	b := mustPolygon(t, square(2, 2, 1))

	union, err := overlay.Overlay(a, b, overlay.Union)
	require.NoError(t, err)
	assert.IsType(t, &geom.MultiPolygon{}, union)

	diff, err := overlay.Overlay(a, b, overlay.Difference)
	require.NoError(t, err)
	assert.IsType(t, &geom.Polygon{}, diff)

	empty, err := overlay.Overlay(a, b, overlay.Intersection)
	require.NoError(t, err)
	assert.IsType(t, &geom.GeometryCollection{}, empty)
	assert.True(t, empty.IsEmpty())
}
