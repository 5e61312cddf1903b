package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/overlay"
)

// overlayArea computes an overlay and returns the polygonal area of the
// result.
func overlayArea(t *testing.T, a, b geom.Geometry, op overlay.Op) float64 {
	t.Helper()

	res, err := overlay.Overlay(a, b, op)
	require.NoError(t, err)

	return geometryArea(res)
}

// TestOverlay_SetTheoreticLaws verifies the area identities of the four
// operations on an overlapping pair.
func TestOverlay_SetTheoreticLaws(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 4))
	b := mustPolygon(t, square(2, 2, 4))
	// Overlap is the square [2,4]x[2,4], area 4.

	areaA := 16.0
	areaB := 16.0
	areaInt := overlayArea(t, a, b, overlay.Intersection)
	areaUnion := overlayArea(t, a, b, overlay.Union)
	areaDiff := overlayArea(t, a, b, overlay.Difference)
	areaDiffBA := overlayArea(t, b, a, overlay.Difference)
	areaSym := overlayArea(t, a, b, overlay.SymDifference)

	assert.InDelta(t, 4.0, areaInt, 1e-9)
	assert.InDelta(t, areaA+areaB-areaInt, areaUnion, 1e-9, "inclusion-exclusion")
	assert.InDelta(t, areaA-areaInt, areaDiff, 1e-9)
	assert.InDelta(t, areaB-areaInt, areaDiffBA, 1e-9)
	assert.InDelta(t, areaDiff+areaDiffBA, areaSym, 1e-9, "symmetric difference splits into the two differences")
}

// TestOverlay_IntersectionCommutes verifies intersection is commutative.
func TestOverlay_IntersectionCommutes(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10))
	b := mustPolygon(t, square(2, 2, 6))

	assert.InDelta(t,
		overlayArea(t, a, b, overlay.Intersection),
		overlayArea(t, b, a, overlay.Intersection), 1e-9)
}

// TestOverlay_DifferencePlusIntersectionRestoresA verifies
// (a-b) ∪ (a∩b) = a by area.
func TestOverlay_DifferencePlusIntersectionRestoresA(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10))
	b := mustPolygon(t, square(2, 2, 6))

	diff, err := overlay.Overlay(a, b, overlay.Difference)
	require.NoError(t, err)
	inter, err := overlay.Overlay(a, b, overlay.Intersection)
	require.NoError(t, err)

	restored, err := overlay.Overlay(diff, inter, overlay.Union)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, geometryArea(restored), 1e-9)
}

// TestOverlay_Idempotence verifies a op a behaves like set identity.
func TestOverlay_Idempotence(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10))

	assert.InDelta(t, 100.0, overlayArea(t, a, a, overlay.Union), 1e-9)
	assert.InDelta(t, 100.0, overlayArea(t, a, a, overlay.Intersection), 1e-9)

	diff, err := overlay.Overlay(a, a, overlay.Difference)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

// TestOverlay_EmptyAbsorption verifies the empty geometry is a unit for
// union and a zero for intersection.
func TestOverlay_EmptyAbsorption(t *testing.T) {
	a := mustPolygon(t, square(0, 0, 10))
	empty := &geom.GeometryCollection{}

	assert.InDelta(t, 100.0, overlayArea(t, a, empty, overlay.Union), 1e-9)
	assert.InDelta(t, 100.0, overlayArea(t, a, empty, overlay.Difference), 1e-9)

	inter, err := overlay.Overlay(a, empty, overlay.Intersection)
	require.NoError(t, err)
	assert.True(t, inter.IsEmpty())

	rev, err := overlay.Overlay(empty, a, overlay.Difference)
	require.NoError(t, err)
	assert.True(t, rev.IsEmpty())
}

// TestOverlay_OrientationInvariant verifies every result shell is
// clockwise and every hole counter-clockwise.
func TestOverlay_OrientationInvariant(t *testing.T) {
	big := mustPolygon(t, square(0, 0, 10))
	small := mustPolygon(t, square(2, 2, 6))
	offset := mustPolygon(t, square(5, 5, 10))

	cases := []struct {
		name string
		a, b geom.Geometry
		op   overlay.Op
	}{
		{"difference with hole", big, small, overlay.Difference},
		{"overlapping union", big, offset, overlay.Union},
		{"overlapping intersection", big, offset, overlay.Intersection},
		{"overlapping symdifference", big, offset, overlay.SymDifference},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := overlay.Overlay(tc.a, tc.b, tc.op)
			require.NoError(t, err)

			for _, p := range resultPolygons(res) {
				assert.Negative(t, signedRingArea(p.Shell.Pts), "shells run clockwise")
				for _, h := range p.Holes {
					assert.Positive(t, signedRingArea(h.Pts), "holes run counter-clockwise")
				}
			}
		})
	}
}

// TestOverlay_CoverageInvariant verifies no result point lies covered by a
// result line or polygon, and no result line is covered by a result
// polygon.
func TestOverlay_CoverageInvariant(t *testing.T) {
	// A geometry collection mixing a polygon, a line leaving it, and an
	// isolated point, intersected with a big covering square.
	lineOut := mustLine(t, geom.Coord(5, 5), geom.Coord(30, 5))
	pt := geom.NewPoint(geom.Coord(40, 5))
	mixed := &geom.GeometryCollection{Geometries: []geom.Geometry{
		mustPolygon(t, square(0, 0, 10)),
		lineOut,
		pt,
	}}
	cover := mustPolygon(t, square(-1, -1, 50))

	res, err := overlay.Overlay(mixed, cover, overlay.Intersection)
	require.NoError(t, err)

	polys := resultPolygons(res)
	lines := resultLines(res)
	points := resultPoints(res)

	pl := geom.NewPointLocator()
	for _, p := range points {
		for _, l := range lines {
			assert.Equal(t, geom.LocExterior, pl.Locate(p.C, l), "point covered by result line")
		}
		for _, poly := range polys {
			assert.Equal(t, geom.LocExterior, pl.Locate(p.C, poly), "point covered by result polygon")
		}
	}
	for _, l := range lines {
		mid := geom.Coord((l.Pts[0].X+l.Pts[len(l.Pts)-1].X)/2, (l.Pts[0].Y+l.Pts[len(l.Pts)-1].Y)/2)
		for _, poly := range polys {
			assert.NotEqual(t, geom.LocInterior, pl.Locate(mid, poly), "line covered by result polygon")
		}
	}
}
