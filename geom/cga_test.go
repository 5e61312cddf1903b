package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marakyss/planar/geom"
)

// unitSquare is the closed CCW ring of the unit square.
func unitSquare() []geom.Coordinate {
	return []geom.Coordinate{
		geom.Coord(0, 0), geom.Coord(1, 0), geom.Coord(1, 1), geom.Coord(0, 1), geom.Coord(0, 0),
	}
}

// TestOrientationIndex covers the three orientation classes.
func TestOrientationIndex(t *testing.T) {
	p1, p2 := geom.Coord(0, 0), geom.Coord(10, 0)

	assert.Equal(t, geom.OrientCCW, geom.OrientationIndex(p1, p2, geom.Coord(5, 5)), "left of the line")
	assert.Equal(t, geom.OrientClockwise, geom.OrientationIndex(p1, p2, geom.Coord(5, -5)), "right of the line")
	assert.Equal(t, geom.OrientCollinear, geom.OrientationIndex(p1, p2, geom.Coord(20, 0)), "on the line")
}

// TestIsCCW verifies ring orientation detection in both directions.
func TestIsCCW(t *testing.T) {
	ccw := unitSquare()
	assert.True(t, geom.IsCCW(ccw), "counter-clockwise square")

	cw := []geom.Coordinate{
		geom.Coord(0, 0), geom.Coord(0, 1), geom.Coord(1, 1), geom.Coord(1, 0), geom.Coord(0, 0),
	}
	assert.False(t, geom.IsCCW(cw), "clockwise square")
}

// TestLocatePointInRing covers interior, exterior, edge and vertex cases.
func TestLocatePointInRing(t *testing.T) {
	ring := unitSquare()

	cases := []struct {
		name string
		p    geom.Coordinate
		want geom.Location
	}{
		{"centre", geom.Coord(0.5, 0.5), geom.LocInterior},
		{"outside right", geom.Coord(2, 0.5), geom.LocExterior},
		{"outside above", geom.Coord(0.5, 2), geom.LocExterior},
		{"on bottom edge", geom.Coord(0.5, 0), geom.LocBoundary},
		{"on right edge", geom.Coord(1, 0.5), geom.LocBoundary},
		{"at a vertex", geom.Coord(0, 0), geom.LocBoundary},
		{"level with top edge, outside", geom.Coord(-1, 1), geom.LocExterior},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.LocatePointInRing(tc.p, ring))
		})
	}
}

// TestIsOnLine verifies point-on-chain detection including vertices and
// segment interiors.
func TestIsOnLine(t *testing.T) {
	chain := []geom.Coordinate{geom.Coord(0, 0), geom.Coord(10, 10), geom.Coord(20, 10)}

	assert.True(t, geom.IsOnLine(geom.Coord(5, 5), chain), "interior of first segment")
	assert.True(t, geom.IsOnLine(geom.Coord(10, 10), chain), "shared vertex")
	assert.True(t, geom.IsOnLine(geom.Coord(15, 10), chain), "interior of second segment")
	assert.False(t, geom.IsOnLine(geom.Coord(5, 6), chain), "off the chain")
}
