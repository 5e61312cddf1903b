package overlay_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marakyss/planar/geom"
)

// square returns the CCW closed ring of an axis-aligned square.
func square(x, y, size float64) []geom.Coordinate {
	return []geom.Coordinate{
		geom.Coord(x, y),
		geom.Coord(x+size, y),
		geom.Coord(x+size, y+size),
		geom.Coord(x, y+size),
		geom.Coord(x, y),
	}
}

func mustPolygon(t *testing.T, shell []geom.Coordinate, holes ...[]geom.Coordinate) *geom.Polygon {
	t.Helper()

	shellRing, err := geom.NewLinearRing(shell)
	require.NoError(t, err)

	holeRings := make([]*geom.LinearRing, len(holes))
	for i, h := range holes {
		ring, err := geom.NewLinearRing(h)
		require.NoError(t, err)
		holeRings[i] = ring
	}

	poly, err := geom.NewPolygon(shellRing, holeRings...)
	require.NoError(t, err)

	return poly
}

func mustLine(t *testing.T, pts ...geom.Coordinate) *geom.LineString {
	t.Helper()

	line, err := geom.NewLineString(pts)
	require.NoError(t, err)

	return line
}

// signedRingArea returns the shoelace area of a closed ring:
// positive for counter-clockwise, negative for clockwise.
func signedRingArea(pts []geom.Coordinate) float64 {
	sum := 0.0
	for i := 1; i < len(pts); i++ {
		sum += pts[i-1].X*pts[i].Y - pts[i].X*pts[i-1].Y
	}

	return sum / 2
}

// polygonArea returns the area of a polygon: shell minus holes.
func polygonArea(p *geom.Polygon) float64 {
	area := math.Abs(signedRingArea(p.Shell.Pts))
	for _, h := range p.Holes {
		area -= math.Abs(signedRingArea(h.Pts))
	}

	return area
}

// geometryArea returns the total polygonal area of any geometry.
func geometryArea(g geom.Geometry) float64 {
	switch t := g.(type) {
	case *geom.Polygon:
		return polygonArea(t)
	case *geom.MultiPolygon:
		sum := 0.0
		for _, p := range t.Polygons {
			sum += polygonArea(p)
		}
		return sum
	case *geom.GeometryCollection:
		sum := 0.0
		for _, elem := range t.Geometries {
			sum += geometryArea(elem)
		}
		return sum
	default:
		return 0
	}
}

// resultPolygons flattens the polygonal elements of a result geometry.
func resultPolygons(g geom.Geometry) []*geom.Polygon {
	switch t := g.(type) {
	case *geom.Polygon:
		return []*geom.Polygon{t}
	case *geom.MultiPolygon:
		return t.Polygons
	case *geom.GeometryCollection:
		var out []*geom.Polygon
		for _, elem := range t.Geometries {
			out = append(out, resultPolygons(elem)...)
		}
		return out
	default:
		return nil
	}
}

// resultLines flattens the lineal elements of a result geometry.
func resultLines(g geom.Geometry) []*geom.LineString {
	switch t := g.(type) {
	case *geom.LineString:
		return []*geom.LineString{t}
	case *geom.MultiLineString:
		return t.Lines
	case *geom.GeometryCollection:
		var out []*geom.LineString
		for _, elem := range t.Geometries {
			out = append(out, resultLines(elem)...)
		}
		return out
	default:
		return nil
	}
}

// resultPoints flattens the puntal elements of a result geometry.
func resultPoints(g geom.Geometry) []*geom.Point {
	switch t := g.(type) {
	case *geom.Point:
		return []*geom.Point{t}
	case *geom.MultiPoint:
		return t.Points
	case *geom.GeometryCollection:
		var out []*geom.Point
		for _, elem := range t.Geometries {
			out = append(out, resultPoints(elem)...)
		}
		return out
	default:
		return nil
	}
}

// lineLength returns the total length of a line string.
func lineLength(l *geom.LineString) float64 {
	sum := 0.0
	for i := 1; i < len(l.Pts); i++ {
		sum += math.Hypot(l.Pts[i].X-l.Pts[i-1].X, l.Pts[i].Y-l.Pts[i-1].Y)
	}

	return sum
}
