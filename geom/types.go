// Package geom: central value types (Coordinate, Location, Dimension) and
// sentinel errors shared by the geometry model and its operators.
package geom

import "errors"

// Sentinel errors for geometry construction and low-level computation.
var (
	// ErrShortLineString indicates fewer than 2 points for a line string.
	ErrShortLineString = errors.New("geom: line string needs at least 2 points")

	// ErrShortRing indicates fewer than 4 points for a linear ring.
	ErrShortRing = errors.New("geom: linear ring needs at least 4 points")

	// ErrUnclosedRing indicates first and last ring points differ.
	ErrUnclosedRing = errors.New("geom: linear ring must be closed")

	// ErrNilShell indicates a polygon constructed without a shell.
	ErrNilShell = errors.New("geom: polygon shell must not be nil")

	// ErrBadEdgeDistance indicates an intersection point projected onto a
	// segment produced a zero distance for a non-endpoint. This is an
	// internal invariant violation of the intersector.
	ErrBadEdgeDistance = errors.New("geom: bad edge distance calculation")
)

// Location is the position of a point relative to a geometry under the
// DE-9IM model.
type Location int

const (
	// LocNone marks an unknown or not-yet-computed location.
	LocNone Location = iota - 1

	// LocInterior: the point lies in the interior of the geometry.
	LocInterior

	// LocBoundary: the point lies on the boundary of the geometry.
	LocBoundary

	// LocExterior: the point lies outside the geometry.
	LocExterior
)

// Symbol returns the single-character DE-9IM notation for l,
// handy when printing topology labels.
func (l Location) Symbol() byte {
	switch l {
	case LocInterior:
		return 'i'
	case LocBoundary:
		return 'b'
	case LocExterior:
		return 'e'
	default:
		return '-'
	}
}

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case LocInterior:
		return "Interior"
	case LocBoundary:
		return "Boundary"
	case LocExterior:
		return "Exterior"
	default:
		return "None"
	}
}

// Dimension values returned by Geometry.Dimension.
const (
	// DimEmpty is the dimension of an empty geometry.
	DimEmpty = -1

	// DimPoint is the dimension of puntal geometries.
	DimPoint = 0

	// DimLine is the dimension of lineal geometries.
	DimLine = 1

	// DimArea is the dimension of polygonal geometries.
	DimArea = 2
)

// Coordinate is a point in the plane. Equality is exact float64 equality.
type Coordinate struct {
	X, Y float64
}

// Coord is shorthand for constructing a Coordinate.
func Coord(x, y float64) Coordinate { return Coordinate{X: x, Y: y} }

// Equals2D reports exact planar equality.
func (c Coordinate) Equals2D(o Coordinate) bool { return c.X == o.X && c.Y == o.Y }

// Compare orders coordinates lexicographically by (X, Y).
// It returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	default:
		return 0
	}
}
