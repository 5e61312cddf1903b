package geomgraph

import "github.com/marakyss/planar/geom"

// Planar quadrants of a direction vector, numbered counter-clockwise
// starting from the non-negative X/Y quadrant.
const (
	quadNE = 0
	quadNW = 1
	quadSW = 2
	quadSE = 3
)

// quadrant returns the quadrant of the direction vector (dx, dy).
func quadrant(dx, dy float64) int {
	if dx >= 0 {
		if dy >= 0 {
			return quadNE
		}
		return quadSE
	}
	if dy >= 0 {
		return quadNW
	}

	return quadSW
}

// DirectedEdge is a half-edge of the overlay graph: one traversal
// direction of an underlying Edge, anchored at its origin node. Its
// symmetric twin traverses the same edge backward.
type DirectedEdge struct {
	edge    *Edge
	forward bool

	p0, p1   geom.Coordinate
	dx, dy   float64
	quadrant int

	node  *Node
	label *Label
	sym   *DirectedEdge

	// next links result half-edges into maximal rings; nextMin refines the
	// linkage into minimal rings.
	next    *DirectedEdge
	nextMin *DirectedEdge

	inResult bool
	visited  bool
}

// NewDirectedEdge returns the half-edge traversing edge forward or
// backward. The half-edge label is the edge label, flipped when the
// traversal runs against the edge's own direction.
func NewDirectedEdge(edge *Edge, forward bool) (*DirectedEdge, error) {
	de := &DirectedEdge{edge: edge, forward: forward}
	if forward {
		de.p0 = edge.Pt(0)
		de.p1 = edge.Pt(1)
	} else {
		n := edge.NumPoints() - 1
		de.p0 = edge.Pt(n)
		de.p1 = edge.Pt(n - 1)
	}
	de.dx = de.p1.X - de.p0.X
	de.dy = de.p1.Y - de.p0.Y
	if de.dx == 0 && de.dy == 0 {
		return nil, ErrZeroLengthDirection
	}
	de.quadrant = quadrant(de.dx, de.dy)

	de.label = CopyLabel(edge.Label())
	if !forward {
		de.label.Flip()
	}

	return de, nil
}

// Edge returns the underlying edge.
func (de *DirectedEdge) Edge() *Edge { return de.edge }

// IsForward reports whether the half-edge runs along the edge's own
// coordinate order.
func (de *DirectedEdge) IsForward() bool { return de.forward }

// Coordinate returns the origin of the half-edge.
func (de *DirectedEdge) Coordinate() geom.Coordinate { return de.p0 }

// DirectedCoordinate returns the point defining the half-edge's direction.
func (de *DirectedEdge) DirectedCoordinate() geom.Coordinate { return de.p1 }

// Node returns the node the half-edge leaves from.
func (de *DirectedEdge) Node() *Node { return de.node }

// Label returns the half-edge label, oriented along the traversal
// direction.
func (de *DirectedEdge) Label() *Label { return de.label }

// Sym returns the twin traversing the same edge backward.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.sym }

// SetSym pairs the half-edge with its twin.
func (de *DirectedEdge) SetSym(sym *DirectedEdge) { de.sym = sym }

// Next returns the successor in the maximal result ring.
func (de *DirectedEdge) Next() *DirectedEdge { return de.next }

// SetNext records the successor in the maximal result ring.
func (de *DirectedEdge) SetNext(next *DirectedEdge) { de.next = next }

// NextMin returns the successor in the minimal result ring.
func (de *DirectedEdge) NextMin() *DirectedEdge { return de.nextMin }

// SetNextMin records the successor in the minimal result ring.
func (de *DirectedEdge) SetNextMin(nextMin *DirectedEdge) { de.nextMin = nextMin }

// IsInResult reports whether the half-edge was selected for the result
// area boundary.
func (de *DirectedEdge) IsInResult() bool { return de.inResult }

// SetInResult marks the half-edge for the result area boundary.
func (de *DirectedEdge) SetInResult(in bool) { de.inResult = in }

// IsVisited reports whether a builder already consumed this half-edge.
func (de *DirectedEdge) IsVisited() bool { return de.visited }

// SetVisited marks this half-edge consumed.
func (de *DirectedEdge) SetVisited(v bool) { de.visited = v }

// SetVisitedEdge marks both traversal directions consumed.
func (de *DirectedEdge) SetVisitedEdge(v bool) {
	de.SetVisited(v)
	if de.sym != nil {
		de.sym.SetVisited(v)
	}
}

// IsLineEdge reports whether the half-edge contributes line topology only:
// at least one argument sees it as a line, and any area annotation is
// wholly exterior.
func (de *DirectedEdge) IsLineEdge() bool {
	isLine := de.label.IsLineArg(0) || de.label.IsLineArg(1)
	isExteriorIfArea0 := !de.label.IsAreaArg(0) ||
		de.label.AllPositionsEqual(0, geom.LocExterior)
	isExteriorIfArea1 := !de.label.IsAreaArg(1) ||
		de.label.AllPositionsEqual(1, geom.LocExterior)

	return isLine && isExteriorIfArea0 && isExteriorIfArea1
}

// IsInteriorAreaEdge reports whether the half-edge lies wholly inside an
// area for both arguments; such edges contribute no boundary to the
// result.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for i := 0; i < 2; i++ {
		if !(de.label.IsAreaArg(i) &&
			de.label.Location(i, PosLeft) == geom.LocInterior &&
			de.label.Location(i, PosRight) == geom.LocInterior) {
			return false
		}
	}

	return true
}

// CompareDirection orders half-edges by direction angle counter-clockwise
// from the positive X axis: -1 when de points below other, +1 above, 0 for
// identical directions. The comparison uses quadrants plus one orientation
// test, never trigonometry.
func (de *DirectedEdge) CompareDirection(other *DirectedEdge) int {
	if de.dx == other.dx && de.dy == other.dy {
		return 0
	}
	if de.quadrant > other.quadrant {
		return 1
	}
	if de.quadrant < other.quadrant {
		return -1
	}

	return geom.OrientationIndex(other.p0, other.p1, de.p1)
}
