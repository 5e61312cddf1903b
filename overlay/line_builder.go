package overlay

import (
	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// lineBuilder extracts the lineal part of the result: line edges selected
// by the operation plus, for intersections, area boundaries that touch
// without bounding result area. Line segments covered by a result polygon
// are suppressed.
type lineBuilder struct {
	op        *computation
	lineEdges []*geomgraph.Edge
	lines     []*geom.LineString
}

func newLineBuilder(op *computation) *lineBuilder {
	return &lineBuilder{op: op}
}

// build returns the result line strings for op.
func (lb *lineBuilder) build(op Op) ([]*geom.LineString, error) {
	lb.findCoveredLineEdges()
	lb.collectLines(op)
	if err := lb.buildLines(); err != nil {
		return nil, err
	}

	return lb.lines, nil
}

// findCoveredLineEdges determines, for every line edge, whether it lies
// inside the result area: first from the result-edge topology around its
// nodes, then by point location for edges whose nodes see no result area
// boundary.
func (lb *lineBuilder) findCoveredLineEdges() {
	for _, n := range lb.op.graph.Nodes() {
		n.Edges().FindCoveredLineEdges()
	}

	for _, de := range lb.op.graph.EdgeEnds() {
		e := de.Edge()
		if de.IsLineEdge() && !e.IsCoveredSet() {
			e.SetCovered(lb.op.isCoveredByA(de.Coordinate()))
		}
	}
}

// collectLines gathers the edges contributing linework to the result.
func (lb *lineBuilder) collectLines(op Op) {
	for _, de := range lb.op.graph.EdgeEnds() {
		lb.collectLineEdge(de, op)
		lb.collectBoundaryTouchEdge(de, op)
	}
}

// collectLineEdge includes an uncovered line edge selected by the
// operation.
func (lb *lineBuilder) collectLineEdge(de *geomgraph.DirectedEdge, op Op) {
	if !de.IsLineEdge() {
		return
	}
	if de.IsVisited() {
		return
	}
	if !IsLabelResultOfOp(de.Label(), op) {
		return
	}
	if de.Edge().IsCovered() {
		return
	}

	lb.lineEdges = append(lb.lineEdges, de.Edge())
	de.SetVisitedEdge(true)
}

// collectBoundaryTouchEdge includes an area boundary edge that the
// operation selects but the area result does not: two boundaries touching
// along a shared edge collapse to a line in an intersection.
func (lb *lineBuilder) collectBoundaryTouchEdge(de *geomgraph.DirectedEdge, op Op) {
	if de.IsLineEdge() {
		return
	}
	if de.IsVisited() {
		return
	}
	// Edges inside the result area, or already emitted as area boundary,
	// contribute nothing.
	if de.IsInteriorAreaEdge() {
		return
	}
	if de.Edge().IsInResult() {
		return
	}

	if op == Intersection && IsLabelResultOfOp(de.Label(), op) {
		lb.lineEdges = append(lb.lineEdges, de.Edge())
		de.SetVisitedEdge(true)
	}
}

// buildLines materializes the collected edges as line strings and marks
// their linework as emitted.
func (lb *lineBuilder) buildLines() error {
	for _, e := range lb.lineEdges {
		line, err := lb.op.factory.CreateLineString(e.Points())
		if err != nil {
			return err
		}
		lb.lines = append(lb.lines, line)
		e.SetInResult(true)
	}

	return nil
}
