package overlay

import (
	"github.com/marakyss/planar/geom"
)

// pointBuilder extracts the puntal part of the result: nodes the
// operation selects whose coordinate is not already covered by a result
// line or polygon.
type pointBuilder struct {
	op     *computation
	points []*geom.Point
}

func newPointBuilder(op *computation) *pointBuilder {
	return &pointBuilder{op: op}
}

// build returns the result points for op.
func (pb *pointBuilder) build(op Op) []*geom.Point {
	for _, n := range pb.op.graph.Nodes() {
		// Nodes whose linework already reached the result carry no extra
		// point.
		if n.IsIncidentEdgeInResult() {
			continue
		}

		// Isolated input points always qualify; for intersections,
		// boundary-touch nodes qualify too (two boundaries crossing at a
		// point collapse to that point).
		if n.Edges().Degree() == 0 || op == Intersection {
			lbl := n.Label()
			if lbl == nil {
				continue
			}
			if IsResultOfOp(lbl.LocationOn(0), lbl.LocationOn(1), op) {
				pb.filterCoveredNodeToPoint(n.Coordinate())
			}
		}
	}

	return pb.points
}

// filterCoveredNodeToPoint emits coord unless a result line or polygon
// covers it.
func (pb *pointBuilder) filterCoveredNodeToPoint(coord geom.Coordinate) {
	if pb.op.isCoveredByLA(coord) {
		return
	}
	pb.points = append(pb.points, pb.op.factory.CreatePoint(coord))
}
