package overlay

import (
	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// edgeRing is one ring of the result area, walked from the marked
// half-edges. A maximal ring follows the next-pointers laid down by
// result-edge linking; when it pinches at a node of degree > 2 it is
// re-walked via the nextMin-pointers into minimal rings.
type edgeRing struct {
	pb      *polygonBuilder
	minimal bool

	startDe       *geomgraph.DirectedEdge
	maxNodeDegree int

	edges []*geomgraph.DirectedEdge
	pts   []geom.Coordinate
	label *geomgraph.Label
	ring  *geom.LinearRing

	hole  bool
	shell *edgeRing
	holes []*edgeRing
}

// newEdgeRing walks the ring starting at start and computes its geometry.
func (pb *polygonBuilder) newEdgeRing(start *geomgraph.DirectedEdge, minimal bool) (*edgeRing, error) {
	er := &edgeRing{
		pb:            pb,
		minimal:       minimal,
		maxNodeDegree: -1,
		label:         geomgraph.NewLabelOn(geom.LocNone),
	}
	if err := er.computePoints(start); err != nil {
		return nil, err
	}
	if err := er.computeRing(); err != nil {
		return nil, err
	}

	return er, nil
}

// assignedRing returns the ring de was consumed by at this granularity.
func (er *edgeRing) assignedRing(de *geomgraph.DirectedEdge) *edgeRing {
	if er.minimal {
		return er.pb.minRing[de]
	}

	return er.pb.maxRing[de]
}

// assign records de as consumed by this ring.
func (er *edgeRing) assign(de *geomgraph.DirectedEdge) {
	if er.minimal {
		er.pb.minRing[de] = er
		return
	}
	er.pb.maxRing[de] = er
}

// next returns the ring successor of de at this granularity.
func (er *edgeRing) next(de *geomgraph.DirectedEdge) *geomgraph.DirectedEdge {
	if er.minimal {
		return de.NextMin()
	}

	return de.Next()
}

// computePoints walks the ring collecting edges, points and the merged
// ring label.
func (er *edgeRing) computePoints(start *geomgraph.DirectedEdge) error {
	er.startDe = start
	de := start
	isFirstEdge := true
	for {
		if de == nil {
			return ErrNilRingEdge
		}
		if er.assignedRing(de) == er {
			return ErrRingVisitedTwice
		}

		er.edges = append(er.edges, de)
		lbl := de.Label()
		if !lbl.IsArea() {
			return ErrNonAreaRingLabel
		}
		er.mergeLabel(lbl, 0)
		er.mergeLabel(lbl, 1)
		er.addPoints(de.Edge(), de.IsForward(), isFirstEdge)
		isFirstEdge = false

		er.assign(de)
		de = er.next(de)
		if de == er.startDe {
			return nil
		}
	}
}

// mergeLabel folds the right-side location of a consumed half-edge into
// the ring label: the ring interior lies to the right of its edges.
func (er *edgeRing) mergeLabel(deLabel *geomgraph.Label, geomIndex int) {
	loc := deLabel.Location(geomIndex, geomgraph.PosRight)
	if loc == geom.LocNone {
		return
	}
	if er.label.LocationOn(geomIndex) == geom.LocNone {
		er.label.SetLocationOn(geomIndex, loc)
	}
}

// addPoints appends the edge's coordinates along the walk direction,
// skipping the shared vertex except on the first edge.
func (er *edgeRing) addPoints(e *geomgraph.Edge, isForward, isFirstEdge bool) {
	pts := e.Points()
	if isForward {
		startIndex := 1
		if isFirstEdge {
			startIndex = 0
		}
		er.pts = append(er.pts, pts[startIndex:]...)
		return
	}

	startIndex := len(pts) - 2
	if isFirstEdge {
		startIndex = len(pts) - 1
	}
	for i := startIndex; i >= 0; i-- {
		er.pts = append(er.pts, pts[i])
	}
}

// computeRing materializes the walked points as a LinearRing and
// classifies it: result shells run clockwise, so a counter-clockwise ring
// is a hole.
func (er *edgeRing) computeRing() error {
	ring, err := geom.NewLinearRing(er.pts)
	if err != nil {
		return err
	}
	er.ring = ring
	er.hole = geom.IsCCW(er.pts)

	return nil
}

// isHole reports whether the ring is a hole of some shell.
func (er *edgeRing) isHole() bool { return er.hole }

// setShell links a hole ring to its containing shell.
func (er *edgeRing) setShell(shell *edgeRing) {
	er.shell = shell
	if shell != nil {
		shell.holes = append(shell.holes, er)
	}
}

// containsPoint reports whether p lies inside the ring but outside its
// holes.
func (er *edgeRing) containsPoint(p geom.Coordinate) bool {
	if geom.LocatePointInRing(p, er.ring.Pts) == geom.LocExterior {
		return false
	}
	for _, hole := range er.holes {
		if hole.containsPoint(p) {
			return false
		}
	}

	return true
}

// toPolygon assembles the shell and its holes into a polygon.
func (er *edgeRing) toPolygon(factory *geom.GeometryFactory) (*geom.Polygon, error) {
	holes := make([]*geom.LinearRing, len(er.holes))
	for i, h := range er.holes {
		holes[i] = h.ring
	}

	return factory.CreatePolygon(er.ring, holes...)
}

// setInResult marks the linework of every edge of a maximal ring as part
// of the result, so the line builder does not emit it again.
func (er *edgeRing) setInResult() {
	de := er.startDe
	for {
		de.Edge().SetInResult(true)
		de = de.Next()
		if de == er.startDe {
			return
		}
	}
}

// nodeDegree returns twice the maximum per-node count of this maximal
// ring's edges around any of its nodes. A value above 2 means the ring
// pinches and must be decomposed into minimal rings.
func (er *edgeRing) nodeDegree() int {
	if er.maxNodeDegree < 0 {
		er.computeMaxNodeDegree()
	}

	return er.maxNodeDegree
}

func (er *edgeRing) computeMaxNodeDegree() {
	er.maxNodeDegree = 0
	de := er.startDe
	for {
		degree := er.outgoingDegree(de.Node().Edges())
		if degree > er.maxNodeDegree {
			er.maxNodeDegree = degree
		}
		de = de.Next()
		if de == er.startDe {
			break
		}
	}
	er.maxNodeDegree *= 2
}

// outgoingDegree counts the star's half-edges consumed by this ring.
func (er *edgeRing) outgoingDegree(star *geomgraph.DirectedEdgeStar) int {
	degree := 0
	for _, de := range star.Edges() {
		if er.pb.maxRing[de] == er {
			degree++
		}
	}

	return degree
}

// linkMinimalEdges lays down nextMin-pointers at every node of this
// maximal ring, so minimal rings can be walked.
func (er *edgeRing) linkMinimalEdges() error {
	de := er.startDe
	for {
		if err := er.pb.linkMinimalDirectedEdges(de.Node().Edges(), er); err != nil {
			return err
		}
		de = de.Next()
		if de == er.startDe {
			return nil
		}
	}
}

// buildMinimalRings re-walks this maximal ring along the nextMin-pointers,
// emitting one minimal ring per unconsumed starting edge.
func (er *edgeRing) buildMinimalRings() ([]*edgeRing, error) {
	var minRings []*edgeRing
	de := er.startDe
	for {
		if er.pb.minRing[de] == nil {
			minEr, err := er.pb.newEdgeRing(de, true)
			if err != nil {
				return nil, err
			}
			minRings = append(minRings, minEr)
		}
		de = de.Next()
		if de == er.startDe {
			return minRings, nil
		}
	}
}
