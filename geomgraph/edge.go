package geomgraph

import (
	"sort"

	"github.com/marakyss/planar/geom"
)

// Edge is an oriented chain of coordinates carrying the topology label and
// depth accumulated for it. Edges are created by decomposing an input
// geometry, split at intersection points during noding, and merged with
// duplicates during unique insertion.
type Edge struct {
	pts    []geom.Coordinate
	label  *Label
	eiList *EdgeIntersectionList
	depth  *Depth

	inResult   bool
	covered    bool
	coveredSet bool
}

// NewEdge returns an edge over pts carrying lbl.
// The coordinate slice is retained, not copied.
func NewEdge(pts []geom.Coordinate, lbl *Label) *Edge {
	e := &Edge{
		pts:   pts,
		label: lbl,
		depth: NewDepth(),
	}
	e.eiList = &EdgeIntersectionList{edge: e}

	return e
}

// NumPoints returns the number of coordinates in the chain.
func (e *Edge) NumPoints() int { return len(e.pts) }

// Pt returns the i-th coordinate.
func (e *Edge) Pt(i int) geom.Coordinate { return e.pts[i] }

// Points returns the coordinate chain. Callers must not mutate it.
func (e *Edge) Points() []geom.Coordinate { return e.pts }

// Label returns the edge's label.
func (e *Edge) Label() *Label { return e.label }

// Depth returns the edge's depth counters.
func (e *Edge) Depth() *Depth { return e.depth }

// Intersections returns the edge's intersection list.
func (e *Edge) Intersections() *EdgeIntersectionList { return e.eiList }

// IsClosed reports whether the chain returns to its start point.
func (e *Edge) IsClosed() bool {
	return len(e.pts) > 0 && e.pts[0].Equals2D(e.pts[len(e.pts)-1])
}

// IsCollapsed reports whether an area edge has folded back onto itself,
// topologically becoming a line.
func (e *Edge) IsCollapsed() bool {
	if !e.label.IsArea() {
		return false
	}
	if len(e.pts) != 3 {
		return false
	}

	return e.pts[0].Equals2D(e.pts[2])
}

// CollapsedEdge returns the line edge replacing a collapsed area edge:
// the fold's single segment carrying a line label derived from the
// collapsed label's On locations.
func (e *Edge) CollapsedEdge() *Edge {
	return NewEdge([]geom.Coordinate{e.pts[0], e.pts[1]}, ToLineLabel(e.label))
}

// IsPointwiseEqual reports whether other has the identical coordinate
// chain in the forward direction.
func (e *Edge) IsPointwiseEqual(other *Edge) bool {
	if len(e.pts) != len(other.pts) {
		return false
	}
	for i := range e.pts {
		if !e.pts[i].Equals2D(other.pts[i]) {
			return false
		}
	}

	return true
}

// Equals reports whether other has the same coordinate chain in either
// direction.
func (e *Edge) Equals(other *Edge) bool {
	if len(e.pts) != len(other.pts) {
		return false
	}

	forward := true
	backward := true
	n := len(e.pts)
	for i := 0; i < n; i++ {
		if !e.pts[i].Equals2D(other.pts[i]) {
			forward = false
		}
		if !e.pts[i].Equals2D(other.pts[n-1-i]) {
			backward = false
		}
		if !forward && !backward {
			return false
		}
	}

	return true
}

// SetInResult marks the edge's linework as already part of the result.
func (e *Edge) SetInResult(in bool) { e.inResult = in }

// IsInResult reports whether the edge's linework is part of the result.
func (e *Edge) IsInResult() bool { return e.inResult }

// SetCovered records whether the edge lies covered by a result area.
func (e *Edge) SetCovered(covered bool) {
	e.coveredSet = true
	e.covered = covered
}

// IsCovered reports the recorded coverage state.
func (e *Edge) IsCovered() bool { return e.covered }

// IsCoveredSet reports whether coverage has been determined yet.
func (e *Edge) IsCoveredSet() bool { return e.coveredSet }

// AddIntersections records every intersection point of the last
// LineIntersector computation against segment segmentIndex of this edge.
func (e *Edge) AddIntersections(li *geom.LineIntersector, segmentIndex, geomIndex int) error {
	for i := 0; i < li.IntersectionNum(); i++ {
		if err := e.AddIntersection(li, segmentIndex, geomIndex, i); err != nil {
			return err
		}
	}

	return nil
}

// AddIntersection records one intersection point, normalizing points that
// coincide with the following vertex onto the next segment so every stored
// (segment, dist) key is canonical.
func (e *Edge) AddIntersection(li *geom.LineIntersector, segmentIndex, geomIndex, intIndex int) error {
	intPt := li.Intersection(intIndex)
	normalizedSegmentIndex := segmentIndex
	dist, err := li.EdgeDistance(geomIndex, intIndex)
	if err != nil {
		return err
	}

	nextSegIndex := normalizedSegmentIndex + 1
	if nextSegIndex < len(e.pts) {
		if intPt.Equals2D(e.pts[nextSegIndex]) {
			normalizedSegmentIndex = nextSegIndex
			dist = 0.0
		}
	}
	e.eiList.Add(intPt, normalizedSegmentIndex, dist)

	return nil
}

// EdgeIntersection is a point where an edge is crossed or touched,
// keyed by the segment it falls on and its distance along that segment.
type EdgeIntersection struct {
	Coord        geom.Coordinate
	SegmentIndex int
	Dist         float64
}

// compare orders intersections along the edge.
func (ei *EdgeIntersection) compare(segmentIndex int, dist float64) int {
	switch {
	case ei.SegmentIndex < segmentIndex:
		return -1
	case ei.SegmentIndex > segmentIndex:
		return 1
	case ei.Dist < dist:
		return -1
	case ei.Dist > dist:
		return 1
	default:
		return 0
	}
}

// EdgeIntersectionList is the ordered set of intersections along one edge.
// Adding the edge endpoints and then emitting the chains between
// consecutive intersections yields the edge's fully noded split edges.
type EdgeIntersectionList struct {
	edge *Edge
	list []*EdgeIntersection
}

// Add records an intersection at (segmentIndex, dist), keeping the list
// ordered and duplicate-free.
func (l *EdgeIntersectionList) Add(coord geom.Coordinate, segmentIndex int, dist float64) *EdgeIntersection {
	idx := sort.Search(len(l.list), func(i int) bool {
		return l.list[i].compare(segmentIndex, dist) >= 0
	})
	if idx < len(l.list) && l.list[idx].compare(segmentIndex, dist) == 0 {
		return l.list[idx]
	}

	ei := &EdgeIntersection{Coord: coord, SegmentIndex: segmentIndex, Dist: dist}
	l.list = append(l.list, nil)
	copy(l.list[idx+1:], l.list[idx:])
	l.list[idx] = ei

	return ei
}

// All returns the ordered intersections.
func (l *EdgeIntersectionList) All() []*EdgeIntersection { return l.list }

// IsIntersection reports whether pt coincides with a recorded
// intersection.
func (l *EdgeIntersectionList) IsIntersection(pt geom.Coordinate) bool {
	for _, ei := range l.list {
		if ei.Coord.Equals2D(pt) {
			return true
		}
	}

	return false
}

// AddEndpoints records the edge's own endpoints so split emission covers
// the whole chain.
func (l *EdgeIntersectionList) AddEndpoints() {
	maxSegIndex := len(l.edge.pts) - 1
	l.Add(l.edge.pts[0], 0, 0.0)
	l.Add(l.edge.pts[maxSegIndex], maxSegIndex, 0.0)
}

// AddSplitEdges appends one new edge per stretch between consecutive
// intersections to out. Every split edge carries a copy of the parent
// label.
func (l *EdgeIntersectionList) AddSplitEdges(out *[]*Edge) {
	for i := 1; i < len(l.list); i++ {
		*out = append(*out, l.createSplitEdge(l.list[i-1], l.list[i]))
	}
}

// createSplitEdge builds the chain from ei0 to ei1 along the parent edge.
func (l *EdgeIntersectionList) createSplitEdge(ei0, ei1 *EdgeIntersection) *Edge {
	npts := ei1.SegmentIndex - ei0.SegmentIndex + 2

	// The tail intersection only contributes a point when it is not the
	// start vertex of its segment.
	lastSegStartPt := l.edge.pts[ei1.SegmentIndex]
	useIntPt1 := ei1.Dist > 0.0 || !ei1.Coord.Equals2D(lastSegStartPt)
	if !useIntPt1 {
		npts--
	}

	pts := make([]geom.Coordinate, 0, npts)
	pts = append(pts, ei0.Coord)
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		pts = append(pts, l.edge.pts[i])
	}
	if useIntPt1 {
		pts = append(pts, ei1.Coord)
	}

	return NewEdge(pts, CopyLabel(l.edge.label))
}
