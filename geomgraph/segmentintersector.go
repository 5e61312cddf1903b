package geomgraph

import "github.com/marakyss/planar/geom"

// SegmentIntersector accumulates the intersections found between edge
// segments during noding, recording them on the edges involved.
type SegmentIntersector struct {
	li            *geom.LineIntersector
	includeProper bool
	recordProper  bool

	hasIntersection       bool
	hasProper             bool
	properIntersectionPt  geom.Coordinate
	numIntersections      int
}

// NewSegmentIntersector returns an intersector using li. includeProper
// controls whether proper (interior-interior) intersections are recorded
// on the edges; recordProper controls whether the proper intersection
// point is remembered for the caller.
func NewSegmentIntersector(li *geom.LineIntersector, includeProper, recordProper bool) *SegmentIntersector {
	return &SegmentIntersector{
		li:            li,
		includeProper: includeProper,
		recordProper:  recordProper,
	}
}

// HasIntersection reports whether any non-trivial intersection was found.
func (si *SegmentIntersector) HasIntersection() bool { return si.hasIntersection }

// HasProperIntersection reports whether a proper intersection was found.
func (si *SegmentIntersector) HasProperIntersection() bool { return si.hasProper }

// ProperIntersectionPoint returns the last recorded proper intersection.
func (si *SegmentIntersector) ProperIntersectionPoint() geom.Coordinate {
	return si.properIntersectionPt
}

// isTrivialIntersection reports whether the found intersection is merely
// the shared vertex of adjacent segments of the same edge (including the
// closing vertex of a ring).
func (si *SegmentIntersector) isTrivialIntersection(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}

	if segIndex0-segIndex1 == 1 || segIndex1-segIndex0 == 1 {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.NumPoints() - 2
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) ||
			(segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}

	return false
}

// AddIntersections computes the intersection of segment segIndex0 of e0
// with segment segIndex1 of e1 and records it on both edges.
func (si *SegmentIntersector) AddIntersections(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) error {
	if e0 == e1 && segIndex0 == segIndex1 {
		return nil
	}

	si.li.ComputeIntersection(
		e0.Pt(segIndex0), e0.Pt(segIndex0+1),
		e1.Pt(segIndex1), e1.Pt(segIndex1+1))
	if !si.li.HasIntersection() {
		return nil
	}

	si.numIntersections++
	if si.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return nil
	}

	si.hasIntersection = true
	if si.includeProper || !si.li.IsProper() {
		if err := e0.AddIntersections(si.li, segIndex0, 0); err != nil {
			return err
		}
		if err := e1.AddIntersections(si.li, segIndex1, 1); err != nil {
			return err
		}
	}
	if si.li.IsProper() && si.recordProper {
		si.properIntersectionPt = si.li.Intersection(0)
		si.hasProper = true
	}

	return nil
}

// computeSelfIntersections intersects every segment pair within one edge
// set. When testAllSegments is false, an edge is not tested against
// itself; rings only self-touch at vertices, which noding already covers.
func computeSelfIntersections(edges []*Edge, si *SegmentIntersector, testAllSegments bool) error {
	for _, e0 := range edges {
		for _, e1 := range edges {
			if !testAllSegments && e0 == e1 {
				continue
			}
			if err := computeEdgePairIntersections(e0, e1, si); err != nil {
				return err
			}
		}
	}

	return nil
}

// computeMutualIntersections intersects every segment of edges0 with every
// segment of edges1.
func computeMutualIntersections(edges0, edges1 []*Edge, si *SegmentIntersector) error {
	for _, e0 := range edges0 {
		for _, e1 := range edges1 {
			if err := computeEdgePairIntersections(e0, e1, si); err != nil {
				return err
			}
		}
	}

	return nil
}

// computeEdgePairIntersections intersects all segment pairs of two edges.
func computeEdgePairIntersections(e0, e1 *Edge, si *SegmentIntersector) error {
	var i, j int
	for i = 0; i < e0.NumPoints()-1; i++ {
		for j = 0; j < e1.NumPoints()-1; j++ {
			if err := si.AddIntersections(e0, i, e1, j); err != nil {
				return err
			}
		}
	}

	return nil
}
