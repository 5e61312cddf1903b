package geom

import "math"

// Intersection kinds reported by LineIntersector.IntersectionNum.
const (
	// NoIntersection: the segments do not meet.
	NoIntersection = 0

	// PointIntersection: the segments meet in a single point.
	PointIntersection = 1

	// CollinearIntersection: the segments overlap along a sub-segment.
	CollinearIntersection = 2
)

// LineIntersector computes the intersection of two line segments, or of a
// point with a segment, classifying the result as proper (interior of both
// segments) or improper (an endpoint is involved).
//
// A single intersector can be reused across many Compute* calls; each call
// overwrites the previous state. The zero value is ready to use.
type LineIntersector struct {
	result     int
	inputLines [2][2]Coordinate
	intPt      [2]Coordinate
	proper     bool
}

// HasIntersection reports whether the last computation found any
// intersection.
func (li *LineIntersector) HasIntersection() bool { return li.result != NoIntersection }

// IntersectionNum returns the number of intersection points found
// by the last computation (0, 1, or 2 for collinear overlap).
func (li *LineIntersector) IntersectionNum() int { return li.result }

// Intersection returns the i-th intersection point of the last computation.
func (li *LineIntersector) Intersection(i int) Coordinate { return li.intPt[i] }

// IsProper reports whether the intersection lies in the interior of both
// segments.
func (li *LineIntersector) IsProper() bool { return li.HasIntersection() && li.proper }

// ComputePointOnSegment computes the intersection of the point p with the
// segment p1→p2. The intersection is proper when p lies in the segment's
// interior.
func (li *LineIntersector) ComputePointOnSegment(p, p1, p2 Coordinate) {
	li.proper = false
	li.intPt[0] = p

	if envContainsPoint(p1, p2, p) {
		if OrientationIndex(p1, p2, p) == OrientCollinear &&
			OrientationIndex(p2, p1, p) == OrientCollinear {
			li.proper = true
			if p.Equals2D(p1) || p.Equals2D(p2) {
				li.proper = false
			}
			li.result = PointIntersection

			return
		}
	}
	li.result = NoIntersection
}

// ComputeIntersection computes the intersection of segments p1→p2 and
// q1→q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 Coordinate) {
	li.inputLines[0][0], li.inputLines[0][1] = p1, p2
	li.inputLines[1][0], li.inputLines[1][1] = q1, q2
	li.result = li.computeIntersect(p1, p2, q1, q2)
}

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 Coordinate) int {
	li.proper = false

	// 1) Cheap envelope rejection.
	if !envIntersects(p1, p2, q1, q2) {
		return NoIntersection
	}

	// 2) Mutual orientation tests.
	pq1 := OrientationIndex(p1, p2, q1)
	pq2 := OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}

	qp1 := OrientationIndex(q1, q2, p1)
	qp2 := OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	// 3) Collinear segments overlap along a sub-segment (or touch).
	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return li.computeCollinearIntersection(p1, p2, q1, q2)
	}

	// 4) An endpoint lies on the other segment: improper intersection.
	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		switch {
		case p1.Equals2D(q1) || p1.Equals2D(q2):
			li.intPt[0] = p1
		case p2.Equals2D(q1) || p2.Equals2D(q2):
			li.intPt[0] = p2
		case pq1 == 0:
			li.intPt[0] = q1
		case pq2 == 0:
			li.intPt[0] = q2
		case qp1 == 0:
			li.intPt[0] = p1
		default:
			li.intPt[0] = p2
		}

		return PointIntersection
	}

	// 5) A proper crossing in the interior of both segments.
	li.proper = true
	li.intPt[0] = intersectionPoint(p1, p2, q1, q2)

	return PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 Coordinate) int {
	q1inP := envContainsPoint(p1, p2, q1)
	q2inP := envContainsPoint(p1, p2, q2)
	p1inQ := envContainsPoint(q1, q2, p1)
	p2inQ := envContainsPoint(q1, q2, p2)

	switch {
	case q1inP && q2inP:
		li.intPt[0], li.intPt[1] = q1, q2
		return CollinearIntersection
	case p1inQ && p2inQ:
		li.intPt[0], li.intPt[1] = p1, p2
		return CollinearIntersection
	case q1inP && p1inQ:
		li.intPt[0], li.intPt[1] = q1, p1
		if q1.Equals2D(p1) && !q2inP && !p2inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q1inP && p2inQ:
		li.intPt[0], li.intPt[1] = q1, p2
		if q1.Equals2D(p2) && !q2inP && !p1inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q2inP && p1inQ:
		li.intPt[0], li.intPt[1] = q2, p1
		if q2.Equals2D(p1) && !q1inP && !p2inQ {
			return PointIntersection
		}
		return CollinearIntersection
	case q2inP && p2inQ:
		li.intPt[0], li.intPt[1] = q2, p2
		if q2.Equals2D(p2) && !q1inP && !p1inQ {
			return PointIntersection
		}
		return CollinearIntersection
	default:
		return NoIntersection
	}
}

// EdgeDistance returns the pseudo-distance of intersection intIndex along
// input segment segmentIndex (0 or 1). The value is monotone in position
// along the segment but is not a Euclidean distance.
func (li *LineIntersector) EdgeDistance(segmentIndex, intIndex int) (float64, error) {
	return computeEdgeDistance(li.intPt[intIndex],
		li.inputLines[segmentIndex][0], li.inputLines[segmentIndex][1])
}

// computeEdgeDistance measures p along p0→p1 using the dominant axis, which
// is robust against near-degenerate segments.
func computeEdgeDistance(p, p0, p1 Coordinate) (float64, error) {
	dx := math.Abs(p1.X - p0.X)
	dy := math.Abs(p1.Y - p0.Y)

	var dist float64
	switch {
	case p.Equals2D(p0):
		dist = 0
	case p.Equals2D(p1):
		if dx > dy {
			dist = dx
		} else {
			dist = dy
		}
	default:
		pdx := math.Abs(p.X - p0.X)
		pdy := math.Abs(p.Y - p0.Y)
		if dx > dy {
			dist = pdx
		} else {
			dist = pdy
		}
		// Sanity: an interior point must land at a positive distance.
		if dist == 0.0 {
			dist = math.Max(pdx, pdy)
		}
	}

	if dist == 0.0 && !p.Equals2D(p0) {
		return 0, ErrBadEdgeDistance
	}

	return dist, nil
}

// intersectionPoint computes the crossing point of two properly
// intersecting segments. Inputs are translated toward the origin before
// solving to reduce floating-point error, and a result escaping both
// envelopes is snapped to the nearest source endpoint.
func intersectionPoint(p1, p2, q1, q2 Coordinate) Coordinate {
	// Translate by the midpoint between the smaller start coordinate and the
	// larger end coordinate of the two segments, per axis.
	midX := (math.Min(p1.X, q1.X) + math.Max(p2.X, q2.X)) / 2
	midY := (math.Min(p1.Y, q1.Y) + math.Max(p2.Y, q2.Y)) / 2
	tp1 := Coordinate{X: p1.X - midX, Y: p1.Y - midY}
	tp2 := Coordinate{X: p2.X - midX, Y: p2.Y - midY}
	tq1 := Coordinate{X: q1.X - midX, Y: q1.Y - midY}
	tq2 := Coordinate{X: q2.X - midX, Y: q2.Y - midY}

	px := tp2.Y - tp1.Y
	py := tp1.X - tp2.X
	pw := tp1.Y*tp2.X - tp1.X*tp2.Y

	qx := tq2.Y - tq1.Y
	qy := tq1.X - tq2.X
	qw := tq1.Y*tq2.X - tq1.X*tq2.Y

	w := px*qy - qx*py
	x := (py*qw - qy*pw) / w
	y := (qx*pw - px*qw) / w

	pt := Coordinate{X: x + midX, Y: y + midY}

	// Numerical trouble: fall back to the nearest input endpoint.
	if !envContainsPoint(p1, p2, pt) && !envContainsPoint(q1, q2, pt) {
		pt = nearestEndpoint(pt, p1, p2, q1, q2)
	}

	return pt
}

// nearestEndpoint returns the input endpoint closest to pt.
func nearestEndpoint(pt Coordinate, candidates ...Coordinate) Coordinate {
	best := candidates[0]
	bestDist := math.Hypot(pt.X-best.X, pt.Y-best.Y)
	for _, c := range candidates[1:] {
		if d := math.Hypot(pt.X-c.X, pt.Y-c.Y); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// envIntersects reports whether the envelopes of segments p1→p2 and q1→q2
// overlap.
func envIntersects(p1, p2, q1, q2 Coordinate) bool {
	minQ := math.Min(q1.X, q2.X)
	maxQ := math.Max(q1.X, q2.X)
	minP := math.Min(p1.X, p2.X)
	maxP := math.Max(p1.X, p2.X)
	if minP > maxQ || maxP < minQ {
		return false
	}

	minQ = math.Min(q1.Y, q2.Y)
	maxQ = math.Max(q1.Y, q2.Y)
	minP = math.Min(p1.Y, p2.Y)
	maxP = math.Max(p1.Y, p2.Y)

	return minP <= maxQ && maxP >= minQ
}

// envContainsPoint reports whether q lies in the envelope of segment p1→p2.
func envContainsPoint(p1, p2, q Coordinate) bool {
	return math.Min(p1.X, p2.X) <= q.X && q.X <= math.Max(p1.X, p2.X) &&
		math.Min(p1.Y, p2.Y) <= q.Y && q.Y <= math.Max(p1.Y, p2.Y)
}
