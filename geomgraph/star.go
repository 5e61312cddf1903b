package geomgraph

import (
	"sort"

	"github.com/marakyss/planar/geom"
)

// DirectedEdgeStar is the cyclic ordering of the half-edges leaving one
// node, sorted counter-clockwise by direction angle. Labelling
// propagation, sym merging and coverage scans all walk this ordering.
type DirectedEdgeStar struct {
	edges  []*DirectedEdge
	sorted bool
	label  *Label

	resultAreaEdges []*DirectedEdge
}

// Insert adds an outgoing half-edge to the star.
func (s *DirectedEdgeStar) Insert(de *DirectedEdge) {
	s.edges = append(s.edges, de)
	s.sorted = false
	s.resultAreaEdges = nil
}

// Edges returns the half-edges sorted counter-clockwise.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge {
	if !s.sorted {
		sort.SliceStable(s.edges, func(i, j int) bool {
			return s.edges[i].CompareDirection(s.edges[j]) < 0
		})
		s.sorted = true
	}

	return s.edges
}

// Degree returns the number of half-edges in the star.
func (s *DirectedEdgeStar) Degree() int { return len(s.edges) }

// Label returns the star label computed by ComputeLabelling; nil before.
func (s *DirectedEdgeStar) Label() *Label { return s.label }

// Coordinate returns the node coordinate the star surrounds.
func (s *DirectedEdgeStar) Coordinate() geom.Coordinate {
	if len(s.edges) == 0 {
		return geom.Coordinate{}
	}

	return s.edges[0].Coordinate()
}

// ResultAreaEdges returns the half-edges participating in the result area
// boundary in CCW order (either direction of the underlying edge marked).
func (s *DirectedEdgeStar) ResultAreaEdges() []*DirectedEdge {
	if s.resultAreaEdges != nil {
		return s.resultAreaEdges
	}
	for _, de := range s.Edges() {
		if de.IsInResult() || de.Sym().IsInResult() {
			s.resultAreaEdges = append(s.resultAreaEdges, de)
		}
	}

	return s.resultAreaEdges
}

// ComputeLabelling derives the side labels of every half-edge around the
// node from the labels its neighbours carry, completes positions unknown
// to one argument by locating the node against that argument's geometry,
// and finally merges the edge locations into the star label.
func (s *DirectedEdgeStar) ComputeLabelling(geoms [2]geom.Geometry) error {
	// 1) Propagate known side locations around the star, one argument at
	// a time.
	if err := s.propagateSideLabels(0); err != nil {
		return err
	}
	if err := s.propagateSideLabels(1); err != nil {
		return err
	}

	// 2) A boundary location on a line-collapsed edge poisons point
	// location at this node for that argument: the collapse keeps the
	// node on the geometry's boundary while the surrounding area is
	// exterior.
	var hasDimensionalCollapseEdge [2]bool
	for _, de := range s.Edges() {
		for i := 0; i < 2; i++ {
			if de.Label().IsLineArg(i) && de.Label().LocationOn(i) == geom.LocBoundary {
				hasDimensionalCollapseEdge[i] = true
			}
		}
	}

	// 3) Complete every remaining unknown: an edge not labelled by
	// argument i can only be inside i if this node lies inside an area of
	// i — a node on a line or point of i still leaves the edge exterior.
	var areaLoc [2]geom.Location
	areaLoc[0], areaLoc[1] = geom.LocNone, geom.LocNone
	for _, de := range s.Edges() {
		for i := 0; i < 2; i++ {
			if !de.Label().IsAnyNull(i) {
				continue
			}
			loc := geom.LocExterior
			if !hasDimensionalCollapseEdge[i] {
				if areaLoc[i] == geom.LocNone {
					areaLoc[i] = geom.LocateInAreas(de.Coordinate(), geoms[i])
				}
				loc = areaLoc[i]
			}
			de.Label().SetAllLocationsIfNull(i, loc)
		}
	}

	// 4) The star label collects, per argument, whether any incident edge
	// linework touches that argument.
	s.label = NewLabelOn(geom.LocNone)
	for _, de := range s.Edges() {
		eLabel := de.Edge().Label()
		for i := 0; i < 2; i++ {
			eLoc := eLabel.LocationOn(i)
			if eLoc == geom.LocInterior || eLoc == geom.LocBoundary {
				s.label.SetLocationOn(i, geom.LocInterior)
			}
		}
	}

	return nil
}

// propagateSideLabels walks the star counter-clockwise carrying the
// current area location of argument geomIndex across edges that do not yet
// know it. Since the edges are CCW-ordered, moving from one edge to the
// next crosses from its right side to its left side.
func (s *DirectedEdgeStar) propagateSideLabels(geomIndex int) error {
	startLoc := geom.LocNone
	for _, de := range s.Edges() {
		lbl := de.Label()
		if lbl.IsAreaArg(geomIndex) && lbl.Location(geomIndex, PosLeft) != geom.LocNone {
			startLoc = lbl.Location(geomIndex, PosLeft)
		}
	}
	// No edge at this node carries side information for this argument.
	if startLoc == geom.LocNone {
		return nil
	}

	currLoc := startLoc
	for _, de := range s.Edges() {
		lbl := de.Label()
		if lbl.LocationOn(geomIndex) == geom.LocNone {
			lbl.SetLocationOn(geomIndex, currLoc)
		}
		if !lbl.IsAreaArg(geomIndex) {
			continue
		}

		leftLoc := lbl.Location(geomIndex, PosLeft)
		rightLoc := lbl.Location(geomIndex, PosRight)
		if rightLoc != geom.LocNone {
			if rightLoc != currLoc {
				return ErrSideConflict
			}
			if leftLoc == geom.LocNone {
				return ErrNullSideLabel
			}
			currLoc = leftLoc
		} else {
			lbl.SetLocation(geomIndex, PosRight, currLoc)
			lbl.SetLocation(geomIndex, PosLeft, currLoc)
		}
	}

	return nil
}

// MergeSymLabels folds each half-edge's twin label into its own, so both
// traversal directions agree on what they know.
func (s *DirectedEdgeStar) MergeSymLabels() {
	for _, de := range s.Edges() {
		de.Label().Merge(de.Sym().Label())
	}
}

// UpdateLabelling pushes a completed node label into every incident
// half-edge that still has unknown positions.
func (s *DirectedEdgeStar) UpdateLabelling(nodeLabel *Label) {
	for _, de := range s.Edges() {
		de.Label().SetAllLocationsIfNull(0, nodeLabel.LocationOn(0))
		de.Label().SetAllLocationsIfNull(1, nodeLabel.LocationOn(1))
	}
}

// FindCoveredLineEdges marks the line edges around this node as covered or
// uncovered by the result area, by sweeping the star between result area
// edges: between an incoming result edge and the next outgoing one the
// sweep is interior.
func (s *DirectedEdgeStar) FindCoveredLineEdges() {
	// 1) Find the sweep state at the star start.
	startLoc := geom.LocNone
	for _, nextOut := range s.Edges() {
		nextIn := nextOut.Sym()
		if !nextOut.IsLineEdge() {
			if nextOut.IsInResult() {
				startLoc = geom.LocInterior
				break
			}
			if nextIn.IsInResult() {
				startLoc = geom.LocExterior
				break
			}
		}
	}
	// No area boundary at this node: leave coverage to the caller's
	// point-location pass.
	if startLoc == geom.LocNone {
		return
	}

	// 2) Sweep, flipping state at each result area edge.
	currLoc := startLoc
	for _, nextOut := range s.Edges() {
		nextIn := nextOut.Sym()
		if nextOut.IsLineEdge() {
			nextOut.Edge().SetCovered(currLoc == geom.LocInterior)
			continue
		}
		if nextOut.IsInResult() {
			currLoc = geom.LocExterior
		}
		if nextIn.IsInResult() {
			currLoc = geom.LocInterior
		}
	}
}
