package geomgraph

import "github.com/marakyss/planar/geom"

// GeometryGraph decomposes one input geometry into labelled edges and
// nodes, and nodes it against itself or another graph. argIndex records
// which overlay argument (0 or 1) this graph describes, so every label it
// produces annotates the right element.
type GeometryGraph struct {
	geometry geom.Geometry
	argIndex int

	edges []*Edge
	nodes *NodeMap
}

// NewGeometryGraph builds the graph of g as overlay argument argIndex.
func NewGeometryGraph(argIndex int, g geom.Geometry) *GeometryGraph {
	gg := &GeometryGraph{
		geometry: g,
		argIndex: argIndex,
		nodes:    NewNodeMap(false),
	}
	if g != nil {
		gg.add(g)
	}

	return gg
}

// Geometry returns the input geometry.
func (gg *GeometryGraph) Geometry() geom.Geometry { return gg.geometry }

// Edges returns the decomposed edges.
func (gg *GeometryGraph) Edges() []*Edge { return gg.edges }

// Nodes returns the graph nodes in lexicographic coordinate order.
func (gg *GeometryGraph) Nodes() []*Node { return gg.nodes.Values() }

// BoundaryNodes returns the nodes on this argument's boundary.
func (gg *GeometryGraph) BoundaryNodes() []*Node {
	return gg.nodes.BoundaryNodes(gg.argIndex)
}

// add dispatches decomposition over the geometry structure.
func (gg *GeometryGraph) add(g geom.Geometry) {
	if g == nil || g.IsEmpty() {
		return
	}

	switch t := g.(type) {
	case *geom.Point:
		gg.addPoint(t.C)
	case *geom.LineString:
		gg.addLineString(t)
	case *geom.LinearRing:
		gg.addLineString(&t.LineString)
	case *geom.Polygon:
		gg.addPolygon(t)
	case *geom.MultiPoint:
		for _, p := range t.Points {
			gg.addPoint(p.C)
		}
	case *geom.MultiLineString:
		for _, l := range t.Lines {
			gg.addLineString(l)
		}
	case *geom.MultiPolygon:
		for _, p := range t.Polygons {
			gg.addPolygon(p)
		}
	case *geom.GeometryCollection:
		for _, elem := range t.Geometries {
			gg.add(elem)
		}
	}
}

// addPolygon adds the shell and holes with their boundary side labels.
// Holes swap the side locations so Interior is always toward the
// polygon's inside.
func (gg *GeometryGraph) addPolygon(p *geom.Polygon) {
	gg.addPolygonRing(p.Shell, geom.LocExterior, geom.LocInterior)
	for _, hole := range p.Holes {
		gg.addPolygonRing(hole, geom.LocInterior, geom.LocExterior)
	}
}

// addPolygonRing adds one ring edge labelled Boundary on the ring with
// cwLeft/cwRight on its sides for a clockwise ring; a counter-clockwise
// ring swaps them.
func (gg *GeometryGraph) addPolygonRing(ring *geom.LinearRing, cwLeft, cwRight geom.Location) {
	if ring == nil || ring.IsEmpty() {
		return
	}

	pts := removeRepeatedPoints(ring.Pts)
	if len(pts) < 4 {
		return
	}

	left, right := cwLeft, cwRight
	if geom.IsCCW(pts) {
		left, right = cwRight, cwLeft
	}

	e := NewEdge(pts, NewLabelArgSides(gg.argIndex, geom.LocBoundary, left, right))
	gg.edges = append(gg.edges, e)
	gg.insertPoint(pts[0], geom.LocBoundary)
}

// addLineString adds one line edge labelled Interior on the line, with
// the endpoints contributing to the boundary under the mod-2 rule.
func (gg *GeometryGraph) addLineString(line *geom.LineString) {
	pts := removeRepeatedPoints(line.Pts)
	if len(pts) < 2 {
		return
	}

	e := NewEdge(pts, NewLabelArgOn(gg.argIndex, geom.LocInterior))
	gg.edges = append(gg.edges, e)

	gg.insertBoundaryPoint(pts[0])
	gg.insertBoundaryPoint(pts[len(pts)-1])
}

// addPoint adds an isolated point node labelled Interior.
func (gg *GeometryGraph) addPoint(c geom.Coordinate) {
	gg.insertPoint(c, geom.LocInterior)
}

// insertPoint records the On location of this argument at coord.
func (gg *GeometryGraph) insertPoint(coord geom.Coordinate, onLocation geom.Location) {
	n := gg.nodes.AddNode(coord)
	n.SetLabelOn(gg.argIndex, onLocation)
}

// insertBoundaryPoint records a line endpoint at coord, applying the mod-2
// rule: an odd number of endpoints is Boundary, an even number merges to
// Interior.
func (gg *GeometryGraph) insertBoundaryPoint(coord geom.Coordinate) {
	n := gg.nodes.AddNode(coord)

	boundaryCount := 1
	if n.Label() != nil && n.Label().LocationOn(gg.argIndex) == geom.LocBoundary {
		boundaryCount++
	}

	newLoc := geom.LocInterior
	if boundaryCount%2 == 1 {
		newLoc = geom.LocBoundary
	}
	n.SetLabelOn(gg.argIndex, newLoc)
}

// ComputeSelfNodes nodes this graph against itself, recording every
// self-intersection on the edges and raising the corresponding nodes.
// When ringSelfTouchOnly is false and the geometry is purely polygonal,
// edges are not tested against themselves: valid rings only self-touch at
// vertices.
func (gg *GeometryGraph) ComputeSelfNodes(li *geom.LineIntersector, ringSelfTouchOnly bool) (*SegmentIntersector, error) {
	si := NewSegmentIntersector(li, true, false)

	testAllSegments := ringSelfTouchOnly || !gg.isRingsOnly()
	if err := computeSelfIntersections(gg.edges, si, testAllSegments); err != nil {
		return nil, err
	}
	gg.addSelfIntersectionNodes()

	return si, nil
}

// ComputeEdgeIntersections nodes this graph against another input graph.
func (gg *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph, li *geom.LineIntersector, includeProper bool) (*SegmentIntersector, error) {
	si := NewSegmentIntersector(li, includeProper, true)
	if err := computeMutualIntersections(gg.edges, other.edges, si); err != nil {
		return nil, err
	}

	return si, nil
}

// ComputeSplitEdges appends this graph's fully noded split edges to out.
func (gg *GeometryGraph) ComputeSplitEdges(out *[]*Edge) {
	for _, e := range gg.edges {
		e.Intersections().AddEndpoints()
		e.Intersections().AddSplitEdges(out)
	}
}

// isRingsOnly reports whether the geometry is purely polygonal.
func (gg *GeometryGraph) isRingsOnly() bool {
	return isPolygonal(gg.geometry)
}

func isPolygonal(g geom.Geometry) bool {
	switch t := g.(type) {
	case *geom.Polygon:
		return true
	case *geom.MultiPolygon:
		return true
	case *geom.GeometryCollection:
		for _, elem := range t.Geometries {
			if !isPolygonal(elem) {
				return false
			}
		}
		return len(t.Geometries) > 0
	default:
		return false
	}
}

// addSelfIntersectionNodes raises a node for every recorded
// self-intersection point. A point on a boundary edge joins the boundary
// under the mod-2 rule; other points land in the interior.
func (gg *GeometryGraph) addSelfIntersectionNodes() {
	for _, e := range gg.edges {
		eLoc := e.Label().LocationOn(gg.argIndex)
		for _, ei := range e.Intersections().All() {
			gg.addSelfIntersectionNode(ei.Coord, eLoc)
		}
	}
}

func (gg *GeometryGraph) addSelfIntersectionNode(coord geom.Coordinate, loc geom.Location) {
	// An existing boundary node keeps its status.
	if gg.isBoundaryNode(coord) {
		return
	}
	if loc == geom.LocBoundary {
		gg.insertBoundaryPoint(coord)
		return
	}
	gg.insertPoint(coord, loc)
}

func (gg *GeometryGraph) isBoundaryNode(coord geom.Coordinate) bool {
	n := gg.nodes.Find(coord)
	if n == nil || n.Label() == nil {
		return false
	}

	return n.Label().LocationOn(gg.argIndex) == geom.LocBoundary
}

// removeRepeatedPoints drops consecutive duplicate coordinates.
func removeRepeatedPoints(pts []geom.Coordinate) []geom.Coordinate {
	if len(pts) == 0 {
		return pts
	}

	out := make([]geom.Coordinate, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !p.Equals2D(out[len(out)-1]) {
			out = append(out, p)
		}
	}

	return out
}
