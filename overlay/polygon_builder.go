package overlay

import (
	"math"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// Linking states for the incoming/outgoing pairing scan around a node.
const (
	scanningForIncoming = 1
	linkingToOutgoing   = 2
)

// polygonBuilder assembles the result polygons from the half-edges marked
// as result area boundary: it links them into maximal rings, decomposes
// pinched rings into minimal rings, classifies shells and holes, and
// assigns every hole to its shell.
type polygonBuilder struct {
	factory   *geom.GeometryFactory
	shellList []*edgeRing

	// Ring assignment of consumed half-edges, at maximal and minimal
	// granularity. Rings and graph share one lifetime, so identity maps
	// replace back-pointers on the edges.
	maxRing map[*geomgraph.DirectedEdge]*edgeRing
	minRing map[*geomgraph.DirectedEdge]*edgeRing
}

func newPolygonBuilder(factory *geom.GeometryFactory) *polygonBuilder {
	return &polygonBuilder{
		factory: factory,
		maxRing: make(map[*geomgraph.DirectedEdge]*edgeRing),
		minRing: make(map[*geomgraph.DirectedEdge]*edgeRing),
	}
}

// add consumes the marked half-edges of graph into shells and holes.
func (pb *polygonBuilder) add(graph *geomgraph.PlanarGraph) error {
	// 1) Pair incoming with outgoing result edges around every node.
	for _, n := range graph.Nodes() {
		if err := linkResultDirectedEdges(n.Edges()); err != nil {
			return err
		}
	}

	// 2) Walk the maximal rings.
	maxRings, err := pb.buildMaximalEdgeRings(graph.EdgeEnds())
	if err != nil {
		return err
	}

	// 3) Decompose pinched rings into minimal rings, extracting shells.
	var freeHoles []*edgeRing
	edgeRings, err := pb.buildMinimalEdgeRings(maxRings, &freeHoles)
	if err != nil {
		return err
	}

	// 4) Classify the remaining simple rings and place orphan holes.
	pb.sortShellsAndHoles(edgeRings, &freeHoles)

	return pb.placeFreeHoles(freeHoles)
}

// polygons emits one polygon per shell.
func (pb *polygonBuilder) polygons() ([]*geom.Polygon, error) {
	out := make([]*geom.Polygon, 0, len(pb.shellList))
	for _, shell := range pb.shellList {
		poly, err := shell.toPolygon(pb.factory)
		if err != nil {
			return nil, err
		}
		out = append(out, poly)
	}

	return out, nil
}

// buildMaximalEdgeRings walks a maximal ring from every marked, unconsumed
// area half-edge.
func (pb *polygonBuilder) buildMaximalEdgeRings(dirEdges []*geomgraph.DirectedEdge) ([]*edgeRing, error) {
	var maxRings []*edgeRing
	for _, de := range dirEdges {
		if !de.IsInResult() || !de.Label().IsArea() {
			continue
		}
		if pb.maxRing[de] != nil {
			continue
		}

		er, err := pb.newEdgeRing(de, false)
		if err != nil {
			return nil, err
		}
		maxRings = append(maxRings, er)
		er.setInResult()
	}

	return maxRings, nil
}

// buildMinimalEdgeRings decomposes every pinched maximal ring into its
// minimal rings, collecting the contained shell and attaching its holes;
// simple maximal rings pass through unchanged.
func (pb *polygonBuilder) buildMinimalEdgeRings(maxRings []*edgeRing, freeHoles *[]*edgeRing) ([]*edgeRing, error) {
	var edgeRings []*edgeRing
	for _, er := range maxRings {
		if er.nodeDegree() <= 2 {
			edgeRings = append(edgeRings, er)
			continue
		}

		if err := er.linkMinimalEdges(); err != nil {
			return nil, err
		}
		minRings, err := er.buildMinimalRings()
		if err != nil {
			return nil, err
		}

		shell, err := findShell(minRings)
		if err != nil {
			return nil, err
		}
		if shell == nil {
			*freeHoles = append(*freeHoles, minRings...)
			continue
		}
		placePolygonHoles(shell, minRings)
		pb.shellList = append(pb.shellList, shell)
	}

	return edgeRings, nil
}

// findShell returns the unique non-hole ring of a minimal ring set, nil
// when the set consists of holes only.
func findShell(minRings []*edgeRing) (*edgeRing, error) {
	var shell *edgeRing
	for _, er := range minRings {
		if er.isHole() {
			continue
		}
		if shell != nil {
			return nil, ErrMultipleShells
		}
		shell = er
	}

	return shell, nil
}

// placePolygonHoles attaches the hole rings of one minimal ring set to its
// shell.
func placePolygonHoles(shell *edgeRing, minRings []*edgeRing) {
	for _, er := range minRings {
		if er.isHole() {
			er.setShell(shell)
		}
	}
}

// sortShellsAndHoles splits simple rings into shells and yet-unassigned
// holes.
func (pb *polygonBuilder) sortShellsAndHoles(edgeRings []*edgeRing, freeHoles *[]*edgeRing) {
	for _, er := range edgeRings {
		if er.isHole() {
			*freeHoles = append(*freeHoles, er)
			continue
		}
		pb.shellList = append(pb.shellList, er)
	}
}

// placeFreeHoles assigns every orphan hole to the smallest shell
// containing it.
func (pb *polygonBuilder) placeFreeHoles(freeHoles []*edgeRing) error {
	for _, hole := range freeHoles {
		if hole.shell != nil {
			continue
		}
		shell := pb.findEdgeRingContaining(hole)
		if shell == nil {
			return ErrDanglingHole
		}
		hole.setShell(shell)
	}

	return nil
}

// findEdgeRingContaining returns the smallest shell properly containing
// the hole, testing with a hole vertex that is not a vertex of the shell.
func (pb *polygonBuilder) findEdgeRingContaining(hole *edgeRing) *edgeRing {
	var minShell *edgeRing
	minArea := math.Inf(1)
	for _, shell := range pb.shellList {
		testPt, ok := ptNotInList(hole.ring.Pts, shell.ring.Pts)
		if !ok {
			continue
		}
		if geom.LocatePointInRing(testPt, shell.ring.Pts) != geom.LocInterior {
			continue
		}
		if area := ringEnvelopeArea(shell.ring.Pts); area < minArea {
			minShell = shell
			minArea = area
		}
	}

	return minShell
}

// ptNotInList returns the first point of pts absent from exclude.
func ptNotInList(pts, exclude []geom.Coordinate) (geom.Coordinate, bool) {
	for _, p := range pts {
		found := false
		for _, q := range exclude {
			if p.Equals2D(q) {
				found = true
				break
			}
		}
		if !found {
			return p, true
		}
	}

	return geom.Coordinate{}, false
}

// ringEnvelopeArea returns the area of the ring's bounding box, the
// cheap proxy used to pick the smallest containing shell.
func ringEnvelopeArea(pts []geom.Coordinate) float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return (maxX - minX) * (maxY - minY)
}

// linkResultDirectedEdges pairs each incoming result half-edge around a
// node with the next outgoing result half-edge counter-clockwise,
// producing the next-pointers the maximal ring walk follows.
func linkResultDirectedEdges(star *geomgraph.DirectedEdgeStar) error {
	var firstOut, incoming *geomgraph.DirectedEdge
	state := scanningForIncoming

	for _, nextOut := range star.ResultAreaEdges() {
		nextIn := nextOut.Sym()
		if !nextOut.Label().IsArea() {
			continue
		}
		if firstOut == nil && nextOut.IsInResult() {
			firstOut = nextOut
		}

		switch state {
		case scanningForIncoming:
			if !nextIn.IsInResult() {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if !nextOut.IsInResult() {
				continue
			}
			incoming.SetNext(nextOut)
			state = scanningForIncoming
		}
	}

	if state == linkingToOutgoing {
		if firstOut == nil {
			return ErrNoOutgoingEdge
		}
		incoming.SetNext(firstOut)
	}

	return nil
}

// linkMinimalDirectedEdges pairs incoming with outgoing half-edges of one
// maximal ring around a node, walking the star clockwise, producing the
// nextMin-pointers of the minimal ring decomposition.
func (pb *polygonBuilder) linkMinimalDirectedEdges(star *geomgraph.DirectedEdgeStar, er *edgeRing) error {
	var firstOut, incoming *geomgraph.DirectedEdge
	state := scanningForIncoming

	edges := star.ResultAreaEdges()
	for i := len(edges) - 1; i >= 0; i-- {
		nextOut := edges[i]
		nextIn := nextOut.Sym()
		if firstOut == nil && pb.maxRing[nextOut] == er {
			firstOut = nextOut
		}

		switch state {
		case scanningForIncoming:
			if pb.maxRing[nextIn] != er {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if pb.maxRing[nextOut] != er {
				continue
			}
			incoming.SetNextMin(nextOut)
			state = scanningForIncoming
		}
	}

	if state == linkingToOutgoing {
		if firstOut == nil {
			return ErrNoOutgoingEdge
		}
		incoming.SetNextMin(firstOut)
	}

	return nil
}
