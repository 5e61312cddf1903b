package overlay

import (
	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// Overlay computes the Boolean combination of g0 and g1 under op and
// assembles the most specific result geometry. The result factory is a
// fresh stateless factory; the scratch graph structures are discarded when
// the call returns.
//
// Time complexity is dominated by noding: O((n0+n1)²) segment pairs for
// the brute-force intersector, where n is the segment count of each input.
func Overlay(g0, g1 geom.Geometry, op Op) (geom.Geometry, error) {
	o := newComputation(g0, g1)

	return o.compute(op)
}

// computation holds the single-use scratch state of one Overlay call.
type computation struct {
	arg [2]*geomgraph.GeometryGraph

	graph    *geomgraph.PlanarGraph
	edgeList *geomgraph.EdgeList

	factory   *geom.GeometryFactory
	ptLocator *geom.PointLocator
	li        geom.LineIntersector

	resultPolys  []*geom.Polygon
	resultLines  []*geom.LineString
	resultPoints []*geom.Point
}

func newComputation(g0, g1 geom.Geometry) *computation {
	return &computation{
		arg: [2]*geomgraph.GeometryGraph{
			geomgraph.NewGeometryGraph(0, g0),
			geomgraph.NewGeometryGraph(1, g1),
		},
		graph:     geomgraph.NewPlanarGraph(),
		edgeList:  geomgraph.NewEdgeList(),
		factory:   geom.NewGeometryFactory(),
		ptLocator: geom.NewPointLocator(),
	}
}

// compute runs the full overlay pipeline.
func (o *computation) compute(op Op) (geom.Geometry, error) {
	// 1) Seed the result graph with the input point nodes, so isolated
	// points participate in labelling.
	o.copyPoints(0)
	o.copyPoints(1)

	// 2) Node each input against itself, then against the other.
	if _, err := o.arg[0].ComputeSelfNodes(&o.li, false); err != nil {
		return nil, err
	}
	if _, err := o.arg[1].ComputeSelfNodes(&o.li, false); err != nil {
		return nil, err
	}
	if _, err := o.arg[0].ComputeEdgeIntersections(o.arg[1], &o.li, true); err != nil {
		return nil, err
	}

	// 3) Emit split edges and merge duplicates into unique edges,
	// accumulating depths.
	var baseSplitEdges []*geomgraph.Edge
	o.arg[0].ComputeSplitEdges(&baseSplitEdges)
	o.arg[1].ComputeSplitEdges(&baseSplitEdges)
	o.insertUniqueEdges(baseSplitEdges)

	// 4) Resolve stacked duplicates: depths decide the surviving label,
	// a zero delta collapses the edge to a line.
	if err := o.computeLabelsFromDepths(); err != nil {
		return nil, err
	}
	o.replaceCollapsedEdges()

	// 5) Populate the combined planar graph and complete the labelling.
	if err := o.graph.AddEdges(o.edgeList.Edges()); err != nil {
		return nil, err
	}
	if err := o.computeLabelling(); err != nil {
		return nil, err
	}
	o.labelIncompleteNodes()

	// 6) Select the half-edges bounding the result area and drop
	// boundaries the result does not contain.
	o.findResultAreaEdges(op)
	o.cancelDuplicateResultEdges()

	// 7) Build results: polygons first, then lines, then points, so
	// coverage suppression can consult the higher-dimensional results.
	polyBuilder := newPolygonBuilder(o.factory)
	if err := polyBuilder.add(o.graph); err != nil {
		return nil, err
	}
	polys, err := polyBuilder.polygons()
	if err != nil {
		return nil, err
	}
	o.resultPolys = polys

	lineBuilder := newLineBuilder(o)
	lines, err := lineBuilder.build(op)
	if err != nil {
		return nil, err
	}
	o.resultLines = lines

	pointBuilder := newPointBuilder(o)
	o.resultPoints = pointBuilder.build(op)

	return o.buildResultGeometry(), nil
}

// copyPoints seeds result-graph nodes from the input graph's nodes,
// carrying over that argument's On location.
func (o *computation) copyPoints(argIndex int) {
	for _, n := range o.arg[argIndex].Nodes() {
		newNode := o.graph.AddNode(n.Coordinate())
		if lbl := n.Label(); lbl != nil {
			newNode.SetLabelOn(argIndex, lbl.LocationOn(argIndex))
		}
	}
}

// insertUniqueEdges merges each split edge into the edge list: a new chain
// is appended, a duplicate chain folds its label into the existing edge's
// label and depth, flipped when it runs the opposite direction.
func (o *computation) insertUniqueEdges(edges []*geomgraph.Edge) {
	for _, e := range edges {
		o.insertUniqueEdge(e)
	}
}

func (o *computation) insertUniqueEdge(e *geomgraph.Edge) {
	existing := o.edgeList.FindEqualEdge(e)
	if existing == nil {
		o.edgeList.Add(e)
		return
	}

	labelToMerge := e.Label()
	if !existing.IsPointwiseEqual(e) {
		labelToMerge = geomgraph.CopyLabel(e.Label())
		labelToMerge.Flip()
	}

	depth := existing.Depth()
	if depth.IsNull() {
		depth.Add(existing.Label())
	}
	depth.Add(labelToMerge)
	existing.Label().Merge(labelToMerge)
}

// computeLabelsFromDepths rewrites the labels of merged edges from their
// accumulated depths: a zero delta collapses that argument's annotation to
// a line, otherwise each side becomes Interior or Exterior per its depth.
func (o *computation) computeLabelsFromDepths() error {
	for _, e := range o.edgeList.Edges() {
		lbl := e.Label()
		depth := e.Depth()
		if depth.IsNull() {
			continue
		}

		depth.Normalize()
		for i := 0; i < 2; i++ {
			if lbl.IsNull(i) || !lbl.IsArea() || depth.IsNullArg(i) {
				continue
			}
			if depth.Delta(i) == 0 {
				lbl.ToLine(i)
				continue
			}
			if depth.IsNullAt(i, geomgraph.PosLeft) {
				return geomgraph.ErrUninitializedDepth
			}
			lbl.SetLocation(i, geomgraph.PosLeft, depth.Location(i, geomgraph.PosLeft))
			if depth.IsNullAt(i, geomgraph.PosRight) {
				return geomgraph.ErrUninitializedDepth
			}
			lbl.SetLocation(i, geomgraph.PosRight, depth.Location(i, geomgraph.PosRight))
		}
	}

	return nil
}

// replaceCollapsedEdges substitutes every edge folded back onto itself by
// its line edge. Removals and additions are deferred to the end of the
// sweep so the traversal never observes a mutating list.
func (o *computation) replaceCollapsedEdges() {
	var removed, added []*geomgraph.Edge
	for _, e := range o.edgeList.Edges() {
		if e.IsCollapsed() {
			removed = append(removed, e)
			added = append(added, e.CollapsedEdge())
		}
	}
	for _, e := range removed {
		o.edgeList.Remove(e)
	}
	o.edgeList.AddAll(added)
}

// computeLabelling labels every node star from its incident edges, merges
// twin labels, and folds the star labels into the node labels.
func (o *computation) computeLabelling() error {
	geoms := [2]geom.Geometry{o.arg[0].Geometry(), o.arg[1].Geometry()}
	for _, n := range o.graph.Nodes() {
		if err := n.Edges().ComputeLabelling(geoms); err != nil {
			return err
		}
	}
	o.mergeSymLabels()
	o.updateNodeLabelling()

	return nil
}

func (o *computation) mergeSymLabels() {
	for _, n := range o.graph.Nodes() {
		n.Edges().MergeSymLabels()
	}
}

func (o *computation) updateNodeLabelling() {
	for _, n := range o.graph.Nodes() {
		n.MergeLabel(n.Edges().Label())
	}
}

// labelIncompleteNodes completes nodes present in only one input by
// locating them against the other input's geometry, then pushes the
// completed labels back into the incident edges.
func (o *computation) labelIncompleteNodes() {
	for _, n := range o.graph.Nodes() {
		if n.IsIsolated() {
			if n.Label() == nil || n.Label().IsNull(0) {
				o.labelIncompleteNode(n, 0)
			} else {
				o.labelIncompleteNode(n, 1)
			}
		}
		n.Edges().UpdateLabelling(n.Label())
	}
}

func (o *computation) labelIncompleteNode(n *geomgraph.Node, targetIndex int) {
	loc := o.ptLocator.Locate(n.Coordinate(), o.arg[targetIndex].Geometry())
	n.SetLabelOn(targetIndex, loc)
}

// findResultAreaEdges marks every half-edge whose right side belongs to
// the result area. The right side is chosen so result shells run
// clockwise. Edges lying wholly inside an area contribute no boundary.
func (o *computation) findResultAreaEdges(op Op) {
	for _, de := range o.graph.EdgeEnds() {
		lbl := de.Label()
		if lbl.IsArea() &&
			!de.IsInteriorAreaEdge() &&
			IsResultOfOp(
				lbl.Location(0, geomgraph.PosRight),
				lbl.Location(1, geomgraph.PosRight),
				op) {
			de.SetInResult(true)
		}
	}
}

// cancelDuplicateResultEdges unmarks half-edge pairs where both
// directions were selected: such an edge lies on a boundary the result
// area does not contain.
func (o *computation) cancelDuplicateResultEdges() {
	for _, de := range o.graph.EdgeEnds() {
		sym := de.Sym()
		if de.IsInResult() && sym.IsInResult() {
			de.SetInResult(false)
			sym.SetInResult(false)
		}
	}
}

// isCovered reports whether coord lies in or on any geometry of the list.
func (o *computation) isCovered(coord geom.Coordinate, geoms []geom.Geometry) bool {
	for _, g := range geoms {
		if o.ptLocator.Locate(coord, g) != geom.LocExterior {
			return true
		}
	}

	return false
}

// isCoveredByA reports whether coord is covered by a result polygon.
func (o *computation) isCoveredByA(coord geom.Coordinate) bool {
	return o.isCovered(coord, polysAsGeometries(o.resultPolys))
}

// isCoveredByLA reports whether coord is covered by a result line or
// polygon.
func (o *computation) isCoveredByLA(coord geom.Coordinate) bool {
	if o.isCovered(coord, linesAsGeometries(o.resultLines)) {
		return true
	}

	return o.isCovered(coord, polysAsGeometries(o.resultPolys))
}

// buildResultGeometry assembles points, lines and polygons into the most
// specific geometry type.
func (o *computation) buildResultGeometry() geom.Geometry {
	var all []geom.Geometry
	for _, p := range o.resultPoints {
		all = append(all, p)
	}
	for _, l := range o.resultLines {
		all = append(all, l)
	}
	for _, p := range o.resultPolys {
		all = append(all, p)
	}

	return o.factory.BuildGeometry(all)
}

func polysAsGeometries(polys []*geom.Polygon) []geom.Geometry {
	out := make([]geom.Geometry, len(polys))
	for i, p := range polys {
		out[i] = p
	}

	return out
}

func linesAsGeometries(lines []*geom.LineString) []geom.Geometry {
	out := make([]geom.Geometry, len(lines))
	for i, l := range lines {
		out[i] = l
	}

	return out
}
