package geomgraph

import (
	"sort"

	"github.com/marakyss/planar/geom"
)

// Node is a coordinate of the arrangement carrying a label and, in the
// overlay graph, the star of directed edges leaving it. Nodes of the
// per-input geometry graphs carry no star.
type Node struct {
	coord geom.Coordinate
	label *Label
	star  *DirectedEdgeStar
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() geom.Coordinate { return n.coord }

// Label returns the node's label; nil until any location is recorded.
func (n *Node) Label() *Label { return n.label }

// Edges returns the node's directed edge star (nil for geometry-graph
// nodes).
func (n *Node) Edges() *DirectedEdgeStar { return n.star }

// Add inserts an outgoing directed edge into the node's star.
func (n *Node) Add(de *DirectedEdge) {
	n.star.Insert(de)
	de.node = n
}

// IsIsolated reports whether the node belongs to only one of the input
// geometries, i.e. no edge or node of the other input passes through it.
func (n *Node) IsIsolated() bool {
	return n.label == nil || n.label.GeometryCount() == 1
}

// IsIncidentEdgeInResult reports whether any edge incident at this node
// has been included in the result linework.
func (n *Node) IsIncidentEdgeInResult() bool {
	if n.star == nil {
		return false
	}
	for _, de := range n.star.Edges() {
		if de.Edge().IsInResult() {
			return true
		}
	}

	return false
}

// SetLabelOn records the On location of argument argIndex, creating the
// label on first use.
func (n *Node) SetLabelOn(argIndex int, onLocation geom.Location) {
	if n.label == nil {
		n.label = NewLabelArgOn(argIndex, onLocation)
		return
	}
	n.label.SetLocationOn(argIndex, onLocation)
}

// SetLabelBoundary flips the boundary parity of argument argIndex:
// the first boundary hit marks Boundary, the second merges to Interior,
// and so on (mod-2 rule).
func (n *Node) SetLabelBoundary(argIndex int) {
	var loc geom.Location
	if n.label != nil {
		loc = n.label.LocationOn(argIndex)
	} else {
		loc = geom.LocNone
	}

	var newLoc geom.Location
	if loc == geom.LocBoundary {
		newLoc = geom.LocInterior
	} else {
		newLoc = geom.LocBoundary
	}
	n.SetLabelOn(argIndex, newLoc)
}

// MergeLabel folds other's locations into the node's label. Only None
// positions are overwritten, except that Boundary is never demoted.
func (n *Node) MergeLabel(other *Label) {
	if n.label == nil {
		n.label = CopyLabel(other)
		return
	}
	for i := 0; i < 2; i++ {
		loc := n.computeMergedLocation(other, i)
		if n.label.LocationOn(i) == geom.LocNone {
			n.label.SetLocationOn(i, loc)
		}
	}
}

// computeMergedLocation returns the effective merged On location of
// argument eltIndex given an incoming label: Boundary wins, otherwise the
// incoming value replaces a missing one.
func (n *Node) computeMergedLocation(other *Label, eltIndex int) geom.Location {
	loc := n.label.LocationOn(eltIndex)
	if !other.IsNull(eltIndex) {
		nLoc := other.LocationOn(eltIndex)
		if loc != geom.LocBoundary {
			loc = nLoc
		}
	}

	return loc
}

// NodeMap is the coordinate-keyed collection of nodes of one graph.
// Iteration is always in lexicographic coordinate order so computations
// are deterministic.
type NodeMap struct {
	nodes     map[geom.Coordinate]*Node
	withStars bool
}

// NewNodeMap returns an empty map. When withStars is set, created nodes
// carry a DirectedEdgeStar.
func NewNodeMap(withStars bool) *NodeMap {
	return &NodeMap{
		nodes:     make(map[geom.Coordinate]*Node),
		withStars: withStars,
	}
}

// AddNode returns the node at coord, creating it on first use.
func (m *NodeMap) AddNode(coord geom.Coordinate) *Node {
	if n, ok := m.nodes[coord]; ok {
		return n
	}

	n := &Node{coord: coord}
	if m.withStars {
		n.star = &DirectedEdgeStar{}
	}
	m.nodes[coord] = n

	return n
}

// Find returns the node at coord or nil.
func (m *NodeMap) Find(coord geom.Coordinate) *Node { return m.nodes[coord] }

// Values returns all nodes in lexicographic coordinate order.
func (m *NodeMap) Values() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].coord.Compare(out[j].coord) < 0
	})

	return out
}

// BoundaryNodes returns the nodes on the boundary of argument geomIndex.
func (m *NodeMap) BoundaryNodes(geomIndex int) []*Node {
	var out []*Node
	for _, n := range m.Values() {
		if n.label != nil && n.label.LocationOn(geomIndex) == geom.LocBoundary {
			out = append(out, n)
		}
	}

	return out
}
