package geomgraph

import "github.com/marakyss/planar/geom"

// PlanarGraph is the combined arrangement of both inputs after noding:
// nodes with directed edge stars over the unique split edges. It is the
// structure the overlay driver labels and the result builders consume.
type PlanarGraph struct {
	edges    []*Edge
	nodes    *NodeMap
	edgeEnds []*DirectedEdge
}

// NewPlanarGraph returns an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap(true)}
}

// Edges returns the underlying edges added so far.
func (g *PlanarGraph) Edges() []*Edge { return g.edges }

// EdgeEnds returns every directed half-edge of the graph.
func (g *PlanarGraph) EdgeEnds() []*DirectedEdge { return g.edgeEnds }

// Nodes returns the graph nodes in lexicographic coordinate order.
func (g *PlanarGraph) Nodes() []*Node { return g.nodes.Values() }

// AddNode returns the node at coord, creating it on first use.
func (g *PlanarGraph) AddNode(coord geom.Coordinate) *Node {
	return g.nodes.AddNode(coord)
}

// Find returns the node at coord or nil.
func (g *PlanarGraph) Find(coord geom.Coordinate) *Node {
	return g.nodes.Find(coord)
}

// AddEdges inserts a set of edges into the graph: for every edge both
// half-edges are created, twinned, and attached to the node stars at
// their origins.
func (g *PlanarGraph) AddEdges(edges []*Edge) error {
	for _, e := range edges {
		g.edges = append(g.edges, e)

		de1, err := NewDirectedEdge(e, true)
		if err != nil {
			return err
		}
		de2, err := NewDirectedEdge(e, false)
		if err != nil {
			return err
		}
		de1.SetSym(de2)
		de2.SetSym(de1)

		g.add(de1)
		g.add(de2)
	}

	return nil
}

// add attaches a half-edge to the node at its origin.
func (g *PlanarGraph) add(de *DirectedEdge) {
	n := g.nodes.AddNode(de.Coordinate())
	n.Add(de)
	g.edgeEnds = append(g.edgeEnds, de)
}
