package geomgraph

// EdgeList is the ordered collection of unique noded edges for one overlay
// computation. It supports lookup of an existing edge equal to a candidate
// in either direction, which drives duplicate merging.
//
// Mutation during traversal must follow the deferred two-pass pattern:
// record removals and additions while iterating, apply them afterwards.
type EdgeList struct {
	edges []*Edge
}

// NewEdgeList returns an empty list.
func NewEdgeList() *EdgeList { return &EdgeList{} }

// Add appends e.
func (l *EdgeList) Add(e *Edge) { l.edges = append(l.edges, e) }

// AddAll appends every edge of es.
func (l *EdgeList) AddAll(es []*Edge) { l.edges = append(l.edges, es...) }

// Edges returns the underlying ordered collection.
func (l *EdgeList) Edges() []*Edge { return l.edges }

// Get returns the i-th edge.
func (l *EdgeList) Get(i int) *Edge { return l.edges[i] }

// Len returns the number of edges.
func (l *EdgeList) Len() int { return len(l.edges) }

// FindEdgeIndex returns the position of an existing edge whose coordinate
// chain equals e's in either direction, or -1.
func (l *EdgeList) FindEdgeIndex(e *Edge) int {
	for i, candidate := range l.edges {
		if candidate.Equals(e) {
			return i
		}
	}

	return -1
}

// FindEqualEdge returns the existing edge equal to e in either direction,
// or nil.
func (l *EdgeList) FindEqualEdge(e *Edge) *Edge {
	if i := l.FindEdgeIndex(e); i >= 0 {
		return l.edges[i]
	}

	return nil
}

// Remove deletes e (by identity) from the list.
func (l *EdgeList) Remove(e *Edge) {
	for i, candidate := range l.edges {
		if candidate == e {
			l.edges = append(l.edges[:i], l.edges[i+1:]...)
			return
		}
	}
}
