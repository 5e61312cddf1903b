// Package geomgraph: side positions and sentinel errors shared by the
// topology machinery.
package geomgraph

import "errors"

// Sentinel errors for topology construction. All of them indicate either
// an inconsistency between noded inputs (topology errors) or a broken
// internal invariant surfaced as an error instead of a partial result.
var (
	// ErrSideConflict indicates two edges around a node claim different
	// locations for the same side of the same input geometry.
	ErrSideConflict = errors.New("geomgraph: side location conflict")

	// ErrNullSideLabel indicates a side label expected to be populated
	// during propagation was missing.
	ErrNullSideLabel = errors.New("geomgraph: found null side label during propagation")

	// ErrUninitializedDepth indicates a depth value was read before any
	// label contributed to it.
	ErrUninitializedDepth = errors.New("geomgraph: depth not initialized at edge side")

	// ErrZeroLengthDirection indicates a directed edge with coincident
	// origin and direction points.
	ErrZeroLengthDirection = errors.New("geomgraph: directed edge with zero-length direction vector")
)

// Side positions of a graph component relative to an input geometry.
// For an edge, Left and Right are taken facing along the edge direction;
// for a node only On is meaningful.
const (
	// PosOn is the position on the component itself.
	PosOn = 0

	// PosLeft is the position to the left of the component.
	PosLeft = 1

	// PosRight is the position to the right of the component.
	PosRight = 2
)

// OppositePosition returns Left for Right and vice versa; On maps to On.
func OppositePosition(pos int) int {
	switch pos {
	case PosLeft:
		return PosRight
	case PosRight:
		return PosLeft
	default:
		return pos
	}
}
