// Package overlay: operation codes, result predicates and sentinel errors.
package overlay

import (
	"errors"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// Sentinel errors for overlay computation. They indicate topology
// inconsistencies in the noded arrangement; no partial result is returned
// alongside them.
var (
	// ErrNoOutgoingEdge indicates ring linking found an incoming result
	// edge with no outgoing result edge to continue into.
	ErrNoOutgoingEdge = errors.New("overlay: no outgoing directed edge found")

	// ErrNilRingEdge indicates a broken next-edge chain while walking a
	// result ring.
	ErrNilRingEdge = errors.New("overlay: found nil directed edge while walking ring")

	// ErrRingVisitedTwice indicates the same directed edge was reached
	// twice while building one ring.
	ErrRingVisitedTwice = errors.New("overlay: directed edge visited twice during ring building")

	// ErrDanglingHole indicates a hole ring could not be assigned to any
	// shell.
	ErrDanglingHole = errors.New("overlay: unable to assign hole to a shell")

	// ErrMultipleShells indicates a maximal ring decomposed into more
	// than one shell.
	ErrMultipleShells = errors.New("overlay: found more than one shell in minimal ring set")

	// ErrNonAreaRingLabel indicates a ring walk consumed an edge without
	// area annotation.
	ErrNonAreaRingLabel = errors.New("overlay: ring edge without area label")
)

// Op selects the Boolean set operation an overlay computes.
type Op int

const (
	// Intersection keeps the points in both inputs.
	Intersection Op = iota

	// Union keeps the points in either input.
	Union

	// Difference keeps the points in the first input but not the second.
	Difference

	// SymDifference keeps the points in exactly one of the inputs.
	SymDifference
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case SymDifference:
		return "SymDifference"
	default:
		return "Unknown"
	}
}

// IsResultOfOp reports whether a point located loc0 relative to the first
// input and loc1 relative to the second belongs to the result of op.
// Boundary counts as Interior: overlay results are closed point sets.
func IsResultOfOp(loc0, loc1 geom.Location, op Op) bool {
	if loc0 == geom.LocBoundary {
		loc0 = geom.LocInterior
	}
	if loc1 == geom.LocBoundary {
		loc1 = geom.LocInterior
	}

	in0 := loc0 == geom.LocInterior
	in1 := loc1 == geom.LocInterior

	switch op {
	case Intersection:
		return in0 && in1
	case Union:
		return in0 || in1
	case Difference:
		return in0 && !in1
	case SymDifference:
		return in0 != in1
	default:
		return false
	}
}

// IsLabelResultOfOp is IsResultOfOp applied to a label's On locations.
func IsLabelResultOfOp(lbl *geomgraph.Label, op Op) bool {
	return IsResultOfOp(lbl.LocationOn(0), lbl.LocationOn(1), op)
}
