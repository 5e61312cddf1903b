package geomgraph

import "github.com/marakyss/planar/geom"

// depthNull marks a depth counter no label has contributed to yet.
const depthNull = -1

// Depth records per-argument topological depth on the Left and Right sides
// of an edge. Depth 0 means Exterior, depth >= 1 means Interior; stacked
// duplicate edges accumulate their labels here so the surviving edge can
// derive a single consistent label.
type Depth struct {
	depth [2][3]int
}

// NewDepth returns an uninitialised Depth.
func NewDepth() *Depth {
	var d Depth
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			d.depth[i][j] = depthNull
		}
	}

	return &d
}

// depthAtLocation converts a location into its depth contribution:
// Interior counts 1, Exterior counts 0.
func depthAtLocation(loc geom.Location) int {
	switch loc {
	case geom.LocExterior:
		return 0
	case geom.LocInterior:
		return 1
	default:
		return depthNull
	}
}

// GetDepth returns the accumulated depth of argument geomIndex at pos.
func (d *Depth) GetDepth(geomIndex, pos int) int { return d.depth[geomIndex][pos] }

// SetDepth writes the depth of argument geomIndex at pos.
func (d *Depth) SetDepth(geomIndex, pos, value int) { d.depth[geomIndex][pos] = value }

// Location converts the depth of argument geomIndex at pos back to a
// location: values <= 0 are Exterior, positive values Interior.
func (d *Depth) Location(geomIndex, pos int) geom.Location {
	if d.depth[geomIndex][pos] <= 0 {
		return geom.LocExterior
	}

	return geom.LocInterior
}

// IsNull reports whether no label has contributed to any counter.
func (d *Depth) IsNull() bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if d.depth[i][j] != depthNull {
				return false
			}
		}
	}

	return true
}

// IsNullArg reports whether argument geomIndex is uninitialised.
func (d *Depth) IsNullArg(geomIndex int) bool {
	return d.depth[geomIndex][PosLeft] == depthNull
}

// IsNullAt reports whether argument geomIndex at pos is uninitialised.
func (d *Depth) IsNullAt(geomIndex, pos int) bool {
	return d.depth[geomIndex][pos] == depthNull
}

// Add accumulates the side locations of lbl into the counters: each
// Interior side increments its counter, each Exterior side initialises it
// to zero.
func (d *Depth) Add(lbl *Label) {
	var loc geom.Location
	for i := 0; i < 2; i++ {
		for j := PosLeft; j <= PosRight; j++ {
			loc = lbl.Location(i, j)
			if loc == geom.LocExterior || loc == geom.LocInterior {
				if d.IsNullAt(i, j) {
					d.depth[i][j] = depthAtLocation(loc)
				} else {
					d.depth[i][j] += depthAtLocation(loc)
				}
			}
		}
	}
}

// Delta returns the absolute difference between the Left and Right depths
// of argument geomIndex. A zero delta after Normalize signals a
// dimensional collapse on that argument.
func (d *Depth) Delta(geomIndex int) int {
	delta := d.depth[geomIndex][PosLeft] - d.depth[geomIndex][PosRight]
	if delta < 0 {
		return -delta
	}

	return delta
}

// Normalize reduces each initialised argument to canonical 0/1 depths:
// the shallower side becomes 0, any deeper side becomes 1.
func (d *Depth) Normalize() {
	var minDepth, newValue int
	for i := 0; i < 2; i++ {
		if d.IsNullArg(i) {
			continue
		}
		minDepth = d.depth[i][PosLeft]
		if d.depth[i][PosRight] < minDepth {
			minDepth = d.depth[i][PosRight]
		}
		if minDepth < 0 {
			minDepth = 0
		}
		for j := PosLeft; j <= PosRight; j++ {
			newValue = 0
			if d.depth[i][j] > minDepth {
				newValue = 1
			}
			d.depth[i][j] = newValue
		}
	}
}
