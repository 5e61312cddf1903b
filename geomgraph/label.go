package geomgraph

import "github.com/marakyss/planar/geom"

// TopologyLocation records the Location of a graph component relative to
// ONE input geometry. Line components carry a single On location; area
// components carry On, Left and Right locations.
type TopologyLocation struct {
	loc []geom.Location
}

// newTopologyLocationOn returns a line-sized location holding only on.
func newTopologyLocationOn(on geom.Location) TopologyLocation {
	return TopologyLocation{loc: []geom.Location{on}}
}

// newTopologyLocationSides returns an area-sized location.
func newTopologyLocationSides(on, left, right geom.Location) TopologyLocation {
	return TopologyLocation{loc: []geom.Location{on, left, right}}
}

// copyTopologyLocation deep-copies tl.
func copyTopologyLocation(tl TopologyLocation) TopologyLocation {
	loc := make([]geom.Location, len(tl.loc))
	copy(loc, tl.loc)

	return TopologyLocation{loc: loc}
}

// Get returns the location at pos, or LocNone when the component does not
// carry that side.
func (tl *TopologyLocation) Get(pos int) geom.Location {
	if pos < len(tl.loc) {
		return tl.loc[pos]
	}

	return geom.LocNone
}

// IsNull reports whether every carried position is LocNone.
func (tl *TopologyLocation) IsNull() bool {
	for _, l := range tl.loc {
		if l != geom.LocNone {
			return false
		}
	}

	return true
}

// IsAnyNull reports whether any carried position is LocNone.
func (tl *TopologyLocation) IsAnyNull() bool {
	for _, l := range tl.loc {
		if l == geom.LocNone {
			return true
		}
	}

	return false
}

// IsArea reports whether this location carries Left/Right sides.
func (tl *TopologyLocation) IsArea() bool { return len(tl.loc) == 3 }

// IsLine reports whether this location carries only an On position.
func (tl *TopologyLocation) IsLine() bool { return len(tl.loc) == 1 }

// Flip swaps the Left and Right locations. On is unchanged.
func (tl *TopologyLocation) Flip() {
	if len(tl.loc) <= 1 {
		return
	}
	tl.loc[PosLeft], tl.loc[PosRight] = tl.loc[PosRight], tl.loc[PosLeft]
}

// Set writes loc at pos. Setting a side on a line-sized location expands
// it to area size first.
func (tl *TopologyLocation) Set(pos int, loc geom.Location) {
	if pos >= len(tl.loc) {
		tl.expand()
	}
	tl.loc[pos] = loc
}

// SetAll writes loc at every carried position.
func (tl *TopologyLocation) SetAll(loc geom.Location) {
	for i := range tl.loc {
		tl.loc[i] = loc
	}
}

// SetAllIfNull writes loc at every carried position currently LocNone.
func (tl *TopologyLocation) SetAllIfNull(loc geom.Location) {
	for i := range tl.loc {
		if tl.loc[i] == geom.LocNone {
			tl.loc[i] = loc
		}
	}
}

// expand grows a line-sized location to area size, keeping On.
func (tl *TopologyLocation) expand() {
	if len(tl.loc) >= 3 {
		return
	}
	on := geom.LocNone
	if len(tl.loc) > 0 {
		on = tl.loc[PosOn]
	}
	tl.loc = []geom.Location{on, geom.LocNone, geom.LocNone}
}

// Merge fills every LocNone position from other. Non-None positions keep
// their existing value; a line-sized receiver expands when other carries
// sides.
func (tl *TopologyLocation) Merge(other TopologyLocation) {
	if len(other.loc) > len(tl.loc) {
		tl.expand()
	}
	for i := range tl.loc {
		if tl.loc[i] == geom.LocNone && i < len(other.loc) {
			tl.loc[i] = other.loc[i]
		}
	}
}

// Label is the pair of per-argument TopologyLocations attached to every
// edge and node of the overlay graphs: element 0 describes the component
// relative to the first input geometry, element 1 relative to the second.
type Label struct {
	elt [2]TopologyLocation
}

// NewLabelOn returns a label with line-sized elements, both holding on.
func NewLabelOn(on geom.Location) *Label {
	return &Label{elt: [2]TopologyLocation{
		newTopologyLocationOn(on),
		newTopologyLocationOn(on),
	}}
}

// NewLabelArgOn returns a label with line-sized elements where only
// argument geomIndex holds on.
func NewLabelArgOn(geomIndex int, on geom.Location) *Label {
	l := NewLabelOn(geom.LocNone)
	l.elt[geomIndex].loc[PosOn] = on

	return l
}

// NewLabelArgSides returns a label with area-sized elements where argument
// geomIndex holds (on, left, right) and the other argument is all-None.
func NewLabelArgSides(geomIndex int, on, left, right geom.Location) *Label {
	l := &Label{elt: [2]TopologyLocation{
		newTopologyLocationSides(geom.LocNone, geom.LocNone, geom.LocNone),
		newTopologyLocationSides(geom.LocNone, geom.LocNone, geom.LocNone),
	}}
	l.elt[geomIndex] = newTopologyLocationSides(on, left, right)

	return l
}

// CopyLabel deep-copies lbl.
func CopyLabel(lbl *Label) *Label {
	return &Label{elt: [2]TopologyLocation{
		copyTopologyLocation(lbl.elt[0]),
		copyTopologyLocation(lbl.elt[1]),
	}}
}

// Location returns the location of argument geomIndex at pos.
func (l *Label) Location(geomIndex, pos int) geom.Location { return l.elt[geomIndex].Get(pos) }

// LocationOn returns the On location of argument geomIndex.
func (l *Label) LocationOn(geomIndex int) geom.Location { return l.elt[geomIndex].Get(PosOn) }

// SetLocation writes loc for argument geomIndex at pos.
func (l *Label) SetLocation(geomIndex, pos int, loc geom.Location) { l.elt[geomIndex].Set(pos, loc) }

// SetLocationOn writes the On location for argument geomIndex.
func (l *Label) SetLocationOn(geomIndex int, loc geom.Location) { l.elt[geomIndex].Set(PosOn, loc) }

// SetAllLocations writes loc at every position of argument geomIndex.
func (l *Label) SetAllLocations(geomIndex int, loc geom.Location) { l.elt[geomIndex].SetAll(loc) }

// SetAllLocationsIfNull fills every None position of argument geomIndex.
func (l *Label) SetAllLocationsIfNull(geomIndex int, loc geom.Location) {
	l.elt[geomIndex].SetAllIfNull(loc)
}

// Flip swaps Left and Right within each argument.
func (l *Label) Flip() {
	l.elt[0].Flip()
	l.elt[1].Flip()
}

// Merge combines other into l: None positions take other's value,
// existing non-None values are retained.
func (l *Label) Merge(other *Label) {
	l.elt[0].Merge(other.elt[0])
	l.elt[1].Merge(other.elt[1])
}

// IsNull reports whether argument geomIndex carries no location at all.
func (l *Label) IsNull(geomIndex int) bool { return l.elt[geomIndex].IsNull() }

// IsAnyNull reports whether argument geomIndex has any unfilled position.
func (l *Label) IsAnyNull(geomIndex int) bool { return l.elt[geomIndex].IsAnyNull() }

// IsArea reports whether either argument carries Left/Right sides.
func (l *Label) IsArea() bool { return l.elt[0].IsArea() || l.elt[1].IsArea() }

// IsAreaArg reports whether argument geomIndex carries Left/Right sides.
func (l *Label) IsAreaArg(geomIndex int) bool { return l.elt[geomIndex].IsArea() }

// IsLineArg reports whether argument geomIndex carries only an On position.
func (l *Label) IsLineArg(geomIndex int) bool { return l.elt[geomIndex].IsLine() }

// ToLine collapses argument geomIndex from area to line, keeping only the
// On location. Used when depth normalization reveals a dimensional
// collapse.
func (l *Label) ToLine(geomIndex int) {
	if l.elt[geomIndex].IsArea() {
		l.elt[geomIndex] = newTopologyLocationOn(l.elt[geomIndex].loc[PosOn])
	}
}

// AllPositionsEqual reports whether every carried position of argument
// geomIndex equals loc.
func (l *Label) AllPositionsEqual(geomIndex int, loc geom.Location) bool {
	for _, v := range l.elt[geomIndex].loc {
		if v != loc {
			return false
		}
	}

	return true
}

// GeometryCount returns how many arguments carry any location.
func (l *Label) GeometryCount() int {
	count := 0
	if !l.elt[0].IsNull() {
		count++
	}
	if !l.elt[1].IsNull() {
		count++
	}

	return count
}

// ToLineLabel returns a line-sized copy of lbl keeping only On locations.
func ToLineLabel(lbl *Label) *Label {
	lineLabel := NewLabelOn(geom.LocNone)
	for i := 0; i < 2; i++ {
		lineLabel.SetLocationOn(i, lbl.LocationOn(i))
	}

	return lineLabel
}

// String renders the label as a compact DE-9IM-style side triple per
// argument, e.g. "a:ibe b:-i-".
func (l *Label) String() string {
	buf := make([]byte, 0, 16)
	buf = append(buf, 'a', ':')
	buf = appendLocs(buf, l.elt[0])
	buf = append(buf, ' ', 'b', ':')
	buf = appendLocs(buf, l.elt[1])

	return string(buf)
}

func appendLocs(buf []byte, tl TopologyLocation) []byte {
	for _, v := range tl.loc {
		buf = append(buf, v.Symbol())
	}

	return buf
}
