package geomgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marakyss/planar/geom"
	"github.com/marakyss/planar/geomgraph"
)

// TestLabel_ArgSidesConstruction verifies an area label carries its sides
// for one argument and stays null for the other.
func TestLabel_ArgSidesConstruction(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocExterior)

	assert.Equal(t, geom.LocBoundary, lbl.LocationOn(0))
	assert.Equal(t, geom.LocInterior, lbl.Location(0, geomgraph.PosLeft))
	assert.Equal(t, geom.LocExterior, lbl.Location(0, geomgraph.PosRight))
	assert.True(t, lbl.IsAreaArg(0))
	assert.True(t, lbl.IsNull(1), "other argument starts null")
	assert.True(t, lbl.IsArea(), "either argument area-sized makes the label area")
	assert.Equal(t, 1, lbl.GeometryCount())
}

// TestLabel_Flip verifies Left and Right swap within each argument while
// On stays put.
func TestLabel_Flip(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocExterior)
	lbl.Flip()

	assert.Equal(t, geom.LocBoundary, lbl.LocationOn(0), "On survives a flip")
	assert.Equal(t, geom.LocExterior, lbl.Location(0, geomgraph.PosLeft))
	assert.Equal(t, geom.LocInterior, lbl.Location(0, geomgraph.PosRight))
}

// TestLabel_MergeFillsOnlyNull verifies merge precedence: existing
// non-None locations win, None positions take the other side's value.
func TestLabel_MergeFillsOnlyNull(t *testing.T) {
	a := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocExterior)
	b := geomgraph.NewLabelArgSides(0, geom.LocInterior, geom.LocExterior, geom.LocExterior)
	b.SetLocationOn(1, geom.LocInterior)

	a.Merge(b)

	assert.Equal(t, geom.LocBoundary, a.LocationOn(0), "existing value is authoritative")
	assert.Equal(t, geom.LocInterior, a.Location(0, geomgraph.PosLeft))
	assert.Equal(t, geom.LocInterior, a.LocationOn(1), "null position filled from other")
}

// TestLabel_ToLine verifies an area annotation collapses to its On
// location only.
func TestLabel_ToLine(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocInterior, geom.LocInterior, geom.LocExterior)
	lbl.ToLine(0)

	assert.True(t, lbl.IsLineArg(0))
	assert.Equal(t, geom.LocInterior, lbl.LocationOn(0))
	assert.Equal(t, geom.LocNone, lbl.Location(0, geomgraph.PosLeft), "sides are gone")
}

// TestLabel_SetAllLocationsIfNull verifies completion only touches null
// positions.
func TestLabel_SetAllLocationsIfNull(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocNone)
	lbl.SetAllLocationsIfNull(0, geom.LocExterior)
	lbl.SetAllLocationsIfNull(1, geom.LocExterior)

	assert.Equal(t, geom.LocBoundary, lbl.LocationOn(0))
	assert.Equal(t, geom.LocInterior, lbl.Location(0, geomgraph.PosLeft))
	assert.Equal(t, geom.LocExterior, lbl.Location(0, geomgraph.PosRight))
	assert.True(t, lbl.AllPositionsEqual(1, geom.LocExterior))
}

// TestToLineLabel verifies the derived line label keeps only On locations.
func TestToLineLabel(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocExterior)
	lbl.SetLocationOn(1, geom.LocInterior)

	line := geomgraph.ToLineLabel(lbl)
	assert.True(t, line.IsLineArg(0))
	assert.True(t, line.IsLineArg(1))
	assert.Equal(t, geom.LocBoundary, line.LocationOn(0))
	assert.Equal(t, geom.LocInterior, line.LocationOn(1))
}

// TestLabel_String renders side symbols for debugging.
func TestLabel_String(t *testing.T) {
	lbl := geomgraph.NewLabelArgSides(0, geom.LocBoundary, geom.LocInterior, geom.LocExterior)
	assert.Equal(t, "a:bie b:---", lbl.String())
}
