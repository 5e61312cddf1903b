package geom

// PointLocator answers "where does point p lie relative to geometry G?"
// for any geometry type, applying the mod-2 boundary rule to collections:
// a point shared by an odd number of line endpoints is on the boundary,
// an even (positive) number of endpoints merge into the interior.
//
// A PointLocator is reusable but not safe for concurrent use: each Locate
// call resets its accumulation state.
type PointLocator struct {
	isIn          bool
	numBoundaries int
}

// NewPointLocator returns a locator.
func NewPointLocator() *PointLocator { return &PointLocator{} }

// Locate returns the Location of p relative to g.
// Empty and nil geometries put every point in their exterior.
func (pl *PointLocator) Locate(p Coordinate, g Geometry) Location {
	if g == nil || g.IsEmpty() {
		return LocExterior
	}

	// Single-element fast paths that need no boundary accumulation.
	switch gg := g.(type) {
	case *LineString:
		return locateOnLineString(p, gg)
	case *LinearRing:
		return locateOnLineString(p, &gg.LineString)
	case *Polygon:
		return locateInPolygon(p, gg)
	}

	pl.isIn = false
	pl.numBoundaries = 0
	pl.computeLocation(p, g)

	switch {
	case pl.numBoundaries%2 == 1:
		return LocBoundary
	case pl.numBoundaries > 0 || pl.isIn:
		return LocInterior
	default:
		return LocExterior
	}
}

// computeLocation walks the geometry structure accumulating interior hits
// and boundary-point parity.
func (pl *PointLocator) computeLocation(p Coordinate, g Geometry) {
	switch gg := g.(type) {
	case *Point:
		pl.updateLocationInfo(locateOnPoint(p, gg))
	case *LineString:
		pl.updateLocationInfo(locateOnLineString(p, gg))
	case *LinearRing:
		pl.updateLocationInfo(locateOnLineString(p, &gg.LineString))
	case *Polygon:
		pl.updateLocationInfo(locateInPolygon(p, gg))
	case *MultiPoint:
		for _, pt := range gg.Points {
			pl.updateLocationInfo(locateOnPoint(p, pt))
		}
	case *MultiLineString:
		for _, l := range gg.Lines {
			pl.updateLocationInfo(locateOnLineString(p, l))
		}
	case *MultiPolygon:
		for _, poly := range gg.Polygons {
			pl.updateLocationInfo(locateInPolygon(p, poly))
		}
	case *GeometryCollection:
		for _, elem := range gg.Geometries {
			pl.computeLocation(p, elem)
		}
	}
}

func (pl *PointLocator) updateLocationInfo(loc Location) {
	if loc == LocInterior {
		pl.isIn = true
	}
	if loc == LocBoundary {
		pl.numBoundaries++
	}
}

// LocateInAreas returns the location of p considering only the areal
// components of g: a point inside or on a polygon reports Interior or
// Boundary, anything else — lines, points, empty — is Exterior.
//
// This is the completion rule for edges unknown to one input: an edge can
// only be inside that input if its node lies inside an area of it.
func LocateInAreas(p Coordinate, g Geometry) Location {
	switch gg := g.(type) {
	case *Polygon:
		return locateInPolygon(p, gg)
	case *MultiPolygon:
		for _, poly := range gg.Polygons {
			if loc := locateInPolygon(p, poly); loc != LocExterior {
				return loc
			}
		}
	case *GeometryCollection:
		for _, elem := range gg.Geometries {
			if loc := LocateInAreas(p, elem); loc != LocExterior {
				return loc
			}
		}
	}

	return LocExterior
}

func locateOnPoint(p Coordinate, pt *Point) Location {
	if pt.C.Equals2D(p) {
		return LocInterior
	}

	return LocExterior
}

func locateOnLineString(p Coordinate, l *LineString) Location {
	if l.IsEmpty() {
		return LocExterior
	}

	pts := l.Pts
	if !l.IsClosed() {
		if p.Equals2D(pts[0]) || p.Equals2D(pts[len(pts)-1]) {
			return LocBoundary
		}
	}
	if IsOnLine(p, pts) {
		return LocInterior
	}

	return LocExterior
}

func locateInPolygon(p Coordinate, poly *Polygon) Location {
	if poly.IsEmpty() {
		return LocExterior
	}

	shellLoc := LocatePointInRing(p, poly.Shell.Pts)
	if shellLoc == LocExterior {
		return LocExterior
	}
	if shellLoc == LocBoundary {
		return LocBoundary
	}

	// Inside the shell: a hole can still expel or border the point.
	for _, hole := range poly.Holes {
		switch LocatePointInRing(p, hole.Pts) {
		case LocInterior:
			return LocExterior
		case LocBoundary:
			return LocBoundary
		}
	}

	return LocInterior
}
