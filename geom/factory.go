package geom

// GeometryFactory constructs geometries and assembles heterogeneous result
// lists into the most specific geometry type. A single factory can be
// shared freely: it is stateless.
type GeometryFactory struct{}

// NewGeometryFactory returns a factory.
func NewGeometryFactory() *GeometryFactory { return &GeometryFactory{} }

// CreatePoint returns the point at c.
func (f *GeometryFactory) CreatePoint(c Coordinate) *Point { return NewPoint(c) }

// CreateLineString validates and returns the line string through pts.
func (f *GeometryFactory) CreateLineString(pts []Coordinate) (*LineString, error) {
	return NewLineString(pts)
}

// CreateLinearRing validates and returns the closed ring through pts.
func (f *GeometryFactory) CreateLinearRing(pts []Coordinate) (*LinearRing, error) {
	return NewLinearRing(pts)
}

// CreatePolygon returns the polygon bounded by shell with the given holes.
func (f *GeometryFactory) CreatePolygon(shell *LinearRing, holes ...*LinearRing) (*Polygon, error) {
	return NewPolygon(shell, holes...)
}

// CreateEmpty returns the canonical empty geometry.
func (f *GeometryFactory) CreateEmpty() *GeometryCollection { return &GeometryCollection{} }

// BuildGeometry assembles a list of geometries into the most specific
// single geometry:
//
//   - empty list            → empty GeometryCollection
//   - single element        → that element
//   - homogeneous points    → MultiPoint
//   - homogeneous lines     → MultiLineString
//   - homogeneous polygons  → MultiPolygon
//   - mixed                 → GeometryCollection
func (f *GeometryFactory) BuildGeometry(geoms []Geometry) Geometry {
	if len(geoms) == 0 {
		return f.CreateEmpty()
	}
	if len(geoms) == 1 {
		return geoms[0]
	}

	var points []*Point
	var lines []*LineString
	var polys []*Polygon
	for _, g := range geoms {
		switch gg := g.(type) {
		case *Point:
			points = append(points, gg)
		case *LineString:
			lines = append(lines, gg)
		case *Polygon:
			polys = append(polys, gg)
		}
	}

	n := len(geoms)
	switch {
	case len(points) == n:
		return &MultiPoint{Points: points}
	case len(lines) == n:
		return &MultiLineString{Lines: lines}
	case len(polys) == n:
		return &MultiPolygon{Polygons: polys}
	default:
		return &GeometryCollection{Geometries: geoms}
	}
}
