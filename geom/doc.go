// Package geom defines the geometry model the overlay engine computes over:
// coordinates, DE-9IM locations, concrete geometry types with a factory, and
// the computational-geometry primitives the topology machinery consumes.
//
// The package provides three groups of functionality:
//
//	model      — Coordinate, Location, Point/LineString/LinearRing/Polygon,
//	             the Multi* types, GeometryCollection & GeometryFactory
//	predicates — orientation index, ring orientation, point-in-ring,
//	             point-on-line
//	operators  — PointLocator (where is p relative to G?) and the
//	             segment-segment LineIntersector used for noding
//
// All coordinate comparison is exact: two coordinates are equal iff their
// X and Y values are bit-equal float64s. Geometries are immutable once
// constructed; constructors validate minimal shape and return sentinel
// errors for malformed input.
package geom
