// Package geomgraph builds and labels the planar graphs the overlay engine
// computes on.
//
// The package decomposes input geometries into labelled edges
// (GeometryGraph), nodes them against themselves and each other
// (SegmentIntersector), deduplicates the split edges (EdgeList), and
// assembles the combined arrangement into a planar graph of nodes and
// directed half-edges (PlanarGraph, Node, DirectedEdge, DirectedEdgeStar).
//
// Topology annotations:
//
//	Label    — per-argument Location on the Left/On/Right sides of a
//	           graph component
//	Depth    — per-argument, per-side depth counters used to resolve
//	           stacked duplicate edges and dimensional collapses
//	Position — the Left/On/Right side indices shared by both
//
// All structures here are single-use scratch for one computation; none are
// safe for concurrent use.
package geomgraph
