// Package overlay computes Boolean set-theoretic combinations of two
// planar geometries: intersection, union, difference and symmetric
// difference.
//
// One Overlay call is a pure, synchronous computation:
//
//	result, err := overlay.Overlay(g0, g1, overlay.Union)
//
// The driver nodes the two inputs together, deduplicates the split edges,
// derives labels from accumulated depths, substitutes collapsed edges,
// assembles the combined planar graph, completes node and edge labelling,
// marks the half-edges bounding the result area, and finally builds result
// polygons, lines and points — in that order, so lower-dimensional pieces
// covered by higher-dimensional results are suppressed.
//
// Every invocation allocates its own scratch structures (edge list and
// planar graph); concurrent overlays on distinct inputs are safe as long
// as the input geometries are not mutated.
package overlay
