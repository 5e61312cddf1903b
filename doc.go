// Package planar is your in-memory toolkit for 2D vector-geometry
// overlay computation in Go.
//
// 🚀 What is planar?
//
//	A modern, zero-dependency library that brings together:
//
//	  • Boolean overlay: intersection, union, difference & symmetric difference
//	    of points, line-strings, polygons and heterogeneous collections
//	  • Topology machinery: noding, edge labelling, depth resolution and
//	    planar-graph assembly under the DE-9IM model
//	  • A 1-D adaptive binary interval index (BinTree) for axis lookups
//
// ✨ Why choose planar?
//
//   - Predictable          — one Overlay call is a pure computation, no hidden state
//   - Topology-correct     — result polygons, lines and points are mutually consistent
//   - Extensible           — geometry model, locator and intersector are plain Go types
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/      — coordinates, geometry model, factory, locator & intersector
//	bintree/   — adaptive 1-D binary interval tree with extent padding
//	geomgraph/ — labels, depths, edges, nodes, stars & geometry graphs
//	overlay/   — the overlay driver and the polygon/line/point result builders
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ A │ B │     Union(A, B) welds the shared wall away;
//	    └───┴───┘     Intersection(A, B) is exactly that wall.
//
// Dive into README.md for full examples and the roadmap to snap-rounding,
// precision models and beyond.
//
//	go get github.com/marakyss/planar
package planar
