// Package bintree implements an adaptive 1-D binary interval index.
//
// What is a BinTree?
//
//	A BinTree indexes items by a real interval along a single coordinate
//	axis and answers overlap queries against a search interval. It is the
//	1-D analogue of a quadtree: every tree node owns a power-of-two-aligned
//	key interval, and its two children bisect that key at its centre.
//
// Highlights:
//
//   - Auto-expanding root   — inserting outside the current root key grows
//     the tree upward until the new item fits
//   - Extent padding        — zero-width intervals (points) are padded to a
//     small positive width so every stored interval is searchable
//   - Exact queries         — Query yields exactly the items whose stored
//     (padded) interval overlaps the search interval
//   - Generic               — BinTree[T] stores any item type
//
// A BinTree is scratch state for one computation: it is not safe for
// concurrent mutation and carries its own minExtent, so independent
// computations never share index state.
//
// Typical usage:
//
//	t := bintree.New[string]()
//	t.Insert(bintree.NewInterval(0, 2), "C")
//	for item := range t.Query(bintree.NewInterval(0.5, 1.5)) {
//		// ...
//	}
package bintree
