package bintree_test

import (
	"fmt"
	"sort"

	"github.com/marakyss/planar/bintree"
)

// ExampleBinTree_Query indexes three items along an axis and asks which of
// them overlap a search window. Zero-width items are padded symmetrically,
// open at the top, so a query touching only the pad's upper bound misses.
func ExampleBinTree_Query() {
	tree := bintree.New[string]()
	tree.Insert(bintree.NewInterval(0, 0), "A") // point, padded to [-0.5, 0.5)
	tree.Insert(bintree.NewInterval(1, 1), "B") // point, padded to [0.5, 1.5)
	tree.Insert(bintree.NewInterval(0, 2), "C")

	var hits []string
	for item := range tree.Query(bintree.NewInterval(0.5, 1.5)) {
		hits = append(hits, item)
	}
	sort.Strings(hits)

	fmt.Println(hits)
	// Output:
	// [B C]
}
