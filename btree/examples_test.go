package btree_test

import (
	"fmt"

	"github.com/mikenye/balancedtrees/btree"
	"github.com/mikenye/balancedtrees/order"
)

func ExampleTree_Insert() {
	tree, _ := btree.New[int](2, order.Natural[int]())
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(k)
	}

	fmt.Println(tree.Root().Keys())
	// Output:
	// [2 4 6]
}

func ExampleTree_RangeQuery() {
	tree, _ := btree.New[int](3, order.Natural[int]())
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		tree.Insert(k)
	}

	fmt.Println(tree.RangeQuery(3, 7))
	// Output:
	// [3 4 5 6 7]
}
