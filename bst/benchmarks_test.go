package bst_test

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/mikenye/balancedtrees/bst"
	"github.com/mikenye/balancedtrees/order"
)

// These benchmarks race the unbalanced bst.Tree against gods' red-black
// tree on the same workload, the way the original gotrees repo raced its
// rbtree package against gods. bst.Tree is expected to lose badly on the
// ascending-insert workload below, since ascending insertion degenerates it
// into a linked list; that asymmetry is the point of keeping both.

func BenchmarkTree_InsertAscending(b *testing.B) {
	tree := bst.New[int](order.Natural[int]())
	i := 0
	for b.Loop() {
		tree.Insert(i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_InsertAscending(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkTree_SearchDelete(b *testing.B) {
	tree := bst.New[int](order.Natural[int]())
	for i := 0; i < 100_000; i++ {
		tree.Insert(i)
	}
	i := 0
	for b.Loop() {
		tree.Delete(i % 100_000)
		tree.Insert(i % 100_000)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_SearchDelete(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for i := 0; i < 100_000; i++ {
		tree.Put(i, struct{}{})
	}
	i := 0
	for b.Loop() {
		tree.Remove(i % 100_000)
		tree.Put(i%100_000, struct{}{})
		i++
	}
}
