package btree

import (
	"fmt"

	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Node is a single B-tree node: a sorted run of keys and, when the node is
// internal, one more child than it has keys. children is empty for a leaf.
type Node[K any] struct {
	keys     []K
	children []*Node[K]
	parent   *Node[K]
}

func newLeaf[K any]() *Node[K] {
	return &Node[K]{}
}

// IsLeaf reports whether n has no children.
func (n *Node[K]) IsLeaf() bool { return len(n.children) == 0 }

// Keys returns n's keys, in ascending order. The returned slice must not be
// mutated by the caller.
func (n *Node[K]) Keys() []K { return n.keys }

// Children returns n's child pointers. Empty for a leaf.
func (n *Node[K]) Children() []*Node[K] { return n.children }

// Parent returns n's parent, or nil if n is the root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// keyCount returns the number of keys held in n.
func (n *Node[K]) keyCount() int { return len(n.keys) }

// search returns the first index i with keys[i] >= k (under cmp), and
// whether keys[i] == k exactly. i == len(keys) means k is greater than
// every key in the node.
func (n *Node[K]) search(cmp order.Comparator[K], k K) (i int, found bool) {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if cmp(n.keys[mid], k) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(n.keys) && cmp(n.keys[lo], k) == 0
}

// insertKeyAt inserts key at index i, shifting keys[i:] right by one.
func (n *Node[K]) insertKeyAt(i int, key K) {
	n.keys = append(n.keys, key)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key
}

// insertChildAt inserts child at index i, shifting children[i:] right, and
// reparents child to n.
func (n *Node[K]) insertChildAt(i int, child *Node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
}

// removeKeyAt removes and returns the key at index i.
func (n *Node[K]) removeKeyAt(i int) K {
	k := n.keys[i]
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	return k
}

// removeChildAt removes and returns the child at index i.
func (n *Node[K]) removeChildAt(i int) *Node[K] {
	c := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	return c
}

// Validate checks n's local invariants: strictly increasing keys, a
// children-count of keys+1 when internal, and per-key subtree separation
// against cmp. It does not check capacity bounds or leaf-depth uniformity,
// which depend on n's position in the tree — Tree.IsValid checks those.
func (n *Node[K]) Validate(cmp order.Comparator[K]) error {
	for i := 1; i < len(n.keys); i++ {
		if cmp(n.keys[i-1], n.keys[i]) >= 0 {
			return &treeerr.NodeValidationError{Op: "btree.Node.Validate", Node: fmt.Sprintf("%v", n.keys), Reason: "keys are not strictly increasing"}
		}
	}
	if !n.IsLeaf() && len(n.children) != len(n.keys)+1 {
		return &treeerr.NodeValidationError{Op: "btree.Node.Validate", Node: fmt.Sprintf("%v", n.keys), Reason: fmt.Sprintf("internal node has %d children but %d keys", len(n.children), len(n.keys))}
	}
	for i, child := range n.children {
		if child.parent != n {
			return &treeerr.NodeValidationError{Op: "btree.Node.Validate", Node: fmt.Sprintf("%v", n.keys), Reason: "child's parent back-reference is inconsistent"}
		}
		for _, ck := range child.keys {
			if i > 0 && cmp(ck, n.keys[i-1]) <= 0 {
				return &treeerr.NodeValidationError{Op: "btree.Node.Validate", Node: fmt.Sprintf("%v", n.keys), Reason: "child key not strictly greater than left separator"}
			}
			if i < len(n.keys) && cmp(ck, n.keys[i]) >= 0 {
				return &treeerr.NodeValidationError{Op: "btree.Node.Validate", Node: fmt.Sprintf("%v", n.keys), Reason: "child key not strictly less than right separator"}
			}
		}
	}
	return nil
}
