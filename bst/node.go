package bst

import (
	"fmt"

	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/traverse"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Node is the binary search tree's storage primitive: a value together with
// optional child references, a non-owning parent back-reference, and a
// cached height.
//
// By convention an empty subtree has height -1, so a freshly created leaf
// node has height 0. Height is recomputed by SetLeft/SetRight whenever a
// node's direct children change; callers that mutate a subtree below a node
// without going through SetLeft/SetRight must call RecomputeHeight
// themselves, or the cache will go stale.
type Node[K any] struct {
	value               K
	left, right, parent *Node[K]
	height              int
}

// NewNode creates a detached leaf node holding value.
func NewNode[K any](value K) *Node[K] {
	return &Node[K]{value: value, height: 0}
}

// Value returns the value stored at n.
func (n *Node[K]) Value() K { return n.value }

// LeftChild returns n's left child, or nil if n has none.
func (n *Node[K]) LeftChild() *Node[K] { return n.left }

// RightChild returns n's right child, or nil if n has none.
func (n *Node[K]) RightChild() *Node[K] { return n.right }

// Parent returns n's parent, or nil if n is a root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// Height returns n's cached height.
func (n *Node[K]) Height() int { return n.height }

// heightOf returns n's height, treating a nil subtree as height -1.
func heightOf[K any](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetLeft attaches child as n's left child, maintaining child's parent
// back-reference and n's cached height. Passing nil detaches the current
// left child.
func (n *Node[K]) SetLeft(child *Node[K]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
	n.RecomputeHeight()
}

// SetRight attaches child as n's right child, maintaining child's parent
// back-reference and n's cached height. Passing nil detaches the current
// right child.
func (n *Node[K]) SetRight(child *Node[K]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
	n.RecomputeHeight()
}

// RecomputeHeight recalculates n's cached height from its current
// children. It does not recurse: callers that change a whole subtree must
// call this bottom-up, ancestor by ancestor.
func (n *Node[K]) RecomputeHeight() {
	n.height = 1 + maxInt(heightOf(n.left), heightOf(n.right))
}

// Validate checks n's local invariants: its cached height is consistent
// with its children's, and, when cmp is non-nil, n's value is ordered
// correctly relative to its immediate children. It does not descend past
// n's direct children, and it never inspects the rest of the tree.
func (n *Node[K]) Validate(cmp order.Comparator[K]) error {
	if n == nil {
		return nil
	}
	wantHeight := 1 + maxInt(heightOf(n.left), heightOf(n.right))
	if n.height != wantHeight {
		return &treeerr.NodeValidationError{
			Op:     "bst.Node.Validate",
			Node:   fmt.Sprintf("%v", n.value),
			Reason: fmt.Sprintf("cached height %d does not match recomputed height %d", n.height, wantHeight),
		}
	}
	if cmp != nil {
		if n.left != nil && cmp(n.left.value, n.value) >= 0 {
			return &treeerr.NodeValidationError{
				Op:     "bst.Node.Validate",
				Node:   fmt.Sprintf("%v", n.value),
				Reason: "left child is not strictly less than node",
			}
		}
		if n.right != nil && cmp(n.value, n.right.value) >= 0 {
			return &treeerr.NodeValidationError{
				Op:     "bst.Node.Validate",
				Node:   fmt.Sprintf("%v", n.value),
				Reason: "right child is not strictly greater than node",
			}
		}
	}
	if n.left != nil && n.left.parent != n {
		return &treeerr.NodeValidationError{Op: "bst.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "left child's parent back-reference is inconsistent"}
	}
	if n.right != nil && n.right.parent != n {
		return &treeerr.NodeValidationError{Op: "bst.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "right child's parent back-reference is inconsistent"}
	}
	return nil
}

// The following two methods make *Node[K] satisfy traverse.Node[K]. They
// must return an untyped nil interface (not a typed nil *Node[K]) when a
// child is absent, or a traversal strategy would try to walk into it.

// Left returns n's left child as a traverse.Node, or nil.
func (n *Node[K]) Left() traverse.Node[K] {
	if n.left == nil {
		return nil
	}
	return n.left
}

// Right returns n's right child as a traverse.Node, or nil.
func (n *Node[K]) Right() traverse.Node[K] {
	if n.right == nil {
		return nil
	}
	return n.right
}
