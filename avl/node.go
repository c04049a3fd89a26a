package avl

import (
	"fmt"

	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/traverse"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Node is the AVL-annotated binary node: a bst-shaped node (value, left,
// right, parent, cached height) plus a balance factor, recomputed on every
// structural mutation of the node or its direct children.
//
// balanceFactor = height(right) - height(left), with an empty subtree
// contributing height -1. A node is balanced iff balanceFactor is in
// {-1, 0, +1}.
type Node[K any] struct {
	value               K
	left, right, parent *Node[K]
	height              int
	balanceFactor       int
}

// NewNode creates a detached leaf node holding value.
func NewNode[K any](value K) *Node[K] {
	return &Node[K]{value: value, height: 0, balanceFactor: 0}
}

func (n *Node[K]) Value() K { return n.value }

func (n *Node[K]) LeftChild() *Node[K] { return n.left }

func (n *Node[K]) RightChild() *Node[K] { return n.right }

func (n *Node[K]) Parent() *Node[K] { return n.parent }

func (n *Node[K]) Height() int { return n.height }

// BalanceFactor returns n's cached balance factor.
func (n *Node[K]) BalanceFactor() int { return n.balanceFactor }

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

// SetLeft attaches child as n's left child, maintaining the parent
// back-reference, cached height, and balance factor.
func (n *Node[K]) SetLeft(child *Node[K]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
	n.recompute()
}

// SetRight attaches child as n's right child, maintaining the parent
// back-reference, cached height, and balance factor.
func (n *Node[K]) SetRight(child *Node[K]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
	n.recompute()
}

func (n *Node[K]) recompute() {
	n.height = 1 + maxInt(heightOf(n.left), heightOf(n.right))
	n.balanceFactor = heightOf(n.right) - heightOf(n.left)
}

// RecomputeHeight recomputes n's cached height and balance factor from its
// current children. Callers that rewire a subtree without SetLeft/SetRight
// must call this bottom-up, ancestor by ancestor.
func (n *Node[K]) RecomputeHeight() { n.recompute() }

// IsBalanced reports whether |balanceFactor| <= 1.
func (n *Node[K]) IsBalanced() bool {
	return n.balanceFactor >= -1 && n.balanceFactor <= 1
}

// Validate checks n's local invariants: height-cache and balance-factor
// consistency, parent back-references, and (when cmp is non-nil) ordering
// against n's direct children.
func (n *Node[K]) Validate(cmp order.Comparator[K]) error {
	if n == nil {
		return nil
	}
	wantHeight := 1 + maxInt(heightOf(n.left), heightOf(n.right))
	wantBF := heightOf(n.right) - heightOf(n.left)
	if n.height != wantHeight {
		return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: fmt.Sprintf("cached height %d does not match recomputed height %d", n.height, wantHeight)}
	}
	if n.balanceFactor != wantBF {
		return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: fmt.Sprintf("cached balance factor %d does not match recomputed %d", n.balanceFactor, wantBF)}
	}
	if !n.IsBalanced() {
		return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: fmt.Sprintf("balance factor %d out of [-1, 1]", n.balanceFactor)}
	}
	if cmp != nil {
		if n.left != nil && cmp(n.left.value, n.value) >= 0 {
			return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "left child is not strictly less than node"}
		}
		if n.right != nil && cmp(n.value, n.right.value) >= 0 {
			return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "right child is not strictly greater than node"}
		}
	}
	if n.left != nil && n.left.parent != n {
		return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "left child's parent back-reference is inconsistent"}
	}
	if n.right != nil && n.right.parent != n {
		return &treeerr.NodeValidationError{Op: "avl.Node.Validate", Node: fmt.Sprintf("%v", n.value), Reason: "right child's parent back-reference is inconsistent"}
	}
	return nil
}

// Left returns n's left child as a traverse.Node, or nil. Required to
// satisfy traverse.Node[K].
func (n *Node[K]) Left() traverse.Node[K] {
	if n.left == nil {
		return nil
	}
	return n.left
}

// Right returns n's right child as a traverse.Node, or nil. Required to
// satisfy traverse.Node[K].
func (n *Node[K]) Right() traverse.Node[K] {
	if n.right == nil {
		return nil
	}
	return n.right
}
