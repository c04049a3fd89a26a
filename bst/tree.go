// Package bst provides a generic, unbalanced binary search tree: the
// baseline ordered container that avl and btree build on.
//
// This implementation does not balance itself. If the tree is fed keys in
// sorted order, it degenerates into a linked list and every operation
// drops to O(n). Use avl.Tree when a balance guarantee is required.
//
// Every ordering decision is routed through the Comparator supplied at
// construction; the tree never compares keys with == or < directly.
package bst

import (
	"fmt"

	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/traverse"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Tree is a generic, unbalanced binary search tree over key type K.
type Tree[K any] struct {
	root *Node[K]
	cmp  order.Comparator[K]
	size int
}

// New creates an empty binary search tree ordered by cmp.
func New[K any](cmp order.Comparator[K]) *Tree[K] {
	return &Tree[K]{cmp: cmp}
}

// NewOrdered creates an empty binary search tree over a naturally ordered
// key type, using order.Natural as its comparator.
func NewOrdered[K interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string }]() *Tree[K] {
	return New[K](order.Natural[K]())
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Size returns the number of keys currently stored in the tree.
func (t *Tree[K]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool { return t.size == 0 }

// GetHeight returns the tree's height: -1 for an empty tree, 0 for a
// single-node tree.
func (t *Tree[K]) GetHeight() int { return heightOf(t.root) }

// Clear removes every key from the tree.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds key to the tree. It returns false without mutating the tree
// if key is already present.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = NewNode(key)
		t.size++
		return true
	}

	cur := t.root
	for {
		c := t.cmp(key, cur.value)
		switch {
		case c == 0:
			return false
		case c < 0:
			if cur.left == nil {
				cur.SetLeft(NewNode(key))
				t.fixupHeights(cur)
				t.size++
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.SetRight(NewNode(key))
				t.fixupHeights(cur)
				t.size++
				return true
			}
			cur = cur.right
		}
	}
}

// fixupHeights recomputes the cached height of n and every ancestor of n,
// bottom-up to the root.
func (t *Tree[K]) fixupHeights(n *Node[K]) {
	for n != nil {
		n.RecomputeHeight()
		n = n.parent
	}
}

// Search returns the node holding key, if present.
func (t *Tree[K]) Search(key K) (*Node[K], bool) {
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.value)
		switch {
		case c == 0:
			return cur, true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, false
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, found := t.Search(key)
	return found
}

// transplant replaces the subtree rooted at old with the subtree rooted at
// replacement (which may be nil), wiring replacement into old's parent.
func (t *Tree[K]) transplant(old, replacement *Node[K]) {
	switch {
	case old.parent == nil:
		t.root = replacement
	case old == old.parent.left:
		old.parent.left = replacement
	default:
		old.parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = old.parent
	}
}

// minNode returns the leftmost (smallest) node in the subtree rooted at n.
func minNode[K any](n *Node[K]) *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost (largest) node in the subtree rooted at n.
func maxNode[K any](n *Node[K]) *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Delete removes key from the tree, if present.
//
// Three cases, per the classic BST deletion algorithm:
//   - n is a leaf: detach it.
//   - n has one child: splice the child into n's place.
//   - n has two children: copy the in-order successor's value into n, then
//     delete the successor from n's right subtree.
func (t *Tree[K]) Delete(key K) bool {
	n, found := t.Search(key)
	if !found {
		return false
	}

	switch {
	case n.left == nil:
		parent := n.parent
		t.transplant(n, n.right)
		t.fixupHeights(parent)
	case n.right == nil:
		parent := n.parent
		t.transplant(n, n.left)
		t.fixupHeights(parent)
	default:
		successor := minNode(n.right)
		n.value = successor.value
		parent := successor.parent
		t.transplant(successor, successor.right)
		t.fixupHeights(parent)
	}

	t.size--
	return true
}

// GetMin returns the smallest key in the tree.
func (t *Tree[K]) GetMin() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	return minNode(t.root).value, true
}

// GetMax returns the largest key in the tree.
func (t *Tree[K]) GetMax() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	return maxNode(t.root).value, true
}

// Successor returns the smallest key strictly greater than key. The second
// return value is false if key has no successor. An error is returned only
// if key itself is not present in the tree.
func (t *Tree[K]) Successor(key K) (K, bool, error) {
	var zero K
	n, found := t.Search(key)
	if !found {
		return zero, false, &treeerr.ValueNotFoundError[K]{Op: "bst.Tree.Successor", Key: key}
	}
	if n.right != nil {
		return minNode(n.right).value, true, nil
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	if p == nil {
		return zero, false, nil
	}
	return p.value, true, nil
}

// Predecessor returns the largest key strictly less than key. The second
// return value is false if key has no predecessor. An error is returned
// only if key itself is not present in the tree.
func (t *Tree[K]) Predecessor(key K) (K, bool, error) {
	var zero K
	n, found := t.Search(key)
	if !found {
		return zero, false, &treeerr.ValueNotFoundError[K]{Op: "bst.Tree.Predecessor", Key: key}
	}
	if n.left != nil {
		return maxNode(n.left).value, true, nil
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	if p == nil {
		return zero, false, nil
	}
	return p.value, true, nil
}

// Floor returns the greatest key <= key, if one exists.
func (t *Tree[K]) Floor(key K) (K, bool) {
	var (
		zero   K
		result *Node[K]
	)
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.value)
		switch {
		case c == 0:
			return cur.value, true
		case c < 0:
			cur = cur.left
		default:
			result = cur
			cur = cur.right
		}
	}
	if result == nil {
		return zero, false
	}
	return result.value, true
}

// Ceiling returns the least key >= key, if one exists.
func (t *Tree[K]) Ceiling(key K) (K, bool) {
	var (
		zero   K
		result *Node[K]
	)
	cur := t.root
	for cur != nil {
		c := t.cmp(key, cur.value)
		switch {
		case c == 0:
			return cur.value, true
		case c > 0:
			cur = cur.right
		default:
			result = cur
			cur = cur.left
		}
	}
	if result == nil {
		return zero, false
	}
	return result.value, true
}

// RangeQuery returns every key k with lo <= k <= hi, in ascending order. It
// returns an empty slice if lo > hi.
func (t *Tree[K]) RangeQuery(lo, hi K) []K {
	var out []K
	if t.cmp(lo, hi) > 0 {
		return out
	}
	t.rangeCollect(t.root, lo, hi, &out)
	return out
}

func (t *Tree[K]) rangeCollect(n *Node[K], lo, hi K, out *[]K) {
	if n == nil {
		return
	}
	if t.cmp(n.value, lo) > 0 {
		t.rangeCollect(n.left, lo, hi, out)
	}
	if t.cmp(n.value, lo) >= 0 && t.cmp(n.value, hi) <= 0 {
		*out = append(*out, n.value)
	}
	if t.cmp(n.value, hi) < 0 {
		t.rangeCollect(n.right, lo, hi, out)
	}
}

// CountRange returns the number of keys k with lo <= k <= hi.
func (t *Tree[K]) CountRange(lo, hi K) int {
	return len(t.RangeQuery(lo, hi))
}

// KthSmallest returns the k-th smallest key, 1-indexed. ok is false if k is
// out of range.
func (t *Tree[K]) KthSmallest(k int) (K, bool) {
	var zero K
	if k < 1 || k > t.size {
		return zero, false
	}
	i := 0
	var result K
	var found bool
	walkInorder(t.root, func(v K) bool {
		i++
		if i == k {
			result, found = v, true
			return false
		}
		return true
	})
	return result, found
}

// KthLargest returns the k-th largest key, 1-indexed. ok is false if k is
// out of range.
func (t *Tree[K]) KthLargest(k int) (K, bool) {
	if k < 1 || k > t.size {
		var zero K
		return zero, false
	}
	return t.KthSmallest(t.size - k + 1)
}

func walkInorder[K any](n *Node[K], f func(K) bool) bool {
	if n == nil {
		return true
	}
	if !walkInorder(n.left, f) {
		return false
	}
	if !f(n.value) {
		return false
	}
	return walkInorder(n.right, f)
}

// Traversal strategies

// Preorder returns every key via a node-left-right walk.
func (t *Tree[K]) Preorder() []K { return traverse.NewPreorder[K]().Traverse(t.RootNode()) }

// Inorder returns every key in ascending order.
func (t *Tree[K]) Inorder() []K { return traverse.NewInorder[K]().Traverse(t.RootNode()) }

// Postorder returns every key via a left-right-node walk.
func (t *Tree[K]) Postorder() []K { return traverse.NewPostorder[K]().Traverse(t.RootNode()) }

// LevelOrder returns every key breadth-first.
func (t *Tree[K]) LevelOrder() []K { return traverse.NewLevelOrder[K]().Traverse(t.RootNode()) }

// RootNode returns the tree's root as a traverse.Node, suitable for passing
// directly to any traverse.Strategy (e.g. for lazy, depth-limited, or
// right-to-left traversal), or nil if the tree is empty.
func (t *Tree[K]) RootNode() traverse.Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Stats returns the strategy-independent tree-statistics view: node count,
// height, leaf/internal counts, and an ordering-validity flag.
func (t *Tree[K]) Stats() traverse.Stats {
	return traverse.ComputeStats[K](t.RootNode(), t.cmp)
}

// IsValid walks the tree verifying in-order monotonicity, size
// consistency, height-cache consistency, and parent-pointer coherence.
func (t *Tree[K]) IsValid() error {
	if t.root != nil && t.root.parent != nil {
		return &treeerr.NodeValidationError{Op: "bst.Tree.IsValid", Node: fmt.Sprintf("%v", t.root.value), Reason: "root has a non-nil parent"}
	}

	count := 0
	var err error
	first := true
	var prev K
	var walk func(n *Node[K]) bool
	walk = func(n *Node[K]) bool {
		if n == nil {
			return true
		}
		if !walk(n.left) {
			return false
		}
		count++
		if !first && t.cmp(prev, n.value) >= 0 {
			err = &treeerr.NodeValidationError{Op: "bst.Tree.IsValid", Node: fmt.Sprintf("%v", n.value), Reason: "in-order traversal is not strictly increasing"}
			return false
		}
		prev, first = n.value, false
		if verr := n.Validate(t.cmp); verr != nil {
			err = verr
			return false
		}
		return walk(n.right)
	}
	walk(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return &treeerr.NodeValidationError{Op: "bst.Tree.IsValid", Reason: fmt.Sprintf("size %d does not match in-order traversal length %d", t.size, count)}
	}
	return nil
}
