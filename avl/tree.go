// Package avl provides a generic, self-balancing AVL tree.
//
// avl.Tree extends the same unbalanced BST mutation bst.Tree performs with
// per-node balance-factor maintenance and the four classic rotation
// patterns (LL, RR, LR, RL), guaranteeing that after every completed Insert
// or Delete, every node's balance factor is in {-1, 0, +1} and the tree's
// height is within a constant factor of log2(n).
//
// Like bst.Tree, every ordering decision is routed through the Comparator
// supplied at construction.
package avl

import (
	"fmt"
	"slices"

	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/traverse"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Tree is a generic, self-balancing AVL tree over key type K.
type Tree[K any] struct {
	root *Node[K]
	cmp  order.Comparator[K]
	size int
}

// New creates an empty AVL tree ordered by cmp.
func New[K any](cmp order.Comparator[K]) *Tree[K] {
	return &Tree[K]{cmp: cmp}
}

// NewOrdered creates an empty AVL tree over a naturally ordered key type,
// using order.Natural as its comparator.
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

// rotateLeft promotes pivot's right child, used for the RR case and the
// second half of the RL case.
func (t *Tree[K]) rotateLeft(pivot *Node[K]) *Node[K] {
	r := pivot.right
	t.transplant(pivot, r)
	pivot.right = r.left
	if r.left != nil {
		r.left.parent = pivot
	}
	r.left = pivot
	pivot.parent = r
	pivot.RecomputeHeight()
	r.RecomputeHeight()
	return r
}

// rotateRight promotes pivot's left child, used for the LL case and the
// second half of the LR case.
func (t *Tree[K]) rotateRight(pivot *Node[K]) *Node[K] {
	l := pivot.left
	t.transplant(pivot, l)
	pivot.left = l.right
	if l.right != nil {
		l.right.parent = pivot
	}
	l.right = pivot
	pivot.parent = l
	pivot.RecomputeHeight()
	l.RecomputeHeight()
	return l
}

// rebalanceAt restores n's balance, per the rebalance table in §4.3:
// left-heavy (bf < -1) resolves via single right rotation, or left-then-
// right when n's left child is itself right-heavy (the LR case);
// right-heavy (bf > 1) mirrors this. It returns the node now occupying n's
// former position.
func (t *Tree[K]) rebalanceAt(n *Node[K]) *Node[K] {
	if n.balanceFactor < -1 {
		if n.left.balanceFactor > 0 {
			t.rotateLeft(n.left)
		}
		return t.rotateRight(n)
	}
	if n.right.balanceFactor < 0 {
		t.rotateRight(n.right)
	}
	return t.rotateLeft(n)
}

// rebalanceAncestors walks from n to the root, recomputing each ancestor's
// cached height/balance factor and rotating wherever a node is found
// unbalanced. It never stops early: a deletion can require a rotation at
// every level on the path back to the root, unlike an insertion.
func (t *Tree[K]) rebalanceAncestors(n *Node[K]) {
	for n != nil {
		n.RecomputeHeight()
		parent := n.parent
		if n.balanceFactor < -1 || n.balanceFactor > 1 {
			n = t.rebalanceAt(n)
			parent = n.parent
		}
		n = parent
	}
}

// Insert adds key to the tree, rebalancing along the insertion path. It
// returns false without mutating the tree if key is already present.
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
				t.size++
				t.rebalanceAncestors(cur)
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.SetRight(NewNode(key))
				t.size++
				t.rebalanceAncestors(cur)
				return true
			}
			cur = cur.right
		}
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

func minNode[K any](n *Node[K]) *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *Node[K]) *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Delete removes key from the tree, if present, rebalancing along the
// path back to the root.
//
// Splicing follows the same three cases as bst.Tree.Delete; the only
// addition is the rebalancing walk afterward.
func (t *Tree[K]) Delete(key K) bool {
	n, found := t.Search(key)
	if !found {
		return false
	}

	switch {
	case n.left == nil:
		fixupFrom := n.parent
		t.transplant(n, n.right)
		t.rebalanceAncestors(fixupFrom)
	case n.right == nil:
		fixupFrom := n.parent
		t.transplant(n, n.left)
		t.rebalanceAncestors(fixupFrom)
	default:
		successor := minNode(n.right)
		n.value = successor.value
		fixupFrom := successor.parent
		t.transplant(successor, successor.right)
		t.rebalanceAncestors(fixupFrom)
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
		return zero, false, &treeerr.ValueNotFoundError[K]{Op: "avl.Tree.Successor", Key: key}
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
		return zero, false, &treeerr.ValueNotFoundError[K]{Op: "avl.Tree.Predecessor", Key: key}
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

// Preorder returns every key via a node-left-right walk.
func (t *Tree[K]) Preorder() []K { return traverse.NewPreorder[K]().Traverse(t.RootNode()) }

// Inorder returns every key in ascending order.
func (t *Tree[K]) Inorder() []K { return traverse.NewInorder[K]().Traverse(t.RootNode()) }

// Postorder returns every key via a left-right-node walk.
func (t *Tree[K]) Postorder() []K { return traverse.NewPostorder[K]().Traverse(t.RootNode()) }

// LevelOrder returns every key breadth-first.
func (t *Tree[K]) LevelOrder() []K { return traverse.NewLevelOrder[K]().Traverse(t.RootNode()) }

// RootNode returns the tree's root as a traverse.Node, suitable for
// lazy/depth-limited/right-to-left traversal, or nil if the tree is empty.
func (t *Tree[K]) RootNode() traverse.Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Stats returns the strategy-independent tree-statistics view.
func (t *Tree[K]) Stats() traverse.Stats {
	return traverse.ComputeStats[K](t.RootNode(), t.cmp)
}

// IsValid walks the tree verifying in-order monotonicity, size
// consistency, height-cache and balance-factor consistency, and
// parent-pointer coherence — i.e. is_valid_bst(root) AND |bf(x)| <= 1 for
// every node x.
func (t *Tree[K]) IsValid() error {
	if t.root != nil && t.root.parent != nil {
		return &treeerr.NodeValidationError{Op: "avl.Tree.IsValid", Node: fmt.Sprintf("%v", t.root.value), Reason: "root has a non-nil parent"}
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
			err = &treeerr.NodeValidationError{Op: "avl.Tree.IsValid", Node: fmt.Sprintf("%v", n.value), Reason: "in-order traversal is not strictly increasing"}
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
		return &treeerr.NodeValidationError{Op: "avl.Tree.IsValid", Reason: fmt.Sprintf("size %d does not match in-order traversal length %d", t.size, count)}
	}
	return nil
}

// IsAVL reports (via a nil error) whether the tree is both a valid BST and
// height-balanced at every node. It is equivalent to IsValid; the alias
// documents the §4.3 property by name.
func (t *Tree[K]) IsAVL() error { return t.IsValid() }

// Rebuild constructs the minimal-height AVL tree containing the same
// multiset of keys as t, via median-as-root divide and conquer over t's
// in-order traversal. It does not mutate t.
func Rebuild[K any](cmp order.Comparator[K], t *Tree[K]) *Tree[K] {
	return FromSorted(cmp, t.Inorder())
}

// FromSorted constructs the minimal-height AVL tree containing keys, which
// must already be in ascending order per cmp. Use Rebuild to balance an
// existing, possibly-unsorted-by-construction tree.
func FromSorted[K any](cmp order.Comparator[K], keys []K) *Tree[K] {
	t := New[K](cmp)
	t.root = buildBalanced(keys)
	t.size = len(keys)
	return t
}

// FromUnsorted sorts a copy of keys with cmp, then delegates to FromSorted.
func FromUnsorted[K any](cmp order.Comparator[K], keys []K) *Tree[K] {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, cmp)
	return FromSorted(cmp, sorted)
}

func buildBalanced[K any](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	n := NewNode(keys[mid])
	n.SetLeft(buildBalanced(keys[:mid]))
	n.SetRight(buildBalanced(keys[mid+1:]))
	return n
}
