// Package traverse implements the four traversal strategies shared by every
// binary-tree engine in this module (bst, avl): preorder, inorder, postorder
// and level-order.
//
// Strategies are stateless — they hold no tree of their own, they only know
// how to walk one given a root. This lets bst.Tree and avl.Tree expose the
// exact same traversal surface without either depending on the other, per
// the "tagged variants behind a small capability surface" design note: a
// node only needs to answer Value/Left/Right to be walkable.
//
// Preorder and inorder use an explicit stack; postorder uses a single stack
// with a last-visited guard; level-order uses a FIFO queue. None of the four
// recurse, so none of them can stack-overflow on a deep, unbalanced tree.
package traverse

import (
	"iter"
	"slices"

	"github.com/mikenye/balancedtrees/order"
)

// Node is the capability surface a concrete tree node must expose to be
// walkable by a Strategy. bst.Node and avl.Node both implement it.
//
// Left and Right must return a nil interface value (not a typed nil
// pointer) when the corresponding child is absent, or traversal will try to
// walk into it.
type Node[K any] interface {
	Value() K
	Left() Node[K]
	Right() Node[K]
}

type kind int

const (
	preorderKind kind = iota
	inorderKind
	postorderKind
	levelOrderKind
)

type frame[K any] struct {
	n     Node[K]
	depth int
}

// visitFunc is called once per visited node in traversal order, along with
// its depth below the walk's root (root is depth 0). Returning false stops
// the walk early.
type visitFunc[K any] func(n Node[K], depth int) bool

func walk[K any](k kind, root Node[K], mirror bool, visit visitFunc[K]) {
	if root == nil {
		return
	}
	switch k {
	case preorderKind:
		preorderWalk(root, mirror, visit)
	case inorderKind:
		inorderWalk(root, mirror, visit)
	case postorderKind:
		postorderWalk(root, mirror, visit)
	case levelOrderKind:
		levelOrderWalk(root, mirror, visit)
	}
}

func children[K any](n Node[K], mirror bool) (first, second Node[K]) {
	first, second = n.Left(), n.Right()
	if mirror {
		first, second = second, first
	}
	return
}

func preorderWalk[K any](root Node[K], mirror bool, visit visitFunc[K]) {
	stack := []frame[K]{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.n, f.depth) {
			return
		}
		first, second := children(f.n, mirror)
		if second != nil {
			stack = append(stack, frame[K]{second, f.depth + 1})
		}
		if first != nil {
			stack = append(stack, frame[K]{first, f.depth + 1})
		}
	}
}

func inorderWalk[K any](root Node[K], mirror bool, visit visitFunc[K]) {
	var stack []frame[K]
	cur := root
	depth := 0
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, frame[K]{cur, depth})
			first, _ := children(cur, mirror)
			cur = first
			depth++
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.n, f.depth) {
			return
		}
		_, second := children(f.n, mirror)
		cur = second
		depth = f.depth + 1
	}
}

// postorderWalk uses a single stack with a "last visited" guard: a node is
// ready to be visited once neither of its children is the node we just
// visited's sibling-unvisited-descendant, i.e. once both its children have
// already been emitted (or are absent).
func postorderWalk[K any](root Node[K], mirror bool, visit visitFunc[K]) {
	stack := []frame[K]{{root, 0}}
	var lastVisited Node[K]
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		first, second := children(top.n, mirror)
		switch {
		case first != nil && lastVisited != first && (second == nil || lastVisited != second):
			stack = append(stack, frame[K]{first, top.depth + 1})
		case second != nil && lastVisited != second:
			stack = append(stack, frame[K]{second, top.depth + 1})
		default:
			if !visit(top.n, top.depth) {
				return
			}
			lastVisited = top.n
			stack = stack[:len(stack)-1]
		}
	}
}

func levelOrderWalk[K any](root Node[K], mirror bool, visit visitFunc[K]) {
	queue := []frame[K]{{root, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if !visit(f.n, f.depth) {
			return
		}
		first, second := children(f.n, mirror)
		if first != nil {
			queue = append(queue, frame[K]{first, f.depth + 1})
		}
		if second != nil {
			queue = append(queue, frame[K]{second, f.depth + 1})
		}
	}
}

// Strategy is the uniform surface exposed by each of the four traversal
// strategies (Preorder, Inorder, Postorder, LevelOrder).
type Strategy[K any] interface {
	// Traverse returns every value in the tree rooted at root, in this
	// strategy's order, materialized into a slice.
	Traverse(root Node[K]) []K

	// TraverseLazy returns the same sequence as Traverse, but produces one
	// value per step instead of materializing the whole result up front.
	TraverseLazy(root Node[K]) iter.Seq[K]

	// TraverseDepthLimited returns only the values at depth <= maxDepth
	// (root is depth 0).
	TraverseDepthLimited(root Node[K], maxDepth int) []K

	// TraverseRightToLeft returns the mirror image of Traverse: wherever
	// the strategy would visit a left child before a right child (or vice
	// versa), the order is swapped.
	TraverseRightToLeft(root Node[K]) []K

	// TraverseWithCallback invokes f once per value in traversal order,
	// stopping early if f returns false.
	TraverseWithCallback(root Node[K], f func(K) bool)

	// TraverseWithCondition returns the values in traversal order for
	// which p returns true.
	TraverseWithCondition(root Node[K], p func(K) bool) []K

	// TraverseCountLimited returns at most the first n values in traversal
	// order.
	TraverseCountLimited(root Node[K], n int) []K

	// TraverseReverse returns Traverse's result in reverse order.
	TraverseReverse(root Node[K]) []K
}

type strategy[K any] struct {
	kind kind
}

func (s strategy[K]) Traverse(root Node[K]) []K {
	var out []K
	walk(s.kind, root, false, func(n Node[K], _ int) bool {
		out = append(out, n.Value())
		return true
	})
	return out
}

func (s strategy[K]) TraverseLazy(root Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(s.kind, root, false, func(n Node[K], _ int) bool {
			return yield(n.Value())
		})
	}
}

func (s strategy[K]) TraverseDepthLimited(root Node[K], maxDepth int) []K {
	var out []K
	walk(s.kind, root, false, func(n Node[K], depth int) bool {
		if depth <= maxDepth {
			out = append(out, n.Value())
		}
		return true
	})
	return out
}

func (s strategy[K]) TraverseRightToLeft(root Node[K]) []K {
	var out []K
	walk(s.kind, root, true, func(n Node[K], _ int) bool {
		out = append(out, n.Value())
		return true
	})
	return out
}

func (s strategy[K]) TraverseWithCallback(root Node[K], f func(K) bool) {
	walk(s.kind, root, false, func(n Node[K], _ int) bool {
		return f(n.Value())
	})
}

func (s strategy[K]) TraverseWithCondition(root Node[K], p func(K) bool) []K {
	var out []K
	walk(s.kind, root, false, func(n Node[K], _ int) bool {
		if v := n.Value(); p(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

func (s strategy[K]) TraverseCountLimited(root Node[K], n int) []K {
	if n <= 0 {
		return nil
	}
	out := make([]K, 0, n)
	walk(s.kind, root, false, func(node Node[K], _ int) bool {
		out = append(out, node.Value())
		return len(out) < n
	})
	return out
}

func (s strategy[K]) TraverseReverse(root Node[K]) []K {
	out := s.Traverse(root)
	slices.Reverse(out)
	return out
}

// NewPreorder returns the preorder strategy (node, left, right).
func NewPreorder[K any]() Strategy[K] { return strategy[K]{preorderKind} }

// NewInorder returns the inorder strategy (left, node, right).
func NewInorder[K any]() Strategy[K] { return strategy[K]{inorderKind} }

// NewPostorder returns the postorder strategy (left, right, node).
func NewPostorder[K any]() Strategy[K] { return strategy[K]{postorderKind} }

// NewLevelOrder returns the breadth-first, queue-driven level-order
// strategy.
func NewLevelOrder[K any]() Strategy[K] { return strategy[K]{levelOrderKind} }

// Stats is the strategy-independent tree-statistics view: a single pass
// over the tree rooted at root, reporting shape and (optionally, when cmp
// is non-nil) ordering validity.
type Stats struct {
	NodeCount     int
	Height        int // -1 for an empty tree, 0 for a single node
	LeafCount     int
	InternalCount int
	Valid         bool
}

// ComputeStats walks root once via level-order (for shape) and once via
// inorder (for ordering), and reports the aggregate Stats. If cmp is nil,
// Valid is reported as true unconditionally.
func ComputeStats[K any](root Node[K], cmp order.Comparator[K]) Stats {
	stats := Stats{Height: -1}
	if root == nil {
		stats.Valid = true
		return stats
	}

	walk(levelOrderKind, root, false, func(n Node[K], depth int) bool {
		stats.NodeCount++
		if depth > stats.Height {
			stats.Height = depth
		}
		if n.Left() == nil && n.Right() == nil {
			stats.LeafCount++
		} else {
			stats.InternalCount++
		}
		return true
	})

	stats.Valid = true
	if cmp != nil {
		first := true
		var prev K
		walk(inorderKind, root, false, func(n Node[K], _ int) bool {
			v := n.Value()
			if !first && cmp(prev, v) >= 0 {
				stats.Valid = false
				return false
			}
			prev = v
			first = false
			return true
		})
	}
	return stats
}
