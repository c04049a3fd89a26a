package bst

import (
	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/record"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Export converts the tree into a plain nested record.Map: each node
// becomes a mapping with "value", "height", and, when present, "left" and
// "right" sub-records.
func (t *Tree[K]) Export() record.Map {
	return exportNode(t.root)
}

func exportNode[K any](n *Node[K]) record.Map {
	if n == nil {
		return nil
	}
	m := record.Map{
		"value":  n.value,
		"height": n.height,
	}
	if left := exportNode(n.left); left != nil {
		m["left"] = left
	}
	if right := exportNode(n.right); right != nil {
		m["right"] = right
	}
	return m
}

// Import rebuilds a tree from a record.Map produced by Export (or an
// equivalent hand-built mapping). decode converts a raw "value" field into
// the caller's key type; pass record.Direct[K]() when m was never
// serialized to bytes (so "value" is already a K), or a custom decoder
// after a JSON round-trip (where numbers decode as float64).
//
// Import re-validates the rebuilt tree before returning it, so a
// structurally-valid-looking but out-of-order record is rejected rather
// than silently accepted.
func Import[K any](cmp order.Comparator[K], m record.Map, decode func(any) (K, bool)) (*Tree[K], error) {
	root, size, err := importNode[K]("bst.Import", m, decode)
	if err != nil {
		return nil, err
	}
	t := New[K](cmp)
	t.root = root
	t.size = size
	if root != nil {
		root.parent = nil
	}
	if err := t.IsValid(); err != nil {
		return nil, err
	}
	return t, nil
}

func importNode[K any](op string, m record.Map, decode func(any) (K, bool)) (*Node[K], int, error) {
	if m == nil {
		return nil, 0, nil
	}
	if err := record.RequireFields(op, m, "value", "height"); err != nil {
		return nil, 0, err
	}
	value, ok := decode(m["value"])
	if !ok {
		return nil, 0, &treeerr.InvalidInputError{Op: op, Reason: "field \"value\" has the wrong type"}
	}
	height, ok := decodeInt(m["height"])
	if !ok {
		return nil, 0, &treeerr.InvalidInputError{Op: op, Reason: "field \"height\" has the wrong type"}
	}

	n := &Node[K]{value: value, height: height}
	size := 1

	if rawLeft, ok := m["left"]; ok {
		leftMap, err := record.AsMap(op, "left", rawLeft)
		if err != nil {
			return nil, 0, err
		}
		left, leftSize, err := importNode[K](op, leftMap, decode)
		if err != nil {
			return nil, 0, err
		}
		n.left = left
		if left != nil {
			left.parent = n
		}
		size += leftSize
	}
	if rawRight, ok := m["right"]; ok {
		rightMap, err := record.AsMap(op, "right", rawRight)
		if err != nil {
			return nil, 0, err
		}
		right, rightSize, err := importNode[K](op, rightMap, decode)
		if err != nil {
			return nil, 0, err
		}
		n.right = right
		if right != nil {
			right.parent = n
		}
		size += rightSize
	}
	return n, size, nil
}

func decodeInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	default:
		return 0, false
	}
}
