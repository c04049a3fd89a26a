package btree

import (
	"github.com/mikenye/balancedtrees/order"
	"github.com/mikenye/balancedtrees/record"
	"github.com/mikenye/balancedtrees/treeerr"
)

// Export converts the tree into a plain nested record.Map: "order" and, for
// a non-empty tree, "root". Each node record holds "keys" and, for an
// internal node, a "children" list of sub-records.
func (t *Tree[K]) Export() record.Map {
	m := record.Map{"order": t.m}
	if t.root != nil {
		m["root"] = exportNode(t.root)
	}
	return m
}

func exportNode[K any](n *Node[K]) record.Map {
	m := record.Map{"keys": n.keys}
	if !n.IsLeaf() {
		children := make([]record.Map, len(n.children))
		for i, c := range n.children {
			children[i] = exportNode(c)
		}
		m["children"] = children
	}
	return m
}

// Import rebuilds a tree from a record.Map produced by Export. decode
// converts a raw key element into K; pass record.Direct[K]() when m was
// never serialized to bytes, or a custom decoder after a JSON/YAML
// round-trip.
func Import[K any](cmp order.Comparator[K], m record.Map, decode func(any) (K, bool)) (*Tree[K], error) {
	const op = "btree.Import"
	if err := record.RequireFields(op, m, "order"); err != nil {
		return nil, err
	}
	orderVal, ok := decodeInt(m["order"])
	if !ok {
		return nil, &treeerr.InvalidInputError{Op: op, Reason: "field \"order\" has the wrong type"}
	}

	t, err := New[K](orderVal, cmp)
	if err != nil {
		return nil, err
	}

	rawRoot, ok := m["root"]
	if !ok {
		return t, nil
	}
	rootMap, err := record.AsMap(op, "root", rawRoot)
	if err != nil {
		return nil, err
	}
	root, size, err := importNode[K](op, rootMap, decode)
	if err != nil {
		return nil, err
	}
	t.root = root
	t.size = size
	if err := t.IsValid(); err != nil {
		return nil, err
	}
	return t, nil
}

func importNode[K any](op string, m record.Map, decode func(any) (K, bool)) (*Node[K], int, error) {
	if err := record.RequireFields(op, m, "keys"); err != nil {
		return nil, 0, err
	}
	rawKeys, err := record.AsSlice(op, "keys", m["keys"])
	if err != nil {
		return nil, 0, err
	}
	n := &Node[K]{}
	for _, rk := range rawKeys {
		k, ok := decode(rk)
		if !ok {
			return nil, 0, &treeerr.InvalidInputError{Op: op, Reason: "a key element has the wrong type"}
		}
		n.keys = append(n.keys, k)
	}
	size := len(n.keys)

	if rawChildren, ok := m["children"]; ok {
		childSlice, err := record.AsSlice(op, "children", rawChildren)
		if err != nil {
			return nil, 0, err
		}
		for _, rc := range childSlice {
			childMap, err := record.AsMap(op, "children[]", rc)
			if err != nil {
				return nil, 0, err
			}
			child, childSize, err := importNode[K](op, childMap, decode)
			if err != nil {
				return nil, 0, err
			}
			child.parent = n
			n.children = append(n.children, child)
			size += childSize
		}
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
