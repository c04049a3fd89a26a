package btree

import (
	"testing"

	"github.com/mikenye/balancedtrees/order"
	"github.com/stretchr/testify/assert"
)

func TestNodeSearch(t *testing.T) {
	cmp := order.Natural[int]()
	n := &Node[int]{keys: []int{2, 4, 6}}

	i, found := n.search(cmp, 4)
	assert.Equal(t, 1, i)
	assert.True(t, found)

	i, found = n.search(cmp, 3)
	assert.Equal(t, 1, i)
	assert.False(t, found)

	i, found = n.search(cmp, 10)
	assert.Equal(t, 3, i)
	assert.False(t, found)
}

func TestNodeInsertRemoveKeyAt(t *testing.T) {
	n := &Node[int]{keys: []int{1, 3, 5}}
	n.insertKeyAt(1, 2)
	assert.Equal(t, []int{1, 2, 3, 5}, n.keys)

	removed := n.removeKeyAt(1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 5}, n.keys)
}

func TestNodeInsertRemoveChildAt(t *testing.T) {
	parent := &Node[int]{}
	c1 := &Node[int]{keys: []int{1}}
	c2 := &Node[int]{keys: []int{2}}
	parent.children = []*Node[int]{c1}
	parent.insertChildAt(1, c2)
	assert.Equal(t, []*Node[int]{c1, c2}, parent.children)
	assert.Equal(t, parent, c2.parent)

	removed := parent.removeChildAt(0)
	assert.Equal(t, c1, removed)
	assert.Equal(t, []*Node[int]{c2}, parent.children)
}

func TestNodeValidate(t *testing.T) {
	cmp := order.Natural[int]()
	parent := &Node[int]{keys: []int{2, 4}}
	c0 := &Node[int]{keys: []int{1}}
	c1 := &Node[int]{keys: []int{3}}
	c2 := &Node[int]{keys: []int{5}}
	parent.children = []*Node[int]{c0, c1, c2}
	for _, c := range parent.children {
		c.parent = parent
	}

	assert.NoError(t, parent.Validate(cmp))

	c1.keys = []int{6} // now violates separator bound
	assert.Error(t, parent.Validate(cmp))
}
