package bst

import (
	"testing"

	"github.com/mikenye/balancedtrees/order"
	"github.com/stretchr/testify/assert"
)

func TestNodeSetLeftSetRight(t *testing.T) {
	root := NewNode(10)
	left := NewNode(5)
	right := NewNode(15)

	root.SetLeft(left)
	assert.Equal(t, left, root.LeftChild())
	assert.Equal(t, root, left.Parent())
	assert.Equal(t, 1, root.Height())

	root.SetRight(right)
	assert.Equal(t, right, root.RightChild())
	assert.Equal(t, root, right.Parent())
	assert.Equal(t, 1, root.Height())

	grandchild := NewNode(3)
	left.SetLeft(grandchild)
	root.RecomputeHeight()
	assert.Equal(t, 1, left.Height())
	assert.Equal(t, 2, root.Height())
}

func TestNodeValidate(t *testing.T) {
	cmp := order.Natural[int]()
	root := NewNode(10)
	left := NewNode(5)
	right := NewNode(15)
	root.SetLeft(left)
	root.SetRight(right)

	assert.NoError(t, root.Validate(cmp))

	// Break ordering: left child greater than node.
	bad := NewNode(20)
	root.SetLeft(bad)
	assert.Error(t, root.Validate(cmp))

	// restore and break height cache
	root.SetLeft(left)
	root.height = 99
	assert.Error(t, root.Validate(cmp))
}

func TestHeightOfNil(t *testing.T) {
	assert.Equal(t, -1, heightOf[int](nil))
	n := NewNode(1)
	assert.Equal(t, 0, heightOf(n))
}
