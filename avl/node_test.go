package avl

import (
	"testing"

	"github.com/mikenye/balancedtrees/order"
	"github.com/stretchr/testify/assert"
)

func TestNodeSetLeftSetRightUpdatesBalanceFactor(t *testing.T) {
	root := NewNode(10)
	left := NewNode(5)
	right := NewNode(15)

	root.SetLeft(left)
	assert.Equal(t, left, root.LeftChild())
	assert.Equal(t, root, left.Parent())
	assert.Equal(t, 1, root.Height())
	assert.Equal(t, -1, root.BalanceFactor())

	root.SetRight(right)
	assert.Equal(t, 1, root.Height())
	assert.Equal(t, 0, root.BalanceFactor())

	grandchild := NewNode(3)
	left.SetLeft(grandchild)
	root.RecomputeHeight()
	assert.Equal(t, 2, root.Height())
	assert.Equal(t, -1, root.BalanceFactor())
}

func TestNodeIsBalanced(t *testing.T) {
	root := NewNode(10)
	assert.True(t, root.IsBalanced())

	root.balanceFactor = 2
	assert.False(t, root.IsBalanced())
}

func TestNodeValidateCatchesImbalance(t *testing.T) {
	cmp := order.Natural[int]()
	root := NewNode(10)
	left := NewNode(5)
	right := NewNode(15)
	root.SetLeft(left)
	root.SetRight(right)
	assert.NoError(t, root.Validate(cmp))

	left.SetLeft(NewNode(1))
	left.left.SetLeft(NewNode(0))
	left.RecomputeHeight()
	root.RecomputeHeight()
	assert.Error(t, root.Validate(cmp), "bf -2 should fail, stress left-heavy chain")
}

func TestNodeValidateCatchesBalanceFactorCacheMismatch(t *testing.T) {
	cmp := order.Natural[int]()
	root := NewNode(10)
	root.SetLeft(NewNode(5))
	root.balanceFactor = 5
	assert.Error(t, root.Validate(cmp))
}

func TestHeightOfNil(t *testing.T) {
	assert.Equal(t, -1, heightOf[int](nil))
	n := NewNode(1)
	assert.Equal(t, 0, heightOf(n))
}
