package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderUpToLevel(t *testing.T) {
	policy := OrderUpToLevel{}
	s := NewSKU("SKU_001", "ED", LocationPAR, 50, 7, 10)

	s.SetInventoryLevel(50)
	assert.False(t, policy.ShouldReorder(s))
	assert.Zero(t, policy.OrderQuantity(s))

	s.SetInventoryLevel(15)
	assert.True(t, policy.ShouldReorder(s))
	assert.Equal(t, 35.0, policy.OrderQuantity(s))
}

func TestOrderUpToLevel_ZeroTarget(t *testing.T) {
	policy := OrderUpToLevel{}
	s := NewSKU("SKU_001", "ED", LocationPAR, 0, 7, 10)

	assert.False(t, policy.ShouldReorder(s))

	// Emergency supply can push the level above a zero target; the order
	// quantity must not go negative.
	s.SetInventoryLevel(5)
	assert.False(t, policy.ShouldReorder(s))
	assert.Zero(t, policy.OrderQuantity(s))
}
