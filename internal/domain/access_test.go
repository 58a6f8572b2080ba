package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	// Seller capabilities.
	assert.True(t, Allowed(true, ActionManageOrders))
	assert.True(t, Allowed(true, ActionPublishProduct))
	assert.True(t, Allowed(true, ActionViewStatistics))
	assert.False(t, Allowed(true, ActionPlaceOrder))
	assert.False(t, Allowed(true, ActionViewOrderHistory))
	assert.False(t, Allowed(true, ActionRateOrder))

	// Buyer capabilities.
	assert.True(t, Allowed(false, ActionPlaceOrder))
	assert.True(t, Allowed(false, ActionViewOrderHistory))
	assert.True(t, Allowed(false, ActionRateOrder))
	assert.True(t, Allowed(false, ActionViewBuyerDetail))
	assert.False(t, Allowed(false, ActionManageOrders))
	assert.False(t, Allowed(false, ActionPublishProduct))
	assert.False(t, Allowed(false, ActionViewStatistics))

	assert.False(t, Allowed(false, Action("unknown")))
	assert.False(t, Allowed(true, Action("unknown")))
}

func TestConditions(t *testing.T) {
	options := Conditions()
	assert.Len(t, options, 4)
	assert.Equal(t, ConditionNew, options[0].Value)
	assert.Equal(t, "Second hand", ConditionUsed.Label())
	assert.True(t, ConditionForParts.Valid())
	assert.False(t, ProductCondition("broken").Valid())
}
