package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryRecord_Available(t *testing.T) {
	assert.Equal(t, 5, InventoryRecord{TotalCount: 5}.Available())
	assert.Equal(t, 3, InventoryRecord{TotalCount: 5, SoldCount: 2}.Available())
	assert.Zero(t, InventoryRecord{TotalCount: 5, SoldCount: 5}.Available())
	assert.Zero(t, InventoryRecord{TotalCount: 5, SoldCount: 7}.Available(), "never negative")
}

func TestCheckout_Transitions(t *testing.T) {
	c := &Checkout{State: CheckoutCollectIdentity}
	assert.True(t, c.IsOpen())

	c.Acknowledge()
	assert.Equal(t, CheckoutAcknowledged, c.State)
	assert.False(t, c.IsOpen())

	c.Cancel()
	assert.Equal(t, CheckoutAcknowledged, c.State, "acknowledged is terminal")

	c = &Checkout{State: CheckoutCollectIdentity}
	c.Cancel()
	assert.Equal(t, CheckoutCancelled, c.State)
	c.Acknowledge()
	assert.Equal(t, CheckoutCancelled, c.State)
}
