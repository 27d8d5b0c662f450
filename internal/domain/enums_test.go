package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPendingPayment, OrderStatusProcessing, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusConfirmed, true},
		{OrderStatusProcessing, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusRefunded, true},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusRefunded, OrderStatusPendingPayment, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range OrderStatuses() {
		assert.True(t, status.IsValid(), status)
	}
	assert.False(t, OrderStatus("awaiting_restock").IsValid())
}

func TestLanguage(t *testing.T) {
	assert.True(t, LanguageAR.RTL())
	assert.False(t, LanguageEN.RTL())
	assert.False(t, Language("de").IsValid())
	assert.Len(t, Languages(), 3)
}

func TestProductCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryVitality.IsValid())
	assert.False(t, ProductCategory("snacks").IsValid())
}
