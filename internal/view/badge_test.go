package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elyvra/storefront/internal/domain"
)

func TestStatusBadgeKnownStatuses(t *testing.T) {
	badge := StatusBadge(domain.LanguageEN, domain.OrderStatusShipped)
	assert.Equal(t, "Shipped", badge.Label)
	assert.Equal(t, "purple", badge.Color)

	badge = StatusBadge(domain.LanguageFR, domain.OrderStatusShipped)
	assert.Equal(t, "Expédiée", badge.Label)
}

func TestStatusBadgeUnknownStatusFallsBackToRawValue(t *testing.T) {
	badge := StatusBadge(domain.LanguageEN, domain.OrderStatus("awaiting_restock"))
	assert.Equal(t, "awaiting_restock", badge.Label)
	assert.Equal(t, "gray", badge.Color)
	assert.Equal(t, "alert-circle", badge.Icon)
}

func TestStockBadgeThresholds(t *testing.T) {
	out := domain.Product{InStock: false, StockQuantity: 50}
	assert.Equal(t, "Out of Stock", StockBadge(&out).Label)

	low := domain.Product{InStock: true, StockQuantity: 9}
	assert.Equal(t, "Low Stock", StockBadge(&low).Label)

	ok := domain.Product{InStock: true, StockQuantity: 10}
	assert.Equal(t, "In Stock", StockBadge(&ok).Label)
}

func TestSegmentBadgeFallback(t *testing.T) {
	assert.Equal(t, "VIP", SegmentBadge(domain.SegmentVIP).Label)
	assert.Equal(t, "wholesale", SegmentBadge(domain.CustomerSegment("wholesale")).Label)
}

func TestMatchAny(t *testing.T) {
	assert.True(t, matchAny("", "anything"))
	assert.True(t, matchAny("ORD", "ord-100", "cust-1"))
	assert.True(t, matchAny("cust", "ord-100", "cust-1"))
	assert.False(t, matchAny("missing", "ord-100", "cust-1"))
}
