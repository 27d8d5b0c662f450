package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

// OrderAPI is the slice of the REST client the orders view needs
type OrderAPI interface {
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error)
}

// OrdersView lists orders with a server-side status filter and a
// client-side search over order and customer identifiers
type OrdersView struct {
	client OrderAPI
	logger *zap.Logger

	status domain.OrderStatus
	search string
	orders []domain.Order
	loaded bool
}

// NewOrdersView creates an orders view controller
func NewOrdersView(client OrderAPI, logger *zap.Logger) *OrdersView {
	return &OrdersView{
		client: client,
		logger: logger,
	}
}

// Refresh re-fetches the order collection with the current status filter
func (v *OrdersView) Refresh(ctx context.Context) error {
	orders, err := v.client.ListOrders(ctx, v.status)
	if err != nil {
		v.logger.Error("Failed to fetch orders", zap.Error(err))
		return err
	}
	v.orders = orders
	v.loaded = true
	return nil
}

// SetStatusFilter changes the server-side status filter and re-fetches.
// An empty status lists all orders.
func (v *OrdersView) SetStatusFilter(ctx context.Context, status domain.OrderStatus) error {
	v.status = status
	return v.Refresh(ctx)
}

// SetSearch changes the client-side search term. Search is applied to
// the already-fetched collection; no request is issued.
func (v *OrdersView) SetSearch(term string) {
	v.search = term
}

// Orders returns the last fetch narrowed by the search term:
// case-insensitive substring match, OR-combined across order id and
// customer id
func (v *OrdersView) Orders() []domain.Order {
	matched := make([]domain.Order, 0, len(v.orders))
	for _, order := range v.orders {
		if matchAny(v.search, order.ID, order.CustomerID) {
			matched = append(matched, order)
		}
	}
	return matched
}

// Empty reports whether the view has loaded and holds no matching
// orders. An empty collection is a valid state, not an error.
func (v *OrdersView) Empty() bool {
	return v.loaded && len(v.Orders()) == 0
}

// UpdateStatus moves an order to a new status and re-fetches the list.
// The lifecycle guard rejects transitions the order flow does not allow;
// force bypasses it, matching the backend's own permissiveness.
func (v *OrdersView) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, force bool) error {
	var current *domain.Order
	for i := range v.orders {
		if v.orders[i].ID == id {
			current = &v.orders[i]
			break
		}
	}
	if current == nil {
		return &errors.ErrNotFound{Resource: "order", ID: id}
	}

	if !force && !current.Status.CanTransitionTo(status) {
		return &errors.ErrInvalidStateTransition{From: current.Status, To: status}
	}

	if _, err := v.client.UpdateOrder(ctx, id, domain.OrderUpdate{Status: &status}); err != nil {
		v.logger.Error("Failed to update order status",
			zap.String("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	return v.Refresh(ctx)
}

// SetTracking records a tracking number on an order and re-fetches
func (v *OrdersView) SetTracking(ctx context.Context, id, trackingNumber string) error {
	update := domain.OrderUpdate{TrackingNumber: &trackingNumber}
	if _, err := v.client.UpdateOrder(ctx, id, update); err != nil {
		v.logger.Error("Failed to set tracking number",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return err
	}
	return v.Refresh(ctx)
}
