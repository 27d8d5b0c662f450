package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/elyvra/storefront/internal/domain"
)

// ListOrders fetches orders, optionally filtered by status server-side
func (c *Client) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	path := "/orders"
	if status != "" {
		params := url.Values{}
		params.Set("status", string(status))
		path += "?" + params.Encode()
	}

	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by identifier
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies a partial update (status, tracking number, notes)
// to an order keyed by identifier
func (c *Client) UpdateOrder(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+id, update, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
