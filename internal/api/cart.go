package api

import (
	"context"
	"net/http"

	"github.com/elyvra/storefront/internal/domain"
)

// CreateCart asks the backend to issue a new cart session
func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart fetches the current server state of a cart
func (c *Client) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodGet, "/cart/"+id, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// addItemResponse wraps the updated cart returned by the add-item endpoint
type addItemResponse struct {
	Message string      `json:"message"`
	Cart    domain.Cart `json:"cart"`
}

// AddCartItem adds a product to the cart and returns the cart state the
// server holds after the mutation. Displayed counts must be derived from
// this returned cart, never incremented locally.
func (c *Client) AddCartItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	payload := domain.CartItem{
		ProductID: productID,
		Quantity:  quantity,
	}

	var resp addItemResponse
	if err := c.do(ctx, http.MethodPost, "/cart/"+cartID+"/items", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}
