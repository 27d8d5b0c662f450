package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/elyvra/storefront/internal/domain"
)

// ProductFilter narrows a product listing. Zero value lists everything.
type ProductFilter struct {
	Category    domain.ProductCategory
	Featured    *bool
	InStockOnly bool
	Search      string
}

func (f ProductFilter) query() string {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", string(f.Category))
	}
	if f.Featured != nil {
		params.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.InStockOnly {
		params.Set("in_stock_only", "true")
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// ListProducts fetches the catalog, optionally filtered server-side
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products"+filter.query(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by identifier
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a new catalog product
func (c *Client) CreateProduct(ctx context.Context, payload domain.ProductCreate) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces an existing product keyed by identifier
func (c *Client) UpdateProduct(ctx context.Context, id string, payload domain.ProductCreate) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPut, "/admin/products/"+id, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product keyed by identifier
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/products/"+id, nil, nil)
}

// InitSampleProducts asks the backend to seed its sample catalog
func (c *Client) InitSampleProducts(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/init-products", nil, nil)
}
