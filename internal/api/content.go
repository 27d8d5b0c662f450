package api

import (
	"context"
	"net/http"

	"github.com/elyvra/storefront/internal/domain"
)

// ListCustomers fetches all customers
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer fetches a single customer by identifier
func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCoupons fetches all promotion codes
func (c *Client) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	var coupons []domain.Coupon
	if err := c.do(ctx, http.MethodGet, "/coupons", nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// CreateCoupon registers a new promotion code. Duplicate codes are
// rejected by the server, not checked locally.
func (c *Client) CreateCoupon(ctx context.Context, payload domain.CouponCreate) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := c.do(ctx, http.MethodPost, "/coupons", payload, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

// ListBlogPosts fetches blog content. publishedOnly narrows the result to
// published posts for the public storefront.
func (c *Client) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	path := "/blog"
	if publishedOnly {
		path += "?published_only=true"
	}

	var posts []domain.BlogPost
	if err := c.do(ctx, http.MethodGet, path, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetBlogPost fetches a single post by identifier
func (c *Client) GetBlogPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/admin/blog/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreateBlogPost publishes a new post
func (c *Client) CreateBlogPost(ctx context.Context, payload domain.BlogPostCreate) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.do(ctx, http.MethodPost, "/blog", payload, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateBlogPost replaces an existing post keyed by identifier
func (c *Client) UpdateBlogPost(ctx context.Context, id string, payload domain.BlogPostCreate) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.do(ctx, http.MethodPut, "/admin/blog/"+id, payload, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBlogPost removes a post keyed by identifier
func (c *Client) DeleteBlogPost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/blog/"+id, nil, nil)
}
