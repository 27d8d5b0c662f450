package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/config"
	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/internal/stub"
	"github.com/elyvra/storefront/pkg/errors"
)

func newTestClient(t *testing.T) (*Client, *stub.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := stub.NewServer(zap.NewNop())
	ts := httptest.NewServer(server.Router("test"))
	t.Cleanup(ts.Close)

	client := NewClient(config.APIConfig{
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	return client, server
}

func TestClientProductLifecycle(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.InitSampleProducts(ctx))

	products, err := client.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 3)

	beauty, err := client.ListProducts(ctx, ProductFilter{Category: domain.CategoryBeauty})
	require.NoError(t, err)
	require.Len(t, beauty, 1)
	assert.Equal(t, "ELYVRA-BEAU-001", beauty[0].SKU)

	fetched, err := client.GetProduct(ctx, beauty[0].ID)
	require.NoError(t, err)
	assert.Equal(t, beauty[0].SKU, fetched.SKU)

	require.NoError(t, client.DeleteProduct(ctx, beauty[0].ID))
	_, err = client.GetProduct(ctx, beauty[0].ID)
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "products", notFound.Resource)
	assert.Equal(t, beauty[0].ID, notFound.ID)
}

func TestClientDuplicateSKUComesBackAsValidation(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	payload := domain.ProductCreate{
		SKU:      "DUP-001",
		Category: domain.CategoryVitality,
		Price:    10,
		ImageURL: "https://example.com/x.jpg",
		Translations: map[domain.Language]domain.ProductTranslation{
			domain.LanguageEN: {Name: "First"},
		},
	}

	_, err := client.CreateProduct(ctx, payload)
	require.NoError(t, err)

	_, err = client.CreateProduct(ctx, payload)
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "SKU already exists", verr.Detail)
}

func TestClientCartFlow(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.InitSampleProducts(ctx))
	products, err := client.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)

	cart, err := client.CreateCart(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cart.ID)

	updated, err := client.AddCartItem(ctx, cart.ID, products[0].ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ItemCount())

	// adding the same product again merges into one line
	updated, err = client.AddCartItem(ctx, cart.ID, products[0].ID, 3)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 5, updated.ItemCount())

	fetched, err := client.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.ItemCount())

	_, err = client.GetCart(ctx, "no-such-cart")
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cart", notFound.Resource)
}

func TestClientOrderUpdate(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	seeded := server.SeedOrder(domain.Order{
		CustomerID:  "cust-1",
		Status:      domain.OrderStatusProcessing,
		TotalAmount: 80,
	})

	orders, err := client.ListOrders(ctx, domain.OrderStatusProcessing)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	status := domain.OrderStatusConfirmed
	updated, err := client.UpdateOrder(ctx, seeded.ID, domain.OrderUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)

	orders, err = client.ListOrders(ctx, domain.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClientLogin(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	_, err := server.RegisterAdmin("admin", "secret", true)
	require.NoError(t, err)

	admin, err := client.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = client.Login(ctx, "admin", "wrong")
	var unauth *errors.ErrUnauthorized
	require.ErrorAs(t, err, &unauth)
	assert.Equal(t, "Invalid credentials", unauth.Message)
}

func TestClientLoginDeactivatedAccount(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	_, err := server.RegisterAdmin("ghost", "secret", false)
	require.NoError(t, err)

	_, err = client.Login(ctx, "ghost", "secret")
	var unauth *errors.ErrUnauthorized
	require.ErrorAs(t, err, &unauth)
	assert.Equal(t, "Account is deactivated", unauth.Message)
}

func TestClientInitDefaultAdmin(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	result, err := client.InitDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, result.Existing)
	assert.Equal(t, "admin", result.Username)
	require.NotEmpty(t, result.Password)

	_, err = client.Login(ctx, result.Username, result.Password)
	require.NoError(t, err)

	again, err := client.InitDefaultAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, again.Existing)
	assert.Empty(t, again.Password)
}

func TestClientBlogLifecycle(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateBlogPost(ctx, domain.BlogPostCreate{
		Title:   map[domain.Language]string{domain.LanguageEN: "Hydration basics"},
		Content: map[domain.Language]string{domain.LanguageEN: "Drink water."},
		Excerpt: map[domain.Language]string{},
		Author:  "Dr. Lina",
	})
	require.NoError(t, err)

	// unpublished posts are hidden from the public listing
	posts, err := client.ListBlogPosts(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = client.ListBlogPosts(ctx, false)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	updated, err := client.UpdateBlogPost(ctx, created.ID, domain.BlogPostCreate{
		Title:     map[domain.Language]string{domain.LanguageEN: "Hydration basics"},
		Content:   map[domain.Language]string{domain.LanguageEN: "Drink water."},
		Excerpt:   map[domain.Language]string{},
		Author:    "Dr. Lina",
		Published: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Published)

	posts, err = client.ListBlogPosts(ctx, true)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	require.NoError(t, client.DeleteBlogPost(ctx, created.ID))
	_, err = client.GetBlogPost(ctx, created.ID)
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "blog", notFound.Resource)
}

func TestClientCouponDuplicateCode(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	payload := domain.CouponCreate{
		Code:          "SUMMER25",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 25,
		ValidFrom:     time.Now().UTC(),
		ValidUntil:    time.Now().UTC().Add(30 * 24 * time.Hour),
		IsActive:      true,
	}

	created, err := client.CreateCoupon(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", created.Code)

	_, err = client.CreateCoupon(ctx, payload)
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Coupon code already exists", verr.Detail)
}

func TestClientStats(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.InitSampleProducts(ctx))
	server.SeedOrder(domain.Order{Status: domain.OrderStatusConfirmed, TotalAmount: 100})
	server.SeedOrder(domain.Order{Status: domain.OrderStatusCancelled, TotalAmount: 40})

	stats, err := client.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)

	// cancelled orders never count toward revenue
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.OrdersByStatus["cancelled"])

	// one sample product ships with a low stock level
	require.Len(t, stats.LowStockAlerts, 1)
	assert.Equal(t, "ELYVRA-BEAU-001", stats.LowStockAlerts[0]["sku"])
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	logger := zap.NewNop()

	for _, base := range []string{
		"http://localhost:8000",
		"http://localhost:8000/",
		"http://localhost:8000/api",
	} {
		c := NewClient(config.APIConfig{BaseURL: base, Timeout: time.Second}, logger)
		assert.Equal(t, "http://localhost:8000/api", c.baseURL, "base %q", base)
	}
}

func TestResourceFromPathSkipsAdminSegment(t *testing.T) {
	resource, id := resourceFromPath("/admin/products/p1")
	assert.Equal(t, "products", resource)
	assert.Equal(t, "p1", id)

	resource, id = resourceFromPath("/cart/c1/items")
	assert.Equal(t, "cart", resource)
	assert.Equal(t, "c1", id)
}
