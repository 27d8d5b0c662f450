package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

type fakeBlogAPI struct {
	posts []domain.BlogPost

	listCalls     int
	deleteCalls   int
	lastPublished bool
}

func (f *fakeBlogAPI) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	f.listCalls++
	f.lastPublished = publishedOnly
	if !publishedOnly {
		return f.posts, nil
	}
	matched := make([]domain.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		if p.Published {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeBlogAPI) DeleteBlogPost(ctx context.Context, id string) error {
	f.deleteCalls++
	return nil
}

func blogFixtures() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:        "post-1",
			Author:    "Dr. Lina",
			Published: true,
			Title: map[domain.Language]string{
				domain.LanguageEN: "Hydration basics",
				domain.LanguageFR: "Les bases de l'hydratation",
			},
		},
		{
			ID:     "post-2",
			Author: "Coach Sami",
			Title: map[domain.Language]string{
				domain.LanguageEN: "Recovery routines",
			},
		},
	}
}

func TestBlogViewPublishedOnlyFetch(t *testing.T) {
	client := &fakeBlogAPI{posts: blogFixtures()}
	v := NewBlogView(client, true, zap.NewNop())

	require.NoError(t, v.Refresh(context.Background()))
	assert.True(t, client.lastPublished)
	require.Len(t, v.Posts(), 1)
	assert.Equal(t, "post-1", v.Posts()[0].ID)
}

func TestBlogViewSearchMatchesTitlesAndAuthor(t *testing.T) {
	client := &fakeBlogAPI{posts: blogFixtures()}
	v := NewBlogView(client, false, zap.NewNop())
	require.NoError(t, v.Refresh(context.Background()))

	v.SetSearch("hydratation")
	require.Len(t, v.Posts(), 1)
	assert.Equal(t, "post-1", v.Posts()[0].ID)

	v.SetSearch("sami")
	require.Len(t, v.Posts(), 1)
	assert.Equal(t, "post-2", v.Posts()[0].ID)
}

func TestBlogViewDeleteDeclined(t *testing.T) {
	client := &fakeBlogAPI{posts: blogFixtures()}
	v := NewBlogView(client, false, zap.NewNop())
	require.NoError(t, v.Refresh(context.Background()))
	client.listCalls = 0

	result, err := v.Delete(context.Background(), "post-1", func(string) bool { return false })
	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.Equal(t, 0, client.deleteCalls)
	assert.Equal(t, 0, client.listCalls)
}

type fakeCustomerAPI struct {
	customers []domain.Customer
}

func (f *fakeCustomerAPI) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return f.customers, nil
}

func TestCustomersViewSearch(t *testing.T) {
	client := &fakeCustomerAPI{customers: []domain.Customer{
		{ID: "c1", FirstName: "Nadia", LastName: "Haddad", Email: "nadia@example.com"},
		{ID: "c2", FirstName: "Omar", LastName: "Fares", Email: "omar@example.com"},
	}}
	v := NewCustomersView(client, zap.NewNop())
	require.NoError(t, v.Refresh(context.Background()))

	v.SetSearch("haddad")
	require.Len(t, v.Customers(), 1)
	assert.Equal(t, "c1", v.Customers()[0].ID)

	v.SetSearch("example.com")
	assert.Len(t, v.Customers(), 2)

	v.SetSearch("nobody")
	assert.True(t, v.Empty())
}

type fakeCouponAPI struct {
	coupons []domain.Coupon
}

func (f *fakeCouponAPI) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return f.coupons, nil
}

func TestCouponsViewActiveFilterAndSearch(t *testing.T) {
	client := &fakeCouponAPI{coupons: []domain.Coupon{
		{ID: "k1", Code: "SUMMER25", Description: "Summer sale", IsActive: true},
		{ID: "k2", Code: "WINTER10", Description: "Expired promo", IsActive: false},
	}}
	v := NewCouponsView(client, zap.NewNop())
	require.NoError(t, v.Refresh(context.Background()))

	assert.Len(t, v.Coupons(), 2)

	v.SetActiveOnly(true)
	require.Len(t, v.Coupons(), 1)
	assert.Equal(t, "SUMMER25", v.Coupons()[0].Code)

	v.SetActiveOnly(false)
	v.SetSearch("promo")
	require.Len(t, v.Coupons(), 1)
	assert.Equal(t, "WINTER10", v.Coupons()[0].Code)
}
