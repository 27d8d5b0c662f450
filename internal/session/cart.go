// Package session holds the two process-wide client sessions: the cart
// identifier and the logged-in admin profile. Both are persisted through
// the local state store and read by any view that branches on them.
package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
	apperrors "github.com/elyvra/storefront/pkg/errors"
)

// CartAPI is the slice of the REST client the cart session needs
type CartAPI interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	AddCartItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
}

// CartStore persists the cart identifier between runs
type CartStore interface {
	CartID(ctx context.Context) (string, error)
	SaveCartID(ctx context.Context, id string) error
}

// CartSession ensures exactly one cart identifier exists per local state
// store and keeps a derived item count in sync with the server. The
// count is always overwritten from a server-returned cart, never
// incremented locally, so it stays correct under concurrent mutation
// from elsewhere.
type CartSession struct {
	client CartAPI
	store  CartStore
	logger *zap.Logger

	cartID string
	count  int
}

// NewCartSession creates a cart session
func NewCartSession(client CartAPI, store CartStore, logger *zap.Logger) *CartSession {
	return &CartSession{
		client: client,
		store:  store,
		logger: logger,
	}
}

// EnsureCart makes the session hold a live cart identifier. A persisted
// identifier is reused and its cart fetched to recompute the count; a
// cart the server no longer knows is replaced with a fresh one. Without
// a persisted identifier a new cart is created and persisted.
func (s *CartSession) EnsureCart(ctx context.Context) error {
	id, err := s.store.CartID(ctx)
	if err != nil {
		return err
	}

	if id != "" {
		cart, err := s.client.GetCart(ctx, id)
		if err == nil {
			s.cartID = cart.ID
			s.count = cart.ItemCount()
			return nil
		}
		var notFound *apperrors.ErrNotFound
		if !errors.As(err, &notFound) {
			return err
		}
		s.logger.Warn("Persisted cart no longer exists, creating a new one",
			zap.String("cart_id", id),
		)
	}

	return s.createCart(ctx)
}

func (s *CartSession) createCart(ctx context.Context) error {
	cart, err := s.client.CreateCart(ctx)
	if err != nil {
		s.logger.Error("Failed to create cart", zap.Error(err))
		return err
	}
	if err := s.store.SaveCartID(ctx, cart.ID); err != nil {
		return err
	}
	s.cartID = cart.ID
	s.count = cart.ItemCount()
	return nil
}

// AddItem adds a product to the held cart. It fails fast when no cart
// identifier is held rather than issuing a malformed request. The
// displayed count is replaced with the sum of quantities from the
// server's returned cart state.
func (s *CartSession) AddItem(ctx context.Context, productID string, quantity int) error {
	if s.cartID == "" {
		return &apperrors.ErrNoCart{}
	}
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.client.AddCartItem(ctx, s.cartID, productID, quantity)
	if err != nil {
		s.logger.Error("Failed to add item to cart",
			zap.String("cart_id", s.cartID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	s.count = cart.ItemCount()
	return nil
}

// CartID returns the held cart identifier, empty before EnsureCart
func (s *CartSession) CartID() string {
	return s.cartID
}

// Count returns the last server-derived item count
func (s *CartSession) Count() int {
	return s.count
}
