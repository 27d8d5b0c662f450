package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

// AdminAPI is the slice of the REST client the admin gate needs
type AdminAPI interface {
	Login(ctx context.Context, username, password string) (*domain.Admin, error)
}

// AdminStore persists the admin profile between runs
type AdminStore interface {
	AdminProfile(ctx context.Context) (*domain.Admin, error)
	SaveAdminProfile(ctx context.Context, admin *domain.Admin) error
	ClearAdminProfile(ctx context.Context) error
}

// AdminGate gates the management views on the presence of a persisted
// admin profile. The profile is stored verbatim with no token, expiry or
// re-validation; this weak trust model mirrors the backend's contract
// and must not be mistaken for real session security.
type AdminGate struct {
	client AdminAPI
	store  AdminStore
	logger *zap.Logger

	admin *domain.Admin
}

// NewAdminGate creates an admin session gate
func NewAdminGate(client AdminAPI, store AdminStore, logger *zap.Logger) *AdminGate {
	return &AdminGate{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Load reads the persisted profile, if any. Call once on startup.
func (g *AdminGate) Load(ctx context.Context) error {
	admin, err := g.store.AdminProfile(ctx)
	if err != nil {
		return err
	}
	g.admin = admin
	return nil
}

// LoggedIn reports whether a profile is held. No server round-trip.
func (g *AdminGate) LoggedIn() bool {
	return g.admin != nil
}

// Current returns the held profile, nil when logged out
func (g *AdminGate) Current() *domain.Admin {
	return g.admin
}

// Login submits credentials and persists the returned profile verbatim
func (g *AdminGate) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := g.client.Login(ctx, username, password)
	if err != nil {
		g.logger.Warn("Admin login failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	if err := g.store.SaveAdminProfile(ctx, admin); err != nil {
		return nil, err
	}
	g.admin = admin

	g.logger.Info("Admin logged in", zap.String("username", admin.Username))
	return admin, nil
}

// Logout clears the persisted profile; the gate reverts to logged out
func (g *AdminGate) Logout(ctx context.Context) error {
	if err := g.store.ClearAdminProfile(ctx); err != nil {
		return err
	}
	g.admin = nil
	return nil
}
