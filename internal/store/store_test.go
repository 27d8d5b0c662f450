package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCartIDRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.CartID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SaveCartID(ctx, "cart-1"))
	id, err = s.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", id)

	// overwrite, then clear
	require.NoError(t, s.SaveCartID(ctx, "cart-2"))
	id, err = s.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart-2", id)

	require.NoError(t, s.ClearCartID(ctx))
	id, err = s.CartID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestAdminProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	profile, err := s.AdminProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	admin := &domain.Admin{
		ID:          "a1",
		Username:    "admin",
		Email:       "admin@elyvra.local",
		FullName:    "Default Admin",
		IsActive:    true,
		Permissions: []string{"all"},
	}
	require.NoError(t, s.SaveAdminProfile(ctx, admin))

	profile, err = s.AdminProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, admin.Username, profile.Username)
	assert.Equal(t, admin.Permissions, profile.Permissions)

	require.NoError(t, s.ClearAdminProfile(ctx))
	profile, err = s.AdminProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestAdminProfileDiscardsUnreadableValue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.set(ctx, keyAdminProfile, "not json"))

	profile, err := s.AdminProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestLanguageRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	lang, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEN, lang)

	require.NoError(t, s.SaveLanguage(ctx, domain.LanguageAR))
	lang, err = s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageAR, lang)

	// an unknown persisted value falls back to English
	require.NoError(t, s.set(ctx, keyLanguage, "xx"))
	lang, err = s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageEN, lang)
}

func TestStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.SaveCartID(ctx, "cart-1"))
	require.NoError(t, s.Close())

	s, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	id, err := s.CartID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cart-1", id)
}
