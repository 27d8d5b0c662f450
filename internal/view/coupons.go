package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

// CouponListAPI is the slice of the REST client the coupons view needs
type CouponListAPI interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
}

// CouponsView is a read-only promotions list with client-side search
// over code and description
type CouponsView struct {
	client CouponListAPI
	logger *zap.Logger

	activeOnly bool
	search     string
	coupons    []domain.Coupon
	loaded     bool
}

// NewCouponsView creates a coupons view controller
func NewCouponsView(client CouponListAPI, logger *zap.Logger) *CouponsView {
	return &CouponsView{
		client: client,
		logger: logger,
	}
}

// Refresh re-fetches the coupon collection
func (v *CouponsView) Refresh(ctx context.Context) error {
	coupons, err := v.client.ListCoupons(ctx)
	if err != nil {
		v.logger.Error("Failed to fetch coupons", zap.Error(err))
		return err
	}
	v.coupons = coupons
	v.loaded = true
	return nil
}

// SetActiveOnly toggles the client-side active filter
func (v *CouponsView) SetActiveOnly(activeOnly bool) {
	v.activeOnly = activeOnly
}

// SetSearch changes the client-side search term
func (v *CouponsView) SetSearch(term string) {
	v.search = term
}

// Coupons returns the last fetch narrowed by the active filter and the
// search term
func (v *CouponsView) Coupons() []domain.Coupon {
	matched := make([]domain.Coupon, 0, len(v.coupons))
	for _, coupon := range v.coupons {
		if v.activeOnly && !coupon.IsActive {
			continue
		}
		if matchAny(v.search, coupon.Code, coupon.Description) {
			matched = append(matched, coupon)
		}
	}
	return matched
}

// Empty reports whether the view has loaded and holds no matching
// coupons
func (v *CouponsView) Empty() bool {
	return v.loaded && len(v.Coupons()) == 0
}
