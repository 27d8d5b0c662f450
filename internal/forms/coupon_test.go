package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

func validCouponForm() CouponForm {
	form := NewCouponForm()
	form.Code = "summer25"
	form.DiscountValue = "25"
	form.ValidFrom = "2026-06-01"
	form.ValidUntil = "2026-09-01"
	return form
}

func TestCouponFormBuildUppercasesCode(t *testing.T) {
	payload, err := validCouponForm().Build()
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", payload.Code)
	assert.Equal(t, domain.DiscountPercentage, payload.DiscountType)
	assert.Equal(t, 25.0, payload.DiscountValue)
}

func TestCouponFormBuildRejectsPercentageOverHundred(t *testing.T) {
	form := validCouponForm()
	form.DiscountValue = "150"

	_, err := form.Build()
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "discount_value", verr.Field)

	// the same value is fine as a fixed amount
	form.DiscountType = domain.DiscountFixedAmount
	_, err = form.Build()
	assert.NoError(t, err)
}

func TestCouponFormBuildRejectsInvertedValidity(t *testing.T) {
	form := validCouponForm()
	form.ValidUntil = "2026-06-01"

	_, err := form.Build()
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "valid_until", verr.Field)
}

type fakeCouponAPI struct {
	created []domain.CouponCreate
}

func (f *fakeCouponAPI) CreateCoupon(ctx context.Context, payload domain.CouponCreate) (*domain.Coupon, error) {
	f.created = append(f.created, payload)
	return &domain.Coupon{ID: "coupon-1", Code: payload.Code}, nil
}

func TestSubmitCoupon(t *testing.T) {
	client := &fakeCouponAPI{}

	coupon, err := SubmitCoupon(context.Background(), client, validCouponForm())
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", coupon.Code)
	assert.Len(t, client.created, 1)

	_, err = SubmitCoupon(context.Background(), client, NewCouponForm())
	require.Error(t, err)
	assert.Len(t, client.created, 1)
}
