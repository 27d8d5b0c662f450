package forms

import (
	"context"
	"strings"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

// CouponForm is the draft of a promotion code being created. Coupons are
// immutable once issued, so the form has no update path.
type CouponForm struct {
	Code               string
	Description        string
	DiscountType       domain.DiscountType
	DiscountValue      string
	MinimumOrderAmount string
	MaxUsageCount      string
	ValidFrom          string
	ValidUntil         string
	IsActive           bool
}

// NewCouponForm returns an empty active percentage coupon draft
func NewCouponForm() CouponForm {
	return CouponForm{
		DiscountType: domain.DiscountPercentage,
		IsActive:     true,
	}
}

// Build serializes the draft into the wire payload
func (f CouponForm) Build() (domain.CouponCreate, error) {
	var payload domain.CouponCreate

	code := strings.ToUpper(strings.TrimSpace(f.Code))
	if code == "" {
		return payload, &errors.ErrValidation{Field: "code", Detail: "is required"}
	}
	if !f.DiscountType.IsValid() {
		return payload, &errors.ErrValidation{Field: "discount_type", Detail: "is not a known discount type"}
	}

	value, err := parseDecimal("discount_value", f.DiscountValue)
	if err != nil {
		return payload, err
	}
	if f.DiscountType == domain.DiscountPercentage && value > 100 {
		return payload, &errors.ErrValidation{Field: "discount_value", Detail: "percentage cannot exceed 100"}
	}

	minimum, err := parseOptionalDecimal("minimum_order_amount", f.MinimumOrderAmount)
	if err != nil {
		return payload, err
	}
	maxUsage, err := parseOptionalQuantity("max_usage_count", f.MaxUsageCount)
	if err != nil {
		return payload, err
	}
	validFrom, err := parseDate("valid_from", f.ValidFrom)
	if err != nil {
		return payload, err
	}
	validUntil, err := parseDate("valid_until", f.ValidUntil)
	if err != nil {
		return payload, err
	}
	if !validUntil.After(validFrom) {
		return payload, &errors.ErrValidation{Field: "valid_until", Detail: "must be after valid_from"}
	}

	payload = domain.CouponCreate{
		Code:               code,
		Description:        f.Description,
		DiscountType:       f.DiscountType,
		DiscountValue:      value,
		MinimumOrderAmount: minimum,
		MaxUsageCount:      maxUsage,
		ValidFrom:          validFrom,
		ValidUntil:         validUntil,
		IsActive:           f.IsActive,
	}
	return payload, nil
}

// CouponAPI is the slice of the REST client coupon submission needs
type CouponAPI interface {
	CreateCoupon(ctx context.Context, payload domain.CouponCreate) (*domain.Coupon, error)
}

// SubmitCoupon serializes the draft and registers the coupon. Duplicate
// codes come back as a server validation error.
func SubmitCoupon(ctx context.Context, client CouponAPI, form CouponForm) (*domain.Coupon, error) {
	payload, err := form.Build()
	if err != nil {
		return nil, err
	}
	return client.CreateCoupon(ctx, payload)
}
