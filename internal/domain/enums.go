package domain

// Language is the closed set of storefront languages. Translations are
// keyed by this type, never by raw strings.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
	LanguageFR Language = "fr"
)

// Languages lists every supported language in display order
func Languages() []Language {
	return []Language{LanguageEN, LanguageAR, LanguageFR}
}

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageAR, LanguageFR:
		return true
	default:
		return false
	}
}

// RTL reports whether the language is written right-to-left
func (l Language) RTL() bool {
	return l == LanguageAR
}

// ProductCategory represents a catalog category
type ProductCategory string

const (
	CategoryPerformance ProductCategory = "performance"
	CategoryVitality    ProductCategory = "vitality"
	CategoryBeauty      ProductCategory = "beauty"
)

// IsValid checks if the category is valid
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryPerformance, CategoryVitality, CategoryBeauty:
		return true
	default:
		return false
	}
}

// OrderStatus represents the status of a customer order
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingPayment,
		OrderStatusProcessing,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition follows the order
// lifecycle. The backend itself accepts any transition; callers that need
// that permissiveness bypass the guard explicitly.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPendingPayment:
		return newStatus == OrderStatusProcessing ||
			newStatus == OrderStatusCancelled
	case OrderStatusProcessing:
		return newStatus == OrderStatusConfirmed ||
			newStatus == OrderStatusCancelled
	case OrderStatusConfirmed:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered:
		return newStatus == OrderStatusRefunded
	case OrderStatusCancelled, OrderStatusRefunded:
		return false // Terminal states
	default:
		return false
	}
}

// OrderStatuses lists every known order status
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPendingPayment,
		OrderStatusProcessing,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded,
	}
}

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
)

// CustomerSegment is a coarse display-only customer classification
type CustomerSegment string

const (
	SegmentNew     CustomerSegment = "new"
	SegmentRegular CustomerSegment = "regular"
	SegmentVIP     CustomerSegment = "vip"
)

// DiscountType represents how a coupon discounts an order
type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixedAmount  DiscountType = "fixed_amount"
	DiscountFreeShipping DiscountType = "free_shipping"
)

// IsValid checks if the discount type is valid
func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountPercentage, DiscountFixedAmount, DiscountFreeShipping:
		return true
	default:
		return false
	}
}
