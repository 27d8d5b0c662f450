package domain

import "time"

// ProductTranslation holds the localized bundle for one language
type ProductTranslation struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ShortDescription  string   `json:"short_description"`
	Benefits          []string `json:"benefits"`
	Ingredients       []string `json:"ingredients"`
	UsageInstructions string   `json:"usage_instructions"`
	ActiveIngredients *string  `json:"active_ingredients,omitempty"`
	RecommendedDosage *string  `json:"recommended_dosage,omitempty"`
	UsageWarnings     *string  `json:"usage_warnings,omitempty"`
}

// Product represents a catalog product as exchanged with the backend
type Product struct {
	ID                string                          `json:"id"`
	SKU               string                          `json:"sku"`
	Category          ProductCategory                 `json:"category"`
	Price             float64                         `json:"price"`
	DiscountedPrice   *float64                        `json:"discounted_price,omitempty"`
	ImageURL          string                          `json:"image_url"`
	GalleryImages     []string                        `json:"gallery_images"`
	InStock           bool                            `json:"in_stock"`
	StockQuantity     int                             `json:"stock_quantity"`
	Translations      map[Language]ProductTranslation `json:"translations"`
	Tags              []string                        `json:"tags"`
	Featured          bool                            `json:"featured"`
	Certifications    []string                        `json:"certifications"`
	ExpiryDate        *time.Time                      `json:"expiry_date,omitempty"`
	ManufacturingDate *time.Time                      `json:"manufacturing_date,omitempty"`
	BatchNumber       *string                         `json:"batch_number,omitempty"`
	StorageConditions *string                         `json:"storage_conditions,omitempty"`
	CreatedAt         time.Time                       `json:"created_at"`
	UpdatedAt         time.Time                       `json:"updated_at"`
}

// Translation returns the bundle for lang, falling back to English when
// the product has no bundle in that language
func (p *Product) Translation(lang Language) ProductTranslation {
	if t, ok := p.Translations[lang]; ok {
		return t
	}
	return p.Translations[LanguageEN]
}

// DisplayPrice returns the discounted price when one is set below the
// regular price, otherwise the regular price
func (p *Product) DisplayPrice() float64 {
	if p.DiscountedPrice != nil && *p.DiscountedPrice < p.Price {
		return *p.DiscountedPrice
	}
	return p.Price
}

// ProductCreate is the wire payload for creating or updating a product
type ProductCreate struct {
	SKU               string                          `json:"sku"`
	Category          ProductCategory                 `json:"category"`
	Price             float64                         `json:"price"`
	DiscountedPrice   *float64                        `json:"discounted_price,omitempty"`
	ImageURL          string                          `json:"image_url"`
	GalleryImages     []string                        `json:"gallery_images"`
	InStock           bool                            `json:"in_stock"`
	StockQuantity     int                             `json:"stock_quantity"`
	Translations      map[Language]ProductTranslation `json:"translations"`
	Tags              []string                        `json:"tags"`
	Featured          bool                            `json:"featured"`
	Certifications    []string                        `json:"certifications"`
	ExpiryDate        *time.Time                      `json:"expiry_date,omitempty"`
	ManufacturingDate *time.Time                      `json:"manufacturing_date,omitempty"`
	BatchNumber       *string                         `json:"batch_number,omitempty"`
	StorageConditions *string                         `json:"storage_conditions,omitempty"`
}

// Address represents a shipping or billing address
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Customer represents a storefront customer
type Customer struct {
	ID                string          `json:"id"`
	Email             string          `json:"email"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Phone             *string         `json:"phone,omitempty"`
	PreferredLanguage Language        `json:"preferred_language"`
	BillingAddress    *Address        `json:"billing_address,omitempty"`
	ShippingAddress   *Address        `json:"shipping_address,omitempty"`
	Segment           CustomerSegment `json:"segment"`
	TotalOrders       int             `json:"total_orders"`
	TotalSpent        float64         `json:"total_spent"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CartItem is one line in a cart
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart represents a server-held cart session
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ItemCount sums the quantities of every line in the cart. The displayed
// cart count is always derived from a server-returned cart, never
// incremented locally.
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// OrderItem is one line in an order
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// Order represents a customer order
type Order struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	Items           []OrderItem    `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	TaxAmount       float64        `json:"tax_amount"`
	ShippingCost    float64        `json:"shipping_cost"`
	DiscountAmount  float64        `json:"discount_amount"`
	TotalAmount     float64        `json:"total_amount"`
	Status          OrderStatus    `json:"status"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty"`
	ShippingAddress Address        `json:"shipping_address"`
	BillingAddress  Address        `json:"billing_address"`
	Notes           *string        `json:"notes,omitempty"`
	TrackingNumber  *string        `json:"tracking_number,omitempty"`
	CouponCode      *string        `json:"coupon_code,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OrderUpdate is the wire payload for mutating an order
type OrderUpdate struct {
	Status         *OrderStatus `json:"status,omitempty"`
	TrackingNumber *string      `json:"tracking_number,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
}

// BlogPost represents a multilingual content entry
type BlogPost struct {
	ID            string               `json:"id"`
	Title         map[Language]string  `json:"title"`
	Content       map[Language]string  `json:"content"`
	Excerpt       map[Language]string  `json:"excerpt"`
	FeaturedImage *string              `json:"featured_image,omitempty"`
	Author        string               `json:"author"`
	Published     bool                 `json:"published"`
	Featured      bool                 `json:"featured"`
	Tags          []string             `json:"tags"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// BlogPostCreate is the wire payload for creating or updating a post
type BlogPostCreate struct {
	Title         map[Language]string `json:"title"`
	Content       map[Language]string `json:"content"`
	Excerpt       map[Language]string `json:"excerpt"`
	FeaturedImage *string             `json:"featured_image,omitempty"`
	Author        string              `json:"author"`
	Published     bool                `json:"published"`
	Featured      bool                `json:"featured"`
	Tags          []string            `json:"tags"`
}

// Coupon represents a promotion code
type Coupon struct {
	ID                 string       `json:"id"`
	Code               string       `json:"code"`
	Description        string       `json:"description"`
	DiscountType       DiscountType `json:"discount_type"`
	DiscountValue      float64      `json:"discount_value"`
	MinimumOrderAmount *float64     `json:"minimum_order_amount,omitempty"`
	MaxUsageCount      *int         `json:"max_usage_count,omitempty"`
	CurrentUsageCount  int          `json:"current_usage_count"`
	ValidFrom          time.Time    `json:"valid_from"`
	ValidUntil         time.Time    `json:"valid_until"`
	IsActive           bool         `json:"is_active"`
	CreatedAt          time.Time    `json:"created_at"`
}

// CouponCreate is the wire payload for creating a coupon
type CouponCreate struct {
	Code               string       `json:"code"`
	Description        string       `json:"description"`
	DiscountType       DiscountType `json:"discount_type"`
	DiscountValue      float64      `json:"discount_value"`
	MinimumOrderAmount *float64     `json:"minimum_order_amount,omitempty"`
	MaxUsageCount      *int         `json:"max_usage_count,omitempty"`
	ValidFrom          time.Time    `json:"valid_from"`
	ValidUntil         time.Time    `json:"valid_until"`
	IsActive           bool         `json:"is_active"`
}

// Admin is the logged-in admin profile as returned by the backend. It is
// persisted verbatim by the session gate; presence alone gates access.
type Admin struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminStats is the aggregate dashboard payload
type AdminStats struct {
	TotalProducts      int                      `json:"total_products"`
	TotalCarts         int                      `json:"total_carts"`
	ActiveCarts        int                      `json:"active_carts"`
	TotalOrders        int                      `json:"total_orders"`
	TotalCustomers     int                      `json:"total_customers"`
	TotalRevenue       float64                  `json:"total_revenue"`
	ProductsByCategory map[string]int           `json:"products_by_category"`
	OrdersByStatus     map[string]int           `json:"orders_by_status"`
	RecentActivity     []map[string]interface{} `json:"recent_activity"`
	SalesChartData     []map[string]interface{} `json:"sales_chart_data"`
	TopSellingProducts []map[string]interface{} `json:"top_selling_products"`
	LowStockAlerts     []map[string]interface{} `json:"low_stock_alerts"`
	AbandonedCarts     int                      `json:"abandoned_carts"`
}
