package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elyvra/storefront/internal/domain"
)

func (s *Server) handleListOrders(c *gin.Context) {
	status := c.Query("status")

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]*domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if status != "" && string(order.Status) != status {
			continue
		}
		orders = append(orders, order)
	}

	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) handleUpdateOrder(c *gin.Context) {
	var update domain.OrderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Order not found")
		return
	}

	// The backend accepts any status value in the enum, in any order;
	// transition discipline lives client-side.
	if update.Status != nil {
		if !update.Status.IsValid() {
			detail(c, http.StatusUnprocessableEntity, "Unknown order status")
			return
		}
		order.Status = *update.Status
	}
	if update.TrackingNumber != nil {
		order.TrackingNumber = update.TrackingNumber
	}
	if update.Notes != nil {
		order.Notes = update.Notes
	}
	order.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, order)
}

func (s *Server) handleListCustomers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]*domain.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, customer)
	}

	c.JSON(http.StatusOK, customers)
}

func (s *Server) handleGetCustomer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) handleListCoupons(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coupons := make([]*domain.Coupon, 0, len(s.coupons))
	for _, coupon := range s.coupons {
		coupons = append(coupons, coupon)
	}

	c.JSON(http.StatusOK, coupons)
}

func (s *Server) handleCreateCoupon(c *gin.Context) {
	var payload domain.CouponCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.ToUpper(payload.Code)
	for _, existing := range s.coupons {
		if existing.Code == code {
			detail(c, http.StatusBadRequest, "Coupon code already exists")
			return
		}
	}

	coupon := &domain.Coupon{
		ID:                 uuid.New().String(),
		Code:               code,
		Description:        payload.Description,
		DiscountType:       payload.DiscountType,
		DiscountValue:      payload.DiscountValue,
		MinimumOrderAmount: payload.MinimumOrderAmount,
		MaxUsageCount:      payload.MaxUsageCount,
		ValidFrom:          payload.ValidFrom,
		ValidUntil:         payload.ValidUntil,
		IsActive:           payload.IsActive,
		CreatedAt:          time.Now().UTC(),
	}
	s.coupons[coupon.ID] = coupon

	c.JSON(http.StatusOK, coupon)
}

// SeedOrder inserts an order directly into the stub state. Test helper;
// the storefront client itself never creates orders.
func (s *Server) SeedOrder(order domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	order.UpdatedAt = order.CreatedAt
	s.orders[order.ID] = &order
	return order
}

// SeedCustomer inserts a customer directly into the stub state
func (s *Server) SeedCustomer(customer domain.Customer) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	customer.UpdatedAt = customer.CreatedAt
	s.customers[customer.ID] = &customer
	return customer
}
