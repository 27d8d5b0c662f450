package stub

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/elyvra/storefront/internal/domain"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleAdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[req.Username]
	if !ok {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.passwordHash), []byte(req.Password)); err != nil {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !admin.profile.IsActive {
		detail(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin.profile})
}

func (s *Server) handleInitDefaultAdmin(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.admins) > 0 {
		c.JSON(http.StatusOK, gin.H{"existing": true})
		return
	}

	password := uuid.New().String()[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash default admin password", zap.Error(err))
		detail(c, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	s.admins["admin"] = &stubAdmin{
		profile: domain.Admin{
			ID:          uuid.New().String(),
			Username:    "admin",
			Email:       "admin@elyvra.local",
			FullName:    "Default Admin",
			IsActive:    true,
			Permissions: []string{"all"},
			CreatedAt:   time.Now().UTC(),
		},
		passwordHash: string(hash),
	}

	c.JSON(http.StatusOK, gin.H{
		"existing": false,
		"username": "admin",
		"password": password,
	})
}

// RegisterAdmin creates an admin account with a known password. Test
// helper.
func (s *Server) RegisterAdmin(username, password string, active bool) (domain.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return domain.Admin{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile := domain.Admin{
		ID:          uuid.New().String(),
		Username:    username,
		Email:       username + "@elyvra.local",
		FullName:    username,
		IsActive:    active,
		Permissions: []string{"all"},
		CreatedAt:   time.Now().UTC(),
	}
	s.admins[username] = &stubAdmin{profile: profile, passwordHash: string(hash)}
	return profile, nil
}

func (s *Server) handleAdminStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.AdminStats{
		TotalProducts:      len(s.products),
		TotalCarts:         len(s.carts),
		TotalOrders:        len(s.orders),
		TotalCustomers:     len(s.customers),
		ProductsByCategory: make(map[string]int),
		OrdersByStatus:     make(map[string]int),
		RecentActivity:     []map[string]interface{}{},
		SalesChartData:     []map[string]interface{}{},
		TopSellingProducts: []map[string]interface{}{},
		LowStockAlerts:     []map[string]interface{}{},
	}

	for _, p := range s.products {
		stats.ProductsByCategory[string(p.Category)]++
		if p.InStock && p.StockQuantity < 10 {
			stats.LowStockAlerts = append(stats.LowStockAlerts, map[string]interface{}{
				"product_id":     p.ID,
				"sku":            p.SKU,
				"stock_quantity": p.StockQuantity,
			})
		}
	}

	sold := make(map[string]int)
	soldName := make(map[string]string)
	for _, o := range s.orders {
		stats.OrdersByStatus[string(o.Status)]++
		if o.Status != domain.OrderStatusCancelled && o.Status != domain.OrderStatusRefunded {
			stats.TotalRevenue += o.TotalAmount
		}
		for _, item := range o.Items {
			sold[item.ProductID] += item.Quantity
			soldName[item.ProductID] = item.ProductName
		}
	}

	for _, cart := range s.carts {
		if len(cart.Items) > 0 {
			stats.ActiveCarts++
			if time.Since(cart.UpdatedAt) > 24*time.Hour {
				stats.AbandonedCarts++
			}
		}
	}

	type productSales struct {
		id    string
		count int
	}
	ranked := make([]productSales, 0, len(sold))
	for id, count := range sold {
		ranked = append(ranked, productSales{id: id, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })
	for i, entry := range ranked {
		if i == 5 {
			break
		}
		stats.TopSellingProducts = append(stats.TopSellingProducts, map[string]interface{}{
			"product_id": entry.id,
			"name":       soldName[entry.id],
			"units_sold": entry.count,
		})
	}

	recent := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		recent = append(recent, o)
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	for i, o := range recent {
		if i == 10 {
			break
		}
		stats.RecentActivity = append(stats.RecentActivity, map[string]interface{}{
			"type":       "order",
			"order_id":   o.ID,
			"status":     string(o.Status),
			"total":      o.TotalAmount,
			"created_at": o.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, stats)
}
