// Package stub is an in-memory implementation of the storefront REST
// backend. It backs local development and the package tests; it is not
// the production backend and keeps no durable state.
package stub

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

type stubAdmin struct {
	profile      domain.Admin
	passwordHash string
}

// Server holds the in-memory backend state
type Server struct {
	mu     sync.Mutex
	logger *zap.Logger

	products  map[string]*domain.Product
	carts     map[string]*domain.Cart
	orders    map[string]*domain.Order
	customers map[string]*domain.Customer
	coupons   map[string]*domain.Coupon
	posts     map[string]*domain.BlogPost
	admins    map[string]*stubAdmin
}

// NewServer creates an empty in-memory backend
func NewServer(logger *zap.Logger) *Server {
	return &Server{
		logger:    logger,
		products:  make(map[string]*domain.Product),
		carts:     make(map[string]*domain.Cart),
		orders:    make(map[string]*domain.Order),
		customers: make(map[string]*domain.Customer),
		coupons:   make(map[string]*domain.Coupon),
		posts:     make(map[string]*domain.BlogPost),
		admins:    make(map[string]*stubAdmin),
	}
}

// Router creates and configures the Gin router
func (s *Server) Router(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(s.logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/products", s.handleCreateProduct)
		api.GET("/products", s.handleListProducts)
		api.GET("/products/:id", s.handleGetProduct)
		api.POST("/init-products", s.handleInitProducts)

		api.POST("/cart", s.handleCreateCart)
		api.GET("/cart/:id", s.handleGetCart)
		api.POST("/cart/:id/items", s.handleAddCartItem)

		api.GET("/orders", s.handleListOrders)
		api.GET("/orders/:id", s.handleGetOrder)
		api.PUT("/orders/:id", s.handleUpdateOrder)

		api.GET("/customers", s.handleListCustomers)
		api.GET("/customers/:id", s.handleGetCustomer)

		api.GET("/coupons", s.handleListCoupons)
		api.POST("/coupons", s.handleCreateCoupon)

		api.GET("/blog", s.handleListBlogPosts)
		api.POST("/blog", s.handleCreateBlogPost)

		admin := api.Group("/admin")
		{
			admin.POST("/login", s.handleAdminLogin)
			admin.POST("/init-default-admin", s.handleInitDefaultAdmin)
			admin.GET("/stats", s.handleAdminStats)
			admin.PUT("/products/:id", s.handleUpdateProduct)
			admin.DELETE("/products/:id", s.handleDeleteProduct)
			admin.GET("/blog/:id", s.handleGetBlogPost)
			admin.PUT("/blog/:id", s.handleUpdateBlogPost)
			admin.DELETE("/blog/:id", s.handleDeleteBlogPost)
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

// detail writes a FastAPI-style error body
func detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}
