package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elyvra/storefront/internal/domain"
)

func (s *Server) handleCreateProduct(c *gin.Context) {
	var payload domain.ProductCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.SKU == payload.SKU {
			detail(c, http.StatusBadRequest, "SKU already exists")
			return
		}
	}

	now := time.Now().UTC()
	product := productFromPayload(payload)
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now
	s.products[product.ID] = product

	c.JSON(http.StatusOK, product)
}

func productFromPayload(payload domain.ProductCreate) *domain.Product {
	return &domain.Product{
		SKU:               payload.SKU,
		Category:          payload.Category,
		Price:             payload.Price,
		DiscountedPrice:   payload.DiscountedPrice,
		ImageURL:          payload.ImageURL,
		GalleryImages:     payload.GalleryImages,
		InStock:           payload.InStock,
		StockQuantity:     payload.StockQuantity,
		Translations:      payload.Translations,
		Tags:              payload.Tags,
		Featured:          payload.Featured,
		Certifications:    payload.Certifications,
		ExpiryDate:        payload.ExpiryDate,
		ManufacturingDate: payload.ManufacturingDate,
		BatchNumber:       payload.BatchNumber,
		StorageConditions: payload.StorageConditions,
	}
}

func (s *Server) handleListProducts(c *gin.Context) {
	category := c.Query("category")
	featured := c.Query("featured")
	search := strings.ToLower(c.Query("search"))
	inStockOnly := c.Query("in_stock_only") == "true"

	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && string(p.Category) != category {
			continue
		}
		if featured == "true" && !p.Featured {
			continue
		}
		if inStockOnly && !p.InStock {
			continue
		}
		if search != "" && !productMatches(p, search) {
			continue
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, products)
}

func productMatches(p *domain.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.SKU), search) {
		return true
	}
	for _, t := range p.Translations {
		if strings.Contains(strings.ToLower(t.Name), search) {
			return true
		}
	}
	return false
}

func (s *Server) handleGetProduct(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	var payload domain.ProductCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	existing, ok := s.products[id]
	if !ok {
		detail(c, http.StatusNotFound, "Product not found")
		return
	}

	for _, other := range s.products {
		if other.ID != id && other.SKU == payload.SKU {
			detail(c, http.StatusBadRequest, "SKU already exists")
			return
		}
	}

	product := productFromPayload(payload)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	s.products[id] = product

	c.JSON(http.StatusOK, product)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.products[id]; !ok {
		detail(c, http.StatusNotFound, "Product not found")
		return
	}
	delete(s.products, id)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (s *Server) handleCreateCart(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	cart := &domain.Cart{
		ID:        uuid.New().String(),
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[cart.ID] = cart

	c.JSON(http.StatusOK, cart)
}

func (s *Server) handleGetCart(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Cart not found")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) handleAddCartItem(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Cart not found")
		return
	}
	if _, ok := s.products[item.ProductID]; !ok {
		detail(c, http.StatusNotFound, "Product not found")
		return
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}
	cart.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cart})
}
