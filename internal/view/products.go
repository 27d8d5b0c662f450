package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/api"
	"github.com/elyvra/storefront/internal/domain"
)

// ProductAPI is the slice of the REST client the products view needs
type ProductAPI interface {
	ListProducts(ctx context.Context, filter api.ProductFilter) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductsView lists catalog products with a server-side category filter
// and a client-side search over SKU and localized names
type ProductsView struct {
	client ProductAPI
	logger *zap.Logger

	filter   api.ProductFilter
	search   string
	products []domain.Product
	loaded   bool
}

// NewProductsView creates a products view controller
func NewProductsView(client ProductAPI, logger *zap.Logger) *ProductsView {
	return &ProductsView{
		client: client,
		logger: logger,
	}
}

// Refresh re-fetches the catalog with the current filter
func (v *ProductsView) Refresh(ctx context.Context) error {
	products, err := v.client.ListProducts(ctx, v.filter)
	if err != nil {
		v.logger.Error("Failed to fetch products", zap.Error(err))
		return err
	}
	v.products = products
	v.loaded = true
	return nil
}

// SetCategoryFilter changes the server-side category filter and
// re-fetches. An empty category lists the whole catalog.
func (v *ProductsView) SetCategoryFilter(ctx context.Context, category domain.ProductCategory) error {
	v.filter.Category = category
	return v.Refresh(ctx)
}

// SetSearch changes the client-side search term
func (v *ProductsView) SetSearch(term string) {
	v.search = term
}

// Products returns the last fetch narrowed by the search term, matched
// against SKU and every localized product name
func (v *ProductsView) Products() []domain.Product {
	matched := make([]domain.Product, 0, len(v.products))
	for _, product := range v.products {
		fields := []string{product.ID, product.SKU}
		for _, t := range product.Translations {
			fields = append(fields, t.Name)
		}
		if matchAny(v.search, fields...) {
			matched = append(matched, product)
		}
	}
	return matched
}

// Empty reports whether the view has loaded and holds no matching
// products
func (v *ProductsView) Empty() bool {
	return v.loaded && len(v.Products()) == 0
}

// Delete removes a product after an explicit confirmation. When the
// confirmation is declined no network call is issued. On confirm the
// delete goes through the backend and the list is re-fetched; the view
// never removes the row optimistically.
func (v *ProductsView) Delete(ctx context.Context, id string, confirm ConfirmFunc) (DeleteResult, error) {
	if !confirm("Are you sure you want to delete this product?") {
		return DeleteResult{Confirmed: false}, nil
	}

	if err := v.client.DeleteProduct(ctx, id); err != nil {
		v.logger.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return DeleteResult{Confirmed: true}, err
	}

	if err := v.Refresh(ctx); err != nil {
		return DeleteResult{Confirmed: true, Deleted: true}, err
	}
	return DeleteResult{Confirmed: true, Deleted: true}, nil
}
