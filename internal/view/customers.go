package view

import (
	"context"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/domain"
)

// CustomerAPI is the slice of the REST client the customers view needs
type CustomerAPI interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomersView is a read-only customer list with client-side search
// over id, name and email
type CustomersView struct {
	client CustomerAPI
	logger *zap.Logger

	search    string
	customers []domain.Customer
	loaded    bool
}

// NewCustomersView creates a customers view controller
func NewCustomersView(client CustomerAPI, logger *zap.Logger) *CustomersView {
	return &CustomersView{
		client: client,
		logger: logger,
	}
}

// Refresh re-fetches the customer collection
func (v *CustomersView) Refresh(ctx context.Context) error {
	customers, err := v.client.ListCustomers(ctx)
	if err != nil {
		v.logger.Error("Failed to fetch customers", zap.Error(err))
		return err
	}
	v.customers = customers
	v.loaded = true
	return nil
}

// SetSearch changes the client-side search term
func (v *CustomersView) SetSearch(term string) {
	v.search = term
}

// Customers returns the last fetch narrowed by the search term
func (v *CustomersView) Customers() []domain.Customer {
	matched := make([]domain.Customer, 0, len(v.customers))
	for _, customer := range v.customers {
		if matchAny(v.search, customer.ID, customer.FullName(), customer.Email) {
			matched = append(matched, customer)
		}
	}
	return matched
}

// Empty reports whether the view has loaded and holds no matching
// customers
func (v *CustomersView) Empty() bool {
	return v.loaded && len(v.Customers()) == 0
}
