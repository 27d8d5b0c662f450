package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductTranslationFallsBackToEnglish(t *testing.T) {
	p := Product{
		Translations: map[Language]ProductTranslation{
			LanguageEN: {Name: "Peak Performance"},
			LanguageFR: {Name: "Performance Maximale"},
		},
	}

	assert.Equal(t, "Performance Maximale", p.Translation(LanguageFR).Name)
	assert.Equal(t, "Peak Performance", p.Translation(LanguageAR).Name)
}

func TestDisplayPrice(t *testing.T) {
	lower := 39.99
	higher := 60.0

	p := Product{Price: 49.99}
	assert.Equal(t, 49.99, p.DisplayPrice())

	p.DiscountedPrice = &lower
	assert.Equal(t, 39.99, p.DisplayPrice())

	// a discount at or above the regular price is ignored
	p.DiscountedPrice = &higher
	assert.Equal(t, 49.99, p.DisplayPrice())
}

func TestCartItemCount(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0, cart.ItemCount())

	cart.Items = []CartItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 5},
	}
	assert.Equal(t, 7, cart.ItemCount())
}

func TestCustomerFullName(t *testing.T) {
	c := Customer{FirstName: "Nadia", LastName: "Haddad"}
	assert.Equal(t, "Nadia Haddad", c.FullName())

	assert.Equal(t, "Nadia", (&Customer{FirstName: "Nadia"}).FullName())
	assert.Equal(t, "Haddad", (&Customer{LastName: "Haddad"}).FullName())
}
