package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elyvra/storefront/internal/domain"
)

func TestTFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Panier", T(domain.LanguageFR).Cart)
	assert.Equal(t, "السلة", T(domain.LanguageAR).Cart)
	assert.Equal(t, "Cart", T(domain.Language("xx")).Cart)
}

func TestBundleCoversEveryLanguage(t *testing.T) {
	for _, lang := range domain.Languages() {
		s := T(lang)
		assert.NotEmpty(t, s.Brand, lang)
		assert.NotEmpty(t, s.GenericError, lang)
		assert.Len(t, s.Categories, 3, lang)
		assert.Len(t, s.OrderStatuses, len(domain.OrderStatuses()), lang)
	}
}

func TestMatchResolvesRegionalVariants(t *testing.T) {
	assert.Equal(t, domain.LanguageFR, Match("fr-CA"))
	assert.Equal(t, domain.LanguageAR, Match("ar_EG"))
	assert.Equal(t, domain.LanguageEN, Match("en-US"))
	assert.Equal(t, domain.LanguageEN, Match("de"))
	assert.Equal(t, domain.LanguageEN, Match("not a locale"))
}
