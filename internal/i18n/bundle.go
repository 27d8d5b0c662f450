// Package i18n holds the static UI translation bundle. It is a pure
// lookup table: no formatting logic, no runtime loading.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/elyvra/storefront/internal/domain"
)

// Strings is the set of UI strings for one language
type Strings struct {
	Brand        string
	Tagline      string
	Shop         string
	Blog         string
	Cart         string
	Search       string
	AllProducts  string
	Featured     string
	AddToCart    string
	OutOfStock   string
	NoItems      string
	Loading      string
	GenericError string
	Currency     string

	Categories    map[domain.ProductCategory]string
	OrderStatuses map[domain.OrderStatus]string
}

var bundle = map[domain.Language]Strings{
	domain.LanguageEN: {
		Brand:        "Elyvra",
		Tagline:      "Unlock Your Full Potential",
		Shop:         "Shop",
		Blog:         "The Source",
		Cart:         "Cart",
		Search:       "Search products...",
		AllProducts:  "All Products",
		Featured:     "Featured Products",
		AddToCart:    "Add to Cart",
		OutOfStock:   "Out of Stock",
		NoItems:      "No items found",
		Loading:      "Loading...",
		GenericError: "Something went wrong. Please try again.",
		Currency:     "$",
		Categories: map[domain.ProductCategory]string{
			domain.CategoryPerformance: "Physical Performance",
			domain.CategoryVitality:    "Sexual Vitality",
			domain.CategoryBeauty:      "Functional Beauty",
		},
		OrderStatuses: map[domain.OrderStatus]string{
			domain.OrderStatusPendingPayment: "Pending Payment",
			domain.OrderStatusProcessing:     "Processing",
			domain.OrderStatusConfirmed:      "Confirmed",
			domain.OrderStatusShipped:        "Shipped",
			domain.OrderStatusDelivered:      "Delivered",
			domain.OrderStatusCancelled:      "Cancelled",
			domain.OrderStatusRefunded:       "Refunded",
		},
	},
	domain.LanguageAR: {
		Brand:        "إليفرا",
		Tagline:      "اطلق إمكاناتك الكاملة",
		Shop:         "التسوق",
		Blog:         "المصدر",
		Cart:         "السلة",
		Search:       "البحث عن المنتجات...",
		AllProducts:  "جميع المنتجات",
		Featured:     "المنتجات المميزة",
		AddToCart:    "أضف للسلة",
		OutOfStock:   "نفد من المخزون",
		NoItems:      "لا توجد عناصر",
		Loading:      "جاري التحميل...",
		GenericError: "حدث خطأ ما. حاول مرة أخرى.",
		Currency:     "د.إ",
		Categories: map[domain.ProductCategory]string{
			domain.CategoryPerformance: "الأداء الجسدي",
			domain.CategoryVitality:    "الحيوية الجنسية",
			domain.CategoryBeauty:      "الجمال العملي",
		},
		OrderStatuses: map[domain.OrderStatus]string{
			domain.OrderStatusPendingPayment: "بانتظار الدفع",
			domain.OrderStatusProcessing:     "قيد المعالجة",
			domain.OrderStatusConfirmed:      "مؤكد",
			domain.OrderStatusShipped:        "تم الشحن",
			domain.OrderStatusDelivered:      "تم التسليم",
			domain.OrderStatusCancelled:      "ملغي",
			domain.OrderStatusRefunded:       "مُرجع",
		},
	},
	domain.LanguageFR: {
		Brand:        "Elyvra",
		Tagline:      "Libérez Votre Plein Potentiel",
		Shop:         "Boutique",
		Blog:         "La Source",
		Cart:         "Panier",
		Search:       "Rechercher des produits...",
		AllProducts:  "Tous les Produits",
		Featured:     "Produits Vedettes",
		AddToCart:    "Ajouter au Panier",
		OutOfStock:   "Épuisé",
		NoItems:      "Aucun élément trouvé",
		Loading:      "Chargement...",
		GenericError: "Une erreur est survenue. Veuillez réessayer.",
		Currency:     "€",
		Categories: map[domain.ProductCategory]string{
			domain.CategoryPerformance: "Performance Physique",
			domain.CategoryVitality:    "Vitalité Sexuelle",
			domain.CategoryBeauty:      "Beauté Fonctionnelle",
		},
		OrderStatuses: map[domain.OrderStatus]string{
			domain.OrderStatusPendingPayment: "Paiement en Attente",
			domain.OrderStatusProcessing:     "En Traitement",
			domain.OrderStatusConfirmed:      "Confirmée",
			domain.OrderStatusShipped:        "Expédiée",
			domain.OrderStatusDelivered:      "Livrée",
			domain.OrderStatusCancelled:      "Annulée",
			domain.OrderStatusRefunded:       "Remboursée",
		},
	},
}

// T returns the string table for lang, falling back to English for
// unsupported values
func T(lang domain.Language) Strings {
	if s, ok := bundle[lang]; ok {
		return s
	}
	return bundle[domain.LanguageEN]
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // en, also the fallback
	language.Arabic,  // ar
	language.French,  // fr
})

// Match resolves an arbitrary locale string ("fr-CA", "ar_EG", "en-US")
// onto the closed language set, defaulting to English
func Match(locale string) domain.Language {
	tag, err := language.Parse(locale)
	if err != nil {
		return domain.LanguageEN
	}
	_, index, _ := matcher.Match(tag)
	switch index {
	case 1:
		return domain.LanguageAR
	case 2:
		return domain.LanguageFR
	default:
		return domain.LanguageEN
	}
}
