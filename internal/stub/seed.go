package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elyvra/storefront/internal/domain"
)

func strptr(s string) *string { return &s }

func (s *Server) handleInitProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Products already initialized"})
		return
	}

	now := time.Now().UTC()
	for _, sample := range sampleProducts() {
		product := sample
		product.ID = uuid.New().String()
		product.CreatedAt = now
		product.UpdatedAt = now
		s.products[product.ID] = &product
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sample products created"})
}

func sampleProducts() []domain.Product {
	discounted := 39.99
	return []domain.Product{
		{
			SKU:             "ELYVRA-PERF-001",
			Category:        domain.CategoryPerformance,
			Price:           49.99,
			DiscountedPrice: &discounted,
			ImageURL:        "https://images.unsplash.com/photo-1593095948071",
			GalleryImages:   []string{},
			InStock:         true,
			StockQuantity:   120,
			Featured:        true,
			Tags:            []string{"pre-workout", "energy"},
			Certifications:  []string{},
			BatchNumber:     strptr("BT2024001"),
			Translations: map[domain.Language]domain.ProductTranslation{
				domain.LanguageEN: {
					Name:              "Peak Performance Complex",
					Description:       "A pre-workout formula for sustained energy and focus.",
					ShortDescription:  "Pre-workout energy and focus",
					Benefits:          []string{"Increased Energy", "Better Focus"},
					Ingredients:       []string{"Creatine", "Beta-Alanine", "Caffeine"},
					UsageInstructions: "Mix one scoop with water 30 minutes before training.",
					RecommendedDosage: strptr("One scoop daily"),
				},
				domain.LanguageAR: {
					Name:              "مركب الأداء الأقصى",
					Description:       "تركيبة ما قبل التمرين لطاقة وتركيز مستدامين.",
					ShortDescription:  "طاقة وتركيز قبل التمرين",
					Benefits:          []string{"طاقة متزايدة", "تركيز أفضل"},
					Ingredients:       []string{"كرياتين", "بيتا ألانين", "كافيين"},
					UsageInstructions: "اخلط مكيالاً واحداً مع الماء قبل التمرين بثلاثين دقيقة.",
				},
				domain.LanguageFR: {
					Name:              "Complexe Performance Maximale",
					Description:       "Une formule pré-entraînement pour une énergie durable.",
					ShortDescription:  "Énergie et concentration pré-entraînement",
					Benefits:          []string{"Énergie Accrue", "Meilleure Concentration"},
					Ingredients:       []string{"Créatine", "Bêta-Alanine", "Caféine"},
					UsageInstructions: "Mélangez une dose avec de l'eau 30 minutes avant l'effort.",
				},
			},
		},
		{
			SKU:            "ELYVRA-VIT-001",
			Category:       domain.CategoryVitality,
			Price:          59.99,
			ImageURL:       "https://images.unsplash.com/photo-1556228720",
			GalleryImages:  []string{},
			InStock:        true,
			StockQuantity:  80,
			Tags:           []string{"vitality", "wellness"},
			Certifications: []string{},
			Translations: map[domain.Language]domain.ProductTranslation{
				domain.LanguageEN: {
					Name:              "Vitality Essentials",
					Description:       "Daily support for vitality and general wellness.",
					ShortDescription:  "Daily vitality support",
					Benefits:          []string{"Hormonal Balance", "Improved Stamina"},
					Ingredients:       []string{"Maca Root", "Zinc", "Ginseng"},
					UsageInstructions: "Take two capsules daily with meals.",
				},
				domain.LanguageAR: {
					Name:              "أساسيات الحيوية",
					Description:       "دعم يومي للحيوية والصحة العامة.",
					ShortDescription:  "دعم الحيوية اليومي",
					Benefits:          []string{"توازن هرموني", "قدرة تحمل محسنة"},
					Ingredients:       []string{"جذر الماكا", "زنك", "جينسنغ"},
					UsageInstructions: "تناول كبسولتين يومياً مع الوجبات.",
				},
				domain.LanguageFR: {
					Name:              "Essentiels de Vitalité",
					Description:       "Soutien quotidien pour la vitalité et le bien-être.",
					ShortDescription:  "Soutien quotidien de vitalité",
					Benefits:          []string{"Équilibre Hormonal", "Endurance Améliorée"},
					Ingredients:       []string{"Racine de Maca", "Zinc", "Ginseng"},
					UsageInstructions: "Prenez deux gélules par jour avec les repas.",
				},
			},
		},
		{
			SKU:               "ELYVRA-BEAU-001",
			Category:          domain.CategoryBeauty,
			Price:             44.99,
			ImageURL:          "https://images.unsplash.com/photo-1571781926291",
			GalleryImages:     []string{},
			InStock:           true,
			StockQuantity:     8,
			Tags:              []string{"collagen", "skin"},
			Certifications:    []string{},
			StorageConditions: strptr("Store in a cool, dry place away from direct sunlight"),
			Translations: map[domain.Language]domain.ProductTranslation{
				domain.LanguageEN: {
					Name:              "Radiance Collagen Blend",
					Description:       "Marine collagen with vitamin C for skin elasticity.",
					ShortDescription:  "Collagen for radiant skin",
					Benefits:          []string{"Skin Elasticity", "Stronger Nails"},
					Ingredients:       []string{"Marine Collagen", "Vitamin C", "Hyaluronic Acid"},
					UsageInstructions: "Stir one scoop into any cold drink once a day.",
					UsageWarnings:     strptr("Not suitable for people with fish allergies."),
				},
				domain.LanguageAR: {
					Name:              "مزيج كولاجين الإشراق",
					Description:       "كولاجين بحري مع فيتامين سي لمرونة البشرة.",
					ShortDescription:  "كولاجين لبشرة مشرقة",
					Benefits:          []string{"مرونة البشرة", "أظافر أقوى"},
					Ingredients:       []string{"كولاجين بحري", "فيتامين سي", "حمض الهيالورونيك"},
					UsageInstructions: "قلّب مكيالاً واحداً في أي مشروب بارد مرة يومياً.",
				},
				domain.LanguageFR: {
					Name:              "Mélange Collagène Éclat",
					Description:       "Collagène marin et vitamine C pour l'élasticité de la peau.",
					ShortDescription:  "Collagène pour une peau éclatante",
					Benefits:          []string{"Élasticité de la Peau", "Ongles Plus Forts"},
					Ingredients:       []string{"Collagène Marin", "Vitamine C", "Acide Hyaluronique"},
					UsageInstructions: "Mélangez une dose dans une boisson froide une fois par jour.",
				},
			},
		},
	}
}
