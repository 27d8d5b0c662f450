package forms

import (
	"context"
	"strconv"

	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

// ProductField names a top-level editable product field
type ProductField int

const (
	ProductSKU ProductField = iota
	ProductPrice
	ProductDiscountedPrice
	ProductImageURL
	ProductStockQuantity
	ProductTags
	ProductExpiryDate
	ProductManufacturingDate
	ProductBatchNumber
	ProductStorageConditions
)

// TranslationField names a per-language editable field
type TranslationField int

const (
	TranslationName TranslationField = iota
	TranslationDescription
	TranslationShortDescription
	TranslationBenefits
	TranslationIngredients
	TranslationUsageInstructions
	TranslationActiveIngredients
	TranslationRecommendedDosage
	TranslationUsageWarnings
)

// TranslationDraft is the editing representation of one language bundle.
// Benefits and Ingredients hold comma-joined strings while being edited.
type TranslationDraft struct {
	Name              string
	Description       string
	ShortDescription  string
	Benefits          string
	Ingredients       string
	UsageInstructions string
	ActiveIngredients string
	RecommendedDosage string
	UsageWarnings     string
}

// ProductForm is the draft of a product being created or edited. A
// non-empty ID marks an existing entity; submit then updates instead of
// creating. Numeric and date fields are held as display strings until
// Build parses them.
type ProductForm struct {
	ID                string
	SKU               string
	Category          domain.ProductCategory
	Price             string
	DiscountedPrice   string
	ImageURL          string
	GalleryImages     []string
	InStock           bool
	StockQuantity     string
	Featured          bool
	Tags              string
	Certifications    []string
	ExpiryDate        string
	ManufacturingDate string
	BatchNumber       string
	StorageConditions string
	Translations      map[domain.Language]TranslationDraft
}

// NewProductForm returns an empty draft with a bundle for every language
func NewProductForm() ProductForm {
	translations := make(map[domain.Language]TranslationDraft, len(domain.Languages()))
	for _, lang := range domain.Languages() {
		translations[lang] = TranslationDraft{}
	}
	return ProductForm{
		Category:     domain.CategoryPerformance,
		InStock:      true,
		Translations: translations,
	}
}

// ProductFormFromProduct seeds a draft field-by-field from an existing
// entity: numbers and dates become display strings, list-valued
// localized fields become comma-joined strings.
func ProductFormFromProduct(p *domain.Product) ProductForm {
	form := NewProductForm()
	form.ID = p.ID
	form.SKU = p.SKU
	form.Category = p.Category
	form.Price = formatDecimal(p.Price)
	form.DiscountedPrice = formatOptionalDecimal(p.DiscountedPrice)
	form.ImageURL = p.ImageURL
	form.GalleryImages = copyStrings(p.GalleryImages)
	form.InStock = p.InStock
	form.StockQuantity = strconv.Itoa(p.StockQuantity)
	form.Featured = p.Featured
	form.Tags = joinList(p.Tags)
	form.Certifications = copyStrings(p.Certifications)
	form.ExpiryDate = formatOptionalDate(p.ExpiryDate)
	form.ManufacturingDate = formatOptionalDate(p.ManufacturingDate)
	form.BatchNumber = deref(p.BatchNumber)
	form.StorageConditions = deref(p.StorageConditions)

	for _, lang := range domain.Languages() {
		t, ok := p.Translations[lang]
		if !ok {
			continue
		}
		form.Translations[lang] = TranslationDraft{
			Name:              t.Name,
			Description:       t.Description,
			ShortDescription:  t.ShortDescription,
			Benefits:          joinList(t.Benefits),
			Ingredients:       joinList(t.Ingredients),
			UsageInstructions: t.UsageInstructions,
			ActiveIngredients: deref(t.ActiveIngredients),
			RecommendedDosage: deref(t.RecommendedDosage),
			UsageWarnings:     deref(t.UsageWarnings),
		}
	}
	return form
}

// clone deep-copies the draft so setters never alias the original
func (f ProductForm) clone() ProductForm {
	out := f
	out.GalleryImages = copyStrings(f.GalleryImages)
	out.Certifications = copyStrings(f.Certifications)
	out.Translations = make(map[domain.Language]TranslationDraft, len(f.Translations))
	for lang, t := range f.Translations {
		out.Translations[lang] = t
	}
	return out
}

// WithField returns a new draft with exactly the named top-level leaf
// replaced; all other fields are unchanged
func (f ProductForm) WithField(field ProductField, value string) ProductForm {
	out := f.clone()
	switch field {
	case ProductSKU:
		out.SKU = value
	case ProductPrice:
		out.Price = value
	case ProductDiscountedPrice:
		out.DiscountedPrice = value
	case ProductImageURL:
		out.ImageURL = value
	case ProductStockQuantity:
		out.StockQuantity = value
	case ProductTags:
		out.Tags = value
	case ProductExpiryDate:
		out.ExpiryDate = value
	case ProductManufacturingDate:
		out.ManufacturingDate = value
	case ProductBatchNumber:
		out.BatchNumber = value
	case ProductStorageConditions:
		out.StorageConditions = value
	}
	return out
}

// WithTranslationField returns a new draft with exactly one per-language
// leaf replaced
func (f ProductForm) WithTranslationField(lang domain.Language, field TranslationField, value string) ProductForm {
	out := f.clone()
	t := out.Translations[lang]
	switch field {
	case TranslationName:
		t.Name = value
	case TranslationDescription:
		t.Description = value
	case TranslationShortDescription:
		t.ShortDescription = value
	case TranslationBenefits:
		t.Benefits = value
	case TranslationIngredients:
		t.Ingredients = value
	case TranslationUsageInstructions:
		t.UsageInstructions = value
	case TranslationActiveIngredients:
		t.ActiveIngredients = value
	case TranslationRecommendedDosage:
		t.RecommendedDosage = value
	case TranslationUsageWarnings:
		t.UsageWarnings = value
	}
	out.Translations[lang] = t
	return out
}

// WithCategory returns a new draft with the category replaced
func (f ProductForm) WithCategory(category domain.ProductCategory) ProductForm {
	out := f.clone()
	out.Category = category
	return out
}

// WithInStock returns a new draft with the stock flag replaced
func (f ProductForm) WithInStock(inStock bool) ProductForm {
	out := f.clone()
	out.InStock = inStock
	return out
}

// WithFeatured returns a new draft with the featured flag replaced
func (f ProductForm) WithFeatured(featured bool) ProductForm {
	out := f.clone()
	out.Featured = featured
	return out
}

// Build serializes the draft into the wire payload, validating every
// parsed field. The draft itself is left untouched so a failed submit
// can be corrected and retried.
func (f ProductForm) Build() (domain.ProductCreate, error) {
	var payload domain.ProductCreate

	if f.SKU == "" {
		return payload, &errors.ErrValidation{Field: "sku", Detail: "is required"}
	}
	if !f.Category.IsValid() {
		return payload, &errors.ErrValidation{Field: "category", Detail: "is not a known category"}
	}
	if f.ImageURL == "" {
		return payload, &errors.ErrValidation{Field: "image_url", Detail: "is required"}
	}
	if f.Translations[domain.LanguageEN].Name == "" {
		return payload, &errors.ErrValidation{Field: "translations.en.name", Detail: "is required"}
	}

	price, err := parseDecimal("price", f.Price)
	if err != nil {
		return payload, err
	}
	discounted, err := parseOptionalDecimal("discounted_price", f.DiscountedPrice)
	if err != nil {
		return payload, err
	}
	if discounted != nil && *discounted >= price {
		return payload, &errors.ErrValidation{Field: "discounted_price", Detail: "must be lower than price"}
	}
	stock, err := parseQuantity("stock_quantity", f.StockQuantity)
	if err != nil {
		return payload, err
	}
	expiry, err := parseOptionalDate("expiry_date", f.ExpiryDate)
	if err != nil {
		return payload, err
	}
	manufacturing, err := parseOptionalDate("manufacturing_date", f.ManufacturingDate)
	if err != nil {
		return payload, err
	}

	translations := make(map[domain.Language]domain.ProductTranslation, len(f.Translations))
	for lang, t := range f.Translations {
		translations[lang] = domain.ProductTranslation{
			Name:              t.Name,
			Description:       t.Description,
			ShortDescription:  t.ShortDescription,
			Benefits:          splitList(t.Benefits),
			Ingredients:       splitList(t.Ingredients),
			UsageInstructions: t.UsageInstructions,
			ActiveIngredients: optionalString(t.ActiveIngredients),
			RecommendedDosage: optionalString(t.RecommendedDosage),
			UsageWarnings:     optionalString(t.UsageWarnings),
		}
	}

	gallery := make([]string, 0, len(f.GalleryImages))
	for _, img := range f.GalleryImages {
		if img != "" {
			gallery = append(gallery, img)
		}
	}

	payload = domain.ProductCreate{
		SKU:               f.SKU,
		Category:          f.Category,
		Price:             price,
		DiscountedPrice:   discounted,
		ImageURL:          f.ImageURL,
		GalleryImages:     gallery,
		InStock:           f.InStock,
		StockQuantity:     stock,
		Translations:      translations,
		Tags:              splitList(f.Tags),
		Featured:          f.Featured,
		Certifications:    copyStrings(f.Certifications),
		ExpiryDate:        expiry,
		ManufacturingDate: manufacturing,
		BatchNumber:       optionalString(f.BatchNumber),
		StorageConditions: optionalString(f.StorageConditions),
	}
	return payload, nil
}

// ProductAPI is the slice of the REST client product submission needs
type ProductAPI interface {
	CreateProduct(ctx context.Context, payload domain.ProductCreate) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, payload domain.ProductCreate) (*domain.Product, error)
}

// SubmitResult reports a successful create or update. How it is surfaced
// to the user is the presentation layer's decision.
type SubmitResult struct {
	Created bool
	Product *domain.Product
}

// SubmitProduct serializes the draft and issues a create or an update
// depending on whether the draft carries an entity identifier. On any
// failure the caller still holds the draft and may retry.
func SubmitProduct(ctx context.Context, client ProductAPI, form ProductForm) (*SubmitResult, error) {
	payload, err := form.Build()
	if err != nil {
		return nil, err
	}

	if form.ID != "" {
		product, err := client.UpdateProduct(ctx, form.ID, payload)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{Created: false, Product: product}, nil
	}

	product, err := client.CreateProduct(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Created: true, Product: product}, nil
}
