package models

import "github.com/shopspring/decimal"

// Catalog is declarative seed input describing whole demo store.
type Catalog struct {
	SalesChannel    string
	Region          RegionSeed
	Currencies      []StoreCurrency
	TaxCountries    []string
	StockLocation   StockLocationSeed
	ShippingProfile ShippingProfile
	FulfillmentSets []FulfillmentSetSeed
	APIKey          APIKeySeed
	Categories      []CategorySeed
	ProductTypes    []ProductTypeSeed
	Collections     []CollectionSeed
	Materials       []MaterialSeed
	Colors          []ColorSeed
	Products        []ProductSeed
}

// Asset is image to upload, read either from Path under images directory or fetched from URL.
type Asset struct {
	Filename string
	Path     string
	URL      string
	MimeType string
	Access   string
}

// RegionSeed is region to create.
type RegionSeed struct {
	Name             string
	CurrencyCode     string
	Countries        []string
	PaymentProviders []string
}

// StockLocationSeed is stock location to create and fulfillment provider to link it with.
type StockLocationSeed struct {
	Name                  string
	Address               Address
	FulfillmentProviderID string
}

// FulfillmentSetSeed is fulfillment set with single service zone and its shipping options.
type FulfillmentSetSeed struct {
	Name            string
	Type            FulfillmentType
	ServiceZone     ServiceZoneSeed
	ShippingOptions []ShippingOptionSeed
}

// ServiceZoneSeed is service zone to create.
type ServiceZoneSeed struct {
	Name      string
	Countries []string
}

// ShippingOptionSeed is shipping option to create.
type ShippingOptionSeed struct {
	Name       string
	PriceType  string
	ProviderID string
	Type       ShippingOptionType
	Prices     []ShippingPriceSeed
	Rules      []ShippingRule
}

// ShippingPriceSeed is shipping price keyed by CurrencyCode or by Region name, never both.
type ShippingPriceSeed struct {
	CurrencyCode string
	Region       string
	Amount       decimal.Decimal
}

// APIKeySeed is API key to create.
type APIKeySeed struct {
	Title string
	Type  string
}

// CategorySeed is product category to create.
type CategorySeed struct {
	Name     string
	IsActive bool
}

// ProductTypeSeed is product type to create.
type ProductTypeSeed struct {
	Value string
	Image *Asset
}

// CollectionSeed is collection to create.
type CollectionSeed struct {
	Title    string
	Handle   string
	Metadata CollectionMetadataSeed
}

// CollectionMetadataSeed is collection page content with images to upload.
type CollectionMetadataSeed struct {
	Description           string
	Image                 *Asset
	CollectionPageImage   *Asset
	CollectionPageHeading string
	CollectionPageContent string
	ProductPageHeading    string
	ProductPageImage      *Asset
	ProductPageWideImage  *Asset
	ProductPageCTAImage   *Asset
	ProductPageCTAHeading string
	ProductPageCTALink    string
}

// MaterialSeed is material to create.
type MaterialSeed struct {
	Name string
}

// ColorSeed is color to create, Material is name of its material.
type ColorSeed struct {
	Name     string
	HexCode  string
	Material string
}

// ProductSeed is product to create. Categories, Collection and Type are natural keys.
type ProductSeed struct {
	Title       string
	Handle      string
	Description string
	Status      ProductStatus
	Categories  []string
	Collection  string
	Type        string
	Images      []Asset
	Options     []ProductOption
	Variants    []VariantSeed
}

// VariantSeed is product variant to create.
type VariantSeed struct {
	Title           string
	SKU             string
	Options         map[string]string
	ManageInventory bool
	Prices          []Price
}

// Assets returns collection metadata images in fixed slot order, skipping empty slots.
func (m CollectionMetadataSeed) Assets() []*Asset {
	slots := []*Asset{
		m.Image,
		m.CollectionPageImage,
		m.ProductPageImage,
		m.ProductPageWideImage,
		m.ProductPageCTAImage,
	}

	assets := make([]*Asset, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			assets = append(assets, slot)
		}
	}

	return assets
}

// Assets returns all catalog images in upload order: product type images, collection images, product images.
func (c *Catalog) Assets() []Asset {
	var assets []Asset
	for _, pt := range c.ProductTypes {
		if pt.Image != nil {
			assets = append(assets, *pt.Image)
		}
	}
	for _, col := range c.Collections {
		for _, a := range col.Metadata.Assets() {
			assets = append(assets, *a)
		}
	}
	for _, p := range c.Products {
		assets = append(assets, p.Images...)
	}

	return assets
}
