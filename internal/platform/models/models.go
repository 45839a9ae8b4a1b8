package models

import "github.com/shopspring/decimal"

// FulfillmentType is fulfillment set type.
type FulfillmentType string

const (
	// FulfillmentTypeShipping is fulfillment set delivered by carrier.
	FulfillmentTypeShipping FulfillmentType = "shipping"
	// FulfillmentTypePickup is fulfillment set collected by customer in store.
	FulfillmentTypePickup FulfillmentType = "pickup"
)

// ProductStatus is product publication status.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPublished ProductStatus = "published"
)

// SalesChannel is sales channel model.
type SalesChannel struct {
	ID   string
	Name string
}

// Region is region model.
type Region struct {
	ID               string
	Name             string
	CurrencyCode     string
	Countries        []string
	PaymentProviders []string
}

// StoreCurrency is currency supported by store.
type StoreCurrency struct {
	CurrencyCode string
	IsDefault    bool
}

// Store is store singleton model.
type Store struct {
	ID                    string
	Name                  string
	SupportedCurrencies   []StoreCurrency
	DefaultSalesChannelID string
	DefaultRegionID       string
}

// StoreUpdate holds store fields to update.
type StoreUpdate struct {
	SupportedCurrencies   []StoreCurrency
	DefaultSalesChannelID string
	DefaultRegionID       string
}

// TaxRegion is tax region model.
type TaxRegion struct {
	ID          string
	CountryCode string
}

// Address is stock location address.
type Address struct {
	Address1    string
	City        string
	CountryCode string
}

// StockLocation is stock location model.
type StockLocation struct {
	ID      string
	Name    string
	Address Address
}

// ShippingProfile is shipping profile model.
type ShippingProfile struct {
	ID   string
	Name string
	Type string
}

// GeoZone is geographic zone of service zone.
type GeoZone struct {
	CountryCode string
	Type        string
}

// ServiceZone is set of geo zones to which shipping options apply.
type ServiceZone struct {
	ID       string
	Name     string
	GeoZones []GeoZone
}

// FulfillmentSet is named grouping of service zones.
type FulfillmentSet struct {
	ID           string
	Name         string
	Type         FulfillmentType
	ServiceZones []ServiceZone
}

// ShippingOptionType describes shipping option to customers.
type ShippingOptionType struct {
	Label       string
	Description string
	Code        string
}

// ShippingPrice is shipping option price keyed either by currency code or by region id.
type ShippingPrice struct {
	CurrencyCode string
	RegionID     string
	Amount       decimal.Decimal
}

// ShippingRule is shipping option eligibility rule.
type ShippingRule struct {
	Attribute string
	Operator  string
	Value     string
}

// ShippingOption is shipping option model.
type ShippingOption struct {
	ID                string
	Name              string
	PriceType         string
	ProviderID        string
	ServiceZoneID     string
	ShippingProfileID string
	Type              ShippingOptionType
	Prices            []ShippingPrice
	Rules             []ShippingRule
}

// APIKey is API key model.
type APIKey struct {
	ID    string
	Title string
	Type  string
	Token string
}

// ProductCategory is product category model.
type ProductCategory struct {
	ID       string
	Name     string
	IsActive bool
}

// File is reference to uploaded file.
type File struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// FileUpload is single file of upload batch.
type FileUpload struct {
	Access   string
	Filename string
	MimeType string
	Content  []byte
}

// ProductType is product type model.
type ProductType struct {
	ID    string
	Value string
	Image *File
}

// CollectionMetadata is collection page content.
type CollectionMetadata struct {
	Description           string `json:"description"`
	Image                 *File  `json:"image,omitempty"`
	CollectionPageImage   *File  `json:"collection_page_image,omitempty"`
	CollectionPageHeading string `json:"collection_page_heading,omitempty"`
	CollectionPageContent string `json:"collection_page_content,omitempty"`
	ProductPageHeading    string `json:"product_page_heading,omitempty"`
	ProductPageImage      *File  `json:"product_page_image,omitempty"`
	ProductPageWideImage  *File  `json:"product_page_wide_image,omitempty"`
	ProductPageCTAImage   *File  `json:"product_page_cta_image,omitempty"`
	ProductPageCTAHeading string `json:"product_page_cta_heading,omitempty"`
	ProductPageCTALink    string `json:"product_page_cta_link,omitempty"`
}

// Collection is product collection model.
type Collection struct {
	ID       string
	Title    string
	Handle   string
	Metadata CollectionMetadata
}

// Material is upholstery material model.
type Material struct {
	ID   string
	Name string
}

// Color is material color model.
type Color struct {
	ID         string
	Name       string
	HexCode    string
	MaterialID string
}

// ProductOption is product option with allowed values.
type ProductOption struct {
	Title  string
	Values []string
}

// Price is variant price in currency.
type Price struct {
	CurrencyCode string
	Amount       decimal.Decimal
}

// Variant is product variant model.
type Variant struct {
	ID              string
	Title           string
	SKU             string
	Options         map[string]string
	ManageInventory bool
	Prices          []Price
}

// Product is product model.
type Product struct {
	ID              string
	Title           string
	Handle          string
	Description     string
	Status          ProductStatus
	CategoryIDs     []string
	CollectionID    string
	TypeID          string
	Images          []File
	Options         []ProductOption
	Variants        []Variant
	SalesChannelIDs []string
}
