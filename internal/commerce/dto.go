package commerce

import (
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type idRef struct {
	ID string `json:"id"`
}

type linkRequest struct {
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

type currency struct {
	CurrencyCode string `json:"currency_code"`
	IsDefault    bool   `json:"is_default"`
}

type store struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	SupportedCurrencies   []currency `json:"supported_currencies"`
	DefaultSalesChannelID string     `json:"default_sales_channel_id"`
	DefaultRegionID       string     `json:"default_region_id"`
}

type storesResponse struct {
	Stores []store `json:"stores"`
}

type storeResponse struct {
	Store store `json:"store"`
}

type storeUpdateRequest struct {
	SupportedCurrencies   []currency `json:"supported_currencies,omitempty"`
	DefaultSalesChannelID string     `json:"default_sales_channel_id,omitempty"`
	DefaultRegionID       string     `json:"default_region_id,omitempty"`
}

type salesChannel struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type salesChannelsResponse struct {
	SalesChannels []salesChannel `json:"sales_channels"`
}

type salesChannelResponse struct {
	SalesChannel salesChannel `json:"sales_channel"`
}

type regionRequest struct {
	Name             string   `json:"name"`
	CurrencyCode     string   `json:"currency_code"`
	Countries        []string `json:"countries"`
	PaymentProviders []string `json:"payment_providers,omitempty"`
}

type regionResponse struct {
	Region idRef `json:"region"`
}

type taxRegionRequest struct {
	CountryCode string `json:"country_code"`
}

type taxRegionResponse struct {
	TaxRegion idRef `json:"tax_region"`
}

type address struct {
	Address1    string `json:"address_1"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

type stockLocationRequest struct {
	Name    string  `json:"name"`
	Address address `json:"address"`
}

type fulfillmentSet struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	ServiceZones []serviceZone `json:"service_zones"`
}

type stockLocation struct {
	ID              string           `json:"id"`
	FulfillmentSets []fulfillmentSet `json:"fulfillment_sets"`
}

type stockLocationResponse struct {
	StockLocation stockLocation `json:"stock_location"`
}

type shippingProfileRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type shippingProfileResponse struct {
	ShippingProfile idRef `json:"shipping_profile"`
}

type fulfillmentSetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type geoZone struct {
	CountryCode string `json:"country_code"`
	Type        string `json:"type"`
}

type serviceZone struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	GeoZones []geoZone `json:"geo_zones"`
}

type fulfillmentSetResponse struct {
	FulfillmentSet fulfillmentSet `json:"fulfillment_set"`
}

type shippingOptionType struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

type shippingPrice struct {
	CurrencyCode string  `json:"currency_code,omitempty"`
	RegionID     string  `json:"region_id,omitempty"`
	Amount       float64 `json:"amount"`
}

type shippingRule struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
}

type shippingOptionRequest struct {
	Name              string             `json:"name"`
	PriceType         string             `json:"price_type"`
	ProviderID        string             `json:"provider_id"`
	ServiceZoneID     string             `json:"service_zone_id"`
	ShippingProfileID string             `json:"shipping_profile_id"`
	Type              shippingOptionType `json:"type"`
	Prices            []shippingPrice    `json:"prices"`
	Rules             []shippingRule     `json:"rules"`
}

type shippingOptionResponse struct {
	ShippingOption idRef `json:"shipping_option"`
}

type apiKeyRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type apiKey struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type apiKeyResponse struct {
	APIKey apiKey `json:"api_key"`
}

type productCategoryRequest struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type productCategoryResponse struct {
	ProductCategory idRef `json:"product_category"`
}

type filesResponse struct {
	Files []models.File `json:"files"`
}

type productTypeMetadata struct {
	Image *models.File `json:"image,omitempty"`
}

type productTypeRequest struct {
	Value    string              `json:"value"`
	Metadata productTypeMetadata `json:"metadata"`
}

type productTypeResponse struct {
	ProductType idRef `json:"product_type"`
}

type collectionRequest struct {
	Title    string                    `json:"title"`
	Handle   string                    `json:"handle"`
	Metadata models.CollectionMetadata `json:"metadata"`
}

type collectionResponse struct {
	Collection idRef `json:"collection"`
}

type materialRequest struct {
	Name string `json:"name"`
}

type materialResponse struct {
	Material idRef `json:"material"`
}

type colorRequest struct {
	Name       string `json:"name"`
	HexCode    string `json:"hex_code"`
	MaterialID string `json:"material_id"`
}

type colorResponse struct {
	Color idRef `json:"color"`
}

type productOption struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

type price struct {
	CurrencyCode string  `json:"currency_code"`
	Amount       float64 `json:"amount"`
}

type variantRequest struct {
	Title           string            `json:"title"`
	SKU             string            `json:"sku"`
	Options         map[string]string `json:"options"`
	ManageInventory bool              `json:"manage_inventory"`
	Prices          []price           `json:"prices"`
}

type imageRef struct {
	URL string `json:"url"`
}

type productRequest struct {
	Title         string           `json:"title"`
	Handle        string           `json:"handle"`
	Description   string           `json:"description"`
	Status        string           `json:"status"`
	Categories    []idRef          `json:"categories"`
	CollectionID  string           `json:"collection_id,omitempty"`
	TypeID        string           `json:"type_id,omitempty"`
	Images        []imageRef       `json:"images"`
	Options       []productOption  `json:"options"`
	Variants      []variantRequest `json:"variants"`
	SalesChannels []idRef          `json:"sales_channels"`
}

type variant struct {
	ID  string `json:"id"`
	SKU string `json:"sku"`
}

type product struct {
	ID       string    `json:"id"`
	Variants []variant `json:"variants"`
}

type productResponse struct {
	Product product `json:"product"`
}

func toAppStore(s store) models.Store {
	return models.Store{
		ID:   s.ID,
		Name: s.Name,
		SupportedCurrencies: lo.Map(s.SupportedCurrencies, func(c currency, _ int) models.StoreCurrency {
			return models.StoreCurrency{CurrencyCode: c.CurrencyCode, IsDefault: c.IsDefault}
		}),
		DefaultSalesChannelID: s.DefaultSalesChannelID,
		DefaultRegionID:       s.DefaultRegionID,
	}
}

func toShippingOptionRequest(so models.ShippingOption) shippingOptionRequest {
	return shippingOptionRequest{
		Name:              so.Name,
		PriceType:         so.PriceType,
		ProviderID:        so.ProviderID,
		ServiceZoneID:     so.ServiceZoneID,
		ShippingProfileID: so.ShippingProfileID,
		Type: shippingOptionType{
			Label:       so.Type.Label,
			Description: so.Type.Description,
			Code:        so.Type.Code,
		},
		Prices: lo.Map(so.Prices, func(p models.ShippingPrice, _ int) shippingPrice {
			return shippingPrice{CurrencyCode: p.CurrencyCode, RegionID: p.RegionID, Amount: amount(p.Amount)}
		}),
		Rules: lo.Map(so.Rules, func(r models.ShippingRule, _ int) shippingRule {
			return shippingRule{Attribute: r.Attribute, Operator: r.Operator, Value: r.Value}
		}),
	}
}

func toProductRequest(p models.Product) productRequest {
	return productRequest{
		Title:        p.Title,
		Handle:       p.Handle,
		Description:  p.Description,
		Status:       string(p.Status),
		Categories:   lo.Map(p.CategoryIDs, func(id string, _ int) idRef { return idRef{ID: id} }),
		CollectionID: p.CollectionID,
		TypeID:       p.TypeID,
		Images:       lo.Map(p.Images, func(f models.File, _ int) imageRef { return imageRef{URL: f.URL} }),
		Options: lo.Map(p.Options, func(o models.ProductOption, _ int) productOption {
			return productOption{Title: o.Title, Values: o.Values}
		}),
		Variants: lo.Map(p.Variants, func(v models.Variant, _ int) variantRequest {
			return variantRequest{
				Title:           v.Title,
				SKU:             v.SKU,
				Options:         v.Options,
				ManageInventory: v.ManageInventory,
				Prices: lo.Map(v.Prices, func(pr models.Price, _ int) price {
					return price{CurrencyCode: pr.CurrencyCode, Amount: amount(pr.Amount)}
				}),
			}
		}),
		SalesChannels: lo.Map(p.SalesChannelIDs, func(id string, _ int) idRef { return idRef{ID: id} }),
	}
}

// amount converts decimal amount into JSON number expected by admin API.
func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
