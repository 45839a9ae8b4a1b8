package catalog

import (
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const defaultAccess = "public"

// Document is model of catalog yaml files.
type Document struct {
	SalesChannel    string           `yaml:"salesChannel"`
	Region          Region           `yaml:"region"`
	Currencies      []Currency       `yaml:"currencies"`
	TaxCountries    []string         `yaml:"taxCountries"`
	StockLocation   StockLocation    `yaml:"stockLocation"`
	ShippingProfile ShippingProfile  `yaml:"shippingProfile"`
	FulfillmentSets []FulfillmentSet `yaml:"fulfillmentSets"`
	APIKey          APIKey           `yaml:"apiKey"`
	Categories      []Category       `yaml:"categories"`
	ProductTypes    []ProductType    `yaml:"productTypes"`
	Collections     []Collection     `yaml:"collections"`
	Materials       []Material       `yaml:"materials"`
	Colors          []Color          `yaml:"colors"`
	Products        []Product        `yaml:"products"`
}

type Region struct {
	Name             string   `yaml:"name"`
	CurrencyCode     string   `yaml:"currencyCode"`
	Countries        []string `yaml:"countries"`
	PaymentProviders []string `yaml:"paymentProviders"`
}

type Currency struct {
	CurrencyCode string `yaml:"currencyCode"`
	IsDefault    bool   `yaml:"isDefault"`
}

type Address struct {
	Address1    string `yaml:"address1"`
	City        string `yaml:"city"`
	CountryCode string `yaml:"countryCode"`
}

type StockLocation struct {
	Name                string  `yaml:"name"`
	Address             Address `yaml:"address"`
	FulfillmentProvider string  `yaml:"fulfillmentProvider"`
}

type ShippingProfile struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type FulfillmentSet struct {
	Name            string           `yaml:"name"`
	Type            string           `yaml:"type"`
	ServiceZone     ServiceZone      `yaml:"serviceZone"`
	ShippingOptions []ShippingOption `yaml:"shippingOptions"`
}

type ServiceZone struct {
	Name      string   `yaml:"name"`
	Countries []string `yaml:"countries"`
}

type ShippingOption struct {
	Name      string             `yaml:"name"`
	PriceType string             `yaml:"priceType"`
	Provider  string             `yaml:"provider"`
	Type      ShippingOptionType `yaml:"type"`
	Prices    []ShippingPrice    `yaml:"prices"`
	Rules     []ShippingRule     `yaml:"rules"`
}

type ShippingOptionType struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
}

// ShippingPrice is keyed either by currencyCode or by region name.
type ShippingPrice struct {
	CurrencyCode string  `yaml:"currencyCode"`
	Region       string  `yaml:"region"`
	Amount       float64 `yaml:"amount"`
}

type ShippingRule struct {
	Attribute string `yaml:"attribute"`
	Operator  string `yaml:"operator"`
	Value     string `yaml:"value"`
}

type APIKey struct {
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
}

type Category struct {
	Name     string `yaml:"name"`
	IsActive bool   `yaml:"isActive"`
}

// Asset is image source, local path relative to images directory or remote url.
type Asset struct {
	Filename string `yaml:"filename"`
	Path     string `yaml:"path"`
	URL      string `yaml:"url"`
	MimeType string `yaml:"mimeType"`
	Access   string `yaml:"access"`
}

type ProductType struct {
	Value string `yaml:"value"`
	Image *Asset `yaml:"image"`
}

type Collection struct {
	Title    string             `yaml:"title"`
	Handle   string             `yaml:"handle"`
	Metadata CollectionMetadata `yaml:"metadata"`
}

type CollectionMetadata struct {
	Description           string `yaml:"description"`
	Image                 *Asset `yaml:"image"`
	CollectionPageImage   *Asset `yaml:"collectionPageImage"`
	CollectionPageHeading string `yaml:"collectionPageHeading"`
	CollectionPageContent string `yaml:"collectionPageContent"`
	ProductPageHeading    string `yaml:"productPageHeading"`
	ProductPageImage      *Asset `yaml:"productPageImage"`
	ProductPageWideImage  *Asset `yaml:"productPageWideImage"`
	ProductPageCTAImage   *Asset `yaml:"productPageCtaImage"`
	ProductPageCTAHeading string `yaml:"productPageCtaHeading"`
	ProductPageCTALink    string `yaml:"productPageCtaLink"`
}

type Material struct {
	Name string `yaml:"name"`
}

type Color struct {
	Name     string `yaml:"name"`
	HexCode  string `yaml:"hexCode"`
	Material string `yaml:"material"`
}

type Product struct {
	Title       string          `yaml:"title"`
	Handle      string          `yaml:"handle"`
	Description string          `yaml:"description"`
	Status      string          `yaml:"status"`
	Categories  []string        `yaml:"categories"`
	Collection  string          `yaml:"collection"`
	Type        string          `yaml:"type"`
	Images      []Asset         `yaml:"images"`
	Options     []ProductOption `yaml:"options"`
	Variants    []Variant       `yaml:"variants"`
}

type ProductOption struct {
	Title  string   `yaml:"title"`
	Values []string `yaml:"values"`
}

type Variant struct {
	Title           string            `yaml:"title"`
	SKU             string            `yaml:"sku"`
	Options         map[string]string `yaml:"options"`
	ManageInventory bool              `yaml:"manageInventory"`
	Prices          []Price           `yaml:"prices"`
}

type Price struct {
	CurrencyCode string  `yaml:"currencyCode"`
	Amount       float64 `yaml:"amount"`
}

func toAppCatalog(doc *Document) *models.Catalog {
	return &models.Catalog{
		SalesChannel: doc.SalesChannel,
		Region: models.RegionSeed{
			Name:             doc.Region.Name,
			CurrencyCode:     doc.Region.CurrencyCode,
			Countries:        doc.Region.Countries,
			PaymentProviders: doc.Region.PaymentProviders,
		},
		Currencies: lo.Map(doc.Currencies, func(c Currency, _ int) models.StoreCurrency {
			return models.StoreCurrency{CurrencyCode: c.CurrencyCode, IsDefault: c.IsDefault}
		}),
		TaxCountries: doc.TaxCountries,
		StockLocation: models.StockLocationSeed{
			Name: doc.StockLocation.Name,
			Address: models.Address{
				Address1:    doc.StockLocation.Address.Address1,
				City:        doc.StockLocation.Address.City,
				CountryCode: doc.StockLocation.Address.CountryCode,
			},
			FulfillmentProviderID: doc.StockLocation.FulfillmentProvider,
		},
		ShippingProfile: models.ShippingProfile{
			Name: doc.ShippingProfile.Name,
			Type: doc.ShippingProfile.Type,
		},
		FulfillmentSets: lo.Map(doc.FulfillmentSets, func(fs FulfillmentSet, _ int) models.FulfillmentSetSeed {
			return toAppFulfillmentSet(fs)
		}),
		APIKey: models.APIKeySeed{Title: doc.APIKey.Title, Type: doc.APIKey.Type},
		Categories: lo.Map(doc.Categories, func(c Category, _ int) models.CategorySeed {
			return models.CategorySeed{Name: c.Name, IsActive: c.IsActive}
		}),
		ProductTypes: lo.Map(doc.ProductTypes, func(pt ProductType, _ int) models.ProductTypeSeed {
			return models.ProductTypeSeed{Value: pt.Value, Image: toAppAssetPtr(pt.Image)}
		}),
		Collections: lo.Map(doc.Collections, func(c Collection, _ int) models.CollectionSeed {
			return toAppCollection(c)
		}),
		Materials: lo.Map(doc.Materials, func(m Material, _ int) models.MaterialSeed {
			return models.MaterialSeed{Name: m.Name}
		}),
		Colors: lo.Map(doc.Colors, func(c Color, _ int) models.ColorSeed {
			return models.ColorSeed{Name: c.Name, HexCode: c.HexCode, Material: c.Material}
		}),
		Products: lo.Map(doc.Products, func(p Product, _ int) models.ProductSeed {
			return toAppProduct(p)
		}),
	}
}

func toAppFulfillmentSet(fs FulfillmentSet) models.FulfillmentSetSeed {
	return models.FulfillmentSetSeed{
		Name: fs.Name,
		Type: models.FulfillmentType(fs.Type),
		ServiceZone: models.ServiceZoneSeed{
			Name:      fs.ServiceZone.Name,
			Countries: fs.ServiceZone.Countries,
		},
		ShippingOptions: lo.Map(fs.ShippingOptions, func(so ShippingOption, _ int) models.ShippingOptionSeed {
			return models.ShippingOptionSeed{
				Name:       so.Name,
				PriceType:  so.PriceType,
				ProviderID: so.Provider,
				Type: models.ShippingOptionType{
					Label:       so.Type.Label,
					Description: so.Type.Description,
					Code:        so.Type.Code,
				},
				Prices: lo.Map(so.Prices, func(p ShippingPrice, _ int) models.ShippingPriceSeed {
					return models.ShippingPriceSeed{
						CurrencyCode: p.CurrencyCode,
						Region:       p.Region,
						Amount:       decimal.NewFromFloat(p.Amount),
					}
				}),
				Rules: lo.Map(so.Rules, func(r ShippingRule, _ int) models.ShippingRule {
					return models.ShippingRule{Attribute: r.Attribute, Operator: r.Operator, Value: r.Value}
				}),
			}
		}),
	}
}

func toAppCollection(c Collection) models.CollectionSeed {
	return models.CollectionSeed{
		Title:  c.Title,
		Handle: c.Handle,
		Metadata: models.CollectionMetadataSeed{
			Description:           c.Metadata.Description,
			Image:                 toAppAssetPtr(c.Metadata.Image),
			CollectionPageImage:   toAppAssetPtr(c.Metadata.CollectionPageImage),
			CollectionPageHeading: c.Metadata.CollectionPageHeading,
			CollectionPageContent: c.Metadata.CollectionPageContent,
			ProductPageHeading:    c.Metadata.ProductPageHeading,
			ProductPageImage:      toAppAssetPtr(c.Metadata.ProductPageImage),
			ProductPageWideImage:  toAppAssetPtr(c.Metadata.ProductPageWideImage),
			ProductPageCTAImage:   toAppAssetPtr(c.Metadata.ProductPageCTAImage),
			ProductPageCTAHeading: c.Metadata.ProductPageCTAHeading,
			ProductPageCTALink:    c.Metadata.ProductPageCTALink,
		},
	}
}

func toAppProduct(p Product) models.ProductSeed {
	status := models.ProductStatus(p.Status)
	if status == "" {
		status = models.ProductStatusPublished
	}

	return models.ProductSeed{
		Title:       p.Title,
		Handle:      p.Handle,
		Description: p.Description,
		Status:      status,
		Categories:  p.Categories,
		Collection:  p.Collection,
		Type:        p.Type,
		Images:      lo.Map(p.Images, func(a Asset, _ int) models.Asset { return toAppAsset(a) }),
		Options: lo.Map(p.Options, func(o ProductOption, _ int) models.ProductOption {
			return models.ProductOption{Title: o.Title, Values: o.Values}
		}),
		Variants: lo.Map(p.Variants, func(v Variant, _ int) models.VariantSeed {
			return models.VariantSeed{
				Title:           v.Title,
				SKU:             v.SKU,
				Options:         v.Options,
				ManageInventory: v.ManageInventory,
				Prices: lo.Map(v.Prices, func(pr Price, _ int) models.Price {
					return models.Price{CurrencyCode: pr.CurrencyCode, Amount: decimal.NewFromFloat(pr.Amount)}
				}),
			}
		}),
	}
}

func toAppAsset(a Asset) models.Asset {
	access := a.Access
	if access == "" {
		access = defaultAccess
	}

	return models.Asset{
		Filename: a.Filename,
		Path:     a.Path,
		URL:      a.URL,
		MimeType: a.MimeType,
		Access:   access,
	}
}

func toAppAssetPtr(a *Asset) *models.Asset {
	if a == nil {
		return nil
	}
	return lo.ToPtr(toAppAsset(*a))
}
