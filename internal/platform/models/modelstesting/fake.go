package modelstesting

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeAsset returns models.Asset with fake local path.
func FakeAsset(ops ...func(a *models.Asset)) models.Asset {
	name := strings.ToLower(faker.Word())
	asset := models.Asset{
		Filename: fmt.Sprintf("%s-%d.png", name, rand.Intn(100000)),
		Path:     fmt.Sprintf("%s-%d.png", name, rand.Intn(100000)),
		MimeType: "image/png",
		Access:   "public",
	}

	for _, op := range ops {
		op(&asset)
	}

	return asset
}

// FakeStep returns models.Step with fake data.
func FakeStep(ops ...func(s *models.Step)) models.Step {
	step := models.Step{
		RunID:      rand.Int(),
		TargetID:   rand.Int(),
		Seq:        rand.Int31(),
		Kind:       models.StepProduct,
		Key:        faker.Word(),
		ExternalID: faker.UUIDHyphenated(),
	}

	for _, op := range ops {
		op(&step)
	}

	return step
}

// FakeProduct returns valid models.ProductSeed referencing provided category, collection and type,
// with random number of variants over two options.
func FakeProduct(category, collection, productType string, ops ...func(p *models.ProductSeed)) models.ProductSeed {
	handle := fmt.Sprintf("%s-%d", strings.ToLower(faker.Word()), rand.Intn(100000))
	materials := []string{faker.Word() + "-m1", faker.Word() + "-m2"}
	colors := []string{faker.Word() + "-c1", faker.Word() + "-c2"}

	variantsLen := 1 + rand.Intn(len(materials)*len(colors))
	variants := make([]models.VariantSeed, 0, variantsLen)
	for ix := range variantsLen {
		material := materials[ix/len(colors)]
		color := colors[ix%len(colors)]
		variants = append(variants, models.VariantSeed{
			Title: material + " / " + color,
			SKU:   fmt.Sprintf("%s-%d", strings.ToUpper(handle), ix),
			Options: map[string]string{
				"Material": material,
				"Color":    color,
			},
			Prices: []models.Price{
				{CurrencyCode: "jpy", Amount: decimal.NewFromInt(int64(1000 + rand.Intn(20000)))},
				{CurrencyCode: "usd", Amount: decimal.NewFromInt(int64(10 + rand.Intn(2000)))},
			},
		})
	}

	product := models.ProductSeed{
		Title:       faker.Sentence(),
		Handle:      handle,
		Description: faker.Paragraph(),
		Status:      models.ProductStatusPublished,
		Categories:  []string{category},
		Collection:  collection,
		Type:        productType,
		Images:      []models.Asset{FakeAsset(), FakeAsset()},
		Options: []models.ProductOption{
			{Title: "Material", Values: materials},
			{Title: "Color", Values: colors},
		},
		Variants: variants,
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeCatalog returns small valid models.Catalog with fake data and provided number of products.
func FakeCatalog(products int, ops ...func(c *models.Catalog)) *models.Catalog {
	region := faker.Word()
	category := faker.Word()
	collection := fmt.Sprintf("%s-%d", strings.ToLower(faker.Word()), rand.Intn(100000))
	productType := faker.Word()
	material := faker.Word()

	catalog := &models.Catalog{
		SalesChannel: "Default Sales Channel",
		Region: models.RegionSeed{
			Name:             region,
			CurrencyCode:     "jpy",
			Countries:        []string{"jp"},
			PaymentProviders: []string{"pp_system_default"},
		},
		Currencies: []models.StoreCurrency{
			{CurrencyCode: "jpy", IsDefault: true},
			{CurrencyCode: "usd"},
		},
		TaxCountries: []string{"jp"},
		StockLocation: models.StockLocationSeed{
			Name:                  faker.Word(),
			Address:               models.Address{City: faker.Word(), CountryCode: "JP"},
			FulfillmentProviderID: "manual_manual",
		},
		ShippingProfile: models.ShippingProfile{Name: "Default", Type: "default"},
		FulfillmentSets: []models.FulfillmentSetSeed{
			{
				Name:        faker.Word(),
				Type:        models.FulfillmentTypeShipping,
				ServiceZone: models.ServiceZoneSeed{Name: faker.Word(), Countries: []string{"jp"}},
				ShippingOptions: []models.ShippingOptionSeed{
					fakeShippingOption(region),
				},
			},
		},
		APIKey:     models.APIKeySeed{Title: faker.Word(), Type: "publishable"},
		Categories: []models.CategorySeed{{Name: category, IsActive: true}},
		ProductTypes: []models.ProductTypeSeed{
			{Value: productType, Image: lo.ToPtr(FakeAsset())},
		},
		Collections: []models.CollectionSeed{
			{
				Title:  faker.Word(),
				Handle: collection,
				Metadata: models.CollectionMetadataSeed{
					Description: faker.Sentence(),
					Image:       lo.ToPtr(FakeAsset()),
				},
			},
		},
		Materials: []models.MaterialSeed{{Name: material}},
		Colors: []models.ColorSeed{
			{Name: faker.Word(), HexCode: "#4C4D4E", Material: material},
		},
	}

	for range products {
		catalog.Products = append(catalog.Products, FakeProduct(category, collection, productType))
	}

	for _, op := range ops {
		op(catalog)
	}

	return catalog
}

func fakeShippingOption(region string) models.ShippingOptionSeed {
	return models.ShippingOptionSeed{
		Name:       faker.Word(),
		PriceType:  "flat",
		ProviderID: "manual_manual",
		Type:       models.ShippingOptionType{Label: faker.Word(), Description: faker.Sentence(), Code: "standard"},
		Prices: []models.ShippingPriceSeed{
			{CurrencyCode: "jpy", Amount: decimal.NewFromInt(1000)},
			{Region: region, Amount: decimal.NewFromInt(1000)},
		},
		Rules: []models.ShippingRule{
			{Attribute: "enabled_in_store", Operator: "eq", Value: `"true"`},
			{Attribute: "is_return", Operator: "eq", Value: "false"},
		},
	}
}
