package catalog_test

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MichalMitros/commerce-seeder/internal/catalog"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitDecode(t *testing.T) {
	f, err := os.Open(path.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	defer f.Close()

	result, err := catalog.Decoder{}.Decode(f)
	require.NoError(t, err, "should decode catalog without error")

	expected := &models.Catalog{
		SalesChannel: "Web",
		Region: models.RegionSeed{
			Name:             "Europe",
			CurrencyCode:     "eur",
			Countries:        []string{"de", "pl"},
			PaymentProviders: []string{"pp_system_default"},
		},
		Currencies:   []models.StoreCurrency{{CurrencyCode: "eur", IsDefault: true}},
		TaxCountries: []string{"de", "pl"},
		StockLocation: models.StockLocationSeed{
			Name:                  "Warehouse",
			Address:               models.Address{City: "Berlin", CountryCode: "DE"},
			FulfillmentProviderID: "manual_manual",
		},
		ShippingProfile: models.ShippingProfile{Name: "Default", Type: "default"},
		FulfillmentSets: []models.FulfillmentSetSeed{
			{
				Name:        "Europe shipping",
				Type:        models.FulfillmentTypeShipping,
				ServiceZone: models.ServiceZoneSeed{Name: "Europe", Countries: []string{"de", "pl"}},
				ShippingOptions: []models.ShippingOptionSeed{
					{
						Name:       "Standard",
						PriceType:  "flat",
						ProviderID: "manual_manual",
						Type:       models.ShippingOptionType{Label: "Standard", Description: "Ships in 2 days.", Code: "standard"},
						Prices: []models.ShippingPriceSeed{
							{CurrencyCode: "eur", Amount: decimal.NewFromFloat(9.99)},
							{Region: "Europe", Amount: decimal.NewFromFloat(9.99)},
						},
						Rules: []models.ShippingRule{{Attribute: "enabled_in_store", Operator: "eq", Value: `"true"`}},
					},
				},
			},
		},
		APIKey:       models.APIKeySeed{Title: "Shop", Type: "publishable"},
		Categories:   []models.CategorySeed{{Name: "Chairs", IsActive: true}},
		ProductTypes: []models.ProductTypeSeed{{Value: "Chair"}},
		Collections: []models.CollectionSeed{
			{
				Title:  "Basics",
				Handle: "basics",
				Metadata: models.CollectionMetadataSeed{
					Description: "Everyday furniture",
					Image: lo.ToPtr(models.Asset{
						Filename: "basics.png",
						URL:      "https://cdn.example.com/basics.png",
						Access:   "private",
					}),
				},
			},
		},
		Materials: []models.MaterialSeed{{Name: "Oak"}},
		Colors:    []models.ColorSeed{{Name: "Natural", HexCode: "#C8A165", Material: "Oak"}},
		Products: []models.ProductSeed{
			{
				Title:      "Plain Chair",
				Handle:     "plain-chair",
				Status:     models.ProductStatusDraft,
				Categories: []string{"Chairs"},
				Collection: "basics",
				Type:       "Chair",
				Images:     []models.Asset{{Filename: "plain-chair.png", Path: "chair.png", Access: "public"}},
				Options:    []models.ProductOption{{Title: "Material", Values: []string{"Oak"}}},
				Variants: []models.VariantSeed{
					{
						Title:           "Oak",
						SKU:             "PLAIN-CHAIR-OAK",
						Options:         map[string]string{"Material": "Oak"},
						ManageInventory: true,
						Prices:          []models.Price{{CurrencyCode: "eur", Amount: decimal.NewFromFloat(120.5)}},
					},
				},
			},
		},
	}

	assert.Equal(t, expected, result, "should correctly decode whole catalog")
	assert.NoError(t, catalog.Validate(result), "decoded catalog should be valid")
}

func TestUnitDecodeUnknownField(t *testing.T) {
	_, err := catalog.Decoder{}.Decode(strings.NewReader("salesChannel: Web\nwarehouses: []\n"))

	require.Error(t, err, "should reject unknown fields")
	assert.Contains(t, err.Error(), "field warehouses not found", "should name unknown field")
}

func TestUnitDecodeBadYAMLFormat(t *testing.T) {
	_, err := catalog.Decoder{}.Decode(strings.NewReader("products: [\n"))

	require.Error(t, err, "should return decoding error")
	assert.Contains(t, err.Error(), "can't decode catalog")
}

func TestUnitLoad(t *testing.T) {
	t.Run("empty path loads default catalog", func(t *testing.T) {
		result, err := catalog.Load("")

		require.NoError(t, err)
		assert.Equal(t, "Default Sales Channel", result.SalesChannel)
	})

	t.Run("loads catalog file", func(t *testing.T) {
		result, err := catalog.Load(path.Join("testdata", "small.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "Web", result.SalesChannel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.Load(path.Join("testdata", "missing.yaml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
