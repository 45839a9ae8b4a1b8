package catalog_test

import (
	"testing"

	"github.com/MichalMitros/commerce-seeder/internal/catalog"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitValidate(t *testing.T) {
	tests := map[string]struct {
		modify      func(c *models.Catalog)
		expectedErr string
	}{
		"valid catalog": {
			modify: func(c *models.Catalog) {},
		},
		"duplicate material": {
			modify: func(c *models.Catalog) {
				c.Materials = append(c.Materials, c.Materials[0])
			},
			expectedErr: "duplicate material",
		},
		"orphan color": {
			modify: func(c *models.Catalog) {
				c.Colors[0].Material = "unobtainium"
			},
			expectedErr: `unknown material "unobtainium"`,
		},
		"duplicate color of material": {
			modify: func(c *models.Catalog) {
				c.Colors = append(c.Colors, c.Colors[0])
			},
			expectedErr: "duplicate color",
		},
		"invalid hex code": {
			modify: func(c *models.Catalog) {
				c.Colors[0].HexCode = "#12345"
			},
			expectedErr: "invalid hex code",
		},
		"no default currency": {
			modify: func(c *models.Catalog) {
				c.Currencies[0].IsDefault = false
			},
			expectedErr: "exactly one default currency, got 0",
		},
		"variant misses option": {
			modify: func(c *models.Catalog) {
				delete(c.Products[0].Variants[0].Options, "Color")
			},
			expectedErr: "selects 1 options, product declares 2",
		},
		"variant selects undeclared value": {
			modify: func(c *models.Catalog) {
				c.Products[0].Variants[0].Options["Color"] = "mauve"
			},
			expectedErr: `value "mauve" is not declared for option "Color"`,
		},
		"variant selects unknown option": {
			modify: func(c *models.Catalog) {
				delete(c.Products[0].Variants[0].Options, "Color")
				c.Products[0].Variants[0].Options["Size"] = "XL"
			},
			expectedErr: `unknown option "Size"`,
		},
		"duplicate sku across products": {
			modify: func(c *models.Catalog) {
				c.Products[1].Variants[0].SKU = c.Products[0].Variants[0].SKU
			},
			expectedErr: "already used by product",
		},
		"sku with spaces": {
			modify: func(c *models.Catalog) {
				c.Products[0].Variants[0].SKU = "BAD SKU"
			},
			expectedErr: "invalid sku",
		},
		"duplicate product handle": {
			modify: func(c *models.Catalog) {
				c.Products[1].Handle = c.Products[0].Handle
			},
			expectedErr: "duplicate product handle",
		},
		"invalid collection handle": {
			modify: func(c *models.Catalog) {
				c.Collections[0].Handle = "Not A Slug"
			},
			expectedErr: "invalid handle",
		},
		"unknown category": {
			modify: func(c *models.Catalog) {
				c.Products[0].Categories = []string{"tables"}
			},
			expectedErr: `unknown category "tables"`,
		},
		"unknown collection": {
			modify: func(c *models.Catalog) {
				c.Products[0].Collection = "missing"
			},
			expectedErr: `unknown collection "missing"`,
		},
		"unknown product type": {
			modify: func(c *models.Catalog) {
				c.Products[0].Type = "Lamp"
			},
			expectedErr: `unknown product type "Lamp"`,
		},
		"shipping price with currency and region": {
			modify: func(c *models.Catalog) {
				c.FulfillmentSets[0].ShippingOptions[0].Prices[0].Region = c.Region.Name
			},
			expectedErr: "exactly one of currency code or region",
		},
		"shipping price of unknown region": {
			modify: func(c *models.Catalog) {
				c.FulfillmentSets[0].ShippingOptions[0].Prices[1].Region = "Atlantis"
			},
			expectedErr: `unknown region "Atlantis"`,
		},
		"negative variant price": {
			modify: func(c *models.Catalog) {
				c.Products[0].Variants[0].Prices[0].Amount = decimal.NewFromInt(-1)
			},
			expectedErr: "negative jpy price",
		},
		"duplicate variant currency": {
			modify: func(c *models.Catalog) {
				v := &c.Products[0].Variants[0]
				v.Prices = append(v.Prices, v.Prices[0])
			},
			expectedErr: "duplicate jpy price",
		},
		"asset with path and url": {
			modify: func(c *models.Catalog) {
				c.Products[0].Images[0].URL = "https://cdn.example.com/a.png"
			},
			expectedErr: "exactly one of path or url",
		},
		"unknown fulfillment type": {
			modify: func(c *models.Catalog) {
				c.FulfillmentSets[0].Type = "drone"
			},
			expectedErr: `unknown type "drone"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := modelstesting.FakeCatalog(2)
			tt.modify(c)

			err := catalog.Validate(c)

			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestUnitValidateCollectsAllViolations(t *testing.T) {
	c := modelstesting.FakeCatalog(1)
	c.SalesChannel = ""
	c.Colors[0].HexCode = "red"
	c.Products[0].Type = "Lamp"

	err := catalog.Validate(c)

	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "sales channel name is empty")
	assert.Contains(t, err.Error(), "invalid hex code")
	assert.Contains(t, err.Error(), "unknown product type")
}

func TestUnitDefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err, "embedded catalog should decode")
	require.NoError(t, catalog.Validate(c), "embedded catalog should be valid")

	assert.Equal(t, "Default Sales Channel", c.SalesChannel)
	assert.Equal(t, models.RegionSeed{
		Name:             "Japan",
		CurrencyCode:     "jpy",
		Countries:        []string{"jp"},
		PaymentProviders: []string{"pp_stripe_stripe"},
	}, c.Region)
	assert.Equal(t, []models.StoreCurrency{
		{CurrencyCode: "jpy", IsDefault: true},
		{CurrencyCode: "usd"},
	}, c.Currencies)
	assert.Equal(t, []string{"jp"}, c.TaxCountries)
	assert.Equal(t, "manual_manual", c.StockLocation.FulfillmentProviderID)

	assert.Len(t, c.FulfillmentSets, 2)
	shippingOptions := lo.FlatMap(c.FulfillmentSets, func(fs models.FulfillmentSetSeed, _ int) []models.ShippingOptionSeed {
		return fs.ShippingOptions
	})
	assert.Len(t, shippingOptions, 3)
	for _, so := range shippingOptions {
		assert.Equal(t, []models.ShippingRule{
			{Attribute: "enabled_in_store", Operator: "eq", Value: `"true"`},
			{Attribute: "is_return", Operator: "eq", Value: "false"},
		}, so.Rules, "every shipping option should carry store rules")
	}

	assert.Equal(t, models.APIKeySeed{Title: "Webshop", Type: "publishable"}, c.APIKey)
	assert.Len(t, c.Categories, 3)
	assert.Len(t, c.ProductTypes, 2)
	assert.Len(t, c.Collections, 4)
	assert.Len(t, c.Materials, 5)
	assert.Len(t, c.Colors, 15)
	assert.Len(t, c.Products, 16)

	for _, collection := range c.Collections {
		assert.Len(t, collection.Metadata.Assets(), 5, "collection %s should declare all image slots", collection.Handle)
	}

	for _, p := range c.Products {
		assert.Equal(t, models.ProductStatusPublished, p.Status, "product %s should be published", p.Handle)
		assert.Len(t, p.Images, 2, "product %s should have two images", p.Handle)
		for _, v := range p.Variants {
			assert.False(t, v.ManageInventory)
			assert.Equal(t, []string{"jpy", "usd"}, lo.Map(v.Prices, func(p models.Price, _ int) string { return p.CurrencyCode }))
		}
	}
}

func TestUnitDefaultCatalogColorsResolveMaterial(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	colorsOfMaterial := lo.CountValuesBy(c.Colors, func(c models.ColorSeed) string { return c.Material })

	assert.Equal(t, map[string]int{
		"ベルベット":     2,
		"リネン":       5,
		"マイクロファイバー": 3,
		"ブークレ":      3,
		"レザー":       2,
	}, colorsOfMaterial)
}
