package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// ErrInvalidCatalog is returned by Validate when catalog breaks any data integrity rule.
var ErrInvalidCatalog = errors.New("invalid catalog")

var (
	slugRegexp    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	skuRegexp     = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)
	hexCodeRegexp = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate checks catalog before any remote call is made and returns all violations found.
func Validate(catalog *models.Catalog) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if catalog.SalesChannel == "" {
		add("sales channel name is empty")
	}
	if catalog.Region.Name == "" || catalog.Region.CurrencyCode == "" {
		add("region must have name and currency code")
	}
	if defaults := lo.CountBy(catalog.Currencies, func(c models.StoreCurrency) bool { return c.IsDefault }); defaults != 1 {
		add("store must have exactly one default currency, got %d", defaults)
	}

	for _, fs := range catalog.FulfillmentSets {
		if fs.Type != models.FulfillmentTypeShipping && fs.Type != models.FulfillmentTypePickup {
			add("fulfillment set %q: unknown type %q", fs.Name, fs.Type)
		}
		for _, so := range fs.ShippingOptions {
			for _, price := range so.Prices {
				if (price.CurrencyCode == "") == (price.Region == "") {
					add("shipping option %q: price must be keyed by exactly one of currency code or region", so.Name)
				}
				if price.Region != "" && price.Region != catalog.Region.Name {
					add("shipping option %q: unknown region %q", so.Name, price.Region)
				}
				if price.Amount.IsNegative() {
					add("shipping option %q: negative price", so.Name)
				}
			}
		}
	}

	errs = append(errs, validateTaxonomy(catalog)...)
	errs = append(errs, validateProducts(catalog)...)
	errs = append(errs, validateAssets(catalog)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	return nil
}

func validateTaxonomy(catalog *models.Catalog) []error {
	var errs []error

	materials := make(map[string]struct{}, len(catalog.Materials))
	for _, m := range catalog.Materials {
		if _, ok := materials[m.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate material %q", m.Name))
		}
		materials[m.Name] = struct{}{}
	}

	colors := make(map[[2]string]struct{}, len(catalog.Colors))
	for _, c := range catalog.Colors {
		if _, ok := materials[c.Material]; !ok {
			errs = append(errs, fmt.Errorf("color %q: unknown material %q", c.Name, c.Material))
		}
		key := [2]string{c.Material, c.Name}
		if _, ok := colors[key]; ok {
			errs = append(errs, fmt.Errorf("duplicate color %q of material %q", c.Name, c.Material))
		}
		colors[key] = struct{}{}
		if !hexCodeRegexp.MatchString(c.HexCode) {
			errs = append(errs, fmt.Errorf("color %q: invalid hex code %q", c.Name, c.HexCode))
		}
	}

	if dups := lo.FindDuplicates(lo.Map(catalog.Categories, func(c models.CategorySeed, _ int) string { return c.Name })); len(dups) > 0 {
		errs = append(errs, fmt.Errorf("duplicate categories %q", dups))
	}
	if dups := lo.FindDuplicates(lo.Map(catalog.ProductTypes, func(pt models.ProductTypeSeed, _ int) string { return pt.Value })); len(dups) > 0 {
		errs = append(errs, fmt.Errorf("duplicate product types %q", dups))
	}

	handles := make(map[string]struct{}, len(catalog.Collections))
	for _, c := range catalog.Collections {
		if !slugRegexp.MatchString(c.Handle) {
			errs = append(errs, fmt.Errorf("collection %q: invalid handle %q", c.Title, c.Handle))
		}
		if _, ok := handles[c.Handle]; ok {
			errs = append(errs, fmt.Errorf("duplicate collection handle %q", c.Handle))
		}
		handles[c.Handle] = struct{}{}
	}

	return errs
}

func validateProducts(catalog *models.Catalog) []error {
	var errs []error

	categories := lo.SliceToMap(catalog.Categories, func(c models.CategorySeed) (string, struct{}) { return c.Name, struct{}{} })
	collections := lo.SliceToMap(catalog.Collections, func(c models.CollectionSeed) (string, struct{}) { return c.Handle, struct{}{} })
	types := lo.SliceToMap(catalog.ProductTypes, func(pt models.ProductTypeSeed) (string, struct{}) { return pt.Value, struct{}{} })

	handles := make(map[string]struct{}, len(catalog.Products))
	skus := make(map[string]string)

	for _, p := range catalog.Products {
		if !slugRegexp.MatchString(p.Handle) {
			errs = append(errs, fmt.Errorf("product %q: invalid handle %q", p.Title, p.Handle))
		}
		if _, ok := handles[p.Handle]; ok {
			errs = append(errs, fmt.Errorf("duplicate product handle %q", p.Handle))
		}
		handles[p.Handle] = struct{}{}

		for _, category := range p.Categories {
			if _, ok := categories[category]; !ok {
				errs = append(errs, fmt.Errorf("product %q: unknown category %q", p.Handle, category))
			}
		}
		if _, ok := collections[p.Collection]; p.Collection != "" && !ok {
			errs = append(errs, fmt.Errorf("product %q: unknown collection %q", p.Handle, p.Collection))
		}
		if _, ok := types[p.Type]; p.Type != "" && !ok {
			errs = append(errs, fmt.Errorf("product %q: unknown product type %q", p.Handle, p.Type))
		}

		options := lo.SliceToMap(p.Options, func(o models.ProductOption) (string, []string) { return o.Title, o.Values })
		for _, v := range p.Variants {
			if !skuRegexp.MatchString(v.SKU) {
				errs = append(errs, fmt.Errorf("product %q: invalid sku %q", p.Handle, v.SKU))
			}
			if owner, ok := skus[v.SKU]; ok {
				errs = append(errs, fmt.Errorf("product %q: sku %q already used by product %q", p.Handle, v.SKU, owner))
			}
			skus[v.SKU] = p.Handle

			errs = append(errs, validateVariantOptions(p.Handle, v, options)...)

			currencies := make(map[string]struct{}, len(v.Prices))
			for _, price := range v.Prices {
				if price.Amount.IsNegative() {
					errs = append(errs, fmt.Errorf("variant %q: negative %s price", v.SKU, price.CurrencyCode))
				}
				if _, ok := currencies[price.CurrencyCode]; ok {
					errs = append(errs, fmt.Errorf("variant %q: duplicate %s price", v.SKU, price.CurrencyCode))
				}
				currencies[price.CurrencyCode] = struct{}{}
			}
		}
	}

	return errs
}

// validateVariantOptions checks that variant selects exactly one declared value of every product option.
func validateVariantOptions(handle string, v models.VariantSeed, options map[string][]string) []error {
	var errs []error

	if len(v.Options) != len(options) {
		errs = append(errs, fmt.Errorf("variant %q of product %q: selects %d options, product declares %d",
			v.SKU, handle, len(v.Options), len(options)))
	}

	for title, value := range v.Options {
		values, ok := options[title]
		if !ok {
			errs = append(errs, fmt.Errorf("variant %q of product %q: unknown option %q", v.SKU, handle, title))
			continue
		}
		if !lo.Contains(values, value) {
			errs = append(errs, fmt.Errorf("variant %q of product %q: value %q is not declared for option %q",
				v.SKU, handle, value, title))
		}
	}

	return errs
}

func validateAssets(catalog *models.Catalog) []error {
	var errs []error
	for _, a := range catalog.Assets() {
		if a.Filename == "" {
			errs = append(errs, fmt.Errorf("asset %q: empty filename", a.Path+a.URL))
		}
		if (a.Path == "") == (a.URL == "") {
			errs = append(errs, fmt.Errorf("asset %q: must declare exactly one of path or url", a.Filename))
		}
	}

	return errs
}
