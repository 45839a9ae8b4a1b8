package commerce

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// CreateProductCategories creates top level product categories and returns them in the same order.
func (c *Client) CreateProductCategories(ctx context.Context, categories []models.ProductCategory) ([]models.ProductCategory, error) {
	return createEach(ctx, categories, func(ctx context.Context, pc models.ProductCategory) (models.ProductCategory, error) {
		var res productCategoryResponse
		req := productCategoryRequest{Name: pc.Name, IsActive: pc.IsActive}
		if err := c.do(ctx, http.MethodPost, "/admin/product-categories", req, &res); err != nil {
			return pc, fmt.Errorf("can't create product category %s: %w", pc.Name, err)
		}
		pc.ID = res.ProductCategory.ID
		return pc, nil
	})
}

// CreateProductTypes creates product types with their images and returns them in the same order.
func (c *Client) CreateProductTypes(ctx context.Context, types []models.ProductType) ([]models.ProductType, error) {
	return createEach(ctx, types, func(ctx context.Context, pt models.ProductType) (models.ProductType, error) {
		var res productTypeResponse
		req := productTypeRequest{Value: pt.Value, Metadata: productTypeMetadata{Image: pt.Image}}
		if err := c.do(ctx, http.MethodPost, "/admin/product-types", req, &res); err != nil {
			return pt, fmt.Errorf("can't create product type %s: %w", pt.Value, err)
		}
		pt.ID = res.ProductType.ID
		return pt, nil
	})
}

// CreateCollections creates collections with their page metadata and returns them in the same order.
func (c *Client) CreateCollections(ctx context.Context, collections []models.Collection) ([]models.Collection, error) {
	return createEach(ctx, collections, func(ctx context.Context, col models.Collection) (models.Collection, error) {
		var res collectionResponse
		req := collectionRequest{Title: col.Title, Handle: col.Handle, Metadata: col.Metadata}
		if err := c.do(ctx, http.MethodPost, "/admin/collections", req, &res); err != nil {
			return col, fmt.Errorf("can't create collection %s: %w", col.Handle, err)
		}
		col.ID = res.Collection.ID
		return col, nil
	})
}

// CreateMaterials creates upholstery materials and returns them in the same order.
func (c *Client) CreateMaterials(ctx context.Context, materials []models.Material) ([]models.Material, error) {
	return createEach(ctx, materials, func(ctx context.Context, m models.Material) (models.Material, error) {
		var res materialResponse
		if err := c.do(ctx, http.MethodPost, "/admin/fashion/materials", materialRequest{Name: m.Name}, &res); err != nil {
			return m, fmt.Errorf("can't create material %s: %w", m.Name, err)
		}
		m.ID = res.Material.ID
		return m, nil
	})
}

// CreateColors creates colors of existing materials and returns them in the same order.
func (c *Client) CreateColors(ctx context.Context, colors []models.Color) ([]models.Color, error) {
	return createEach(ctx, colors, func(ctx context.Context, col models.Color) (models.Color, error) {
		var res colorResponse
		req := colorRequest{Name: col.Name, HexCode: col.HexCode, MaterialID: col.MaterialID}
		if err := c.do(ctx, http.MethodPost, "/admin/fashion/colors", req, &res); err != nil {
			return col, fmt.Errorf("can't create color %s: %w", col.Name, err)
		}
		col.ID = res.Color.ID
		return col, nil
	})
}

// CreateProducts creates products with variants and returns them in the same order.
func (c *Client) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	return createEach(ctx, products, func(ctx context.Context, p models.Product) (models.Product, error) {
		var res productResponse
		if err := c.do(ctx, http.MethodPost, "/admin/products", toProductRequest(p), &res); err != nil {
			return p, fmt.Errorf("can't create product %s: %w", p.Handle, err)
		}
		p.ID = res.Product.ID

		variantIDs := lo.SliceToMap(res.Product.Variants, func(v variant) (string, string) { return v.SKU, v.ID })
		p.Variants = lo.Map(p.Variants, func(v models.Variant, _ int) models.Variant {
			v.ID = variantIDs[v.SKU]
			return v
		})

		return p, nil
	})
}
