package seeder

import (
	"context"
	"fmt"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// seedCatalog creates product taxonomy and products.
func (s *Seeder) seedCatalog(ctx context.Context, sess *session, catalog *models.Catalog) error {
	errGroup, egCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(s.concurrency)

	errGroup.Go(func() error {
		return s.seedCategories(egCtx, sess, catalog.Categories)
	})
	errGroup.Go(func() error {
		return s.seedProductTypes(egCtx, sess, catalog.ProductTypes)
	})

	if err := errGroup.Wait(); err != nil {
		return err
	}

	if err := s.seedCollections(ctx, sess, catalog.Collections); err != nil {
		return fmt.Errorf("can't seed collections: %w", err)
	}

	_, err := seedBatch(ctx, s, sess, models.StepMaterial,
		catalog.Materials,
		func(m models.MaterialSeed) string { return m.Name },
		func(ctx context.Context, seeds []models.MaterialSeed) ([]models.Material, error) {
			return s.commerce.CreateMaterials(ctx, lo.Map(seeds, func(m models.MaterialSeed, _ int) models.Material {
				return models.Material{Name: m.Name}
			}))
		},
		func(m models.Material) string { return m.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed materials: %w", err)
	}
	sess.logger.Debug().Int("materials", len(catalog.Materials)).Msg("finished seeding materials")

	_, err = seedBatch(ctx, s, sess, models.StepColor,
		catalog.Colors,
		func(c models.ColorSeed) string { return joinKey(c.Material, c.Name) },
		func(ctx context.Context, seeds []models.ColorSeed) ([]models.Color, error) {
			colors := make([]models.Color, 0, len(seeds))
			for _, seed := range seeds {
				materialID, err := sess.refs.resolve(models.StepMaterial, seed.Material)
				if err != nil {
					return nil, err
				}
				colors = append(colors, models.Color{Name: seed.Name, HexCode: seed.HexCode, MaterialID: materialID})
			}

			return s.commerce.CreateColors(ctx, colors)
		},
		func(c models.Color) string { return c.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed colors: %w", err)
	}
	sess.logger.Debug().Int("colors", len(catalog.Colors)).Msg("finished seeding colors")

	if err := s.seedProducts(ctx, sess, catalog.Products, catalog.SalesChannel); err != nil {
		return fmt.Errorf("can't seed products: %w", err)
	}

	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, sess *session, categories []models.CategorySeed) error {
	_, err := seedBatch(ctx, s, sess, models.StepCategory,
		categories,
		func(c models.CategorySeed) string { return c.Name },
		func(ctx context.Context, seeds []models.CategorySeed) ([]models.ProductCategory, error) {
			return s.commerce.CreateProductCategories(ctx, lo.Map(seeds, func(c models.CategorySeed, _ int) models.ProductCategory {
				return models.ProductCategory{Name: c.Name, IsActive: c.IsActive}
			}))
		},
		func(c models.ProductCategory) string { return c.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed categories: %w", err)
	}
	sess.logger.Debug().Int("categories", len(categories)).Msg("finished seeding categories")

	return nil
}

func (s *Seeder) seedProductTypes(ctx context.Context, sess *session, types []models.ProductTypeSeed) error {
	key := func(t models.ProductTypeSeed) string { return t.Value }

	todo, err := pending(ctx, s, sess, models.StepProductType, types, key)
	if err != nil {
		return fmt.Errorf("can't seed product types: %w", err)
	}

	withImage := lo.Filter(todo, func(t models.ProductTypeSeed, _ int) bool { return t.Image != nil })
	files, err := s.upload(ctx, sess, "product-type", lo.Map(withImage, func(t models.ProductTypeSeed, _ int) models.Asset {
		return *t.Image
	}))
	if err != nil {
		return fmt.Errorf("can't seed product types: %w", err)
	}

	images := make(map[string]*models.File, len(files))
	for ix := range withImage {
		images[withImage[ix].Value] = &files[ix]
	}

	_, err = createRecorded(ctx, s, sess, models.StepProductType, todo, key,
		func(ctx context.Context, seeds []models.ProductTypeSeed) ([]models.ProductType, error) {
			return s.commerce.CreateProductTypes(ctx, lo.Map(seeds, func(t models.ProductTypeSeed, _ int) models.ProductType {
				return models.ProductType{Value: t.Value, Image: images[t.Value]}
			}))
		},
		func(t models.ProductType) string { return t.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed product types: %w", err)
	}
	sess.logger.Debug().Int("productTypes", len(types)).Msg("finished seeding product types")

	return nil
}

func (s *Seeder) seedCollections(ctx context.Context, sess *session, collections []models.CollectionSeed) error {
	key := func(c models.CollectionSeed) string { return c.Handle }

	todo, err := pending(ctx, s, sess, models.StepCollection, collections, key)
	if err != nil {
		return err
	}

	assets := lo.FlatMap(todo, func(c models.CollectionSeed, _ int) []models.Asset {
		return lo.Map(c.Metadata.Assets(), func(a *models.Asset, _ int) models.Asset { return *a })
	})
	files, err := s.upload(ctx, sess, "collection", assets)
	if err != nil {
		return err
	}

	_, err = createRecorded(ctx, s, sess, models.StepCollection, todo, key,
		func(ctx context.Context, seeds []models.CollectionSeed) ([]models.Collection, error) {
			remaining := files
			created := lo.Map(seeds, func(c models.CollectionSeed, _ int) models.Collection {
				n := len(c.Metadata.Assets())
				metadata := collectionMetadata(c.Metadata, remaining[:n])
				remaining = remaining[n:]

				return models.Collection{Title: c.Title, Handle: c.Handle, Metadata: metadata}
			})

			return s.commerce.CreateCollections(ctx, created)
		},
		func(c models.Collection) string { return c.ID },
	)
	if err != nil {
		return err
	}
	sess.logger.Debug().Int("collections", len(collections)).Msg("finished seeding collections")

	return nil
}

// collectionMetadata fills image slots of metadata with files uploaded in slot order.
func collectionMetadata(seed models.CollectionMetadataSeed, files []models.File) models.CollectionMetadata {
	next := func(asset *models.Asset) *models.File {
		if asset == nil || len(files) == 0 {
			return nil
		}
		file := files[0]
		files = files[1:]
		return &file
	}

	image := next(seed.Image)
	collectionPageImage := next(seed.CollectionPageImage)
	productPageImage := next(seed.ProductPageImage)
	productPageWideImage := next(seed.ProductPageWideImage)
	productPageCTAImage := next(seed.ProductPageCTAImage)

	return models.CollectionMetadata{
		Description:           seed.Description,
		Image:                 image,
		CollectionPageImage:   collectionPageImage,
		CollectionPageHeading: seed.CollectionPageHeading,
		CollectionPageContent: seed.CollectionPageContent,
		ProductPageHeading:    seed.ProductPageHeading,
		ProductPageImage:      productPageImage,
		ProductPageWideImage:  productPageWideImage,
		ProductPageCTAImage:   productPageCTAImage,
		ProductPageCTAHeading: seed.ProductPageCTAHeading,
		ProductPageCTALink:    seed.ProductPageCTALink,
	}
}

func (s *Seeder) seedProducts(ctx context.Context, sess *session, products []models.ProductSeed, salesChannel string) error {
	key := func(p models.ProductSeed) string { return p.Handle }

	todo, err := pending(ctx, s, sess, models.StepProduct, products, key)
	if err != nil {
		return err
	}

	salesChannelID, err := sess.refs.resolve(models.StepSalesChannel, salesChannel)
	if err != nil {
		return err
	}

	errGroup, egCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(s.concurrency)

	for _, product := range todo {
		errGroup.Go(func() error {
			if err := s.seedProduct(egCtx, sess, product, salesChannelID); err != nil {
				return fmt.Errorf("can't seed product %s: %w", product.Handle, err)
			}
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	sess.logger.Debug().Int("products", len(products)).Msg("finished seeding products")

	return nil
}

func (s *Seeder) seedProduct(ctx context.Context, sess *session, seed models.ProductSeed, salesChannelID string) error {
	categoryIDs, err := sess.refs.resolveAll(models.StepCategory, seed.Categories)
	if err != nil {
		return err
	}

	var collectionID, typeID string
	if seed.Collection != "" {
		if collectionID, err = sess.refs.resolve(models.StepCollection, seed.Collection); err != nil {
			return err
		}
	}
	if seed.Type != "" {
		if typeID, err = sess.refs.resolve(models.StepProductType, seed.Type); err != nil {
			return err
		}
	}

	images, err := s.upload(ctx, sess, joinKey("product", seed.Handle), seed.Images)
	if err != nil {
		return err
	}

	product := models.Product{
		Title:        seed.Title,
		Handle:       seed.Handle,
		Description:  seed.Description,
		Status:       lo.Ternary(seed.Status == "", models.ProductStatusPublished, seed.Status),
		CategoryIDs:  categoryIDs,
		CollectionID: collectionID,
		TypeID:       typeID,
		Images:       images,
		Options:      seed.Options,
		Variants: lo.Map(seed.Variants, func(v models.VariantSeed, _ int) models.Variant {
			return models.Variant{
				Title:           v.Title,
				SKU:             v.SKU,
				Options:         v.Options,
				ManageInventory: v.ManageInventory,
				Prices:          v.Prices,
			}
		}),
		SalesChannelIDs: []string{salesChannelID},
	}

	_, err = createRecorded(ctx, s, sess, models.StepProduct, []models.ProductSeed{seed},
		func(p models.ProductSeed) string { return p.Handle },
		func(ctx context.Context, _ []models.ProductSeed) ([]models.Product, error) {
			return s.commerce.CreateProducts(ctx, []models.Product{product})
		},
		func(p models.Product) string { return p.ID },
	)

	return err
}

// upload uploads assets of owner as single batch and records uploaded files.
func (s *Seeder) upload(ctx context.Context, sess *session, owner string, assets []models.Asset) ([]models.File, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	files, err := s.assets.Upload(ctx, assets)
	if err != nil {
		return nil, fmt.Errorf("can't upload %s images: %w", owner, err)
	}
	if len(files) != len(assets) {
		return nil, fmt.Errorf("can't upload %s images: got %d files for %d images", owner, len(files), len(assets))
	}

	for ix := range files {
		if err := s.record(ctx, sess, models.StepFile, joinKey(owner, assets[ix].Filename), files[ix].ID); err != nil {
			return nil, err
		}
	}

	return files, nil
}
