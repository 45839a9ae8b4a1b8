package seeder

import (
	"context"
	"fmt"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// seedStore creates default sales channel and region and configures store singleton with them.
func (s *Seeder) seedStore(ctx context.Context, sess *session, catalog *models.Catalog) error {
	stores, err := s.commerce.ListStores(ctx)
	if err != nil {
		return fmt.Errorf("can't get store: %w", err)
	}
	if len(stores) == 0 {
		return ErrNoStore
	}
	store := stores[0]

	if err := s.seedSalesChannel(ctx, sess, catalog.SalesChannel); err != nil {
		return fmt.Errorf("can't seed sales channel: %w", err)
	}

	_, err = seedBatch(ctx, s, sess, models.StepRegion,
		[]models.RegionSeed{catalog.Region},
		func(r models.RegionSeed) string { return r.Name },
		func(ctx context.Context, seeds []models.RegionSeed) ([]models.Region, error) {
			return s.commerce.CreateRegions(ctx, lo.Map(seeds, func(r models.RegionSeed, _ int) models.Region {
				return models.Region{
					Name:             r.Name,
					CurrencyCode:     r.CurrencyCode,
					Countries:        r.Countries,
					PaymentProviders: r.PaymentProviders,
				}
			}))
		},
		func(r models.Region) string { return r.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed regions: %w", err)
	}
	sess.logger.Debug().Msg("finished seeding regions")

	salesChannelID, err := sess.refs.resolve(models.StepSalesChannel, catalog.SalesChannel)
	if err != nil {
		return err
	}
	regionID, err := sess.refs.resolve(models.StepRegion, catalog.Region.Name)
	if err != nil {
		return err
	}

	_, err = s.commerce.UpdateStore(ctx, store.ID, models.StoreUpdate{
		SupportedCurrencies:   catalog.Currencies,
		DefaultSalesChannelID: salesChannelID,
		DefaultRegionID:       regionID,
	})
	if err != nil {
		return fmt.Errorf("can't update store: %w", err)
	}

	return nil
}

// seedSalesChannel reuses existing sales channel with name or creates new one.
func (s *Seeder) seedSalesChannel(ctx context.Context, sess *session, name string) error {
	existing, err := s.commerce.ListSalesChannels(ctx, name)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		sess.refs.set(models.StepSalesChannel, name, existing[0].ID)
		sess.reused.Add(1)
		sess.logger.Debug().Str("salesChannel", name).Str("id", existing[0].ID).Msg("using existing sales channel")
		return nil
	}

	_, err = createRecorded(ctx, s, sess, models.StepSalesChannel,
		[]models.SalesChannel{{Name: name}},
		func(sc models.SalesChannel) string { return sc.Name },
		s.commerce.CreateSalesChannels,
		func(sc models.SalesChannel) string { return sc.ID },
	)

	return err
}

// seedLogistics creates tax regions and stock location linked with fulfillment provider.
func (s *Seeder) seedLogistics(ctx context.Context, sess *session, catalog *models.Catalog) error {
	_, err := seedBatch(ctx, s, sess, models.StepTaxRegion,
		catalog.TaxCountries,
		func(country string) string { return country },
		func(ctx context.Context, countries []string) ([]models.TaxRegion, error) {
			return s.commerce.CreateTaxRegions(ctx, lo.Map(countries, func(c string, _ int) models.TaxRegion {
				return models.TaxRegion{CountryCode: c}
			}))
		},
		func(tr models.TaxRegion) string { return tr.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed tax regions: %w", err)
	}
	sess.logger.Debug().Msg("finished seeding tax regions")

	location := catalog.StockLocation
	_, err = seedBatch(ctx, s, sess, models.StepStockLocation,
		[]models.StockLocationSeed{location},
		func(l models.StockLocationSeed) string { return l.Name },
		func(ctx context.Context, seeds []models.StockLocationSeed) ([]models.StockLocation, error) {
			return s.commerce.CreateStockLocations(ctx, lo.Map(seeds, func(l models.StockLocationSeed, _ int) models.StockLocation {
				return models.StockLocation{Name: l.Name, Address: l.Address}
			}))
		},
		func(l models.StockLocation) string { return l.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed stock location: %w", err)
	}

	locationID, err := sess.refs.resolve(models.StepStockLocation, location.Name)
	if err != nil {
		return err
	}

	err = s.link(ctx, sess, models.StepFulfillmentProviderLink, joinKey(location.Name, location.FulfillmentProviderID), locationID,
		func(ctx context.Context) error {
			return s.commerce.LinkFulfillmentProvider(ctx, locationID, location.FulfillmentProviderID)
		},
	)
	if err != nil {
		return fmt.Errorf("can't link fulfillment provider: %w", err)
	}
	sess.logger.Debug().Msg("finished seeding stock location data")

	return nil
}

// seedChannels links stock location and publishable API key with default sales channel.
func (s *Seeder) seedChannels(ctx context.Context, sess *session, catalog *models.Catalog) error {
	salesChannelID, err := sess.refs.resolve(models.StepSalesChannel, catalog.SalesChannel)
	if err != nil {
		return err
	}
	locationID, err := sess.refs.resolve(models.StepStockLocation, catalog.StockLocation.Name)
	if err != nil {
		return err
	}

	err = s.link(ctx, sess, models.StepStockLocationLink, joinKey(catalog.StockLocation.Name, catalog.SalesChannel), locationID,
		func(ctx context.Context) error {
			return s.commerce.LinkSalesChannelsToStockLocation(ctx, locationID, []string{salesChannelID})
		},
	)
	if err != nil {
		return fmt.Errorf("can't link sales channel to stock location: %w", err)
	}

	keys, err := seedBatch(ctx, s, sess, models.StepAPIKey,
		[]models.APIKeySeed{catalog.APIKey},
		func(k models.APIKeySeed) string { return k.Title },
		func(ctx context.Context, seeds []models.APIKeySeed) ([]models.APIKey, error) {
			return s.commerce.CreateAPIKeys(ctx, lo.Map(seeds, func(k models.APIKeySeed, _ int) models.APIKey {
				return models.APIKey{Title: k.Title, Type: k.Type}
			}))
		},
		func(k models.APIKey) string { return k.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed api key: %w", err)
	}
	for _, key := range keys {
		sess.logger.Info().Str("title", key.Title).Str("token", key.Token).Msg("created publishable api key")
	}

	keyID, err := sess.refs.resolve(models.StepAPIKey, catalog.APIKey.Title)
	if err != nil {
		return err
	}

	err = s.link(ctx, sess, models.StepAPIKeyLink, joinKey(catalog.APIKey.Title, catalog.SalesChannel), keyID,
		func(ctx context.Context) error {
			return s.commerce.LinkSalesChannelsToAPIKey(ctx, keyID, []string{salesChannelID})
		},
	)
	if err != nil {
		return fmt.Errorf("can't link sales channel to api key: %w", err)
	}

	return nil
}

// link runs fn unless previous run made the same link of owner and records owner's id as link's id.
func (s *Seeder) link(ctx context.Context, sess *session, kind models.StepKind, key, ownerID string, fn func(context.Context) error) error {
	step, found, err := s.lookup(ctx, sess, kind, key)
	if err != nil {
		return err
	}
	if found && step.ExternalID == ownerID {
		s.markReused(sess, step)
		return nil
	}

	if err := fn(ctx); err != nil {
		return err
	}

	return s.record(ctx, sess, kind, key, ownerID)
}
