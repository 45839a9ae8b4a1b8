package seeder

import (
	"context"
	"fmt"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// seedFulfillment creates shipping profile and fulfillment sets of stock location with their shipping options.
func (s *Seeder) seedFulfillment(ctx context.Context, sess *session, catalog *models.Catalog) error {
	_, err := seedBatch(ctx, s, sess, models.StepShippingProfile,
		[]models.ShippingProfile{catalog.ShippingProfile},
		func(sp models.ShippingProfile) string { return sp.Name },
		s.commerce.CreateShippingProfiles,
		func(sp models.ShippingProfile) string { return sp.ID },
	)
	if err != nil {
		return fmt.Errorf("can't seed shipping profile: %w", err)
	}

	locationID, err := sess.refs.resolve(models.StepStockLocation, catalog.StockLocation.Name)
	if err != nil {
		return err
	}
	profileID, err := sess.refs.resolve(models.StepShippingProfile, catalog.ShippingProfile.Name)
	if err != nil {
		return err
	}

	for _, set := range catalog.FulfillmentSets {
		if err := s.seedFulfillmentSet(ctx, sess, locationID, set); err != nil {
			return fmt.Errorf("can't seed fulfillment set %s: %w", set.Name, err)
		}

		if err := s.seedShippingOptions(ctx, sess, set, profileID, catalog.Region.Name); err != nil {
			return fmt.Errorf("can't seed shipping options of %s: %w", set.Name, err)
		}
	}
	sess.logger.Debug().Int("fulfillmentSets", len(catalog.FulfillmentSets)).Msg("finished seeding fulfillment sets")

	return nil
}

func (s *Seeder) seedFulfillmentSet(ctx context.Context, sess *session, locationID string, set models.FulfillmentSetSeed) error {
	zoneKey := joinKey(set.Name, set.ServiceZone.Name)

	zoneSeed := models.ServiceZone{
		Name: set.ServiceZone.Name,
		GeoZones: lo.Map(set.ServiceZone.Countries, func(country string, _ int) models.GeoZone {
			return models.GeoZone{CountryCode: country, Type: "country"}
		}),
	}

	found, err := s.reuse(ctx, sess, models.StepFulfillmentSet, set.Name)
	if err != nil {
		return err
	}
	if found {
		return s.seedServiceZone(ctx, sess, set.Name, zoneKey, zoneSeed)
	}

	created, err := s.commerce.CreateFulfillmentSet(ctx, locationID, models.FulfillmentSet{
		Name:         set.Name,
		Type:         set.Type,
		ServiceZones: []models.ServiceZone{zoneSeed},
	})
	if created != nil && created.ID != "" {
		if err := s.record(ctx, sess, models.StepFulfillmentSet, set.Name, created.ID); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}

	zone, ok := lo.Find(created.ServiceZones, func(z models.ServiceZone) bool { return z.Name == set.ServiceZone.Name })
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnresolvedReference, models.StepServiceZone, zoneKey)
	}

	return s.record(ctx, sess, models.StepServiceZone, zoneKey, zone.ID)
}

// seedServiceZone reuses zone of reused fulfillment set, or creates it when previous run failed before recording it.
func (s *Seeder) seedServiceZone(ctx context.Context, sess *session, setName, zoneKey string, zone models.ServiceZone) error {
	found, err := s.reuse(ctx, sess, models.StepServiceZone, zoneKey)
	if err != nil || found {
		return err
	}

	setID, err := sess.refs.resolve(models.StepFulfillmentSet, setName)
	if err != nil {
		return err
	}

	created, err := s.commerce.CreateServiceZone(ctx, setID, zone)
	if err != nil {
		return err
	}

	return s.record(ctx, sess, models.StepServiceZone, zoneKey, created.ID)
}

func (s *Seeder) seedShippingOptions(ctx context.Context, sess *session, set models.FulfillmentSetSeed, profileID, region string) error {
	zoneID, err := sess.refs.resolve(models.StepServiceZone, joinKey(set.Name, set.ServiceZone.Name))
	if err != nil {
		return err
	}

	_, err = seedBatch(ctx, s, sess, models.StepShippingOption,
		set.ShippingOptions,
		func(so models.ShippingOptionSeed) string { return joinKey(set.Name, so.Name) },
		func(ctx context.Context, seeds []models.ShippingOptionSeed) ([]models.ShippingOption, error) {
			options := make([]models.ShippingOption, 0, len(seeds))
			for _, seed := range seeds {
				prices, err := shippingPrices(sess.refs, seed.Prices)
				if err != nil {
					return nil, fmt.Errorf("can't resolve prices of %s: %w", seed.Name, err)
				}

				options = append(options, models.ShippingOption{
					Name:              seed.Name,
					PriceType:         seed.PriceType,
					ProviderID:        seed.ProviderID,
					ServiceZoneID:     zoneID,
					ShippingProfileID: profileID,
					Type:              seed.Type,
					Prices:            prices,
					Rules:             seed.Rules,
				})
			}

			return s.commerce.CreateShippingOptions(ctx, options)
		},
		func(so models.ShippingOption) string { return so.ID },
	)

	return err
}

// shippingPrices resolves region keyed prices into region ids.
func shippingPrices(refs *registry, seeds []models.ShippingPriceSeed) ([]models.ShippingPrice, error) {
	prices := make([]models.ShippingPrice, 0, len(seeds))
	for _, seed := range seeds {
		price := models.ShippingPrice{CurrencyCode: seed.CurrencyCode, Amount: seed.Amount}
		if seed.Region != "" {
			regionID, err := refs.resolve(models.StepRegion, seed.Region)
			if err != nil {
				return nil, err
			}
			price = models.ShippingPrice{RegionID: regionID, Amount: seed.Amount}
		}
		prices = append(prices, price)
	}

	return prices, nil
}
