package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

const geoZoneTypeCountry = "country"

// CreateStockLocations creates stock locations and returns them in the same order.
func (c *Client) CreateStockLocations(ctx context.Context, locations []models.StockLocation) ([]models.StockLocation, error) {
	return createEach(ctx, locations, func(ctx context.Context, sl models.StockLocation) (models.StockLocation, error) {
		req := stockLocationRequest{
			Name: sl.Name,
			Address: address{
				Address1:    sl.Address.Address1,
				City:        sl.Address.City,
				CountryCode: sl.Address.CountryCode,
			},
		}
		var res stockLocationResponse
		if err := c.do(ctx, http.MethodPost, "/admin/stock-locations", req, &res); err != nil {
			return sl, fmt.Errorf("can't create stock location %s: %w", sl.Name, err)
		}
		sl.ID = res.StockLocation.ID
		return sl, nil
	})
}

// LinkFulfillmentProvider links stock location with fulfillment provider.
func (c *Client) LinkFulfillmentProvider(ctx context.Context, stockLocationID, providerID string) error {
	path := fmt.Sprintf("/admin/stock-locations/%s/fulfillment-providers", url.PathEscape(stockLocationID))
	if err := c.do(ctx, http.MethodPost, path, linkRequest{Add: []string{providerID}}, nil); err != nil {
		return fmt.Errorf("can't link fulfillment provider %s: %w", providerID, err)
	}

	return nil
}

// LinkSalesChannelsToStockLocation makes stock location serve sales channels.
func (c *Client) LinkSalesChannelsToStockLocation(ctx context.Context, stockLocationID string, salesChannelIDs []string) error {
	path := fmt.Sprintf("/admin/stock-locations/%s/sales-channels", url.PathEscape(stockLocationID))
	if err := c.do(ctx, http.MethodPost, path, linkRequest{Add: salesChannelIDs}, nil); err != nil {
		return fmt.Errorf("can't link sales channels to stock location %s: %w", stockLocationID, err)
	}

	return nil
}

// CreateShippingProfiles creates shipping profiles and returns them in the same order.
func (c *Client) CreateShippingProfiles(ctx context.Context, profiles []models.ShippingProfile) ([]models.ShippingProfile, error) {
	return createEach(ctx, profiles, func(ctx context.Context, sp models.ShippingProfile) (models.ShippingProfile, error) {
		var res shippingProfileResponse
		if err := c.do(ctx, http.MethodPost, "/admin/shipping-profiles", shippingProfileRequest{Name: sp.Name, Type: sp.Type}, &res); err != nil {
			return sp, fmt.Errorf("can't create shipping profile %s: %w", sp.Name, err)
		}
		sp.ID = res.ShippingProfile.ID
		return sp, nil
	})
}

// CreateFulfillmentSet creates fulfillment set of stock location and then its service zones.
// Returned set and zones carry created ids.
func (c *Client) CreateFulfillmentSet(ctx context.Context, stockLocationID string, set models.FulfillmentSet) (*models.FulfillmentSet, error) {
	path := fmt.Sprintf("/admin/stock-locations/%s/fulfillment-sets", url.PathEscape(stockLocationID))

	var res stockLocationResponse
	if err := c.do(ctx, http.MethodPost, path, fulfillmentSetRequest{Name: set.Name, Type: string(set.Type)}, &res); err != nil {
		return nil, fmt.Errorf("can't create fulfillment set %s: %w", set.Name, err)
	}

	created, ok := lo.Find(res.StockLocation.FulfillmentSets, func(fs fulfillmentSet) bool { return fs.Name == set.Name })
	if !ok {
		return nil, fmt.Errorf("fulfillment set %s missing in stock location %s", set.Name, stockLocationID)
	}
	set.ID = created.ID
	set.ServiceZones = slices.Clone(set.ServiceZones)

	for ix, zone := range set.ServiceZones {
		created, err := c.CreateServiceZone(ctx, set.ID, zone)
		if err != nil {
			return &set, err
		}
		set.ServiceZones[ix].ID = created.ID
	}

	return &set, nil
}

// CreateServiceZone creates service zone of fulfillment set and returns it with created id.
func (c *Client) CreateServiceZone(ctx context.Context, fulfillmentSetID string, zone models.ServiceZone) (*models.ServiceZone, error) {
	req := serviceZone{
		Name: zone.Name,
		GeoZones: lo.Map(zone.GeoZones, func(gz models.GeoZone, _ int) geoZone {
			return geoZone{CountryCode: gz.CountryCode, Type: lo.Ternary(gz.Type == "", geoZoneTypeCountry, gz.Type)}
		}),
	}

	var res fulfillmentSetResponse
	path := fmt.Sprintf("/admin/fulfillment-sets/%s/service-zones", url.PathEscape(fulfillmentSetID))
	if err := c.do(ctx, http.MethodPost, path, req, &res); err != nil {
		return nil, fmt.Errorf("can't create service zone %s: %w", zone.Name, err)
	}

	created, ok := lo.Find(res.FulfillmentSet.ServiceZones, func(sz serviceZone) bool { return sz.Name == zone.Name })
	if !ok {
		return nil, fmt.Errorf("service zone %s missing in fulfillment set %s", zone.Name, fulfillmentSetID)
	}
	zone.ID = created.ID

	return &zone, nil
}

// CreateShippingOptions creates shipping options and returns them in the same order.
func (c *Client) CreateShippingOptions(ctx context.Context, options []models.ShippingOption) ([]models.ShippingOption, error) {
	return createEach(ctx, options, func(ctx context.Context, so models.ShippingOption) (models.ShippingOption, error) {
		var res shippingOptionResponse
		if err := c.do(ctx, http.MethodPost, "/admin/shipping-options", toShippingOptionRequest(so), &res); err != nil {
			return so, fmt.Errorf("can't create shipping option %s: %w", so.Name, err)
		}
		so.ID = res.ShippingOption.ID
		return so, nil
	})
}
