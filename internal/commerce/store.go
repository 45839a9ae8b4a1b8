package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// ListStores returns all stores.
func (c *Client) ListStores(ctx context.Context) ([]models.Store, error) {
	var res storesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/stores", nil, &res); err != nil {
		return nil, fmt.Errorf("can't list stores: %w", err)
	}

	return lo.Map(res.Stores, func(s store, _ int) models.Store { return toAppStore(s) }), nil
}

// UpdateStore updates store's currencies and defaults.
func (c *Client) UpdateStore(ctx context.Context, id string, update models.StoreUpdate) (*models.Store, error) {
	req := storeUpdateRequest{
		SupportedCurrencies: lo.Map(update.SupportedCurrencies, func(c models.StoreCurrency, _ int) currency {
			return currency{CurrencyCode: c.CurrencyCode, IsDefault: c.IsDefault}
		}),
		DefaultSalesChannelID: update.DefaultSalesChannelID,
		DefaultRegionID:       update.DefaultRegionID,
	}

	var res storeResponse
	if err := c.do(ctx, http.MethodPost, "/admin/stores/"+url.PathEscape(id), req, &res); err != nil {
		return nil, fmt.Errorf("can't update store %s: %w", id, err)
	}

	return lo.ToPtr(toAppStore(res.Store)), nil
}

// ListSalesChannels returns sales channels with provided name.
func (c *Client) ListSalesChannels(ctx context.Context, name string) ([]models.SalesChannel, error) {
	var res salesChannelsResponse
	path := "/admin/sales-channels?" + url.Values{"name": []string{name}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, fmt.Errorf("can't list sales channels: %w", err)
	}

	return lo.Map(res.SalesChannels, func(sc salesChannel, _ int) models.SalesChannel {
		return models.SalesChannel{ID: sc.ID, Name: sc.Name}
	}), nil
}

// CreateSalesChannels creates sales channels and returns them in the same order.
func (c *Client) CreateSalesChannels(ctx context.Context, channels []models.SalesChannel) ([]models.SalesChannel, error) {
	return createEach(ctx, channels, func(ctx context.Context, sc models.SalesChannel) (models.SalesChannel, error) {
		var res salesChannelResponse
		if err := c.do(ctx, http.MethodPost, "/admin/sales-channels", salesChannel{Name: sc.Name}, &res); err != nil {
			return sc, fmt.Errorf("can't create sales channel %s: %w", sc.Name, err)
		}
		sc.ID = res.SalesChannel.ID
		return sc, nil
	})
}

// CreateRegions creates regions and returns them in the same order.
func (c *Client) CreateRegions(ctx context.Context, regions []models.Region) ([]models.Region, error) {
	return createEach(ctx, regions, func(ctx context.Context, r models.Region) (models.Region, error) {
		req := regionRequest{
			Name:             r.Name,
			CurrencyCode:     r.CurrencyCode,
			Countries:        r.Countries,
			PaymentProviders: r.PaymentProviders,
		}
		var res regionResponse
		if err := c.do(ctx, http.MethodPost, "/admin/regions", req, &res); err != nil {
			return r, fmt.Errorf("can't create region %s: %w", r.Name, err)
		}
		r.ID = res.Region.ID
		return r, nil
	})
}

// CreateTaxRegions creates tax regions and returns them in the same order.
func (c *Client) CreateTaxRegions(ctx context.Context, taxRegions []models.TaxRegion) ([]models.TaxRegion, error) {
	return createEach(ctx, taxRegions, func(ctx context.Context, tr models.TaxRegion) (models.TaxRegion, error) {
		var res taxRegionResponse
		if err := c.do(ctx, http.MethodPost, "/admin/tax-regions", taxRegionRequest{CountryCode: tr.CountryCode}, &res); err != nil {
			return tr, fmt.Errorf("can't create tax region %s: %w", tr.CountryCode, err)
		}
		tr.ID = res.TaxRegion.ID
		return tr, nil
	})
}

// CreateAPIKeys creates API keys and returns them with their tokens in the same order.
func (c *Client) CreateAPIKeys(ctx context.Context, keys []models.APIKey) ([]models.APIKey, error) {
	return createEach(ctx, keys, func(ctx context.Context, k models.APIKey) (models.APIKey, error) {
		var res apiKeyResponse
		if err := c.do(ctx, http.MethodPost, "/admin/api-keys", apiKeyRequest{Title: k.Title, Type: k.Type}, &res); err != nil {
			return k, fmt.Errorf("can't create api key %s: %w", k.Title, err)
		}
		k.ID = res.APIKey.ID
		k.Token = res.APIKey.Token
		return k, nil
	})
}

// LinkSalesChannelsToAPIKey scopes publishable API key to sales channels.
func (c *Client) LinkSalesChannelsToAPIKey(ctx context.Context, apiKeyID string, salesChannelIDs []string) error {
	path := fmt.Sprintf("/admin/api-keys/%s/sales-channels", url.PathEscape(apiKeyID))
	if err := c.do(ctx, http.MethodPost, path, linkRequest{Add: salesChannelIDs}, nil); err != nil {
		return fmt.Errorf("can't link sales channels to api key %s: %w", apiKeyID, err)
	}

	return nil
}

// createEach creates items one request at a time, stopping at first error.
func createEach[T any](ctx context.Context, items []T, create func(context.Context, T) (T, error)) ([]T, error) {
	created := make([]T, 0, len(items))
	for _, item := range items {
		result, err := create(ctx, item)
		if err != nil {
			return created, err
		}
		created = append(created, result)
	}

	return created, nil
}
