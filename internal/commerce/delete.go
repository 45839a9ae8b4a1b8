package commerce

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
)

var resources = map[models.StepKind]string{
	models.StepSalesChannel:    "sales-channels",
	models.StepRegion:          "regions",
	models.StepTaxRegion:       "tax-regions",
	models.StepStockLocation:   "stock-locations",
	models.StepShippingProfile: "shipping-profiles",
	models.StepFulfillmentSet:  "fulfillment-sets",
	models.StepShippingOption:  "shipping-options",
	models.StepAPIKey:          "api-keys",
	models.StepFile:            "uploads",
	models.StepCategory:        "product-categories",
	models.StepProductType:     "product-types",
	models.StepCollection:      "collections",
	models.StepMaterial:        "fashion/materials",
	models.StepColor:           "fashion/colors",
	models.StepProduct:         "products",
}

// Delete deletes entity of provided kind. Links and service zones are removed
// together with the entities owning them, so deleting them is a no-op.
// Entities already gone are not an error.
func (c *Client) Delete(ctx context.Context, kind models.StepKind, id string) error {
	resource, ok := resources[kind]
	if !ok {
		return nil
	}
	path := fmt.Sprintf("/admin/%s/%s", resource, url.PathEscape(id))

	if kind == models.StepAPIKey {
		err := c.do(ctx, http.MethodPost, path+"/revoke", nil, nil)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("can't revoke api key %s: %w", id, err)
		}
	}

	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("can't delete %s %s: %w", kind, id, err)
	}

	return nil
}
