package models

import "time"

// StepKind is kind of entity recorded in run ledger.
type StepKind string

const (
	StepSalesChannel            StepKind = "sales_channel"
	StepRegion                  StepKind = "region"
	StepTaxRegion               StepKind = "tax_region"
	StepStockLocation           StepKind = "stock_location"
	StepFulfillmentProviderLink StepKind = "fulfillment_provider_link"
	StepShippingProfile         StepKind = "shipping_profile"
	StepFulfillmentSet          StepKind = "fulfillment_set"
	StepServiceZone             StepKind = "service_zone"
	StepShippingOption          StepKind = "shipping_option"
	StepStockLocationLink       StepKind = "stock_location_sales_channel_link"
	StepAPIKey                  StepKind = "api_key"
	StepAPIKeyLink              StepKind = "api_key_sales_channel_link"
	StepFile                    StepKind = "file"
	StepCategory                StepKind = "product_category"
	StepProductType             StepKind = "product_type"
	StepCollection              StepKind = "collection"
	StepMaterial                StepKind = "material"
	StepColor                   StepKind = "color"
	StepProduct                 StepKind = "product"
)

// Target is commerce backend seeded by runs.
type Target struct {
	ID        int
	URL       string
	CreatedAt time.Time
}

// Run is seeding process run model.
type Run struct {
	ID               int
	TargetID         int
	CreatedAt        time.Time
	FinishedAt       *time.Time
	IsSuccess        *bool
	StatusMessage    *string
	CreatedEntities  *int32
	ReusedEntities   *int32
	RevertedEntities *int32
	Version          int64
}

// Step is entity created during run, identified by its natural key.
type Step struct {
	ID         int
	RunID      int
	TargetID   int
	Seq        int32
	Kind       StepKind
	Key        string
	ExternalID string
	CreatedAt  time.Time
	RevertedAt *time.Time
}
