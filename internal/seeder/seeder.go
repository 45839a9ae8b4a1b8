package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Assets --filename assets.go
//go:generate mockery --name Storage --filename storage.go

// Commerce is commerce backend admin API.
type Commerce interface {
	ListStores(ctx context.Context) ([]models.Store, error)
	UpdateStore(ctx context.Context, id string, update models.StoreUpdate) (*models.Store, error)
	ListSalesChannels(ctx context.Context, name string) ([]models.SalesChannel, error)
	CreateSalesChannels(ctx context.Context, channels []models.SalesChannel) ([]models.SalesChannel, error)
	CreateRegions(ctx context.Context, regions []models.Region) ([]models.Region, error)
	CreateTaxRegions(ctx context.Context, taxRegions []models.TaxRegion) ([]models.TaxRegion, error)
	CreateStockLocations(ctx context.Context, locations []models.StockLocation) ([]models.StockLocation, error)
	LinkFulfillmentProvider(ctx context.Context, stockLocationID, providerID string) error
	LinkSalesChannelsToStockLocation(ctx context.Context, stockLocationID string, salesChannelIDs []string) error
	CreateShippingProfiles(ctx context.Context, profiles []models.ShippingProfile) ([]models.ShippingProfile, error)
	CreateFulfillmentSet(ctx context.Context, stockLocationID string, set models.FulfillmentSet) (*models.FulfillmentSet, error)
	CreateServiceZone(ctx context.Context, fulfillmentSetID string, zone models.ServiceZone) (*models.ServiceZone, error)
	CreateShippingOptions(ctx context.Context, options []models.ShippingOption) ([]models.ShippingOption, error)
	CreateAPIKeys(ctx context.Context, keys []models.APIKey) ([]models.APIKey, error)
	LinkSalesChannelsToAPIKey(ctx context.Context, apiKeyID string, salesChannelIDs []string) error
	CreateProductCategories(ctx context.Context, categories []models.ProductCategory) ([]models.ProductCategory, error)
	CreateProductTypes(ctx context.Context, types []models.ProductType) ([]models.ProductType, error)
	CreateCollections(ctx context.Context, collections []models.Collection) ([]models.Collection, error)
	CreateMaterials(ctx context.Context, materials []models.Material) ([]models.Material, error)
	CreateColors(ctx context.Context, colors []models.Color) ([]models.Color, error)
	CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error)
	Delete(ctx context.Context, kind models.StepKind, id string) error
}

// Assets uploads images and returns references to uploaded files in submission order.
type Assets interface {
	Upload(ctx context.Context, assets []models.Asset) ([]models.File, error)
}

// Clock provides times.
type Clock interface {
	// Timestamp returns UTC unix timestamp in milliseconds, used as run version.
	Timestamp() int64
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is run ledger.
type Storage interface {
	// StartRun creates new run if there is no run for provided target running.
	StartRun(ctx context.Context, targetURL string, version int64) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// RecordStep appends entity created by run.
	RecordStep(ctx context.Context, step *models.Step) error
	// FindSteps returns not reverted steps of kind recorded for target, keyed by natural key.
	FindSteps(ctx context.Context, targetID int, kind models.StepKind) (map[string]models.Step, error)
	// RunSteps returns not reverted steps of run in recording order.
	RunSteps(ctx context.Context, runID int) ([]models.Step, error)
	// MarkReverted sets reverted time of steps.
	MarkReverted(ctx context.Context, stepIDs []int, revertedAt time.Time) error
}

// Option is custom configuration of Seeder.
type Option func(s *Seeder)

// SeedOption is custom configuration of single Seed call.
type SeedOption func(o *seedOptions)

type seedOptions struct {
	force    bool
	rollback bool
}

// Seeder creates demo store data described by catalog in commerce backend.
type Seeder struct {
	target      string
	commerce    Commerce
	assets      Assets
	storage     Storage
	clock       Clock
	logger      zerolog.Logger
	concurrency int
}

// NewSeeder returns new Seeder of target backend.
func NewSeeder(target string, commerce Commerce, assets Assets, storage Storage, ops ...Option) *Seeder {
	s := &Seeder{
		target:      target,
		commerce:    commerce,
		assets:      assets,
		storage:     storage,
		clock:       systemClock{},
		logger:      zerolog.Nop(),
		concurrency: 4,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// Seed runs whole seeding pipeline and returns finished run.
// The first failing step aborts seeding.
func (s *Seeder) Seed(ctx context.Context, catalog *models.Catalog, ops ...SeedOption) (*models.Run, error) {
	var opts seedOptions
	for _, op := range ops {
		op(&opts)
	}

	run, err := s.storage.StartRun(ctx, s.target, s.clock.Timestamp())
	if err != nil {
		return nil, fmt.Errorf("can't start seeding: %w", err)
	}

	logger := s.logger.With().Int("runId", run.ID).Str("target", s.target).Logger()
	logger.Info().Bool("force", opts.force).Msg("seeding started")

	sess := newSession(run, opts, logger)
	err = s.seed(ctx, sess, catalog)

	run.CreatedEntities = lo.ToPtr(sess.created.Load())
	run.ReusedEntities = lo.ToPtr(sess.reused.Load())
	run.RevertedEntities = lo.ToPtr(int32(0))

	if err != nil && opts.rollback {
		reverted, rbErr := s.rollback(context.WithoutCancel(ctx), sess)
		run.RevertedEntities = lo.ToPtr(reverted)
		if rbErr != nil {
			err = fmt.Errorf("can't rollback seeding: %w (rollback reason: %w)", rbErr, err)
		}
	}

	return run, s.finishSeeding(ctx, sess, err)
}

func (s *Seeder) seed(ctx context.Context, sess *session, catalog *models.Catalog) error {
	phases := []struct {
		name string
		fn   func(context.Context, *session, *models.Catalog) error
	}{
		{"store", s.seedStore},
		{"logistics", s.seedLogistics},
		{"fulfillment", s.seedFulfillment},
		{"channels", s.seedChannels},
		{"catalog", s.seedCatalog},
	}

	for _, phase := range phases {
		sess.logger.Info().Str("phase", phase.name).Msgf("seeding %s data", phase.name)
		if err := phase.fn(ctx, sess, catalog); err != nil {
			return err
		}
		sess.logger.Info().Str("phase", phase.name).Msgf("finished seeding %s data", phase.name)
	}

	return nil
}

// rollback deletes entities created by run in reverse creation order and returns number of deleted entities.
func (s *Seeder) rollback(ctx context.Context, sess *session) (int32, error) {
	steps, err := s.storage.RunSteps(ctx, sess.run.ID)
	if err != nil {
		return 0, fmt.Errorf("can't get run steps: %w", err)
	}

	reverted := make([]int, 0, len(steps))
	var deleteErr error
	for _, step := range lo.Reverse(steps) {
		if err := s.commerce.Delete(ctx, step.Kind, step.ExternalID); err != nil {
			deleteErr = err
			break
		}
		reverted = append(reverted, step.ID)
	}

	if err := s.storage.MarkReverted(ctx, reverted, *s.clock.Now()); err != nil {
		return 0, errors.Join(fmt.Errorf("can't mark steps reverted: %w", err), deleteErr)
	}

	sess.logger.Info().Int("reverted", len(reverted)).Msg("seeding rolled back")

	return int32(len(reverted)), deleteErr
}

func (s *Seeder) finishSeeding(ctx context.Context, sess *session, status error) error {
	run := sess.run
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()

	err := s.storage.FinishRun(context.WithoutCancel(ctx), run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish seeding: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed seeding: %w (fail reason: %w)", err, status)
	}

	if status != nil {
		sess.logger.Error().Err(status).Msg("seeding failed")
		return status
	}

	sess.logger.Info().
		Int32("created", *run.CreatedEntities).
		Int32("reused", *run.ReusedEntities).
		Msg("seeding finished")

	return nil
}

// WithClock sets Seeder's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Seeder) {
		s.clock = c
	}
}

// WithLogger sets Seeder's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Seeder) {
		s.logger = logger
	}
}

// WithConcurrency sets maximum number of independent steps run at once. 1 runs all steps sequentially.
func WithConcurrency(n int) Option {
	return func(s *Seeder) {
		s.concurrency = max(n, 1)
	}
}

// Force disables reusing entities created by previous runs, so every run creates all entities again.
func Force(force bool) SeedOption {
	return func(o *seedOptions) {
		o.force = force
	}
}

// Rollback makes failed run delete entities it created.
func Rollback(rollback bool) SeedOption {
	return func(o *seedOptions) {
		o.rollback = rollback
	}
}
