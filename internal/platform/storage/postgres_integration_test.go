package storage_test

import (
	"context"
	"database/sql"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models/modelstesting"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage"
	pgmodels "github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage/storagetesting"
	"github.com/go-faker/faker/v4"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	targetURL := faker.URL()
	version := rand.Int63()

	tests := map[string]struct {
		storedTarget *pgmodels.SeedTarget
		storedRuns   []pgmodels.SeedRun
		wantRun      *models.Run
		wantErr      error
	}{
		"new target": {
			wantRun: &models.Run{
				Version: version,
			},
		},
		"first run": {
			storedTarget: &pgmodels.SeedTarget{
				ID:  123,
				URL: targetURL,
			},
			wantRun: &models.Run{
				TargetID: 123,
				Version:  version,
			},
		},
		"after successful run": {
			storedTarget: &pgmodels.SeedTarget{
				ID:  123,
				URL: targetURL,
			},
			storedRuns: []pgmodels.SeedRun{
				{
					TargetID:   123,
					Version:    version - 1,
					Success:    lo.ToPtr(true),
					FinishedAt: lo.ToPtr(time.Now()),
				},
			},
			wantRun: &models.Run{
				TargetID: 123,
				Version:  version,
			},
		},
		"after failed run": {
			storedTarget: &pgmodels.SeedTarget{
				ID:  123,
				URL: targetURL,
			},
			storedRuns: []pgmodels.SeedRun{
				{
					TargetID:   123,
					Version:    version - 1,
					Success:    lo.ToPtr(false),
					FinishedAt: lo.ToPtr(time.Now()),
				},
			},
			wantRun: &models.Run{
				TargetID: 123,
				Version:  version,
			},
		},
		"already running error": {
			storedTarget: &pgmodels.SeedTarget{
				ID:  123,
				URL: targetURL,
			},
			storedRuns: []pgmodels.SeedRun{
				{
					TargetID: 123,
					Version:  version - 1,
				},
			},
			wantErr: platform.ErrAlreadyRunning,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			if tt.storedTarget != nil {
				storagetesting.InsertTargets(s.T(), s.DB, *tt.storedTarget)
			}

			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			run, err := storage.NewPostgres(s.DB).StartRun(context.TODO(), targetURL, version)

			if tt.wantErr == nil {
				s.Require().NoError(err, "shouldn't return any error")
				assertRun(s.T(), tt.wantRun, run)
				assertRun(s.T(), tt.wantRun, storagetesting.GetLatestRun(s.T(), s.DB, storagetesting.GetTargetID(s.T(), s.DB, targetURL)))
			} else {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
				s.Nil(run, "shouldn't return run")
			}
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	targetID := int32(rand.Intn(1000) + 1)
	finishedAt := time.Now().UTC().Truncate(time.Millisecond)

	tests := map[string]struct {
		run     models.Run
		wantErr bool
	}{
		"successful run": {
			run: models.Run{
				TargetID:         int(targetID),
				FinishedAt:       &finishedAt,
				IsSuccess:        lo.ToPtr(true),
				StatusMessage:    lo.ToPtr("ok"),
				CreatedEntities:  lo.ToPtr[int32](42),
				ReusedEntities:   lo.ToPtr[int32](0),
				RevertedEntities: lo.ToPtr[int32](0),
			},
		},
		"failed run": {
			run: models.Run{
				TargetID:         int(targetID),
				FinishedAt:       &finishedAt,
				IsSuccess:        lo.ToPtr(false),
				StatusMessage:    lo.ToPtr("can't create regions"),
				CreatedEntities:  lo.ToPtr[int32](3),
				ReusedEntities:   lo.ToPtr[int32](1),
				RevertedEntities: lo.ToPtr[int32](3),
			},
		},
		"not existing run error": {
			run: models.Run{
				ID:       -1,
				TargetID: int(targetID),
			},
			wantErr: true,
		},
		"not existing target error": {
			run: models.Run{
				TargetID: -1,
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertTargets(s.T(), s.DB, pgmodels.SeedTarget{ID: targetID, URL: faker.URL()})
			ids := storagetesting.InsertRuns(s.T(), s.DB, pgmodels.SeedRun{TargetID: targetID, Version: 1})
			if tt.run.ID == 0 {
				tt.run.ID = ids[0]
			}

			err := storage.NewPostgres(s.DB).FinishRun(context.TODO(), &tt.run)

			if tt.wantErr {
				s.Error(err, "should return error")
				return
			}

			s.Require().NoError(err, "shouldn't return any error")

			runs := storagetesting.GetRuns(s.T(), s.DB)
			s.Require().Len(runs, 1)
			s.Equal(int64(1), runs[0].Version, "shouldn't update version")
			s.Equal(tt.run.IsSuccess, runs[0].Success)
			s.Equal(tt.run.StatusMessage, runs[0].StatusMessage)
			s.Equal(tt.run.CreatedEntities, runs[0].CreatedEntities)
			s.Equal(tt.run.ReusedEntities, runs[0].ReusedEntities)
			s.Equal(tt.run.RevertedEntities, runs[0].RevertedEntities)
			s.Require().NotNil(runs[0].FinishedAt)
			s.True(finishedAt.Equal(*runs[0].FinishedAt), "should store finish time")
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationSteps() {
	storagetesting.CleanupData(s.T(), s.DB)
	defer storagetesting.CleanupData(s.T(), s.DB)

	ctx := context.TODO()
	post := storage.NewPostgres(s.DB)

	run, err := post.StartRun(ctx, faker.URL(), 1)
	s.Require().NoError(err)

	newStep := func(seq int32, kind models.StepKind, key string) models.Step {
		return modelstesting.FakeStep(func(st *models.Step) {
			st.RunID, st.TargetID, st.Seq, st.Kind, st.Key = run.ID, run.TargetID, seq, kind, key
		})
	}

	steps := []models.Step{
		newStep(1, models.StepMaterial, "リネン"),
		newStep(2, models.StepMaterial, "レザー"),
		newStep(3, models.StepColor, "リネン/ネイビー"),
		newStep(4, models.StepMaterial, "リネン"),
	}
	for ix := range steps {
		s.Require().NoError(post.RecordStep(ctx, &steps[ix]))
		s.NotZero(steps[ix].ID, "should set step id")
		s.NotZero(steps[ix].CreatedAt.UnixMilli(), "should set step creation time")
	}

	s.Run("find steps", func() {
		found, err := post.FindSteps(ctx, run.TargetID, models.StepMaterial)

		s.Require().NoError(err)
		s.Require().Len(found, 2)
		s.Equal(steps[3].ExternalID, found["リネン"].ExternalID, "latest step should win")
		s.Equal(steps[1].ExternalID, found["レザー"].ExternalID)
	})

	s.Run("find steps of other target", func() {
		found, err := post.FindSteps(ctx, run.TargetID+1, models.StepMaterial)

		s.Require().NoError(err)
		s.Empty(found)
	})

	s.Run("run steps", func() {
		found, err := post.RunSteps(ctx, run.ID)

		s.Require().NoError(err)
		assertSteps(s.T(), steps, found)
	})

	s.Run("mark reverted", func() {
		revertedAt := time.Now()
		s.Require().NoError(post.MarkReverted(ctx, []int{steps[0].ID, steps[3].ID}, revertedAt))
		s.Require().NoError(post.MarkReverted(ctx, nil, revertedAt), "should accept empty ids")

		found, err := post.RunSteps(ctx, run.ID)
		s.Require().NoError(err)
		assertSteps(s.T(), []models.Step{steps[1], steps[2]}, found)

		materials, err := post.FindSteps(ctx, run.TargetID, models.StepMaterial)
		s.Require().NoError(err)
		s.NotContains(materials, "リネン", "should skip reverted steps")

		stored := storagetesting.GetSteps(s.T(), s.DB)
		s.Require().Len(stored, 4)
		s.NotNil(stored[0].RevertedAt, "should keep reverted steps")
	})

	s.Run("steps of previous run", func() {
		previous := storagetesting.InsertRuns(s.T(), s.DB, pgmodels.SeedRun{
			TargetID:   int32(run.TargetID),
			FinishedAt: lo.ToPtr(time.Now()),
			Success:    lo.ToPtr(false),
			Version:    0,
		})
		revertedAt := time.Now()
		storagetesting.InsertSteps(s.T(), s.DB,
			*storage.ToDBStep(&models.Step{
				RunID: previous[0], TargetID: run.TargetID, Seq: 1,
				Kind: models.StepColor, Key: "レザー/ブラウン", ExternalID: "fashion_colors_live",
			}),
			*storage.ToDBStep(&models.Step{
				RunID: previous[0], TargetID: run.TargetID, Seq: 2,
				Kind: models.StepColor, Key: "レザー/ブラック", ExternalID: "fashion_colors_reverted",
				RevertedAt: &revertedAt,
			}),
		)

		colors, err := post.FindSteps(ctx, run.TargetID, models.StepColor)
		s.Require().NoError(err)
		s.Len(colors, 2, "should find live steps of every run of target")
		s.Equal("fashion_colors_live", colors["レザー/ブラウン"].ExternalID)
		s.Equal(steps[2].ExternalID, colors["リネン/ネイビー"].ExternalID)
		s.NotContains(colors, "レザー/ブラック", "should skip reverted steps of previous run")

		found, err := post.RunSteps(ctx, run.ID)
		s.Require().NoError(err)
		assertSteps(s.T(), []models.Step{steps[1], steps[2]}, found)

		previousSteps, err := post.RunSteps(ctx, previous[0])
		s.Require().NoError(err)
		s.Require().Len(previousSteps, 1)
		s.Equal("fashion_colors_live", previousSteps[0].ExternalID)
	})
}

// assertRun is a helper test function to assert run.
func assertRun(t *testing.T, expected, actual *models.Run) {
	t.Helper()

	if expected == nil {
		require.Nil(t, actual, "run should be nil")
		return
	}

	require.NotNil(t, actual, "run should not be nil")

	require.NotZero(t, actual.TargetID, "run should have target id")
	require.NotZero(t, actual.ID, "run should have id")
	require.NotZero(t, actual.CreatedAt.UnixMilli(), "run should have \"created at\" set")

	got := *actual
	got.CreatedAt = time.Time{}
	got.ID = 0
	if expected.TargetID == 0 {
		got.TargetID = 0
	}

	assert.Equal(t, *expected, got, "run has incorrect values")
}

// assertSteps is a helper test function to assert steps ignoring database timestamps.
func assertSteps(t *testing.T, expected, actual []models.Step) {
	t.Helper()

	require.Len(t, actual, len(expected), "steps slice should have correct length")

	strip := func(steps []models.Step) []models.Step {
		steps = slices.Clone(steps)
		for ix := range steps {
			steps[ix].CreatedAt = time.Time{}
			steps[ix].RevertedAt = nil
		}
		return steps
	}

	assert.Equal(t, strip(expected), strip(actual), "steps have incorrect values")
}
