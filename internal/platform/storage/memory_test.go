package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models/modelstesting"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitMemoryRuns(t *testing.T) {
	ctx := context.TODO()
	mem := storage.NewMemory()
	url := faker.URL()

	run, err := mem.StartRun(ctx, url, 7)
	require.NoError(t, err)
	assert.NotZero(t, run.ID)
	assert.NotZero(t, run.TargetID)
	assert.Equal(t, int64(7), run.Version)

	_, err = mem.StartRun(ctx, url, 8)
	assert.ErrorIs(t, err, platform.ErrAlreadyRunning, "should refuse second unfinished run")

	other, err := mem.StartRun(ctx, faker.URL(), 1)
	require.NoError(t, err, "should allow runs of other targets")
	assert.NotEqual(t, run.TargetID, other.TargetID)

	run.FinishedAt = lo.ToPtr(time.Now())
	run.IsSuccess = lo.ToPtr(true)
	require.NoError(t, mem.FinishRun(ctx, run))

	next, err := mem.StartRun(ctx, url, 8)
	require.NoError(t, err)
	assert.Equal(t, run.TargetID, next.TargetID, "should reuse target")

	assert.Error(t, mem.FinishRun(ctx, &models.Run{ID: 999}))
}

func TestUnitMemorySteps(t *testing.T) {
	ctx := context.TODO()
	mem := storage.NewMemory()

	run, err := mem.StartRun(ctx, faker.URL(), 1)
	require.NoError(t, err)

	first := modelstesting.FakeStep(func(s *models.Step) {
		s.RunID, s.TargetID, s.Seq, s.Kind, s.Key = run.ID, run.TargetID, 2, models.StepMaterial, "リネン"
	})
	second := modelstesting.FakeStep(func(s *models.Step) {
		s.RunID, s.TargetID, s.Seq, s.Kind, s.Key = run.ID, run.TargetID, 1, models.StepMaterial, "レザー"
	})
	color := modelstesting.FakeStep(func(s *models.Step) {
		s.RunID, s.TargetID, s.Seq, s.Kind, s.Key = run.ID, run.TargetID, 3, models.StepColor, "リネン/ネイビー"
	})
	for _, step := range []*models.Step{&first, &second, &color} {
		require.NoError(t, mem.RecordStep(ctx, step))
		assert.NotZero(t, step.ID)
	}

	materials, err := mem.FindSteps(ctx, run.TargetID, models.StepMaterial)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Step{"リネン": first, "レザー": second}, materials)

	steps, err := mem.RunSteps(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Step{second, first, color}, steps, "should order steps by sequence")

	require.NoError(t, mem.MarkReverted(ctx, []int{first.ID, color.ID}, time.Now()))

	steps, err = mem.RunSteps(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Step{second}, steps, "should skip reverted steps")

	materials, err = mem.FindSteps(ctx, run.TargetID, models.StepMaterial)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Step{"レザー": second}, materials)
}
