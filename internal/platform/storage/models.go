package storage

import (
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"

	pgmodels "github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.Run) *pgmodels.SeedRun {
	return &pgmodels.SeedRun{
		Version:          run.Version,
		TargetID:         int32(run.TargetID),
		FinishedAt:       run.FinishedAt,
		Success:          run.IsSuccess,
		StatusMessage:    run.StatusMessage,
		CreatedEntities:  run.CreatedEntities,
		ReusedEntities:   run.ReusedEntities,
		RevertedEntities: run.RevertedEntities,
	}
}

// ToDBStep converts models.Step into postgres step model.
func ToDBStep(step *models.Step) *pgmodels.SeedStep {
	return &pgmodels.SeedStep{
		ID:         int32(step.ID),
		RunID:      int32(step.RunID),
		TargetID:   int32(step.TargetID),
		Seq:        step.Seq,
		Kind:       string(step.Kind),
		Key:        step.Key,
		ExternalID: step.ExternalID,
		CreatedAt:  step.CreatedAt,
		RevertedAt: step.RevertedAt,
	}
}

func toAppStep(step *pgmodels.SeedStep) models.Step {
	return models.Step{
		ID:         int(step.ID),
		RunID:      int(step.RunID),
		TargetID:   int(step.TargetID),
		Seq:        step.Seq,
		Kind:       models.StepKind(step.Kind),
		Key:        step.Key,
		ExternalID: step.ExternalID,
		CreatedAt:  step.CreatedAt,
		RevertedAt: step.RevertedAt,
	}
}
