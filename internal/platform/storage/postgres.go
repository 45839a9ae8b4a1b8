package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is run ledger storing targets, runs and steps.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// StartRun creates new unfinished run of target in database and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, targetURL string, version int64) (*models.Run, error) {
	run := &models.Run{
		Version: version,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		target, err := getTarget(ctx, tx, targetURL)
		if err != nil {
			return fmt.Errorf("can't get target from database: %w", err)
		}

		run.TargetID = int(target.ID)

		lastRun, err := getLastRun(ctx, tx, target.ID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.SeedRun.INSERT(
			table.SeedRun.Version,
			table.SeedRun.TargetID,
		).
			MODEL(newRun).
			RETURNING(table.SeedRun.ID, table.SeedRun.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.SeedRun.AllColumns.Except(table.SeedRun.ID, table.SeedRun.CreatedAt, table.SeedRun.Version)

	result, err := table.SeedRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.SeedRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run %d: %w", run.ID, lo.Ternary(err != nil, err, sql.ErrNoRows))
	}

	return nil
}

// RecordStep appends entity created by run. Step's ID and CreatedAt are set from database.
func (p Postgres) RecordStep(ctx context.Context, step *models.Step) error {
	dbStep := ToDBStep(step)
	err := table.SeedStep.INSERT(table.SeedStep.MutableColumns.Except(table.SeedStep.CreatedAt, table.SeedStep.RevertedAt)).
		MODEL(dbStep).
		RETURNING(table.SeedStep.ID, table.SeedStep.CreatedAt).
		QueryContext(ctx, p.db, dbStep)
	if err != nil {
		return fmt.Errorf("can't insert step into database: %w", err)
	}

	step.ID = int(dbStep.ID)
	step.CreatedAt = dbStep.CreatedAt

	return nil
}

// FindSteps returns not reverted steps of kind recorded for target, keyed by natural key.
// When key was recorded many times, the latest step wins.
func (p Postgres) FindSteps(ctx context.Context, targetID int, kind models.StepKind) (map[string]models.Step, error) {
	var steps []pgmodels.SeedStep
	err := table.SeedStep.SELECT(table.SeedStep.AllColumns).
		WHERE(pg.AND(
			table.SeedStep.TargetID.EQ(pg.Int32(int32(targetID))),
			table.SeedStep.Kind.EQ(pg.String(string(kind))),
			table.SeedStep.RevertedAt.IS_NULL(),
		)).
		ORDER_BY(table.SeedStep.ID.ASC()).
		QueryContext(ctx, p.db, &steps)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get %s steps: %w", kind, err)
	}

	result := make(map[string]models.Step, len(steps))
	for ix := range steps {
		result[steps[ix].Key] = toAppStep(&steps[ix])
	}

	return result, nil
}

// RunSteps returns not reverted steps of run in recording order.
func (p Postgres) RunSteps(ctx context.Context, runID int) ([]models.Step, error) {
	var steps []pgmodels.SeedStep
	err := table.SeedStep.SELECT(table.SeedStep.AllColumns).
		WHERE(pg.AND(
			table.SeedStep.RunID.EQ(pg.Int32(int32(runID))),
			table.SeedStep.RevertedAt.IS_NULL(),
		)).
		ORDER_BY(table.SeedStep.Seq.ASC(), table.SeedStep.ID.ASC()).
		QueryContext(ctx, p.db, &steps)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get run steps: %w", err)
	}

	return lo.Map(steps, func(s pgmodels.SeedStep, _ int) models.Step { return toAppStep(&s) }), nil
}

// MarkReverted sets reverted time of steps.
func (p Postgres) MarkReverted(ctx context.Context, stepIDs []int, revertedAt time.Time) error {
	if len(stepIDs) == 0 {
		return nil
	}

	ids := make([]pg.Expression, 0, len(stepIDs))
	for _, id := range stepIDs {
		ids = append(ids, pg.Int32(int32(id)))
	}

	_, err := table.SeedStep.UPDATE().
		SET(
			table.SeedStep.RevertedAt.SET(pg.TimestampzT(revertedAt)),
		).
		WHERE(table.SeedStep.ID.IN(ids...)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't mark steps reverted: %w", err)
	}

	return nil
}

func getTarget(ctx context.Context, db qrm.DB, url string) (*pgmodels.SeedTarget, error) {
	var target pgmodels.SeedTarget
	err := table.SeedTarget.SELECT(table.SeedTarget.AllColumns).
		WHERE(table.SeedTarget.URL.EQ(pg.String(url))).
		QueryContext(ctx, db, &target)

	if errors.Is(err, qrm.ErrNoRows) {
		return insertTarget(ctx, db, url)
	}

	if err != nil {
		return nil, err
	}

	return &target, nil
}

func insertTarget(ctx context.Context, db qrm.DB, url string) (*pgmodels.SeedTarget, error) {
	target := pgmodels.SeedTarget{
		URL: url,
	}
	err := table.SeedTarget.INSERT(table.SeedTarget.URL).
		MODEL(target).
		RETURNING(table.SeedTarget.AllColumns).
		QueryContext(ctx, db, &target)
	if err != nil {
		return nil, fmt.Errorf("can't add target: %w", err)
	}

	return &target, nil
}

func getLastRun(ctx context.Context, db qrm.DB, targetID int32) (*pgmodels.SeedRun, error) {
	var run pgmodels.SeedRun
	err := table.SeedRun.SELECT(
		table.SeedRun.ID,
		table.SeedRun.CreatedAt,
		table.SeedRun.FinishedAt,
		table.SeedRun.Success,
		table.SeedRun.StatusMessage,
	).
		WHERE(table.SeedRun.TargetID.EQ(pg.Int32(targetID))).
		ORDER_BY(table.SeedRun.CreatedAt.DESC(), table.SeedRun.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
