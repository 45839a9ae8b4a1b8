package storagetesting

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	pgmodels "github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/commerce-seeder/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// BeginTx begins DB transaction. Returns function to roll it back.
func BeginTx(t *testing.T, db *sql.DB) (*sql.Tx, func()) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatal("begin transaction", err)
	}

	rollback := func() {
		if err := tx.Rollback(); err != nil {
			t.Fatal("can't rollback transaction", err)
		}
	}

	return tx, rollback
}

// InsertTargets is a helper test function to insert targets with explicit IDs.
func InsertTargets(t *testing.T, exc qrm.Executable, targets ...pgmodels.SeedTarget) {
	t.Helper()

	if len(targets) == 0 {
		return
	}

	_, err := table.SeedTarget.INSERT(table.SeedTarget.ID, table.SeedTarget.URL).MODELS(targets).Exec(exc)
	if err != nil {
		t.Fatal("can't insert targets", err)
	}
}

// InsertRuns is a helper test function to insert runs. IDs are returned in insertion order.
func InsertRuns(t *testing.T, exc qrm.Queryable, runs ...pgmodels.SeedRun) []int {
	t.Helper()

	if len(runs) == 0 {
		return nil
	}

	var inserted []pgmodels.SeedRun
	err := table.SeedRun.INSERT(table.SeedRun.AllColumns.Except(table.SeedRun.ID, table.SeedRun.CreatedAt)).
		MODELS(runs).
		RETURNING(table.SeedRun.ID).
		Query(exc, &inserted)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}

	ids := make([]int, 0, len(inserted))
	for _, run := range inserted {
		ids = append(ids, int(run.ID))
	}

	return ids
}

// InsertSteps is a helper test function to insert steps.
func InsertSteps(t *testing.T, exc qrm.Executable, steps ...pgmodels.SeedStep) {
	t.Helper()

	if len(steps) == 0 {
		return
	}

	_, err := table.SeedStep.INSERT(table.SeedStep.AllColumns.Except(table.SeedStep.ID, table.SeedStep.CreatedAt)).
		MODELS(steps).
		Exec(exc)
	if err != nil {
		t.Fatal("can't insert steps", err)
	}
}

// GetRuns is a helper test function to get all runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SeedRun {
	t.Helper()

	runs := []pgmodels.SeedRun{}
	err := table.SeedRun.SELECT(table.SeedRun.AllColumns).
		WHERE(table.SeedRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetSteps is a helper test function to get all steps ordered by ID.
func GetSteps(t *testing.T, queryable qrm.Queryable) []pgmodels.SeedStep {
	t.Helper()

	steps := []pgmodels.SeedStep{}
	err := table.SeedStep.SELECT(table.SeedStep.AllColumns).
		WHERE(table.SeedStep.ID.IS_NOT_NULL()).
		ORDER_BY(table.SeedStep.ID.ASC()).
		Query(queryable, &steps)
	if err != nil {
		t.Fatal("can't get steps", err)
	}

	return steps
}

// GetTargetID is a helper test function to get target ID by URL. Returns 0 when target doesn't exist.
func GetTargetID(t *testing.T, queryable qrm.Queryable, url string) int {
	t.Helper()

	var target pgmodels.SeedTarget
	err := table.SeedTarget.SELECT(table.SeedTarget.ID).
		WHERE(table.SeedTarget.URL.EQ(pg.String(url))).
		Query(queryable, &target)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get target ID", err)
	}

	return int(target.ID)
}

// GetLatestRun is a helper test function to get latest run by target ID. It returns nil if target has no runs.
func GetLatestRun(t *testing.T, queryable qrm.Queryable, targetID int) *models.Run {
	t.Helper()

	var runs []pgmodels.SeedRun
	err := table.SeedRun.SELECT(table.SeedRun.AllColumns).
		WHERE(table.SeedRun.TargetID.EQ(pg.Int32(int32(targetID)))).
		ORDER_BY(table.SeedRun.CreatedAt.DESC(), table.SeedRun.ID.DESC()).
		LIMIT(1).
		Query(queryable, &runs)

	if err != nil {
		t.Fatal("can't get latest run", err)
	}

	if len(runs) == 0 {
		return nil
	}

	return &models.Run{
		ID:               int(runs[0].ID),
		TargetID:         int(runs[0].TargetID),
		CreatedAt:        runs[0].CreatedAt,
		FinishedAt:       runs[0].FinishedAt,
		IsSuccess:        runs[0].Success,
		StatusMessage:    runs[0].StatusMessage,
		CreatedEntities:  runs[0].CreatedEntities,
		ReusedEntities:   runs[0].ReusedEntities,
		RevertedEntities: runs[0].RevertedEntities,
		Version:          runs[0].Version,
	}
}

// CleanupData deletes all ledger data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.SeedStep.DELETE().WHERE(table.SeedStep.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete steps data", err)
	}

	_, err = table.SeedRun.DELETE().WHERE(table.SeedRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.SeedTarget.DELETE().WHERE(table.SeedTarget.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete targets data", err)
	}
}
