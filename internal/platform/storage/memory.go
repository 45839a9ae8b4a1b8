package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MichalMitros/commerce-seeder/internal/platform"
	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/samber/lo"
)

// Memory is in-process run ledger. It is used when no database is configured,
// so replay protection lasts only as long as the process.
type Memory struct {
	mu      sync.Mutex
	targets map[string]models.Target
	runs    []models.Run
	steps   []models.Step
}

// NewMemory returns new empty Memory.
func NewMemory() *Memory {
	return &Memory{
		targets: make(map[string]models.Target),
	}
}

// StartRun creates new unfinished run of target and returns it.
// It returns ErrAlreadyRunning if previous run is not finished yet.
func (m *Memory) StartRun(_ context.Context, targetURL string, version int64) (*models.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.targets[targetURL]
	if !ok {
		target = models.Target{ID: len(m.targets) + 1, URL: targetURL, CreatedAt: time.Now()}
		m.targets[targetURL] = target
	}

	last, _, found := lo.FindLastIndexOf(m.runs, func(r models.Run) bool { return r.TargetID == target.ID })
	if found && last.FinishedAt == nil && last.IsSuccess == nil {
		return nil, fmt.Errorf("can't add run: %w", platform.ErrAlreadyRunning)
	}

	run := models.Run{
		ID:        len(m.runs) + 1,
		TargetID:  target.ID,
		CreatedAt: time.Now(),
		Version:   version,
	}
	m.runs = append(m.runs, run)

	return &run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (m *Memory) FinishRun(_ context.Context, run *models.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ix := slices.IndexFunc(m.runs, func(r models.Run) bool { return r.ID == run.ID })
	if ix < 0 {
		return fmt.Errorf("can't update run %d: not found", run.ID)
	}

	stored := &m.runs[ix]
	stored.FinishedAt = run.FinishedAt
	stored.IsSuccess = run.IsSuccess
	stored.StatusMessage = run.StatusMessage
	stored.CreatedEntities = run.CreatedEntities
	stored.ReusedEntities = run.ReusedEntities
	stored.RevertedEntities = run.RevertedEntities

	return nil
}

// RecordStep appends entity created by run.
func (m *Memory) RecordStep(_ context.Context, step *models.Step) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	step.ID = len(m.steps) + 1
	step.CreatedAt = time.Now()
	m.steps = append(m.steps, *step)

	return nil
}

// FindSteps returns not reverted steps of kind recorded for target, keyed by natural key.
func (m *Memory) FindSteps(_ context.Context, targetID int, kind models.StepKind) (map[string]models.Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[string]models.Step)
	for _, step := range m.steps {
		if step.TargetID == targetID && step.Kind == kind && step.RevertedAt == nil {
			result[step.Key] = step
		}
	}

	return result, nil
}

// RunSteps returns not reverted steps of run in recording order.
func (m *Memory) RunSteps(_ context.Context, runID int) ([]models.Step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	steps := lo.Filter(m.steps, func(s models.Step, _ int) bool { return s.RunID == runID && s.RevertedAt == nil })
	slices.SortStableFunc(steps, func(a, b models.Step) int { return int(a.Seq - b.Seq) })

	return steps, nil
}

// MarkReverted sets reverted time of steps.
func (m *Memory) MarkReverted(_ context.Context, stepIDs []int, revertedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ix := range m.steps {
		if slices.Contains(stepIDs, m.steps[ix].ID) {
			m.steps[ix].RevertedAt = lo.ToPtr(revertedAt)
		}
	}

	return nil
}
