package seeder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
	"github.com/rs/zerolog"
)

// session is state of single Seed call.
type session struct {
	run    *models.Run
	opts   seedOptions
	logger zerolog.Logger
	refs   *registry

	seq     atomic.Int32
	created atomic.Int32
	reused  atomic.Int32

	mu       sync.Mutex
	previous map[models.StepKind]map[string]models.Step
}

func newSession(run *models.Run, opts seedOptions, logger zerolog.Logger) *session {
	return &session{
		run:      run,
		opts:     opts,
		logger:   logger,
		refs:     newRegistry(),
		previous: make(map[models.StepKind]map[string]models.Step),
	}
}

// reuse registers entity recorded by previous run under key and reports whether it was found.
func (s *Seeder) reuse(ctx context.Context, sess *session, kind models.StepKind, key string) (bool, error) {
	step, found, err := s.lookup(ctx, sess, kind, key)
	if err != nil || !found {
		return false, err
	}

	s.markReused(sess, step)

	return true, nil
}

// lookup returns live step recorded under key by any run of target. It finds nothing when seeding is forced.
func (s *Seeder) lookup(ctx context.Context, sess *session, kind models.StepKind, key string) (models.Step, bool, error) {
	if sess.opts.force {
		return models.Step{}, false, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	steps, loaded := sess.previous[kind]
	if !loaded {
		var err error
		if steps, err = s.storage.FindSteps(ctx, sess.run.TargetID, kind); err != nil {
			return models.Step{}, false, fmt.Errorf("can't get recorded %s steps: %w", kind, err)
		}
		sess.previous[kind] = steps
	}

	step, found := steps[key]

	return step, found, nil
}

func (s *Seeder) markReused(sess *session, step models.Step) {
	sess.refs.set(step.Kind, step.Key, step.ExternalID)
	sess.reused.Add(1)
	sess.logger.Debug().Str("kind", string(step.Kind)).Str("key", step.Key).Str("id", step.ExternalID).Msg("reused entity")
}

// record registers entity created under key and appends it to run ledger.
func (s *Seeder) record(ctx context.Context, sess *session, kind models.StepKind, key, id string) error {
	sess.refs.set(kind, key, id)

	step := &models.Step{
		RunID:      sess.run.ID,
		TargetID:   sess.run.TargetID,
		Seq:        sess.seq.Add(1),
		Kind:       kind,
		Key:        key,
		ExternalID: id,
	}
	if err := s.storage.RecordStep(ctx, step); err != nil {
		return fmt.Errorf("can't record %s %q: %w", kind, key, err)
	}

	sess.created.Add(1)
	sess.logger.Debug().Str("kind", string(kind)).Str("key", key).Str("id", id).Msg("created entity")

	return nil
}

// pending returns items that were not reused from previous runs.
func pending[T any](ctx context.Context, s *Seeder, sess *session, kind models.StepKind, items []T, key func(T) string) ([]T, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		found, err := s.reuse(ctx, sess, kind, key(item))
		if err != nil {
			return nil, err
		}
		if !found {
			result = append(result, item)
		}
	}

	return result, nil
}

// seedBatch creates items not reused from previous runs with single create call.
func seedBatch[T, R any](
	ctx context.Context,
	s *Seeder,
	sess *session,
	kind models.StepKind,
	items []T,
	key func(T) string,
	create func(context.Context, []T) ([]R, error),
	id func(R) string,
) ([]R, error) {
	todo, err := pending(ctx, s, sess, kind, items, key)
	if err != nil || len(todo) == 0 {
		return nil, err
	}

	return createRecorded(ctx, s, sess, kind, todo, key, create, id)
}

// createRecorded creates todo items and records every created entity, also when create call fails halfway.
func createRecorded[T, R any](
	ctx context.Context,
	s *Seeder,
	sess *session,
	kind models.StepKind,
	todo []T,
	key func(T) string,
	create func(context.Context, []T) ([]R, error),
	id func(R) string,
) ([]R, error) {
	created, createErr := create(ctx, todo)
	for ix := range created {
		if err := s.record(ctx, sess, kind, key(todo[ix]), id(created[ix])); err != nil {
			return created, err
		}
	}

	return created, createErr
}

func joinKey(parts ...string) string {
	return strings.Join(parts, "/")
}
