package seeder

import (
	"fmt"
	"sync"

	"github.com/MichalMitros/commerce-seeder/internal/platform/models"
)

// registry maps natural keys of created or reused entities to their backend ids.
type registry struct {
	mu  sync.RWMutex
	ids map[models.StepKind]map[string]string
}

func newRegistry() *registry {
	return &registry{ids: make(map[models.StepKind]map[string]string)}
}

func (r *registry) set(kind models.StepKind, key, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids[kind] == nil {
		r.ids[kind] = make(map[string]string)
	}
	r.ids[kind][key] = id
}

func (r *registry) resolve(kind models.StepKind, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.ids[kind][key]
	if !ok {
		return "", fmt.Errorf("%w: %s %q", ErrUnresolvedReference, kind, key)
	}

	return id, nil
}

func (r *registry) resolveAll(kind models.StepKind, keys []string) ([]string, error) {
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		id, err := r.resolve(kind, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
