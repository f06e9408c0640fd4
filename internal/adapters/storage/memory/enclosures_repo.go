package memory

import (
	"context"
	"sync"

	"zoo-arrivals-report/internal/domain/enclosures"
)

type enclosureRepo struct {
	mu     sync.RWMutex
	byName map[string]enclosures.Assignment
}

func NewEnclosureRepo() enclosures.Repository {
	return &enclosureRepo{
		byName: make(map[string]enclosures.Assignment),
	}
}

// Put sobrescribe: la última fila con el mismo nombre gana.
func (r *enclosureRepo) Put(ctx context.Context, a enclosures.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[a.Name] = a
	return nil
}

func (r *enclosureRepo) Get(ctx context.Context, name string) (enclosures.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	return a, ok, nil
}

func (r *enclosureRepo) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName), nil
}
