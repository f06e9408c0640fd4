package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"zoo-arrivals-report/internal/domain/animals"
)

var (
	ErrNotFound = errors.New("not found")
)

type animalRepo struct {
	mu    sync.RWMutex
	byID  map[string]animals.Animal
	order []string // orden de llegada
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Add(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = clone(a)
	r.order = append(r.order, a.ID)
	return nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = clone(a)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, ErrNotFound
	}
	return clone(a), nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

// clone evita compartir el puntero de EnclosureID con el llamador.
func clone(a animals.Animal) animals.Animal {
	if a.EnclosureID != nil {
		id := *a.EnclosureID
		a.EnclosureID = &id
	}
	return a
}
