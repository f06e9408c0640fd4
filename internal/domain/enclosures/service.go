package enclosures

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"zoo-arrivals-report/internal/domain/animals"
)

// Roster es lo que el join necesita del servicio de animales.
// Se declara acá para no acoplar enclosures al repo de animals.
type Roster interface {
	List(ctx context.Context) ([]animals.Animal, error)
	AssignEnclosure(ctx context.Context, animalID string, enclosureID int) (animals.Animal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load construye el mapa nombre -> recinto. Nombres duplicados: gana la última fila.
// Devuelve la cantidad de filas leídas (no de nombres distintos).
func (s *Service) Load(ctx context.Context, r io.Reader) (int, error) {
	br := bufio.NewReader(r)

	n := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return n, fmt.Errorf("read enclosures: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}

		if as, ok := ParseLine(line); ok {
			if err := s.repo.Put(ctx, as); err != nil {
				return n, fmt.Errorf("store assignment %q: %w", as.Name, err)
			}
			n++
		}

		if readErr == io.EOF {
			return n, nil
		}
	}
}

// Lookup es match exacto (case-sensitive, sin trim).
func (s *Service) Lookup(ctx context.Context, name string) (int, bool, error) {
	as, ok, err := s.repo.Get(ctx, name)
	if err != nil || !ok {
		return 0, false, err
	}
	return as.EnclosureID, true, nil
}

// Apply asigna recinto a cada animal cuyo nombre aparece en el mapa.
// Devuelve cuántos animales matchearon. Es idempotente con el mismo mapa.
func (s *Service) Apply(ctx context.Context, roster Roster) (int, error) {
	list, err := roster.List(ctx)
	if err != nil {
		return 0, err
	}

	matched := 0
	for _, a := range list {
		id, ok, err := s.Lookup(ctx, a.Name)
		if err != nil {
			return matched, err
		}
		if !ok {
			continue
		}
		if _, err := roster.AssignEnclosure(ctx, a.ID, id); err != nil {
			return matched, fmt.Errorf("assign enclosure to %q: %w", a.Name, err)
		}
		matched++
	}
	return matched, nil
}

func (s *Service) Len(ctx context.Context) (int, error) {
	return s.repo.Len(ctx)
}
