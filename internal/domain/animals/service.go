package animals

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrEnclosureAlreadySet = errors.New("enclosure already set")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Load lee el archivo de llegadas línea a línea y devuelve cuántos registros cargó.
// Las líneas en blanco se saltan; ninguna línea produce error.
func (s *Service) Load(ctx context.Context, r io.Reader) (int, error) {
	// bufio.Reader en vez de Scanner: sin límite de largo de línea.
	br := bufio.NewReader(r)

	n := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return n, fmt.Errorf("read arrivals: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}

		if a, ok := ParseLine(line); ok {
			a.ID = s.newID()
			if err := s.repo.Add(ctx, a); err != nil {
				return n, fmt.Errorf("store animal %q: %w", a.Name, err)
			}
			n++
		}

		if readErr == io.EOF {
			return n, nil
		}
	}
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// AssignEnclosure setea el recinto una sola vez. Reasignar el mismo id es no-op.
func (s *Service) AssignEnclosure(ctx context.Context, animalID string, enclosureID int) (Animal, error) {
	if strings.TrimSpace(animalID) == "" {
		return Animal{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		return Animal{}, err
	}

	if a.EnclosureID != nil {
		if *a.EnclosureID == enclosureID {
			return a, nil
		}
		return Animal{}, fmt.Errorf("%w: %s has %d, got %d", ErrEnclosureAlreadySet, a.Name, *a.EnclosureID, enclosureID)
	}

	id := enclosureID
	a.EnclosureID = &id
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}
