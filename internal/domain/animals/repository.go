package animals

import "context"

// Repository guarda el roster de la corrida. List respeta el orden de inserción.
type Repository interface {
	Add(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}
