package enclosures

import "context"

// Repository es el mapa nombre -> recinto. Put con un nombre existente sobrescribe.
type Repository interface {
	Put(ctx context.Context, a Assignment) error
	Get(ctx context.Context, name string) (Assignment, bool, error)
	Len(ctx context.Context) (int, error)
}
