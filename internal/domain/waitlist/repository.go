package waitlist

import "context"

type Repository interface {
	// Create asigna el id.
	Create(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
}
