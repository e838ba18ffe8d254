package catalog

import "context"

// Repository asigna el id en Create y devuelve el registro ya persistido.
type Repository[T Record[T]] interface {
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) error
	GetByID(ctx context.Context, id int64) (T, error)
	// List devuelve en orden de creación.
	List(ctx context.Context, f Filter) ([]T, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
