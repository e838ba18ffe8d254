package catalog

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service es el CRUD genérico; se instancia una vez por colección (kittens, parents, products).
type Service[T Record[T]] struct {
	repo Repository[T]
	now  func() time.Time
}

func NewService[T Record[T]](repo Repository[T]) *Service[T] {
	return &Service[T]{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service[T]) List(ctx context.Context, f Filter) ([]T, error) {
	return s.repo.List(ctx, f)
}

func (s *Service[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	if id <= 0 {
		return zero, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create ignora cualquier id que venga en rec: el id lo asigna el repositorio.
func (s *Service[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}
	return s.repo.Create(ctx, rec.WithMeta(0, s.now().UTC()))
}

// Update es reemplazo completo (PUT). El id y created_at se conservan del registro existente.
func (s *Service[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	var zero T
	current, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	updated := rec.WithMeta(id, current.GetCreatedAt())
	if err := s.repo.Update(ctx, updated); err != nil {
		return zero, err
	}
	return updated, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SeedIfEmpty crea los registros solo si la colección está vacía. Devuelve cuántos creó.
func (s *Service[T]) SeedIfEmpty(ctx context.Context, recs []T) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil || n > 0 {
		return 0, err
	}
	for i, rec := range recs {
		if _, err := s.Create(ctx, rec); err != nil {
			return i, err
		}
	}
	return len(recs), nil
}
