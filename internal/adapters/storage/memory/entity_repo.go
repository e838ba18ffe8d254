package memory

import (
	"context"
	"sync"

	"cattery-cms/internal/domain/catalog"
)

// entityRepo guarda registros en orden de inserción; los ids son incrementales y no se reutilizan.
type entityRepo[T catalog.Record[T]] struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	byID   map[int64]T
}

func NewEntityRepo[T catalog.Record[T]]() catalog.Repository[T] {
	return &entityRepo[T]{
		nextID: 1,
		byID:   make(map[int64]T),
	}
}

func (r *entityRepo[T]) Create(ctx context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	rec = rec.WithMeta(id, rec.GetCreatedAt())
	r.byID[id] = rec
	r.order = append(r.order, id)
	return rec, nil
}

func (r *entityRepo[T]) Update(ctx context.Context, rec T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.GetID()]; !ok {
		return catalog.ErrNotFound
	}
	r.byID[rec.GetID()] = rec
	return nil
}

func (r *entityRepo[T]) GetByID(ctx context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, catalog.ErrNotFound
	}
	return rec, nil
}

func (r *entityRepo[T]) List(ctx context.Context, f catalog.Filter) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		rec := r.byID[id]
		if rec.Matches(f) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *entityRepo[T]) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *entityRepo[T]) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
