package memory

import (
	"context"
	"sync"

	"cattery-cms/internal/domain/waitlist"
)

type waitlistRepo struct {
	mu      sync.RWMutex
	nextID  int64
	entries []waitlist.Entry
}

func NewWaitlistRepo() waitlist.Repository {
	return &waitlistRepo{nextID: 1}
}

func (r *waitlistRepo) Create(ctx context.Context, e waitlist.Entry) (waitlist.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *waitlistRepo) List(ctx context.Context) ([]waitlist.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]waitlist.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *waitlistRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return waitlist.ErrNotFound
}
