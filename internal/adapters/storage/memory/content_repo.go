package memory

import (
	"context"
	"strings"
	"sync"

	"cattery-cms/internal/domain/content"
)

type contentRepo struct {
	mu     sync.RWMutex
	nextID int64
	byPage map[string]content.Envelope
}

func NewContentRepo() content.Repository {
	return &contentRepo{
		nextID: 1,
		byPage: make(map[string]content.Envelope),
	}
}

func (r *contentRepo) Get(ctx context.Context, pageName string) (content.Envelope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byPage[pageName]
	if !ok {
		return content.Envelope{}, content.ErrNotFound
	}
	return e, nil
}

func (r *contentRepo) Upsert(ctx context.Context, e content.Envelope) (content.Envelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.PageName) == "" {
		return content.Envelope{}, content.ErrInvalidInput
	}
	if prev, ok := r.byPage[e.PageName]; ok {
		e.ID = prev.ID
	} else {
		e.ID = r.assignID()
	}
	r.byPage[e.PageName] = e
	return e, nil
}

// assignID asume el lock tomado.
func (r *contentRepo) assignID() int64 {
	id := r.nextID
	r.nextID++
	return id
}

func (r *contentRepo) InsertIfMissing(ctx context.Context, e content.Envelope) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPage[e.PageName]; exists {
		return false, nil
	}
	e.ID = r.assignID()
	r.byPage[e.PageName] = e
	return true, nil
}
