package memory

import (
	"context"
	"sync"

	"cattery-cms/internal/domain/admin"
)

type settingsRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSettingsRepo() admin.Repository {
	return &settingsRepo{values: map[string]string{}}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", admin.ErrNotFound
	}
	return v, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
	return nil
}
