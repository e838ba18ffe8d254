package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("page content not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Get(ctx context.Context, pageName string) (Envelope, error) {
	pageName = strings.TrimSpace(pageName)
	if pageName == "" {
		return Envelope{}, ErrInvalidInput
	}
	e, err := s.repo.Get(ctx, pageName)
	if err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// Put sobrescribe el documento entero. No hay merge ni control de versión.
func (s *Service) Put(ctx context.Context, pageName, raw string) (Envelope, error) {
	pageName = strings.TrimSpace(pageName)
	if pageName == "" {
		return Envelope{}, fmt.Errorf("%w: page_name required", ErrInvalidInput)
	}

	e := Envelope{
		PageName:  pageName,
		Content:   raw,
		UpdatedAt: s.now().UTC(),
	}
	return s.repo.Upsert(ctx, e)
}

// Seed inserta el documento solo si la página no existe todavía.
func (s *Service) Seed(ctx context.Context, pageName string, doc any) (bool, error) {
	raw, err := Encode(doc)
	if err != nil {
		return false, err
	}
	return s.repo.InsertIfMissing(ctx, Envelope{
		PageName:  pageName,
		Content:   raw,
		UpdatedAt: s.now().UTC(),
	})
}
