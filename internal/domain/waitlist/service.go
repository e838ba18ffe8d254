package waitlist

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("entry not found")
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

type AppendInput struct {
	Name        string
	Email       string
	Phone       string
	Preferences string
}

// Append es público (sin auth). id y created_at los pone el servidor.
func (s *Service) Append(ctx context.Context, in AppendInput) (Entry, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" {
		return Entry{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	// se guarda sólo la dirección: "Jo <jo@x.com>" queda "jo@x.com"
	addr, err := mail.ParseAddress(email)
	if err != nil || !strings.Contains(addr.Address, "@") {
		return Entry{}, fmt.Errorf("%w: valid email required", ErrInvalidInput)
	}
	if phone == "" {
		return Entry{}, fmt.Errorf("%w: phone required", ErrInvalidInput)
	}

	return s.repo.Create(ctx, Entry{
		Name:        name,
		Email:       addr.Address,
		Phone:       phone,
		Preferences: strings.TrimSpace(in.Preferences),
		CreatedAt:   s.now().UTC(),
	})
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
