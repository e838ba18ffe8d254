package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cattery-cms/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength se cuenta en caracteres.
	MinPasswordLength = 6
	// MaxPasswordBytes es el límite de bcrypt.
	MaxPasswordBytes = 72
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("setting not found")
	ErrUnauthorized = errors.New("unauthorized")

	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordBytes)
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
	cost   int
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		cost:   bcrypt.DefaultCost,
	}
}

// Login compara contra el hash guardado y emite un token para el admin.
// Sin hash guardado ninguna contraseña es válida.
func (s *Service) Login(ctx context.Context, password string) (auth.Token, error) {
	ok, err := s.matches(ctx, password)
	if err != nil {
		return auth.Token{}, err
	}
	if !ok {
		return auth.Token{}, ErrUnauthorized
	}
	return s.issuer.Issue(ctx, auth.SubjectAdmin)
}

// ChangePassword: la actual tiene que coincidir; la nueva, mínimo 6 caracteres.
// Los tokens ya emitidos siguen valiendo hasta que expiran.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	ok, err := s.matches(ctx, current)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	if err := checkPassword(next); err != nil {
		return err
	}
	return s.store(ctx, next)
}

// EnsurePassword guarda el hash de fallback sólo si todavía no hay uno.
func (s *Service) EnsurePassword(ctx context.Context, fallback string) (bool, error) {
	_, err := s.repo.Get(ctx, KeyPassword)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	if strings.TrimSpace(fallback) == "" {
		return false, fmt.Errorf("%w: empty default password", ErrInvalidInput)
	}
	if err := s.store(ctx, fallback); err != nil {
		return false, err
	}
	return true, nil
}

// ResetPassword pisa el hash sin pedir la contraseña actual (uso desde CLI).
func (s *Service) ResetPassword(ctx context.Context, password string) error {
	if err := checkPassword(password); err != nil {
		return err
	}
	return s.store(ctx, password)
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func (s *Service) matches(ctx context.Context, password string) (bool, error) {
	hash, err := s.repo.Get(ctx, KeyPassword)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Service) store(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrPasswordTooLong
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Set(ctx, KeyPassword, string(hash))
}
