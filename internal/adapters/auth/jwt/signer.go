package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattery-cms/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("jwt signer not configured")

type Config struct {
	SecretKey string
	TTL       time.Duration
}

// Signer implementa auth.TokenIssuer y auth.AuthVerifier con HS256.
// No hay revocación server-side: el token vale hasta que expira.
type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewSigner(cfg Config) (*Signer, error) {
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, ErrNotConfigured
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{
		key: []byte(key),
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (s *Signer) Issue(ctx context.Context, subject string) (auth.Token, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return auth.Token{}, errors.New("jwt: subject required")
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := gojwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(exp),
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return auth.Token{}, fmt.Errorf("jwt: sign: %w", err)
	}
	return auth.Token{Value: signed, ExpiresAt: exp}, nil
}

func (s *Signer) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var rc gojwt.RegisteredClaims
	_, err := gojwt.ParseWithClaims(token, &rc, func(t *gojwt.Token) (any, error) {
		return s.key, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	if strings.TrimSpace(rc.Subject) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", auth.ErrInvalidToken)
	}

	c := auth.Claims{
		Subject: rc.Subject,
		TokenID: rc.ID,
	}
	if rc.IssuedAt != nil {
		c.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
