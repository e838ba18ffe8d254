package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken cubre token ausente, mal formado, con firma inválida o vencido.
var ErrInvalidToken = errors.New("invalid token")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens opacos para un sujeto.
type TokenIssuer interface {
	Issue(ctx context.Context, subject string) (Token, error)
}
