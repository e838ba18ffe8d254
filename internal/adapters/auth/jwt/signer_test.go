package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	"cattery-cms/internal/ports/auth"
)

func TestSigner_IssueAndVerify(t *testing.T) {
	s, err := NewSigner(Config{SecretKey: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}

	tok, err := s.Issue(context.Background(), auth.SubjectAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok.Value == "" {
		t.Fatalf("expected token value")
	}

	claims, err := s.Verify(context.Background(), tok.Value)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != auth.SubjectAdmin || claims.TokenID == "" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestSigner_RejectsExpired(t *testing.T) {
	s, _ := NewSigner(Config{SecretKey: "test-secret", TTL: time.Hour})

	issuedAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issuedAt }
	tok, err := s.Issue(context.Background(), auth.SubjectAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := s.Verify(context.Background(), tok.Value); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSigner_RejectsForeignSignatureAndGarbage(t *testing.T) {
	a, _ := NewSigner(Config{SecretKey: "key-a"})
	b, _ := NewSigner(Config{SecretKey: "key-b"})

	tok, _ := a.Issue(context.Background(), auth.SubjectAdmin)
	if _, err := b.Verify(context.Background(), tok.Value); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for other key, got %v", err)
	}
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := a.Verify(context.Background(), raw); !errors.Is(err, auth.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestNewSigner_RequiresKey(t *testing.T) {
	if _, err := NewSigner(Config{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
