package server

import (
	"errors"
	"testing"
	"time"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("secret-1", time.Hour)

	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	user, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if user != "alice" {
		t.Fatalf("expected alice, got %q", user)
	}
}

func TestTokens_RejectsEmptyUsername(t *testing.T) {
	tokens := NewTokens("secret-1", time.Hour)
	if _, err := tokens.Issue("  "); err == nil {
		t.Fatalf("expected error for empty username")
	}
}

func TestTokens_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-1", time.Hour)
	verifier := NewTokens("secret-2", time.Hour)

	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken, got %v", err)
	}
}

func TestTokens_RejectsExpired(t *testing.T) {
	tokens := NewTokens("secret-1", time.Minute)

	past := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return past }
	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken for expired token, got %v", err)
	}
}

func TestTokens_RejectsGarbage(t *testing.T) {
	tokens := NewTokens("secret-1", time.Hour)
	if _, err := tokens.Verify("not-a-jwt"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken, got %v", err)
	}
}
