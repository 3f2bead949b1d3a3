package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

func TestTokenService_IntermediateRoundTrip(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	token, err := ts.MintIntermediate("alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	reg, err := ts.ParseIntermediate(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if reg.Email != "alice@example.com" || reg.Password != "s3cret1" {
		t.Fatalf("unexpected claims: %+v", reg)
	}
}

func TestTokenService_IntermediateCarriesStepClaim(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	token, err := ts.MintIntermediate("alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["step"] != float64(1) {
		t.Fatalf("expected step=1, got %v", claims["step"])
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

func TestTokenService_ParseIntermediate_Expired(t *testing.T) {
	expired := NewTokenService("secret", -time.Minute, 0)

	token, err := expired.MintIntermediate("alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	ts := NewTokenService("secret", 0, 0)
	if _, err := ts.ParseIntermediate(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_ParseIntermediate_Tampered(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	token, err := ts.MintIntermediate("alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	tampered := token[:len(token)-4] + "xxxx"
	if _, err := ts.ParseIntermediate(tampered); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	other := NewTokenService("other-secret", 0, 0)
	if _, err := other.ParseIntermediate(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for foreign secret, got %v", err)
	}
}

func TestTokenService_ParseIntermediate_WrongPhase(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	session, err := ts.MintSession("user-1")
	if err != nil {
		t.Fatalf("mint session failed: %v", err)
	}

	if _, err := ts.ParseIntermediate(session); err != domain.ErrWrongTokenPhase {
		t.Fatalf("expected ErrWrongTokenPhase, got %v", err)
	}
}

func TestTokenService_SessionRoundTrip(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	token, err := ts.MintSession("user-42")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	userID, err := ts.ParseSession(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("unexpected user id: %s", userID)
	}
}

func TestTokenService_ParseSession_RejectsIntermediate(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	intermediate, err := ts.MintIntermediate("alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := ts.ParseSession(intermediate); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_ParseSession_Garbage(t *testing.T) {
	ts := NewTokenService("secret", 0, 0)

	for _, token := range []string{"", "not-a-token", strings.Repeat("a.b.c", 3)} {
		if _, err := ts.ParseSession(token); err != domain.ErrTokenInvalid {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}
