package service

import (
	"errors"
	"testing"
	"time"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	token, err := svc.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || claims.TokenType != "access" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 15*time.Minute).GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTService("secret-b", 15*time.Minute).ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	svc.accessTTL = -time.Minute
	token, err := svc.GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_RejectsEmptyInput(t *testing.T) {
	svc := NewJWTService("", 15*time.Minute)
	if _, err := svc.GenerateAccessToken("u1"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid without secret, got %v", err)
	}

	svc = NewJWTService("secret", 15*time.Minute)
	if _, err := svc.GenerateAccessToken("  "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for blank user id, got %v", err)
	}
	if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for empty token, got %v", err)
	}
}
