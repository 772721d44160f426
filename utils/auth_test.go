package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, secret string, email string, expiresAt time.Time) string {
	t.Helper()

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func TestValidateTokenAndFetchEmail(t *testing.T) {
	SetJWTSecret("test-secret")
	token := mintToken(t, "test-secret", "alice@example.com", time.Now().Add(time.Hour))

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil {
		t.Fatalf("Expected token to validate, got %v", err)
	}
	if !valid {
		t.Error("Expected token to be reported valid")
	}
	if email != "alice@example.com" {
		t.Errorf("Expected alice@example.com, got %q", email)
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	token := mintToken(t, "test-secret", "alice@example.com", time.Now().Add(-time.Hour))

	_, _, err := ValidateTokenAndFetchEmail(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenSignedWithWrongSecretIsRejected(t *testing.T) {
	SetJWTSecret("test-secret")
	token := mintToken(t, "other-secret", "alice@example.com", time.Now().Add(time.Hour))

	_, _, err := ValidateTokenAndFetchEmail(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestEmailFallsBackToSubject(t *testing.T) {
	SetJWTSecret("test-secret")

	claims := &Claims{
		Sub: "bob@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	_, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil {
		t.Fatalf("Expected token to validate, got %v", err)
	}
	if email != "bob@example.com" {
		t.Errorf("Expected bob@example.com, got %q", email)
	}
}
