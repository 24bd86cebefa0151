package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestTokenManager(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		tm := NewTokenManager("test-secret", 60)

		token, expiresAt, err := tm.GenerateToken("user-123")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if token == "" {
			t.Fatal("expected non-empty token")
		}
		if !expiresAt.After(time.Now()) {
			t.Errorf("expected future expiry, got %v", expiresAt)
		}

		userID, err := tm.ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken() error = %v", err)
		}
		if userID != "user-123" {
			t.Errorf("expected user-123, got %s", userID)
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		issuer := NewTokenManager("secret-a", 60)
		verifier := NewTokenManager("secret-b", 60)

		token, _, err := issuer.GenerateToken("user-123")
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		if _, err := verifier.ParseToken(token); err == nil {
			t.Fatal("expected token signed with different secret to be rejected")
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		tm := NewTokenManager("test-secret", 60)

		claims := &jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		if _, err := tm.ParseToken(expired); err == nil {
			t.Fatal("expected expired token to be rejected")
		}
	})

	t.Run("Missing Subject Rejected", func(t *testing.T) {
		tm := NewTokenManager("test-secret", 60)

		claims := &jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		if _, err := tm.ParseToken(token); err == nil {
			t.Fatal("expected token without subject to be rejected")
		}
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		tm := NewTokenManager("test-secret", 60)
		if _, err := tm.ParseToken("not-a-token"); err == nil {
			t.Fatal("expected malformed token to be rejected")
		}
	})
}
