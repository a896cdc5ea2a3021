package utils

import (
	"strings"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-token-roundtrip")

	token, err := GenerateAccessToken("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "user@example.com")
	}
	if claims.Issuer != "helpgames-api" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "helpgames-api")
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-token-roundtrip")

	if _, err := ValidateAccessToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateAccessToken("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateAccessToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestGenerateAccessTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateAccessToken("user-123", "user@example.com"); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}

func TestGenerateRefreshTokenUnique(t *testing.T) {
	a, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	b, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if a == b {
		t.Error("two refresh tokens must not collide")
	}
	if strings.ContainsAny(a, " \n") {
		t.Errorf("token %q contains whitespace", a)
	}
}
