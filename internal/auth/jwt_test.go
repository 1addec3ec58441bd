package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateClientToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, expiresAt, err := m.GenerateClientToken("client-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("expected expiry in the future")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "client-123" {
		t.Errorf("expected client-123, got %s", claims.ClientID)
	}
	if claims.Role != "client" {
		t.Errorf("expected role client, got %s", claims.Role)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	token, _, err := m.GenerateClientToken("client-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, _, err := m.GenerateClientToken("client-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
