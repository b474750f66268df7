package app

import (
	"testing"
)

func TestRememberLogin(t *testing.T) {
	store := NewMemoryStore()

	RememberLogin(store, "rider@example.com", true)
	if got := RememberedLogin(store); got != "rider@example.com" {
		t.Errorf("expected remembered login, got %q", got)
	}

	// Unchecking clears the saved identifier.
	RememberLogin(store, "rider@example.com", false)
	if got := RememberedLogin(store); got != "" {
		t.Errorf("expected cleared login, got %q", got)
	}
}

func TestLegacyTokenLifecycle(t *testing.T) {
	store := NewMemoryStore()

	if LegacyToken(store) != "" {
		t.Error("expected no token initially")
	}

	SaveLegacyToken(store, "demo-jwt-token")
	if got := LegacyToken(store); got != "demo-jwt-token" {
		t.Errorf("expected cached token, got %q", got)
	}

	ClearLegacyToken(store)
	if LegacyToken(store) != "" {
		t.Error("expected token cleared")
	}
}
