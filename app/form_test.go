package app

import (
	"errors"
	"testing"
	"time"

	"motogarage-api/utils"
)

func TestFormValidationBlocksSubmit(t *testing.T) {
	form := NewForm(utils.BookingRules())
	form.Set("motorcycle_id", "moto-1")
	form.Set("service_type", "oil_change")
	form.Set("description", "fix it") // 6 chars, below the minimum
	form.Set("preferred_date", "2099-01-01")
	form.Set("preferred_time", "10:00")
	form.Set("contact_method", "email")

	called := false
	err := form.Submit(func(utils.FieldValues) error {
		called = true
		return nil
	})

	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if called {
		t.Error("gateway call issued despite validation failure")
	}
	if form.FieldError("description") != "Description must be at least 10 characters" {
		t.Errorf("unexpected field error: %q", form.FieldError("description"))
	}
	if form.Banner() != "Description must be at least 10 characters" {
		t.Errorf("unexpected banner: %q", form.Banner())
	}
	if form.Phase() != PhaseEditing {
		t.Errorf("expected editing phase, got %v", form.Phase())
	}
}

func TestFormGatewayErrorKeepsValues(t *testing.T) {
	form := NewForm(utils.LoginRules())
	form.Set("username", "rider")
	form.Set("password", "wrongpass")

	err := form.Submit(func(utils.FieldValues) error {
		return errors.New("Invalid email or password")
	})
	if err == nil {
		t.Fatal("expected gateway error")
	}

	if form.Phase() != PhaseError {
		t.Errorf("expected error phase, got %v", form.Phase())
	}
	if form.Banner() != "Invalid email or password" {
		t.Errorf("backend message must surface verbatim, got %q", form.Banner())
	}
	if form.Value("username") != "rider" || form.Value("password") != "wrongpass" {
		t.Error("entered values must be retained for retry")
	}

	// Editing any field returns to editing and clears the banner.
	form.Set("password", "correct1")
	if form.Phase() != PhaseEditing {
		t.Errorf("expected editing after edit, got %v", form.Phase())
	}
	if form.Banner() != "" {
		t.Errorf("banner should clear on edit, got %q", form.Banner())
	}
}

func TestFormSuccessClearsFields(t *testing.T) {
	form := NewForm(utils.LoginRules())
	form.Set("username", "rider")
	form.Set("password", "secret1")

	var got utils.FieldValues
	err := form.Submit(func(values utils.FieldValues) error {
		got = values
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["username"] != "rider" {
		t.Errorf("gateway received %q", got["username"])
	}
	if form.Phase() != PhaseSuccess {
		t.Errorf("expected success phase, got %v", form.Phase())
	}
	if form.Value("username") != "" || form.Value("password") != "" {
		t.Error("fields must be cleared on success")
	}

	form.Reset()
	if form.Phase() != PhaseIdle {
		t.Errorf("expected idle after reset, got %v", form.Phase())
	}
}

func TestFormRejectsConcurrentSubmit(t *testing.T) {
	form := NewForm(utils.LoginRules())
	form.Set("username", "rider")
	form.Set("password", "secret1")

	var inner error
	err := form.Submit(func(utils.FieldValues) error {
		if !form.Submitting() {
			t.Error("form must report submitting during the gateway call")
		}
		inner = form.Submit(func(utils.FieldValues) error { return nil })
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(inner, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", inner)
	}
}

func TestFieldErrorClearsOnEdit(t *testing.T) {
	form := NewForm(utils.MotorcycleRules())
	form.Set("brand", "Honda")
	form.Set("model", "CB500F")
	form.Set("year", "2030")
	if time.Now().Year() >= 2029 {
		t.Skip("fixture year no longer out of range")
	}

	err := form.Submit(func(utils.FieldValues) error { return nil })
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if form.FieldError("year") == "" {
		t.Fatal("expected year error")
	}

	// The edited field's flag drops immediately, other state untouched.
	form.Set("year", "2024")
	if form.FieldError("year") != "" {
		t.Errorf("year error should clear on edit, got %q", form.FieldError("year"))
	}
}
