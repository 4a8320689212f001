package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := uuid.New()

	token, err := m.Generate(id, "jane@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	subject, email, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != id.String() {
		t.Errorf("subject = %q, want %q", subject, id.String())
	}
	if email != "jane@example.com" {
		t.Errorf("email = %q", email)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m1, _ := NewTokenManager("secret-one", time.Hour)
	m2, _ := NewTokenManager("secret-two", time.Hour)

	token, err := m1.Generate(uuid.New(), "jane@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, _, err := m2.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Hour)

	if _, _, err := m.Verify("not.a.token"); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, _ := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New(), "jane@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in clear")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}
