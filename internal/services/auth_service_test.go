package services

import (
	"errors"
	"testing"
	"time"

	"github.com/collabhub-dev/collabhub/internal/apperr"
	"github.com/collabhub-dev/collabhub/internal/auth"
	"github.com/collabhub-dev/collabhub/internal/models"
)

func newAuthService(t *testing.T) (*AuthService, *auth.TokenManager) {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return NewAuthService(newTestDB(t), tokens), tokens
}

func TestRegister(t *testing.T) {
	svc, tokens := newAuthService(t)

	token, user, err := svc.Register(RegisterInput{
		Name:       "Jane Doe",
		Email:      "Jane@Example.com",
		Password:   "secret99",
		Department: "Design",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.Email != "jane@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != models.RoleUser {
		t.Errorf("role = %q, want default user", user.Role)
	}
	if user.Avatar == "" {
		t.Error("avatar not generated")
	}
	if user.PasswordHash == "secret99" {
		t.Error("password stored in clear")
	}

	subject, email, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != user.ID.String() || email != user.Email {
		t.Errorf("token claims: sub=%q email=%q", subject, email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	in := RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "secret99", Department: "Design"}

	if _, _, err := svc.Register(in); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, _, err := svc.Register(in)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 400 {
		t.Fatalf("expected 400 for duplicate email, got %v", err)
	}
	if appErr.Message != "Email is already registered" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, _, err := svc.Register(RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "secret99", Department: "Design"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(LoginInput{Email: "jane@example.com", Password: "secret99"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || user == nil {
		t.Fatal("login returned empty result")
	}

	_, _, err = svc.Login(LoginInput{Email: "jane@example.com", Password: "wrong"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Status != 401 {
		t.Fatalf("expected 401 for bad password, got %v", err)
	}

	_, _, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "secret99"})
	if !errors.As(err, &appErr) || appErr.Status != 401 {
		t.Fatalf("expected 401 for unknown email, got %v", err)
	}
}
