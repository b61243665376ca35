package services

import (
	"errors"
	"testing"

	"github.com/renohub/backend/internal/config"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/response"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(testDB(t), &config.JWTConfig{ExpireHour: 1})
}

func TestRegister_NormalizesServiceProSpelling(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.Register(&RegisterRequest{
		Email:    "pro@example.com",
		Password: "secret123",
		Role:     "service-pro",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.User.Role != roles.ServicePro {
		t.Errorf("Role = %q, expected %q", resp.User.Role, roles.ServicePro)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
}

func TestRegister_InvalidRoleRejected(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.Register(&RegisterRequest{
		Email:    "bad@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Errorf("expected bad request error, got %v", err)
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := testAuthService(t)

	req := &RegisterRequest{Email: "dup@example.com", Password: "secret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(req)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != 409 {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestLogin_VerifiesPassword(t *testing.T) {
	svc := testAuthService(t)

	if _, err := svc.Register(&RegisterRequest{Email: "login@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(&LoginRequest{Email: "login@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}

	if _, err := svc.Login(&LoginRequest{Email: "login@example.com", Password: "wrong"}); err == nil {
		t.Error("wrong password should be rejected")
	}
}

func TestUpdateUserRole_PromotesToCoach(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.Register(&RegisterRequest{Email: "promote@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	updated, err := svc.UpdateUserRole(resp.User.ID, "coach")
	if err != nil {
		t.Fatalf("UpdateUserRole failed: %v", err)
	}
	if updated.Role != roles.Coach {
		t.Errorf("Role = %q, expected %q", updated.Role, roles.Coach)
	}

	reloaded, err := svc.GetUserByID(resp.User.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if reloaded.Role != roles.Coach {
		t.Errorf("persisted Role = %q, expected %q", reloaded.Role, roles.Coach)
	}
}

func TestUpdateUserRole_RejectsUnknownRole(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.Register(&RegisterRequest{Email: "norole@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = svc.UpdateUserRole(resp.User.ID, "admin")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != 400 {
		t.Errorf("expected bad request error, got %v", err)
	}
}

func TestUpdateUserRole_MissingUser(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.UpdateUserRole(9999, "coach")
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.Code != 404 {
		t.Errorf("expected not found error, got %v", err)
	}
}
