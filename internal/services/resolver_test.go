package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Sahil073/HealthCare-Kiosk/internal/mocks"
	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
	"github.com/Sahil073/HealthCare-Kiosk/internal/utils"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return hash
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	store := mocks.NewMockCredentialStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		FullName:   "Test User",
		CardNumber: "CARD001",
		Phone:      "999",
		DOB:        "2000-01-01",
		Password:   "secret1",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Password == "secret1" {
		t.Fatal("password was stored in plaintext")
	}

	result, err := svc.Resolve(ctx, "CARD001", "secret1")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.Role != RoleUser {
		t.Fatalf("expected role user, got %s", result.Role)
	}
	if result.User.FullName != "Test User" {
		t.Fatalf("unexpected user record: %+v", result.User)
	}
}

func TestRegisterDuplicateCardPerformsNoWrite(t *testing.T) {
	store := mocks.NewMockCredentialStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{FullName: "A", CardNumber: "CARD001", Password: "pw1"}); err != nil {
		t.Fatalf("first register error: %v", err)
	}
	if store.InsertCount != 1 {
		t.Fatalf("expected 1 insert, got %d", store.InsertCount)
	}

	_, err := svc.Register(ctx, RegisterInput{FullName: "B", CardNumber: "CARD001", Password: "pw2"})
	if !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("expected ErrDuplicateCard, got %v", err)
	}
	if store.InsertCount != 1 {
		t.Fatalf("duplicate registration wrote to the store, inserts=%d", store.InsertCount)
	}
}

func TestResolveAdminPrecedence(t *testing.T) {
	store := mocks.NewMockCredentialStore()
	store.Admins["X"] = &models.Admin{Username: "X", Password: mustHash(t, "adminpass")}
	store.Users["X"] = &models.User{FullName: "Collider", CardNumber: "X", Password: mustHash(t, "userpass")}
	svc := NewAuthService(store)
	ctx := context.Background()

	result, err := svc.Resolve(ctx, "X", "adminpass")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.Role != RoleAdmin {
		t.Fatalf("expected admin to win the collision, got role %s", result.Role)
	}

	// The wrong admin password falls through to the patient lookup instead
	// of rejecting outright.
	result, err = svc.Resolve(ctx, "X", "userpass")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if result.Role != RoleUser {
		t.Fatalf("expected fall-through to user, got role %s", result.Role)
	}
}

func TestResolveRejections(t *testing.T) {
	store := mocks.NewMockCredentialStore()
	store.Users["CARD001"] = &models.User{CardNumber: "CARD001", Password: mustHash(t, "secret1")}
	svc := NewAuthService(store)
	ctx := context.Background()

	if _, err := svc.Resolve(ctx, "NOPE", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown identifier, got %v", err)
	}
	if _, err := svc.Resolve(ctx, "CARD001", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	store := mocks.NewMockCredentialStore()
	store.FindErr = errors.New("connection reset")
	svc := NewAuthService(store)

	_, err := svc.Resolve(context.Background(), "CARD001", "secret1")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}
