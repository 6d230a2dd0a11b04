package mocks

import (
	"context"
	"sync"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// MockCredentialStore is a map-backed credential store. It satisfies
// services.CredentialStore.
type MockCredentialStore struct {
	mu     sync.RWMutex
	Admins map[string]*models.Admin // keyed by username
	Users  map[string]*models.User  // keyed by card number

	InsertCount int

	FindErr   error
	InsertErr error
}

func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{
		Admins: make(map[string]*models.Admin),
		Users:  make(map[string]*models.User),
	}
}

func (m *MockCredentialStore) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Admins[username], nil
}

func (m *MockCredentialStore) FindUserByCard(ctx context.Context, cardNumber string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Users[cardNumber], nil
}

func (m *MockCredentialStore) InsertUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Users[user.CardNumber] = user
	m.InsertCount++
	return nil
}
