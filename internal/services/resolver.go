package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
	"github.com/Sahil073/HealthCare-Kiosk/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateCard      = errors.New("card number already registered")
	ErrNotFound           = errors.New("not found")
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// CredentialStore is the lookup surface the resolver needs. Find methods
// return (nil, nil) when nothing matches.
type CredentialStore interface {
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindUserByCard(ctx context.Context, cardNumber string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
}

type LoginResult struct {
	Role  string
	Admin *models.Admin
	User  *models.User
}

type AuthService struct {
	store CredentialStore
}

func NewAuthService(store CredentialStore) *AuthService {
	return &AuthService{store: store}
}

// Resolve disambiguates the shared identifier field: admin usernames are
// checked before patient card numbers, so on a collision the admin wins.
// An admin match with the wrong password falls through to the patient
// lookup rather than rejecting outright.
func (s *AuthService) Resolve(ctx context.Context, identifier, password string) (*LoginResult, error) {
	admin, err := s.store.FindAdminByUsername(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if admin != nil && utils.CheckPasswordHash(password, admin.Password) {
		return &LoginResult{Role: RoleAdmin, Admin: admin}, nil
	}

	user, err := s.store.FindUserByCard(ctx, identifier)
	if err != nil {
		return nil, err
	}
	// A single rejection covers both unknown identifier and wrong password.
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &LoginResult{Role: RoleUser, User: user}, nil
}

type RegisterInput struct {
	FullName   string
	CardNumber string
	Phone      string
	DOB        string
	Password   string
}

// Register creates a patient account, rejecting duplicates before any write.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.store.FindUserByCard(ctx, in.CardNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCard
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         primitive.NewObjectID(),
		FullName:   in.FullName,
		CardNumber: in.CardNumber,
		Phone:      in.Phone,
		DOB:        in.DOB,
		Password:   hashed,
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
