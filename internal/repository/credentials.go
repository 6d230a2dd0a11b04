package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sahil073/HealthCare-Kiosk/internal/models"
)

// CredentialRepository reads and writes the two account collections. Admins
// live in "admin", patients in "users"; there is no relation between them.
type CredentialRepository struct {
	db *mongo.Database
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// EnsureIndexes creates the unique index on the patient card number.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cardNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindAdminByUsername returns (nil, nil) when no admin matches.
func (r *CredentialRepository) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Collection("admin").FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindUserByCard returns (nil, nil) when no patient matches.
func (r *CredentialRepository) FindUserByCard(ctx context.Context, cardNumber string) (*models.User, error) {
	var user models.User
	err := r.db.Collection("users").FindOne(ctx, bson.M{"cardNumber": cardNumber}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *CredentialRepository) InsertUser(ctx context.Context, user *models.User) error {
	_, err := r.db.Collection("users").InsertOne(ctx, user)
	return err
}
