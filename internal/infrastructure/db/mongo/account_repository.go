package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

const usersCollection = "users"

type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           string `bson:"_id"`
	UserName     string `bson:"user_name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	AccessToken  string `bson:"access_token,omitempty"`
	RefreshToken string `bson:"refresh_token,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

// Create persists a sealed user record. The document is schema-validated
// first, and the collection's unique email index backs the conflict check.
func (r *MongoAccountRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.ValidateSchema(); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc := userDoc{
		ID:           user.ID,
		UserName:     user.UserName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		AccessToken:  user.AccessToken,
		RefreshToken: user.RefreshToken,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back so the caller sees exactly what became durable
	return r.FindByEmail(ctx, user.Email)
}

// FindByEmail looks a user up by its normalized email.
func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           doc.ID,
		UserName:     doc.UserName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		AccessToken:  doc.AccessToken,
		RefreshToken: doc.RefreshToken,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
