package userRepo

import (
	"context"
	"fmt"
	"time"

	"garagehub/database"
	"garagehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository provides access to dashboard staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.StaffUser) error
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{coll: database.Collection("users")}
}

func (repo *MongoUserRepo) Create(ctx context.Context, user *models.StaffUser) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("error inserting user %s: %w", user.ID, err)
	}
	return nil
}

func (repo *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.StaffUser
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, fmt.Errorf("error fetching user with id %s: %w", id, err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.StaffUser
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, fmt.Errorf("error fetching user with email %s: %w", email, err)
	}
	return &user, nil
}

func (repo *MongoUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("error updating token hash for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}
