package garageRepo

import (
	"context"
	"fmt"
	"time"

	"garagehub/database"
	"garagehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GarageRepository provides access to garage configuration (bays, technicians,
// business hours, service catalogue).
type GarageRepository interface {
	GetByID(ctx context.Context, id string) (*models.Garage, error)
	Upsert(ctx context.Context, garage *models.Garage) error
	UpdateHours(ctx context.Context, id string, hours []models.BusinessHours) error
}

// MongoGarageRepo implements GarageRepository using MongoDB.
type MongoGarageRepo struct {
	coll *mongo.Collection
}

// NewMongoGarageRepo constructs a new instance of MongoGarageRepo.
func NewMongoGarageRepo() GarageRepository {
	return &MongoGarageRepo{coll: database.Collection("garages")}
}

func (repo *MongoGarageRepo) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var garage models.Garage
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&garage); err != nil {
		return nil, fmt.Errorf("error fetching garage with id %s: %w", id, err)
	}
	return &garage, nil
}

func (repo *MongoGarageRepo) Upsert(ctx context.Context, garage *models.Garage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"id": garage.ID}, garage, opts); err != nil {
		return fmt.Errorf("error upserting garage %s: %w", garage.ID, err)
	}
	return nil
}

func (repo *MongoGarageRepo) UpdateHours(ctx context.Context, id string, hours []models.BusinessHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"hours": hours}})
	if err != nil {
		return fmt.Errorf("error updating hours for garage %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("garage %s not found", id)
	}
	return nil
}
