package customerRepo

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

// CustomerRepository provides access to the customer collection.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	ListByGarage(ctx context.Context, garageID string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	AddVehicle(ctx context.Context, customerID string, vehicle models.Vehicle) error
}

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new instance of MongoCustomerRepo.
func NewMongoCustomerRepo() CustomerRepository {
	return &MongoCustomerRepo{coll: database.Collection("customers")}
}

func (repo *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("error inserting customer %s: %w", customer.ID, err)
	}
	return nil
}

func (repo *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, fmt.Errorf("error fetching customer with id %s: %w", id, err)
	}
	return &customer, nil
}

func (repo *MongoCustomerRepo) ListByGarage(ctx context.Context, garageID string) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"garage_id": garageID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing customers for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return customers, nil
}

func (repo *MongoCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("error updating customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer %s not found", customer.ID)
	}
	return nil
}

func (repo *MongoCustomerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting customer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("customer %s not found", id)
	}
	return nil
}

func (repo *MongoCustomerRepo) AddVehicle(ctx context.Context, customerID string, vehicle models.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": customerID},
		bson.M{"$push": bson.M{"vehicles": vehicle}},
	)
	if err != nil {
		return fmt.Errorf("error adding vehicle to customer %s: %w", customerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer %s not found", customerID)
	}
	return nil
}
