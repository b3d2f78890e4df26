package jobsheetRepo

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

// JobSheetRepository provides access to the job sheet collection.
type JobSheetRepository interface {
	Create(ctx context.Context, sheet *models.JobSheet) error
	GetByID(ctx context.Context, id string) (*models.JobSheet, error)
	GetByBooking(ctx context.Context, bookingID string) (*models.JobSheet, error)
	ListByGarage(ctx context.Context, garageID, status string) ([]models.JobSheet, error)
	Update(ctx context.Context, sheet *models.JobSheet) error
	CountOpen(ctx context.Context, garageID string) (int64, error)
}

// MongoJobSheetRepo implements JobSheetRepository using MongoDB.
type MongoJobSheetRepo struct {
	coll *mongo.Collection
}

// NewMongoJobSheetRepo constructs a new instance of MongoJobSheetRepo.
func NewMongoJobSheetRepo() JobSheetRepository {
	return &MongoJobSheetRepo{coll: database.Collection("jobsheets")}
}

func (repo *MongoJobSheetRepo) Create(ctx context.Context, sheet *models.JobSheet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, sheet); err != nil {
		return fmt.Errorf("error inserting job sheet %s: %w", sheet.ID, err)
	}
	return nil
}

func (repo *MongoJobSheetRepo) GetByID(ctx context.Context, id string) (*models.JobSheet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sheet models.JobSheet
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("error fetching job sheet with id %s: %w", id, err)
	}
	return &sheet, nil
}

func (repo *MongoJobSheetRepo) GetByBooking(ctx context.Context, bookingID string) (*models.JobSheet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sheet models.JobSheet
	if err := repo.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("error fetching job sheet for booking %s: %w", bookingID, err)
	}
	return &sheet, nil
}

func (repo *MongoJobSheetRepo) ListByGarage(ctx context.Context, garageID, status string) ([]models.JobSheet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"garage_id": garageID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing job sheets for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var sheets []models.JobSheet
	if err := cursor.All(ctx, &sheets); err != nil {
		return nil, fmt.Errorf("error decoding job sheets: %w", err)
	}
	return sheets, nil
}

func (repo *MongoJobSheetRepo) Update(ctx context.Context, sheet *models.JobSheet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": sheet.ID}, sheet)
	if err != nil {
		return fmt.Errorf("error updating job sheet %s: %w", sheet.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("job sheet %s not found", sheet.ID)
	}
	return nil
}

func (repo *MongoJobSheetRepo) CountOpen(ctx context.Context, garageID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"garage_id": garageID, "status": bson.M{"$ne": models.JobSheetCompleted}}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting open job sheets for garage %s: %w", garageID, err)
	}
	return count, nil
}
