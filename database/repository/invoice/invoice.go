package invoiceRepo

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

// InvoiceRepository provides access to the invoice collection.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	ListByGarage(ctx context.Context, garageID, status string) ([]models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	// MarkOverdue flips every issued invoice past its due date to overdue and
	// returns how many were updated. Used by the background sweep.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	// SumPaidSince totals paid invoices issued on or after the given time.
	SumPaidSince(ctx context.Context, garageID string, since time.Time) (float64, error)
}

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new instance of MongoInvoiceRepo.
func NewMongoInvoiceRepo() InvoiceRepository {
	return &MongoInvoiceRepo{coll: database.Collection("invoices")}
}

func (repo *MongoInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("error inserting invoice %s: %w", invoice.ID, err)
	}
	return nil
}

func (repo *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var invoice models.Invoice
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		return nil, fmt.Errorf("error fetching invoice with id %s: %w", id, err)
	}
	return &invoice, nil
}

func (repo *MongoInvoiceRepo) ListByGarage(ctx context.Context, garageID, status string) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"garage_id": garageID}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing invoices for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("error decoding invoices: %w", err)
	}
	return invoices, nil
}

func (repo *MongoInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": invoice.ID}, invoice)
	if err != nil {
		return fmt.Errorf("error updating invoice %s: %w", invoice.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("invoice %s not found", invoice.ID)
	}
	return nil
}

func (repo *MongoInvoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.InvoiceIssued,
		"due_at": bson.M{"$lt": now},
	}
	res, err := repo.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": models.InvoiceOverdue}})
	if err != nil {
		return 0, fmt.Errorf("error marking invoices overdue: %w", err)
	}
	return res.ModifiedCount, nil
}

func (repo *MongoInvoiceRepo) SumPaidSince(ctx context.Context, garageID string, since time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"garage_id": garageID,
			"status":    models.InvoicePaid,
			"paid_at":   bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating paid invoices for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding paid invoice total: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
