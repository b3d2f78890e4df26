package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"garagehub/database"
	"garagehub/models"
	"garagehub/services/calendar"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error inserting booking %s: %w", booking.ID, err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) ListByGarage(ctx context.Context, garageID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"garage_id": garageID,
		"booking_date": bson.M{
			"$gte": from.Format(calendar.DateLayout),
			"$lte": to.Format(calendar.DateLayout),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) ListForDay(ctx context.Context, garageID string, day time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	filter := bson.M{
		"garage_id": garageID,
		"services": bson.M{"$elemMatch": bson.M{
			"start_time": bson.M{"$gte": dayStart, "$lt": dayStart.AddDate(0, 0, 1)},
		}},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing day bookings for garage %s: %w", garageID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding day bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("error updating booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}

func (repo *MongoBookingRepo) CountForDay(ctx context.Context, garageID string, day time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"garage_id": garageID, "booking_date": day.Format(calendar.DateLayout)}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for garage %s: %w", garageID, err)
	}
	return count, nil
}
