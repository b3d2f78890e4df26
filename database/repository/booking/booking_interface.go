package bookingRepo

import (
	"context"
	"time"

	"garagehub/models"
)

// BookingRepository provides access to the persisted booking collection.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByGarage returns the garage's bookings whose booking date falls in
	// [from, to], in creation order.
	ListByGarage(ctx context.Context, garageID string, from, to time.Time) ([]models.Booking, error)
	// ListForDay returns bookings with at least one service starting on the
	// given calendar day, used for conflict detection by the slot resolver.
	ListForDay(ctx context.Context, garageID string, day time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountForDay(ctx context.Context, garageID string, day time.Time) (int64, error)
}
