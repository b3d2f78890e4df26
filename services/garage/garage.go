package garage

import (
	"context"
	"errors"
	"fmt"

	garageRepo "garagehub/database/repository/garage"
	"garagehub/models"
)

var ErrInvalidHours = errors.New("business hours must have open before close")

// GarageService manages workshop configuration: bays, technicians, business
// hours and the service catalogue.
type GarageService interface {
	Get(ctx context.Context, id string) (*models.Garage, error)
	Save(ctx context.Context, garage *models.Garage) error
	SetHours(ctx context.Context, id string, hours []models.BusinessHours) error
}

// DefaultGarageService is the concrete implementation.
type DefaultGarageService struct {
	Repo garageRepo.GarageRepository
}

func (s *DefaultGarageService) Get(ctx context.Context, id string) (*models.Garage, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultGarageService) Save(ctx context.Context, garage *models.Garage) error {
	if garage.ID == "" {
		return errors.New("garage id is required")
	}
	if err := validateHours(garage.Hours); err != nil {
		return err
	}
	return s.Repo.Upsert(ctx, garage)
}

func (s *DefaultGarageService) SetHours(ctx context.Context, id string, hours []models.BusinessHours) error {
	if err := validateHours(hours); err != nil {
		return err
	}
	return s.Repo.UpdateHours(ctx, id, hours)
}

func validateHours(hours []models.BusinessHours) error {
	for _, h := range hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return fmt.Errorf("weekday %d out of range", h.Weekday)
		}
		if h.Closed {
			continue
		}
		if h.OpenMinute < 0 || h.CloseMinute > 24*60 || h.OpenMinute >= h.CloseMinute {
			return ErrInvalidHours
		}
	}
	return nil
}
