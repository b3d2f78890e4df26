package customer

import (
	"context"
	"errors"
	"time"

	customerRepo "garagehub/database/repository/customer"
	"garagehub/models"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("customer name is required")

// CustomerService manages the customer book and their vehicles.
type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	Get(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, garageID string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	AddVehicle(ctx context.Context, customerID string, vehicle models.Vehicle) (models.Vehicle, error)
}

// DefaultCustomerService is the concrete implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return ErrNameRequired
	}
	customer.ID = uuid.New().String()
	customer.CreatedAt = time.Now()
	for i := range customer.Vehicles {
		if customer.Vehicles[i].ID == "" {
			customer.Vehicles[i].ID = uuid.New().String()
		}
	}
	return s.Repo.Create(ctx, customer)
}

func (s *DefaultCustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) List(ctx context.Context, garageID string) ([]models.Customer, error) {
	return s.Repo.ListByGarage(ctx, garageID)
}

func (s *DefaultCustomerService) Update(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return ErrNameRequired
	}
	return s.Repo.Update(ctx, customer)
}

func (s *DefaultCustomerService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultCustomerService) AddVehicle(ctx context.Context, customerID string, vehicle models.Vehicle) (models.Vehicle, error) {
	if vehicle.Registration == "" {
		return models.Vehicle{}, errors.New("vehicle registration is required")
	}
	vehicle.ID = uuid.New().String()
	if err := s.Repo.AddVehicle(ctx, customerID, vehicle); err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}
