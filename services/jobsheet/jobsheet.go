package jobsheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	jobsheetRepo "garagehub/database/repository/jobsheet"
	"garagehub/models"
)

var ErrInvalidStatus = errors.New("invalid job sheet status transition")

// JobSheetService manages the work record attached to each booking.
type JobSheetService interface {
	Get(ctx context.Context, id string) (*models.JobSheet, error)
	GetByBooking(ctx context.Context, bookingID string) (*models.JobSheet, error)
	List(ctx context.Context, garageID, status string) ([]models.JobSheet, error)
	AddLine(ctx context.Context, id string, line models.JobLine) (*models.JobSheet, error)
	SetStatus(ctx context.Context, id, status string) (*models.JobSheet, error)
	SetNotes(ctx context.Context, id, notes string) (*models.JobSheet, error)
}

// DefaultJobSheetService is the concrete implementation.
type DefaultJobSheetService struct {
	Repo jobsheetRepo.JobSheetRepository
}

func (s *DefaultJobSheetService) Get(ctx context.Context, id string) (*models.JobSheet, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultJobSheetService) GetByBooking(ctx context.Context, bookingID string) (*models.JobSheet, error) {
	return s.Repo.GetByBooking(ctx, bookingID)
}

func (s *DefaultJobSheetService) List(ctx context.Context, garageID, status string) ([]models.JobSheet, error) {
	return s.Repo.ListByGarage(ctx, garageID, status)
}

func (s *DefaultJobSheetService) AddLine(ctx context.Context, id string, line models.JobLine) (*models.JobSheet, error) {
	if line.Description == "" || line.Quantity <= 0 {
		return nil, errors.New("job line needs a description and a positive quantity")
	}
	sheet, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sheet.Status == models.JobSheetCompleted {
		return nil, fmt.Errorf("job sheet %s is completed: %w", id, ErrInvalidStatus)
	}
	sheet.Lines = append(sheet.Lines, line)
	sheet.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

// SetStatus advances a job sheet along open -> in_progress -> completed.
// Moving backwards from completed is not allowed once an invoice exists.
func (s *DefaultJobSheetService) SetStatus(ctx context.Context, id, status string) (*models.JobSheet, error) {
	if status != models.JobSheetOpen && status != models.JobSheetInProgress && status != models.JobSheetCompleted {
		return nil, ErrInvalidStatus
	}
	sheet, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sheet.Status == models.JobSheetCompleted && sheet.InvoiceID != "" && status != models.JobSheetCompleted {
		return nil, fmt.Errorf("job sheet %s is invoiced: %w", id, ErrInvalidStatus)
	}
	sheet.Status = status
	sheet.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *DefaultJobSheetService) SetNotes(ctx context.Context, id, notes string) (*models.JobSheet, error) {
	sheet, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sheet.Notes = notes
	sheet.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}
