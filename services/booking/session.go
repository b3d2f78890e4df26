package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "garagehub/database/repository/booking"
	jobsheetRepo "garagehub/database/repository/jobsheet"
	"garagehub/models"
	"garagehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService manages the stateful booking-creation flow driven by the
// dashboard form.
type SessionService interface {
	Start(ctx context.Context, garageID string) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	// UpdateSelection sets the requested services and/or target date. Any
	// change while slots are loaded invalidates the chosen slot and triggers
	// a fresh resolution.
	UpdateSelection(ctx context.Context, sessionID string, serviceIDs []string, date string) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID, slotID string) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string, customer models.CustomerInfo, vehicle models.VehicleInfo) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService on top of the slot resolver
// and the Redis session store.
type DefaultSessionService struct {
	Resolver SlotResolver
	Bookings bookingRepo.BookingRepository
	Sheets   jobsheetRepo.JobSheetRepository
	Store    SessionStore
}

func (s *DefaultSessionService) Start(ctx context.Context, garageID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		GarageID:  garageID,
		State:     models.SessionIdle,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultSessionService) UpdateSelection(ctx context.Context, sessionID string, serviceIDs []string, date string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionSubmitting {
		return nil, ErrInvalidTransition
	}

	if serviceIDs != nil {
		session.ServiceIDs = serviceIDs
	}
	if date != "" {
		session.Date = date
	}

	// Any selection change invalidates a previously chosen slot: its timing
	// no longer corresponds to the inputs.
	session.SelectedSlot = nil
	session.Slots = nil
	session.LastError = ""

	switch {
	case len(session.ServiceIDs) == 0:
		session.State = models.SessionIdle
	case session.Date == "":
		session.State = models.SessionServiceSelected
	default:
		session.State = models.SessionDateSelected
		return s.resolveSlots(ctx, session)
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// resolveSlots runs one slot resolution tagged with a fresh sequence number.
// If a concurrent update bumped the sequence while this resolution was in
// flight, its result is stale and discarded (last-request-wins).
func (s *DefaultSessionService) resolveSlots(ctx context.Context, session *models.BookingSession) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	session.SlotSeq++
	seq := session.SlotSeq
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	slots, err := s.Resolver.FindSlots(ctx, session.GarageID, session.Date, session.ServiceIDs)
	if err != nil {
		// A failed fetch surfaces as an empty slot list; the user retries
		// implicitly by changing date or services.
		logger.Warn("slot resolution failed",
			zap.String("sessionId", session.SessionID),
			zap.Error(err))
		slots = nil
	}

	stored, getErr := s.Store.Get(ctx, session.SessionID)
	if getErr != nil {
		return nil, getErr
	}
	if stored.SlotSeq != seq {
		// A newer selection superseded this resolution.
		return stored, nil
	}

	stored.Slots = slots
	stored.State = models.SessionSlotsLoaded
	if err != nil {
		stored.LastError = "could not load available slots"
	}
	if saveErr := s.Store.Save(ctx, stored); saveErr != nil {
		return nil, saveErr
	}
	return stored, nil
}

func (s *DefaultSessionService) SelectSlot(ctx context.Context, sessionID, slotID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionSlotsLoaded && session.State != models.SessionSlotSelected {
		return nil, ErrInvalidTransition
	}

	for i := range session.Slots {
		if session.Slots[i].ID != slotID {
			continue
		}
		if !session.Slots[i].IsAvailable {
			return nil, ErrSlotUnavailable
		}
		selected := session.Slots[i]
		session.SelectedSlot = &selected
		session.State = models.SessionSlotSelected
		if err := s.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	return nil, ErrSlotNotFound
}

func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID string, customer models.CustomerInfo, vehicle models.VehicleInfo) (*models.Booking, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionSlotSelected || session.SelectedSlot == nil {
		return nil, ErrNoSlotSelected
	}
	if customer.Name == "" || vehicle.Registration == "" || len(session.ServiceIDs) == 0 {
		return nil, ErrIncompleteForm
	}

	session.Customer = customer
	session.Vehicle = vehicle
	session.State = models.SessionSubmitting
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	booking := bookingFromSlot(session)
	if err := s.Bookings.Create(ctx, booking); err != nil {
		// Submission failure keeps the filled form: back to slot_selected so
		// the user can correct and retry without re-entering fields.
		session.State = models.SessionSlotSelected
		session.LastError = "failed to create booking"
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			logger.Error("failed to save session after booking failure",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Sheets != nil {
		sheet := &models.JobSheet{
			ID:        uuid.New().String(),
			GarageID:  session.GarageID,
			BookingID: booking.ID,
			Status:    models.JobSheetOpen,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.Sheets.Create(ctx, sheet); err != nil {
			// The booking stands; the sheet can be opened manually.
			logger.Error("failed to open job sheet for booking",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	session.State = models.SessionCreated
	if err := s.Store.Save(ctx, session); err != nil {
		logger.Error("failed to save completed session", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// bookingFromSlot materializes a persisted booking from the confirmed slot.
func bookingFromSlot(session *models.BookingSession) *models.Booking {
	slot := session.SelectedSlot
	booking := &models.Booking{
		ID:          uuid.New().String(),
		GarageID:    session.GarageID,
		Customer:    session.Customer,
		Vehicle:     session.Vehicle,
		BookingDate: slot.Date,
		Status:      "Confirmed",
		CreatedAt:   time.Now(),
	}
	for _, a := range slot.Services {
		duration := int(a.EndTime.Sub(a.StartTime).Minutes())
		booking.Services = append(booking.Services, models.ServiceSpan{
			ServiceID:    a.ServiceID,
			Name:         a.ServiceName,
			BayID:        slot.Bay.ID,
			TechnicianID: a.TechnicianID,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
			Duration:     duration,
			Price:        a.Price,
		})
		booking.TotalDuration += duration
		booking.TotalPrice += a.Price
	}
	return booking
}
