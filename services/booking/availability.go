package booking

import (
	"context"
	"fmt"
	"time"

	"garagehub/config"
	bookingRepo "garagehub/database/repository/booking"
	garageRepo "garagehub/database/repository/garage"
	"garagehub/models"
	"garagehub/services/calendar"
	"garagehub/utils"

	"go.uber.org/zap"
)

// Candidate slots are generated on a fixed grid inside business hours.
const slotGridMinutes = 30

// SlotResolver computes candidate bay/technician/time combinations for a
// requested set of services on a target date.
type SlotResolver interface {
	FindSlots(ctx context.Context, garageID, date string, serviceIDs []string) ([]models.Slot, error)
}

// DefaultSlotResolver resolves slots against the garage configuration and the
// day's existing bookings.
type DefaultSlotResolver struct {
	GarageRepo  garageRepo.GarageRepository
	BookingRepo bookingRepo.BookingRepository
}

type interval struct {
	start int // minutes from midnight, inclusive
	end   int // exclusive
}

func (iv interval) overlaps(other interval) bool {
	return iv.start < other.end && other.start < iv.end
}

// FindSlots walks candidate start times per bay on a 30-minute grid within
// business hours, subtracting already-booked spans. Conflicting candidates
// are returned with IsAvailable=false so the form can show why a time is
// blocked; they are never selectable.
func (r *DefaultSlotResolver) FindSlots(ctx context.Context, garageID, date string, serviceIDs []string) ([]models.Slot, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(calendar.DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	garage, err := r.GarageRepo.GetByID(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load garage: %w", err)
	}

	hours := garage.HoursFor(int(day.Weekday()), config.AppConfig.DefaultOpenMinute, config.AppConfig.DefaultCloseMinute)
	if hours.Closed || hours.CloseMinute <= hours.OpenMinute {
		return nil, nil
	}

	var requested []models.ServiceDefinition
	for _, id := range serviceIDs {
		def, ok := garage.ServiceByID(id)
		if !ok {
			logger.Warn("slot search references unknown service", zap.String("serviceId", id), zap.String("garageId", garageID))
			return nil, nil
		}
		requested = append(requested, def)
	}
	if len(requested) == 0 {
		return nil, nil
	}
	totalDuration := 0
	for _, def := range requested {
		totalDuration += def.Duration
	}

	existing, err := r.BookingRepo.ListForDay(ctx, garageID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing bookings: %w", err)
	}
	busyByBay, busyByTech := busyIntervals(existing, day)

	var slots []models.Slot
	for _, bay := range garage.Bays {
		for start := hours.OpenMinute; start+totalDuration <= hours.CloseMinute; start += slotGridMinutes {
			slots = append(slots, r.buildCandidate(garage, bay, day, date, requested, start, busyByBay, busyByTech))
		}
	}
	return slots, nil
}

// buildCandidate assembles one candidate window on a bay, assigning the
// requested services back to back and picking a free technician per service.
func (r *DefaultSlotResolver) buildCandidate(
	garage *models.Garage,
	bay models.Bay,
	day time.Time,
	date string,
	requested []models.ServiceDefinition,
	start int,
	busyByBay map[string][]interval,
	busyByTech map[string][]interval,
) models.Slot {
	totalDuration := 0
	for _, def := range requested {
		totalDuration += def.Duration
	}
	window := interval{start: start, end: start + totalDuration}

	slot := models.Slot{
		ID:          fmt.Sprintf("%s:%s:%d", date, bay.ID, start),
		Bay:         bay,
		Date:        date,
		IsAvailable: true,
	}

	for _, busy := range busyByBay[bay.ID] {
		if window.overlaps(busy) {
			slot.IsAvailable = false
			slot.Reason = "bay already booked"
			break
		}
	}

	offset := start
	for _, def := range requested {
		span := interval{start: offset, end: offset + def.Duration}
		tech, ok := freeTechnician(garage.Technicians, def.ID, span, busyByTech)
		if !ok {
			slot.IsAvailable = false
			if slot.Reason == "" {
				slot.Reason = "no technician available"
			}
		}
		slot.Services = append(slot.Services, models.SlotAssignment{
			ServiceID:      def.ID,
			ServiceName:    def.Name,
			TechnicianID:   tech.ID,
			TechnicianName: tech.Name,
			StartTime:      minuteOnDay(day, span.start),
			EndTime:        minuteOnDay(day, span.end),
			Price:          def.Price,
		})
		offset = span.end
	}
	return slot
}

// freeTechnician picks the first technician covering the service and free for
// the whole span.
func freeTechnician(technicians []models.Technician, serviceID string, span interval, busyByTech map[string][]interval) (models.Technician, bool) {
	for _, tech := range technicians {
		if !covers(tech, serviceID) {
			continue
		}
		free := true
		for _, busy := range busyByTech[tech.ID] {
			if span.overlaps(busy) {
				free = false
				break
			}
		}
		if free {
			return tech, true
		}
	}
	return models.Technician{}, false
}

// covers reports whether a technician can perform a service. An empty skill
// list means the technician covers everything.
func covers(tech models.Technician, serviceID string) bool {
	if len(tech.Skills) == 0 {
		return true
	}
	for _, s := range tech.Skills {
		if s == serviceID {
			return true
		}
	}
	return false
}

// busyIntervals collects booked spans per bay and per technician for the day,
// skipping malformed service entries.
func busyIntervals(bookings []models.Booking, day time.Time) (map[string][]interval, map[string][]interval) {
	byBay := make(map[string][]interval)
	byTech := make(map[string][]interval)
	next := day.AddDate(0, 0, 1)
	for _, b := range bookings {
		for _, s := range b.Services {
			if s.StartTime.Before(day) || !s.StartTime.Before(next) {
				continue
			}
			startMin := calendar.MinutesFromMidnight(s.StartTime)
			duration := s.Duration
			if duration <= 0 {
				duration = int(s.EndTime.Sub(s.StartTime).Minutes())
			}
			if duration <= 0 {
				continue
			}
			iv := interval{start: startMin, end: startMin + duration}
			if s.BayID != "" {
				byBay[s.BayID] = append(byBay[s.BayID], iv)
			}
			if s.TechnicianID != "" {
				byTech[s.TechnicianID] = append(byTech[s.TechnicianID], iv)
			}
		}
	}
	return byBay, byTech
}

func minuteOnDay(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minute/60, minute%60, 0, 0, day.Location())
}
