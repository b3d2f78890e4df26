package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"garagehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockGarageRepo struct{ mock.Mock }

func (m *MockGarageRepo) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garage), args.Error(1)
}

func (m *MockGarageRepo) Upsert(ctx context.Context, garage *models.Garage) error {
	return m.Called(ctx, garage).Error(0)
}

func (m *MockGarageRepo) UpdateHours(ctx context.Context, id string, hours []models.BusinessHours) error {
	return m.Called(ctx, id, hours).Error(0)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByGarage(ctx context.Context, garageID string, from, to time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, garageID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListForDay(ctx context.Context, garageID string, day time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, garageID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepo) CountForDay(ctx context.Context, garageID string, day time.Time) (int64, error) {
	args := m.Called(ctx, garageID, day)
	return args.Get(0).(int64), args.Error(1)
}

// testGarage is open Mondays 09:00-17:00 with two bays and one all-rounder
// technician.
func testGarage() *models.Garage {
	return &models.Garage{
		ID:   "g1",
		Name: "Test Garage",
		Bays: []models.Bay{
			{ID: "g1-bay-1", Label: "Bay 1"},
			{ID: "g1-bay-2", Label: "Bay 2"},
		},
		Technicians: []models.Technician{
			{ID: "t1", Name: "Sam"},
		},
		Hours: []models.BusinessHours{
			{Weekday: 1, OpenMinute: 9 * 60, CloseMinute: 17 * 60},
		},
		Services: []models.ServiceDefinition{
			{ID: "svc-mot", Name: "MOT", Duration: 60, Price: 54.85},
			{ID: "svc-oil", Name: "Oil change", Duration: 30, Price: 39.99},
		},
	}
}

const monday = "2025-03-10"

func newResolver(garage *models.Garage, existing []models.Booking) (*DefaultSlotResolver, *MockGarageRepo, *MockBookingRepo) {
	garages := new(MockGarageRepo)
	bookings := new(MockBookingRepo)
	garages.On("GetByID", mock.Anything, "g1").Return(garage, nil)
	bookings.On("ListForDay", mock.Anything, "g1", mock.Anything).Return(existing, nil)
	return &DefaultSlotResolver{GarageRepo: garages, BookingRepo: bookings}, garages, bookings
}

func TestFindSlotsEmptyDay(t *testing.T) {
	resolver, _, _ := newResolver(testGarage(), nil)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-mot"})
	assert.NoError(t, err)

	// 09:00-17:00 on a 30-minute grid with a 60-minute job: 15 starts per bay.
	assert.Len(t, slots, 30)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
		assert.Len(t, s.Services, 1)
		assert.Equal(t, "t1", s.Services[0].TechnicianID)
	}
	first := slots[0]
	assert.Equal(t, "g1-bay-1", first.Bay.ID)
	assert.Equal(t, 9, first.Services[0].StartTime.Hour())
	assert.Equal(t, 10, first.Services[0].EndTime.Hour())
}

func TestFindSlotsBayConflictReturnedUnavailable(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)
	existing := []models.Booking{{
		ID: "existing",
		Services: []models.ServiceSpan{{
			BayID:        "g1-bay-1",
			TechnicianID: "ghost", // not part of the roster, keeps t1 free
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
			Duration:     60,
		}},
	}}
	resolver, _, _ := newResolver(testGarage(), existing)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-oil"})
	assert.NoError(t, err)

	byID := map[string]models.Slot{}
	for _, s := range slots {
		byID[s.ID] = s
	}

	// Bay 1 is blocked for any candidate overlapping 10:00-11:00.
	blocked := byID[monday+":g1-bay-1:600"]
	assert.False(t, blocked.IsAvailable)
	assert.Equal(t, "bay already booked", blocked.Reason)
	assert.False(t, byID[monday+":g1-bay-1:630"].IsAvailable)

	// The same times on bay 2 are fine, as are earlier times on bay 1.
	assert.True(t, byID[monday+":g1-bay-2:600"].IsAvailable)
	assert.True(t, byID[monday+":g1-bay-1:540"].IsAvailable)
}

func TestFindSlotsTechnicianConflict(t *testing.T) {
	// The only technician is busy 10:00-11:00 on bay 1; bay 2 candidates in
	// that window have no one to do the work.
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)
	existing := []models.Booking{{
		ID: "existing",
		Services: []models.ServiceSpan{{
			BayID:        "g1-bay-1",
			TechnicianID: "t1",
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
			Duration:     60,
		}},
	}}
	resolver, _, _ := newResolver(testGarage(), existing)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-oil"})
	assert.NoError(t, err)

	byID := map[string]models.Slot{}
	for _, s := range slots {
		byID[s.ID] = s
	}
	conflicted := byID[monday+":g1-bay-2:600"]
	assert.False(t, conflicted.IsAvailable)
	assert.Equal(t, "no technician available", conflicted.Reason)
	assert.True(t, byID[monday+":g1-bay-2:660"].IsAvailable)
}

func TestFindSlotsMultipleServicesBackToBack(t *testing.T) {
	resolver, _, _ := newResolver(testGarage(), nil)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-mot", "svc-oil"})
	assert.NoError(t, err)
	assert.NotEmpty(t, slots)

	first := slots[0]
	assert.Len(t, first.Services, 2)
	assert.Equal(t, first.Services[0].EndTime, first.Services[1].StartTime, "services are assigned back to back")
	assert.Equal(t, 90, first.TotalDuration())

	// A 90-minute job cannot start after 15:30.
	for _, s := range slots {
		last := s.Services[len(s.Services)-1]
		assert.False(t, last.EndTime.After(time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local)))
	}
}

func TestFindSlotsClosedDay(t *testing.T) {
	garage := testGarage()
	garage.Hours = []models.BusinessHours{{Weekday: 1, Closed: true}}
	resolver, _, _ := newResolver(garage, nil)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-mot"})
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlotsUnknownService(t *testing.T) {
	resolver, _, _ := newResolver(testGarage(), nil)

	slots, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-nope"})
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFindSlotsInvalidDate(t *testing.T) {
	resolver, _, _ := newResolver(testGarage(), nil)

	_, err := resolver.FindSlots(context.Background(), "g1", "not-a-date", []string{"svc-mot"})
	assert.Error(t, err)
}

func TestFindSlotsGarageLookupFailure(t *testing.T) {
	garages := new(MockGarageRepo)
	bookings := new(MockBookingRepo)
	garages.On("GetByID", mock.Anything, "g1").Return(nil, errors.New("boom"))
	resolver := &DefaultSlotResolver{GarageRepo: garages, BookingRepo: bookings}

	_, err := resolver.FindSlots(context.Background(), "g1", monday, []string{"svc-mot"})
	assert.Error(t, err)
}
