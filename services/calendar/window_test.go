package calendar

import (
	"testing"
	"time"

	"garagehub/models"

	"github.com/stretchr/testify/assert"
)

// testBooking builds a single-service booking starting at the given local
// time for duration minutes on the given bay.
func testBooking(id, bayID string, start time.Time, duration int) models.Booking {
	return models.Booking{
		ID:            id,
		TotalDuration: duration,
		BookingDate:   start.Format(DateLayout),
		Services: []models.ServiceSpan{{
			ServiceID: "svc-" + id,
			BayID:     bayID,
			StartTime: start,
			EndTime:   start.Add(time.Duration(duration) * time.Minute),
			Duration:  duration,
		}},
	}
}

func TestFilterBookingsExcludesServiceless(t *testing.T) {
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	empty := models.Booking{ID: "empty", BookingDate: "2025-03-10"}

	for _, mode := range []models.ViewMode{models.ViewDay, models.ViewWeek, models.ViewMonth} {
		out := FilterBookings([]models.Booking{empty}, mode, ref, BayFilterAll)
		assert.Empty(t, out, "mode %s", mode)
	}
}

func TestFilterBookingsDayWindow(t *testing.T) {
	ref := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	inside := testBooking("in", "g-bay-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 30)
	edge := testBooking("edge", "g-bay-1", time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local), 30)
	before := testBooking("before", "g-bay-1", time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local), 30)
	after := testBooking("after", "g-bay-1", time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), 30)

	out := FilterBookings([]models.Booking{inside, edge, before, after}, models.ViewDay, ref, BayFilterAll)

	assert.Len(t, out, 2)
	assert.Equal(t, "in", out[0].ID)
	assert.Equal(t, "edge", out[1].ID)
}

func TestFilterBookingsDayUsesServiceStartNotBookingDate(t *testing.T) {
	// A booking whose services spill past midnight belongs to the day its
	// service actually starts, regardless of the booking-level date.
	ref := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)
	b := testBooking("spill", "g-bay-1", time.Date(2025, 3, 11, 0, 30, 0, 0, time.Local), 45)
	b.BookingDate = "2025-03-10"

	assert.Len(t, FilterBookings([]models.Booking{b}, models.ViewDay, ref, BayFilterAll), 1)
}

func TestFilterBookingsMonthUsesBookingDate(t *testing.T) {
	// Month view buckets by the booking-level date field, unlike Day/Week.
	// Regression test pinning the inherited divergence.
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	b := testBooking("spill", "g-bay-1", time.Date(2025, 4, 1, 0, 30, 0, 0, time.Local), 45)
	b.BookingDate = "2025-03-31"

	assert.Len(t, FilterBookings([]models.Booking{b}, models.ViewMonth, ref, BayFilterAll), 1)
	assert.Empty(t, FilterBookings([]models.Booking{b}, models.ViewMonth, time.Date(2025, 4, 15, 0, 0, 0, 0, time.Local), BayFilterAll))
}

func TestFilterBookingsMonthMalformedDateExcluded(t *testing.T) {
	ref := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	b := testBooking("bad", "g-bay-1", time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local), 30)
	b.BookingDate = "not-a-date"

	assert.Empty(t, FilterBookings([]models.Booking{b}, models.ViewMonth, ref, BayFilterAll))
}

func TestFilterBookingsBaySuffixMatch(t *testing.T) {
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	bay1 := testBooking("bay1", "garage-9-bay-1", start, 30)
	bay2 := testBooking("bay2", "garage-9-bay-2", start, 30)

	out := FilterBookings([]models.Booking{bay1, bay2}, models.ViewDay, ref, "2")
	assert.Len(t, out, 1)
	assert.Equal(t, "bay2", out[0].ID)

	out = FilterBookings([]models.Booking{bay1, bay2}, models.ViewDay, ref, BayFilterAll)
	assert.Len(t, out, 2)
}

func TestFilterBookingsPreservesOrder(t *testing.T) {
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	var in []models.Booking
	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		in = append(in, testBooking(id, "g-bay-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 30))
	}

	out := FilterBookings(in, models.ViewDay, ref, BayFilterAll)
	for i, id := range ids {
		assert.Equal(t, id, out[i].ID)
	}
}

func TestFilterBookingsInvalidReference(t *testing.T) {
	b := testBooking("b", "g-bay-1", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 30)
	assert.Empty(t, FilterBookings([]models.Booking{b}, models.ViewDay, time.Time{}, BayFilterAll))
}
