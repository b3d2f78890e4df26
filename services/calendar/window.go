package calendar

import (
	"strings"
	"time"

	"garagehub/models"
)

// BayFilterAll disables bay filtering.
const BayFilterAll = "all"

// Window computes the date range a view mode covers around the reference
// date. An invalid (zero) reference yields ok=false and the filter treats the
// window as empty rather than panicking in the render path.
func Window(mode models.ViewMode, ref time.Time) (models.ViewWindow, bool) {
	if ref.IsZero() {
		return models.ViewWindow{Mode: mode}, false
	}
	switch mode {
	case models.ViewDay:
		start := DayStart(ref)
		return models.ViewWindow{Mode: mode, Start: start, End: endOfDay(start)}, true
	case models.ViewWeek:
		days := WeekDates(ref)
		return models.ViewWindow{Mode: mode, Start: days[0], End: endOfDay(days[6])}, true
	case models.ViewMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return models.ViewWindow{Mode: mode, Start: start, End: endOfDay(start.AddDate(0, 1, -1))}, true
	default:
		return models.ViewWindow{Mode: mode}, false
	}
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.Add(24*time.Hour - time.Second)
}

// FilterBookings returns the subset of bookings visible in the given view,
// preserving the relative order of the input. Stability matters: the stacking
// engine breaks start-time ties by input order.
//
// Day and Week match on individual service start times; Month buckets by the
// booking-level date field. The divergence is inherited dashboard behavior
// and is pinned by a regression test.
func FilterBookings(all []models.Booking, mode models.ViewMode, ref time.Time, bayFilter string) []models.Booking {
	window, ok := Window(mode, ref)
	if !ok {
		return nil
	}

	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if len(b.Services) == 0 {
			continue
		}
		if !matchesWindow(b, window) {
			continue
		}
		if !matchesBay(b, bayFilter) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesWindow(b models.Booking, w models.ViewWindow) bool {
	if w.Mode == models.ViewMonth {
		d, err := time.ParseInLocation(DateLayout, b.BookingDate, w.Start.Location())
		if err != nil {
			return false
		}
		return !d.Before(w.Start) && !d.After(w.End)
	}
	for _, s := range b.Services {
		if !s.StartTime.Before(w.Start) && !s.StartTime.After(w.End) {
			return true
		}
	}
	return false
}

// matchesBay applies the bay filter: "all" (or empty) passes everything,
// otherwise at least one service's composite bay id must end with the plain
// bay number.
func matchesBay(b models.Booking, bayFilter string) bool {
	if bayFilter == "" || bayFilter == BayFilterAll {
		return true
	}
	for _, s := range b.Services {
		if strings.HasSuffix(s.BayID, bayFilter) {
			return true
		}
	}
	return false
}

// BookingsOn returns the bookings whose booking-level date matches the given
// day, used by Month-view day cells.
func BookingsOn(all []models.Booking, day time.Time) []models.Booking {
	key := day.Format(DateLayout)
	var out []models.Booking
	for _, b := range all {
		if len(b.Services) == 0 {
			continue
		}
		if b.BookingDate == key {
			out = append(out, b)
		}
	}
	return out
}
