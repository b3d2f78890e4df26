package calendar

import (
	"testing"
	"time"

	"garagehub/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildViewDayEndToEnd(t *testing.T) {
	ref := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	a := testBooking("a", "garage-1-bay-1", at(9, 0), 30)
	b := testBooking("b", "garage-1-bay-2", at(9, 15), 30)
	elsewhere := testBooking("x", "garage-1-bay-1", at(9, 0).AddDate(0, 0, 3), 30)

	view := BuildView([]models.Booking{a, b, elsewhere}, models.ViewDay, ref, BayFilterAll)

	assert.Len(t, view.Columns, 1)
	blocks := view.Columns[0].Blocks
	assert.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].BookingID)
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, "b", blocks[1].BookingID)
	assert.Equal(t, 1, blocks[1].StackOffsetIndex)
	assert.Equal(t, 9*60, blocks[0].Geometry.Top)
	assert.False(t, blocks[0].Geometry.Condensed)
}

func TestBuildViewWeekColumns(t *testing.T) {
	ref := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local) // Wednesday
	monday := testBooking("mon", "g-bay-1", time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local), 60)
	friday := testBooking("fri", "g-bay-2", time.Date(2025, 3, 14, 14, 0, 0, 0, time.Local), 45)

	view := BuildView([]models.Booking{monday, friday}, models.ViewWeek, ref, BayFilterAll)

	assert.Len(t, view.Columns, 7)
	assert.Equal(t, "2025-03-09", view.Columns[0].Date) // Sunday-aligned
	assert.Len(t, view.Columns[1].Blocks, 1)
	assert.Equal(t, "mon", view.Columns[1].Blocks[0].BookingID)
	assert.Len(t, view.Columns[5].Blocks, 1)
	assert.Equal(t, "fri", view.Columns[5].Blocks[0].BookingID)
	assert.Empty(t, view.Columns[3].Blocks)
}

func TestBuildViewMonthOverflow(t *testing.T) {
	ref := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	var bookings []models.Booking
	for _, id := range []string{"m1", "m2", "m3"} {
		bookings = append(bookings, testBooking(id, "g-bay-1", day.Add(9*time.Hour), 30))
	}

	view := BuildView(bookings, models.ViewMonth, ref, BayFilterAll)

	assert.NotEmpty(t, view.Grid)
	var cell models.DayCell
	for _, row := range view.Grid {
		for _, c := range row {
			if c.Date == "2025-03-10" {
				cell = c
			}
		}
	}
	assert.Len(t, cell.Bookings, 2)
	assert.Equal(t, 1, cell.MoreCount)
}

func TestBuildViewInvalidReference(t *testing.T) {
	b := testBooking("b", "g-bay-1", at(9, 0), 30)
	view := BuildView([]models.Booking{b}, models.ViewDay, time.Time{}, BayFilterAll)
	assert.Empty(t, view.Columns)
	assert.Empty(t, view.Grid)
}
