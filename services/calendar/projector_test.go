package calendar

import (
	"fmt"
	"testing"
	"time"

	"garagehub/models"

	"github.com/stretchr/testify/assert"
)

func TestProjectDetailThresholdBoundary(t *testing.T) {
	short := models.LayoutBlock{StartMinute: 540, EndMinute: 540 + 29}
	full := models.LayoutBlock{StartMinute: 540, EndMinute: 540 + 30}

	assert.True(t, Project(short, models.ViewDay).Condensed, "29 minutes renders condensed")
	assert.False(t, Project(full, models.ViewDay).Condensed, "30 minutes renders full detail")
}

func TestProjectGeometry(t *testing.T) {
	block := models.LayoutBlock{BayID: "g-bay-2", StartMinute: 555, EndMinute: 585, StackOffsetIndex: 1}

	day := Project(block, models.ViewDay)
	assert.Equal(t, 555, day.Top)
	assert.Equal(t, 30, day.Height)
	assert.Equal(t, DayBaseOffsetPx+OverlapShiftPx, day.Left)
	assert.Equal(t, DayWidthPercent, day.WidthPercent)

	week := Project(block, models.ViewWeek)
	assert.Equal(t, WeekBaseOffsetPx+OverlapShiftPx, week.Left)
	assert.Equal(t, WeekWidthPercent, week.WidthPercent)
	// Vertical geometry does not depend on the view.
	assert.Equal(t, day.Top, week.Top)
	assert.Equal(t, day.Height, week.Height)
}

func TestBayColorConsistentAcrossViews(t *testing.T) {
	block := models.LayoutBlock{BayID: "garage-7-bay-3", StartMinute: 0, EndMinute: 60}

	dayColor := Project(block, models.ViewDay).Color
	weekColor := Project(block, models.ViewWeek).Color
	assert.Equal(t, dayColor, weekColor)
	assert.Equal(t, dayColor, BayColor("garage-7-bay-3"))

	// Pure function of the numeric suffix.
	assert.Equal(t, BayColor("other-garage-bay-3"), dayColor)
}

func TestBayColorFallback(t *testing.T) {
	assert.Equal(t, neutralColor, BayColor(""))
	assert.Equal(t, neutralColor, BayColor("garage-bay-"))
	assert.Equal(t, neutralColor, BayColor("garage-bay-12")) // outside 1-9
}

func TestMonthCellOverflow(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	var bookings []models.Booking
	for i := 0; i < 3; i++ {
		bookings = append(bookings, testBooking(fmt.Sprintf("b%d", i), "g-bay-1", at(9+i, 0), 30))
	}

	cell := MonthCell(day, bookings)
	assert.Len(t, cell.Bookings, 2)
	assert.Equal(t, 1, cell.MoreCount)

	two := MonthCell(day, bookings[:2])
	assert.Len(t, two.Bookings, 2)
	assert.Zero(t, two.MoreCount)
}

func TestHourAtPixelInvertsProjection(t *testing.T) {
	// A block projected at the top of hour H must map back to "H:00".
	for hour := 0; hour < 24; hour++ {
		block := models.LayoutBlock{StartMinute: hour * 60, EndMinute: hour*60 + 30}
		top := Project(block, models.ViewDay).Top
		assert.Equal(t, fmt.Sprintf("%02d:00", hour), HourAtPixel(top))
	}
	// Clicks inside the hour round down.
	assert.Equal(t, "09:00", HourAtPixel(9*60+59))
	assert.Equal(t, "00:00", HourAtPixel(-5))
	assert.Equal(t, "23:00", HourAtPixel(5000))
}
