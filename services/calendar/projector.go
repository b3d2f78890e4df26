package calendar

import (
	"fmt"
	"time"

	"garagehub/models"
)

// Presentation constants for the Day/Week timelines. One minute maps to one
// vertical pixel, giving a 1440px column for a full day.
const (
	PixelsPerMinute = 1
	PixelsPerHour   = 60

	DayBaseOffsetPx  = 10
	WeekBaseOffsetPx = 5
	OverlapShiftPx   = 10

	DayWidthPercent  = 97.0
	WeekWidthPercent = 85.0

	// Blocks shorter than this render as a single condensed line instead of
	// full multi-line detail.
	DetailThresholdMinutes = 30

	// Month-view day cells show at most this many bookings before collapsing
	// into a "+N more" indicator.
	MonthMaxVisible = 2
)

// Project turns an abstract layout block into pixel geometry for the Day or
// Week view.
func Project(block models.LayoutBlock, mode models.ViewMode) models.BlockGeometry {
	base := DayBaseOffsetPx
	width := DayWidthPercent
	if mode == models.ViewWeek {
		base = WeekBaseOffsetPx
		width = WeekWidthPercent
	}
	duration := block.EndMinute - block.StartMinute
	return models.BlockGeometry{
		Top:          block.StartMinute * PixelsPerMinute,
		Height:       duration * PixelsPerMinute,
		Left:         base + block.StackOffsetIndex*OverlapShiftPx,
		WidthPercent: width,
		Condensed:    duration < DetailThresholdMinutes,
		Color:        BayColor(block.BayID),
	}
}

// bayPalette maps canonical bay numbers 1-9 to their calendar colors. The
// mapping is shared by all three views so a bay keeps its color everywhere.
var bayPalette = map[int]string{
	1: "#4f86f7",
	2: "#34c47c",
	3: "#f2a93b",
	4: "#9b6ef3",
	5: "#ef6074",
	6: "#2bb3c0",
	7: "#d96fb8",
	8: "#8a9a3d",
	9: "#c47f4a",
}

// neutralColor is used for unmapped or missing bay ids.
const neutralColor = "#94a3b8"

// BayColor returns the palette color for a composite bay id, keyed on its
// numeric suffix, with a neutral fallback.
func BayColor(bayID string) string {
	if c, ok := bayPalette[BayNumber(bayID)]; ok {
		return c
	}
	return neutralColor
}

// MonthCell summarizes one Month-view day: up to MonthMaxVisible bookings
// plus an overflow count for the "+N more" indicator.
func MonthCell(day time.Time, dayBookings []models.Booking) models.DayCell {
	cell := models.DayCell{Date: day.Format(DateLayout)}
	if len(dayBookings) <= MonthMaxVisible {
		cell.Bookings = dayBookings
		return cell
	}
	cell.Bookings = dayBookings[:MonthMaxVisible]
	cell.MoreCount = len(dayBookings) - MonthMaxVisible
	return cell
}

// HourAtPixel inverts the vertical projection for the click-to-create
// affordance: a y offset inside a day column maps to the hour it falls in,
// formatted "HH:00".
func HourAtPixel(y int) string {
	hour := y / PixelsPerHour
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	return fmt.Sprintf("%02d:00", hour)
}
