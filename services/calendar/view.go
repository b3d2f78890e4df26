package calendar

import (
	"time"

	"garagehub/models"
)

// PlacedBlock pairs a layout block with its projected geometry.
type PlacedBlock struct {
	models.LayoutBlock
	Geometry models.BlockGeometry `json:"geometry"`
}

// DayColumn is one rendered day of the Day/Week timeline.
type DayColumn struct {
	Date   string        `json:"date"`
	Blocks []PlacedBlock `json:"blocks"`
}

// View is the full layout result handed to the dashboard.
type View struct {
	Window  models.ViewWindow  `json:"window"`
	Columns []DayColumn        `json:"columns,omitempty"` // day/week
	Grid    [][]models.DayCell `json:"grid,omitempty"`    // month
}

// BuildView runs the full pipeline for one render pass: window filter, per-day
// stacking, and projection. Pure; recomputed from the booking snapshot on
// every navigation or filter change.
func BuildView(all []models.Booking, mode models.ViewMode, ref time.Time, bayFilter string) View {
	window, ok := Window(mode, ref)
	view := View{Window: window}
	if !ok {
		return view
	}

	filtered := FilterBookings(all, mode, ref, bayFilter)

	switch mode {
	case models.ViewDay:
		view.Columns = []DayColumn{buildColumn(filtered, DayStart(ref), mode)}
	case models.ViewWeek:
		days := WeekDates(ref)
		for _, day := range days {
			view.Columns = append(view.Columns, buildColumn(filtered, day, mode))
		}
	case models.ViewMonth:
		for _, week := range MonthGrid(ref) {
			row := make([]models.DayCell, 7)
			for i, day := range week {
				if day == nil {
					continue // padding cell
				}
				row[i] = MonthCell(*day, BookingsOn(filtered, *day))
			}
			view.Grid = append(view.Grid, row)
		}
	}
	return view
}

// buildColumn stacks and projects the bookings whose earliest service starts
// on the given day.
func buildColumn(filtered []models.Booking, day time.Time, mode models.ViewMode) DayColumn {
	next := day.AddDate(0, 0, 1)
	var column []models.Booking
	for _, b := range filtered {
		start, ok := earliestStart(b)
		if !ok {
			continue
		}
		if !start.Before(day) && start.Before(next) {
			column = append(column, b)
		}
	}

	col := DayColumn{Date: day.Format(DateLayout)}
	for _, block := range Stack(column) {
		col.Blocks = append(col.Blocks, PlacedBlock{
			LayoutBlock: block,
			Geometry:    Project(block, mode),
		})
	}
	return col
}

func earliestStart(b models.Booking) (time.Time, bool) {
	if len(b.Services) == 0 {
		return time.Time{}, false
	}
	earliest := b.Services[0].StartTime
	for _, s := range b.Services[1:] {
		if s.StartTime.Before(earliest) {
			earliest = s.StartTime
		}
	}
	return earliest, true
}
