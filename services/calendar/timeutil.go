package calendar

import (
	"strconv"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MinutesFromMidnight converts a timestamp to minutes from local midnight,
// in [0, 1439]. No timezone conversion is attempted beyond the timestamp's
// own location.
func MinutesFromMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayStart truncates a timestamp to local midnight.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDates returns the Sunday-aligned week containing the reference date:
// seven consecutive days starting on the Sunday on or before ref.
func WeekDates(ref time.Time) [7]time.Time {
	var days [7]time.Time
	sunday := DayStart(ref).AddDate(0, 0, -int(ref.Weekday()))
	for i := 0; i < 7; i++ {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns full weeks covering the reference month. Cells before the
// 1st and after the last day are nil so every row has exactly 7 entries.
func MonthGrid(ref time.Time) [][7]*time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var grid [][7]*time.Time
	var row [7]*time.Time
	col := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		d := first.AddDate(0, 0, day-1)
		row[col] = &d
		col++
		if col == 7 {
			grid = append(grid, row)
			row = [7]*time.Time{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid
}

// BayNumber extracts the trailing integer from a composite bay id
// ("garage-42-bay-3" -> 3). Returns 0 when the id has no numeric suffix.
func BayNumber(bayID string) int {
	end := len(bayID)
	start := end
	for start > 0 && bayID[start-1] >= '0' && bayID[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	n, err := strconv.Atoi(bayID[start:end])
	if err != nil {
		return 0
	}
	return n
}
