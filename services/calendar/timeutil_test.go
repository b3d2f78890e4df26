package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesFromMidnight(t *testing.T) {
	assert.Equal(t, 0, MinutesFromMidnight(time.Date(2025, 3, 10, 0, 0, 59, 0, time.Local)))
	assert.Equal(t, 9*60+15, MinutesFromMidnight(time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)))
	assert.Equal(t, 1439, MinutesFromMidnight(time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)))
}

func TestWeekDatesStartsOnSunday(t *testing.T) {
	// A week spans exactly 7 consecutive days starting on a Sunday, whatever
	// weekday the reference falls on.
	for offset := 0; offset < 7; offset++ {
		ref := time.Date(2025, 3, 9, 14, 30, 0, 0, time.Local).AddDate(0, 0, offset) // 2025-03-09 is a Sunday
		days := WeekDates(ref)

		assert.Equal(t, time.Sunday, days[0].Weekday())
		for i := 1; i < 7; i++ {
			assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
		}
		// The reference date itself is inside the week.
		assert.False(t, DayStart(ref).Before(days[0]))
		assert.False(t, DayStart(ref).After(days[6]))
	}
}

func TestMonthGrid(t *testing.T) {
	// March 2025: the 1st is a Saturday, the 31st a Monday.
	grid := MonthGrid(time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local))

	assert.Len(t, grid, 6)
	for i := 0; i < 6; i++ {
		assert.Nil(t, grid[0][i], "cells before the 1st are padding")
	}
	assert.Equal(t, 1, grid[0][6].Day())
	assert.Equal(t, 31, grid[5][1].Day())
	for i := 2; i < 7; i++ {
		assert.Nil(t, grid[5][i], "cells after the 31st are padding")
	}

	// Every day of the month appears exactly once.
	seen := map[int]bool{}
	for _, row := range grid {
		for _, cell := range row {
			if cell != nil {
				assert.False(t, seen[cell.Day()])
				seen[cell.Day()] = true
			}
		}
	}
	assert.Len(t, seen, 31)
}

func TestBayNumber(t *testing.T) {
	assert.Equal(t, 3, BayNumber("garage-42-bay-3"))
	assert.Equal(t, 12, BayNumber("garage-42-bay-12"))
	assert.Equal(t, 7, BayNumber("7"))
	assert.Equal(t, 0, BayNumber("no-suffix-"))
	assert.Equal(t, 0, BayNumber(""))
}
