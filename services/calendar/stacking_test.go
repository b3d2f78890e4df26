package calendar

import (
	"testing"
	"time"

	"garagehub/models"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.Local)
}

func TestStackDifferentBaysOverlapping(t *testing.T) {
	// Booking A (bay 1, 09:00, 30 min) and booking B (bay 2, 09:15, 30 min):
	// A keeps lane 0, B is pushed to lane 1.
	a := testBooking("a", "g-bay-1", at(9, 0), 30)
	b := testBooking("b", "g-bay-2", at(9, 15), 30)

	blocks := Stack([]models.Booking{a, b})

	assert.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].BookingID)
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, 9*60, blocks[0].StartMinute)
	assert.Equal(t, 9*60+30, blocks[0].EndMinute)
	assert.Equal(t, "b", blocks[1].BookingID)
	assert.Equal(t, 1, blocks[1].StackOffsetIndex)
}

func TestStackSameBayNeverCountsItself(t *testing.T) {
	// Same bay, even with overlapping times: no stagger.
	c := testBooking("c", "g-bay-1", at(9, 0), 30)
	d := testBooking("d", "g-bay-1", at(9, 15), 30)

	blocks := Stack([]models.Booking{c, d})
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, 0, blocks[1].StackOffsetIndex)
}

func TestStackDisjointSameBay(t *testing.T) {
	c := testBooking("c", "g-bay-1", at(9, 0), 30)
	d := testBooking("d", "g-bay-1", at(10, 0), 30)

	for _, blk := range Stack([]models.Booking{c, d}) {
		assert.Equal(t, 0, blk.StackOffsetIndex)
	}
}

func TestStackTouchingIntervalsDoNotOverlap(t *testing.T) {
	// [09:00,09:30) and [09:30,10:00) on different bays share an endpoint but
	// not an interval.
	a := testBooking("a", "g-bay-1", at(9, 0), 30)
	b := testBooking("b", "g-bay-2", at(9, 30), 30)

	blocks := Stack([]models.Booking{a, b})
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, 0, blocks[1].StackOffsetIndex)
}

func TestStackTiesKeepInputOrder(t *testing.T) {
	a := testBooking("first", "g-bay-1", at(9, 0), 30)
	b := testBooking("second", "g-bay-2", at(9, 0), 30)

	blocks := Stack([]models.Booking{a, b})
	assert.Equal(t, "first", blocks[0].BookingID)
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, "second", blocks[1].BookingID)
	assert.Equal(t, 1, blocks[1].StackOffsetIndex)
}

func TestStackIdempotent(t *testing.T) {
	column := []models.Booking{
		testBooking("a", "g-bay-1", at(9, 0), 60),
		testBooking("b", "g-bay-2", at(9, 15), 60),
		testBooking("c", "g-bay-3", at(9, 30), 60),
		testBooking("d", "g-bay-1", at(9, 45), 60),
	}

	first := Stack(column)
	second := Stack(column)
	assert.Equal(t, first, second)
}

func TestStackLaneDependsOnlyOnEarlierBookings(t *testing.T) {
	// c overlaps both a (bay 1) and b (bay 2) from a third bay: two earlier
	// different-bay overlaps, so lane 2.
	a := testBooking("a", "g-bay-1", at(9, 0), 60)
	b := testBooking("b", "g-bay-2", at(9, 10), 60)
	c := testBooking("c", "g-bay-3", at(9, 20), 60)

	blocks := Stack([]models.Booking{a, b, c})
	assert.Equal(t, 0, blocks[0].StackOffsetIndex)
	assert.Equal(t, 1, blocks[1].StackOffsetIndex)
	assert.Equal(t, 2, blocks[2].StackOffsetIndex)
}

func TestStackZeroTotalDurationFallsBackToServiceSum(t *testing.T) {
	b := testBooking("x", "g-bay-1", at(9, 0), 45)
	b.TotalDuration = 0

	blocks := Stack([]models.Booking{b})
	assert.Equal(t, 9*60+45, blocks[0].EndMinute)
}
