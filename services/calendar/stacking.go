package calendar

import (
	"sort"

	"garagehub/models"
)

// Stack assigns a horizontal lane to each booking in one rendering column
// (one calendar day). Time-overlapping bookings in different bays are
// staggered; same-bay bookings never count against each other, since a bay is
// serialized by construction and a same-bay overlap is a data problem, not a
// layout one.
//
// The lane index is a left-to-right incremental overlap count, not a minimal
// graph coloring: a booking's lane depends only on earlier-sorted bookings,
// so placed bookings never reflow when later ones arrive. Dense clusters can
// over-allocate lanes; that is accepted.
func Stack(column []models.Booking) []models.LayoutBlock {
	blocks := make([]models.LayoutBlock, 0, len(column))
	for _, b := range column {
		start := b.StartMinute()
		if start < 0 {
			continue
		}
		duration := b.TotalDuration
		if duration <= 0 {
			for _, s := range b.Services {
				duration += s.Duration
			}
		}
		blocks = append(blocks, models.LayoutBlock{
			BookingID:   b.ID,
			BayID:       b.Services[0].BayID,
			StartMinute: start,
			EndMinute:   start + duration,
		})
	}

	// Stable: equal start times keep their input order, which keeps lane
	// assignment reproducible for identical input.
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartMinute < blocks[j].StartMinute
	})

	for i := range blocks {
		overlaps := 0
		for j := 0; j < i; j++ {
			if blocks[j].BayID == blocks[i].BayID {
				continue
			}
			if blocks[j].EndMinute > blocks[i].StartMinute && blocks[j].StartMinute < blocks[i].EndMinute {
				overlaps++
			}
		}
		blocks[i].StackOffsetIndex = overlaps
	}
	return blocks
}
