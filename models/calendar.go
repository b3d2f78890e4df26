package models

import "time"

// ViewMode selects the calendar rendering window.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ViewWindow is the computed date range for one calendar view. Derived, never persisted.
type ViewWindow struct {
	Mode  ViewMode  `json:"mode"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LayoutBlock is the abstract placement of one booking in one day column.
// Recomputed on every layout pass.
type LayoutBlock struct {
	BookingID        string `json:"bookingId"`
	BayID            string `json:"bayId"`
	StartMinute      int    `json:"startMinute"`
	EndMinute        int    `json:"endMinute"`
	StackOffsetIndex int    `json:"stackOffsetIndex"`
}

// BlockGeometry is the pixel projection of a LayoutBlock for Day/Week views.
type BlockGeometry struct {
	Top          int     `json:"top"`    // px from column top, 1px per minute
	Height       int     `json:"height"` // px
	Left         int     `json:"left"`   // px offset inside the column
	WidthPercent float64 `json:"widthPercent"`
	Condensed    bool    `json:"condensed"` // single-line summary instead of full detail
	Color        string  `json:"color"`     // bay color, consistent across views
}

// DayCell is the Month-view summary for a single day.
type DayCell struct {
	Date      string    `json:"date"` // "YYYY-MM-DD"; empty for grid padding cells
	Bookings  []Booking `json:"bookings,omitempty"`
	MoreCount int       `json:"moreCount"` // bookings beyond the first two
}
