package models

import "time"

// SlotAssignment is one technician/bay/time assignment for a requested service
// inside a candidate slot.
type SlotAssignment struct {
	ServiceID      string    `json:"serviceId"`
	ServiceName    string    `json:"serviceName"`
	TechnicianID   string    `json:"technicianId"`
	TechnicianName string    `json:"technicianName,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Price          float64   `json:"price"`
}

// Slot is a candidate bay/technician/time combination offered during booking
// creation. Produced fresh per search; never stored.
type Slot struct {
	ID          string           `json:"id"`
	Bay         Bay              `json:"bay"`
	Services    []SlotAssignment `json:"services"`
	Date        string           `json:"date"` // "YYYY-MM-DD"
	IsAvailable bool             `json:"isAvailable"`
	Reason      string           `json:"reason,omitempty"` // why the slot is blocked, when IsAvailable is false
}

// TotalDuration sums the assignment durations in minutes.
func (s Slot) TotalDuration() int {
	total := 0
	for _, a := range s.Services {
		total += int(a.EndTime.Sub(a.StartTime).Minutes())
	}
	return total
}
