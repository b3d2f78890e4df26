package models

import "time"

// ServiceSpan is one service item within a booking, carrying its own bay,
// technician and absolute start/end time.
type ServiceSpan struct {
	ServiceID    string    `bson:"service_id" json:"serviceId"`
	Name         string    `bson:"name" json:"name"`
	BayID        string    `bson:"bay_id" json:"bayId"`               // composite id, e.g. "garage-42-bay-3"
	TechnicianID string    `bson:"technician_id" json:"technicianId"` // assigned technician
	StartTime    time.Time `bson:"start_time" json:"startTime"`
	EndTime      time.Time `bson:"end_time" json:"endTime"`
	Duration     int       `bson:"duration" json:"duration"` // minutes
	Price        float64   `bson:"price" json:"price"`
}

// Booking represents a scheduled garage appointment.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	GarageID      string        `bson:"garage_id" json:"garageId"`
	Customer      CustomerInfo  `bson:"customer" json:"customer"`
	Vehicle       VehicleInfo   `bson:"vehicle" json:"vehicle"`
	Services      []ServiceSpan `bson:"services" json:"services"`
	TotalDuration int           `bson:"total_duration" json:"totalDuration"` // minutes
	TotalPrice    float64       `bson:"total_price" json:"totalPrice"`
	BookingDate   string        `bson:"booking_date" json:"bookingDate"` // "YYYY-MM-DD"; may differ from service start dates across midnight
	Status        string        `bson:"status" json:"status"`            // e.g. "Confirmed", "Completed", "Cancelled"
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
}

// StartMinute returns the earliest service start as minutes from midnight,
// or -1 when the booking has no services.
func (b Booking) StartMinute() int {
	if len(b.Services) == 0 {
		return -1
	}
	min := -1
	for _, s := range b.Services {
		m := s.StartTime.Hour()*60 + s.StartTime.Minute()
		if min < 0 || m < min {
			min = m
		}
	}
	return min
}

// CustomerInfo holds the customer fields the dashboard shows on a booking.
type CustomerInfo struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// VehicleInfo holds the descriptive vehicle fields attached to a booking.
type VehicleInfo struct {
	Registration string `bson:"registration" json:"registration"`
	Make         string `bson:"make,omitempty" json:"make,omitempty"`
	Model        string `bson:"model,omitempty" json:"model,omitempty"`
	Year         int    `bson:"year,omitempty" json:"year,omitempty"`
}
