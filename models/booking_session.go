package models

import "time"

// Booking-creation session states. Transitions are managed by the booking
// session service; see services/booking.
const (
	SessionIdle            = "idle"
	SessionServiceSelected = "service_selected"
	SessionDateSelected    = "date_selected"
	SessionSlotsLoaded     = "slots_loaded"
	SessionSlotSelected    = "slot_selected"
	SessionSubmitting      = "submitting"
	SessionCreated         = "created"
	SessionFailed          = "failed"
)

// BookingSession holds the state of one in-progress booking creation flow.
// Cached in Redis between requests; the dashboard form drives it step by step.
type BookingSession struct {
	SessionID  string   `json:"sessionId"`
	GarageID   string   `json:"garageId"`
	State      string   `json:"state"`
	ServiceIDs []string `json:"serviceIds,omitempty"`
	Date       string   `json:"date,omitempty"` // "YYYY-MM-DD"

	// SlotSeq tags the latest slot resolution issued for this session.
	// Responses carrying an older seq are stale and must be discarded.
	SlotSeq      int64  `json:"slotSeq"`
	Slots        []Slot `json:"slots,omitempty"`
	SelectedSlot *Slot  `json:"selectedSlot,omitempty"`

	Customer CustomerInfo `json:"customer"`
	Vehicle  VehicleInfo  `json:"vehicle"`

	LastError     string    `json:"lastError,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
