package models

import "time"

// Job sheet statuses.
const (
	JobSheetOpen       = "open"
	JobSheetInProgress = "in_progress"
	JobSheetCompleted  = "completed"
)

// JobLine is one line of work or parts on a job sheet.
type JobLine struct {
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unitPrice"`
}

// Total returns the line total.
func (l JobLine) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// JobSheet is the work record opened for a booking.
type JobSheet struct {
	ID         string    `bson:"id" json:"id"`
	GarageID   string    `bson:"garage_id" json:"garageId"`
	BookingID  string    `bson:"booking_id" json:"bookingId"`
	Status     string    `bson:"status" json:"status"`
	Lines      []JobLine `bson:"lines,omitempty" json:"lines,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
	InvoiceID  string    `bson:"invoice_id,omitempty" json:"invoiceId,omitempty"`
	Technician string    `bson:"technician,omitempty" json:"technician,omitempty"`
}

// LinesTotal sums all line totals.
func (j JobSheet) LinesTotal() float64 {
	total := 0.0
	for _, l := range j.Lines {
		total += l.Total()
	}
	return total
}
