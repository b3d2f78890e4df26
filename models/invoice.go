package models

import "time"

// Invoice statuses.
const (
	InvoiceDraft   = "draft"
	InvoiceIssued  = "issued"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

// Invoice is raised from a completed job sheet.
type Invoice struct {
	ID         string       `bson:"id" json:"id"`
	GarageID   string       `bson:"garage_id" json:"garageId"`
	JobSheetID string       `bson:"jobsheet_id" json:"jobSheetId"`
	BookingID  string       `bson:"booking_id" json:"bookingId"`
	Customer   CustomerInfo `bson:"customer" json:"customer"`
	Subtotal   float64      `bson:"subtotal" json:"subtotal"`
	VAT        float64      `bson:"vat" json:"vat"`
	Total      float64      `bson:"total" json:"total"`
	Status     string       `bson:"status" json:"status"`
	// Stripe payment intent id, set when the invoice is issued with payment collection.
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	IssuedAt        time.Time `bson:"issued_at,omitempty" json:"issuedAt,omitempty"`
	DueAt           time.Time `bson:"due_at,omitempty" json:"dueAt,omitempty"`
	PaidAt          time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
