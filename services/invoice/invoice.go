package invoice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"garagehub/config"
	invoiceRepo "garagehub/database/repository/invoice"
	jobSheetRepo "garagehub/database/repository/jobsheet"
	"garagehub/models"
	"garagehub/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const dueAfter = 14 * 24 * time.Hour

var (
	ErrSheetNotCompleted = errors.New("job sheet is not completed")
	ErrAlreadyInvoiced   = errors.New("job sheet already invoiced")
	ErrInvoiceNotPayable = errors.New("invoice is not payable")
)

// InvoiceService raises and settles invoices against completed job sheets.
type InvoiceService interface {
	IssueFromJobSheet(ctx context.Context, jobSheetID string) (*models.Invoice, error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context, garageID, status string) ([]models.Invoice, error)
	MarkPaid(ctx context.Context, id string) (*models.Invoice, error)
}

// DefaultInvoiceService is the production implementation of InvoiceService.
type DefaultInvoiceService struct {
	Invoices invoiceRepo.InvoiceRepository
	Sheets   jobSheetRepo.JobSheetRepository
	Bookings BookingLookup
}

// BookingLookup is the slice of the booking repository the invoice flow needs.
type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// IssueFromJobSheet raises an invoice for a completed job sheet. The subtotal
// is the booked service prices plus any job sheet lines; VAT is applied on top.
// When a Stripe key is configured a payment intent is created so the front
// desk can take card payment against it.
func (svc *DefaultInvoiceService) IssueFromJobSheet(ctx context.Context, jobSheetID string) (*models.Invoice, error) {
	logger := utils.GetLogger()

	sheet, err := svc.Sheets.GetByID(ctx, jobSheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job sheet %s: %w", jobSheetID, err)
	}
	if sheet.Status != models.JobSheetCompleted {
		return nil, ErrSheetNotCompleted
	}
	if sheet.InvoiceID != "" {
		return nil, ErrAlreadyInvoiced
	}

	booking, err := svc.Bookings.GetByID(ctx, sheet.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s for job sheet %s: %w", sheet.BookingID, jobSheetID, err)
	}

	subtotal := sheet.LinesTotal()
	for _, s := range booking.Services {
		subtotal += s.Price
	}
	subtotal = roundPence(subtotal)
	vat := roundPence(subtotal * config.AppConfig.VATRate)

	now := time.Now()
	inv := &models.Invoice{
		ID:         uuid.New().String(),
		GarageID:   sheet.GarageID,
		JobSheetID: sheet.ID,
		BookingID:  booking.ID,
		Customer:   booking.Customer,
		Subtotal:   subtotal,
		VAT:        vat,
		Total:      roundPence(subtotal + vat),
		Status:     models.InvoiceIssued,
		IssuedAt:   now,
		DueAt:      now.Add(dueAfter),
		CreatedAt:  now,
	}

	if config.AppConfig.StripeKey != "" {
		intentID, err := svc.createPaymentIntent(inv)
		if err != nil {
			// Card collection is optional; the invoice still stands.
			logger.Error("Failed to create Stripe payment intent",
				zap.String("invoiceID", inv.ID), zap.Error(err))
		} else {
			inv.PaymentIntentID = intentID
		}
	}

	if err := svc.Invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save invoice for job sheet %s: %w", jobSheetID, err)
	}

	sheet.InvoiceID = inv.ID
	sheet.UpdatedAt = now
	if err := svc.Sheets.Update(ctx, sheet); err != nil {
		logger.Error("Failed to link invoice back to job sheet",
			zap.String("jobSheetID", sheet.ID), zap.String("invoiceID", inv.ID), zap.Error(err))
	}

	logger.Info("Invoice issued",
		zap.String("invoiceID", inv.ID),
		zap.String("jobSheetID", sheet.ID),
		zap.Float64("total", inv.Total))
	return inv, nil
}

func (svc *DefaultInvoiceService) createPaymentIntent(inv *models.Invoice) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(inv.Total * 100))),
		Currency: stripe.String(string(stripe.CurrencyGBP)),
		Metadata: map[string]string{
			"invoice_id": inv.ID,
			"garage_id":  inv.GarageID,
		},
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ID, nil
}

func (svc *DefaultInvoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	inv, err := svc.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", id, err)
	}
	return inv, nil
}

func (svc *DefaultInvoiceService) List(ctx context.Context, garageID, status string) ([]models.Invoice, error) {
	invoices, err := svc.Invoices.ListByGarage(ctx, garageID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for garage %s: %w", garageID, err)
	}
	return invoices, nil
}

// MarkPaid settles an issued or overdue invoice.
func (svc *DefaultInvoiceService) MarkPaid(ctx context.Context, id string) (*models.Invoice, error) {
	inv, err := svc.Invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", id, err)
	}
	if inv.Status != models.InvoiceIssued && inv.Status != models.InvoiceOverdue {
		return nil, ErrInvoiceNotPayable
	}

	inv.Status = models.InvoicePaid
	inv.PaidAt = time.Now()
	if err := svc.Invoices.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice %s paid: %w", id, err)
	}

	utils.GetLogger().Info("Invoice paid",
		zap.String("invoiceID", inv.ID), zap.Float64("total", inv.Total))
	return inv, nil
}

func roundPence(v float64) float64 {
	return math.Round(v*100) / 100
}
