package invoice

import (
	"context"
	"testing"
	"time"

	"garagehub/config"
	"garagehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ListByGarage(ctx context.Context, garageID, status string) ([]models.Invoice, error) {
	args := m.Called(ctx, garageID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, inv *models.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepo) SumPaidSince(ctx context.Context, garageID string, since time.Time) (float64, error) {
	args := m.Called(ctx, garageID, since)
	return args.Get(0).(float64), args.Error(1)
}

type MockJobSheetRepo struct {
	mock.Mock
}

func (m *MockJobSheetRepo) Create(ctx context.Context, sheet *models.JobSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockJobSheetRepo) GetByID(ctx context.Context, id string) (*models.JobSheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobSheet), args.Error(1)
}

func (m *MockJobSheetRepo) GetByBooking(ctx context.Context, bookingID string) (*models.JobSheet, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobSheet), args.Error(1)
}

func (m *MockJobSheetRepo) ListByGarage(ctx context.Context, garageID, status string) ([]models.JobSheet, error) {
	args := m.Called(ctx, garageID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobSheet), args.Error(1)
}

func (m *MockJobSheetRepo) Update(ctx context.Context, sheet *models.JobSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

func (m *MockJobSheetRepo) CountOpen(ctx context.Context, garageID string) (int64, error) {
	args := m.Called(ctx, garageID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingLookup struct {
	mock.Mock
}

func (m *MockBookingLookup) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func completedSheet() *models.JobSheet {
	return &models.JobSheet{
		ID:        "js1",
		GarageID:  "g1",
		BookingID: "b1",
		Status:    models.JobSheetCompleted,
		Lines: []models.JobLine{
			{Description: "Brake pads", Quantity: 2, UnitPrice: 25.00},
		},
	}
}

func invoicedBooking() *models.Booking {
	return &models.Booking{
		ID:       "b1",
		GarageID: "g1",
		Customer: models.CustomerInfo{Name: "Jane Smith"},
		Services: []models.ServiceSpan{
			{ServiceID: "svc-mot", Name: "MOT", Price: 54.85},
		},
	}
}

func TestIssueFromJobSheet(t *testing.T) {
	config.AppConfig.VATRate = 0.20

	invoices := new(MockInvoiceRepo)
	sheets := new(MockJobSheetRepo)
	bookings := new(MockBookingLookup)

	sheets.On("GetByID", mock.Anything, "js1").Return(completedSheet(), nil)
	bookings.On("GetByID", mock.Anything, "b1").Return(invoicedBooking(), nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	sheets.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := &DefaultInvoiceService{Invoices: invoices, Sheets: sheets, Bookings: bookings}
	inv, err := svc.IssueFromJobSheet(context.Background(), "js1")
	assert.NoError(t, err)

	// 2 x 25.00 lines + 54.85 service = 104.85 subtotal, 20.97 VAT.
	assert.Equal(t, 104.85, inv.Subtotal)
	assert.Equal(t, 20.97, inv.VAT)
	assert.Equal(t, 125.82, inv.Total)
	assert.Equal(t, models.InvoiceIssued, inv.Status)
	assert.Equal(t, "Jane Smith", inv.Customer.Name)
	assert.False(t, inv.DueAt.IsZero())

	// The job sheet must be linked back to the new invoice.
	sheets.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(s *models.JobSheet) bool {
		return s.InvoiceID == inv.ID
	}))
}

func TestIssueFromJobSheetNotCompleted(t *testing.T) {
	sheets := new(MockJobSheetRepo)
	sheet := completedSheet()
	sheet.Status = models.JobSheetInProgress
	sheets.On("GetByID", mock.Anything, "js1").Return(sheet, nil)

	svc := &DefaultInvoiceService{Sheets: sheets}
	_, err := svc.IssueFromJobSheet(context.Background(), "js1")
	assert.ErrorIs(t, err, ErrSheetNotCompleted)
}

func TestIssueFromJobSheetAlreadyInvoiced(t *testing.T) {
	sheets := new(MockJobSheetRepo)
	sheet := completedSheet()
	sheet.InvoiceID = "inv-existing"
	sheets.On("GetByID", mock.Anything, "js1").Return(sheet, nil)

	svc := &DefaultInvoiceService{Sheets: sheets}
	_, err := svc.IssueFromJobSheet(context.Background(), "js1")
	assert.ErrorIs(t, err, ErrAlreadyInvoiced)
}

func TestMarkPaid(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	invoices.On("GetByID", mock.Anything, "inv1").Return(&models.Invoice{
		ID:     "inv1",
		Status: models.InvoiceIssued,
		Total:  125.82,
	}, nil)
	invoices.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := &DefaultInvoiceService{Invoices: invoices}
	inv, err := svc.MarkPaid(context.Background(), "inv1")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, inv.Status)
	assert.False(t, inv.PaidAt.IsZero())
}

func TestMarkPaidOverdueInvoice(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	invoices.On("GetByID", mock.Anything, "inv1").Return(&models.Invoice{
		ID:     "inv1",
		Status: models.InvoiceOverdue,
	}, nil)
	invoices.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := &DefaultInvoiceService{Invoices: invoices}
	inv, err := svc.MarkPaid(context.Background(), "inv1")
	assert.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, inv.Status)
}

func TestMarkPaidDraftInvoice(t *testing.T) {
	invoices := new(MockInvoiceRepo)
	invoices.On("GetByID", mock.Anything, "inv1").Return(&models.Invoice{
		ID:     "inv1",
		Status: models.InvoiceDraft,
	}, nil)

	svc := &DefaultInvoiceService{Invoices: invoices}
	_, err := svc.MarkPaid(context.Background(), "inv1")
	assert.ErrorIs(t, err, ErrInvoiceNotPayable)
}
