package stats

import (
	"context"
	"fmt"
	"time"

	bookingRepo "garagehub/database/repository/booking"
	invoiceRepo "garagehub/database/repository/invoice"
	jobSheetRepo "garagehub/database/repository/jobsheet"
	"garagehub/services/calendar"
)

// Overview is the dashboard summary card data.
type Overview struct {
	Date          string  `json:"date"`
	TodayBookings int64   `json:"todayBookings"`
	OpenJobSheets int64   `json:"openJobSheets"`
	WeekRevenue   float64 `json:"weekRevenue"`
}

// StatsService computes dashboard summary figures.
type StatsService interface {
	Overview(ctx context.Context, garageID string, now time.Time) (*Overview, error)
}

// DefaultStatsService is the production implementation of StatsService.
type DefaultStatsService struct {
	Bookings bookingRepo.BookingRepository
	Sheets   jobSheetRepo.JobSheetRepository
	Invoices invoiceRepo.InvoiceRepository
}

// Overview returns today's booking count, the number of open job sheets and
// revenue from invoices paid since the start of the current week.
func (svc *DefaultStatsService) Overview(ctx context.Context, garageID string, now time.Time) (*Overview, error) {
	today := calendar.DayStart(now)

	bookings, err := svc.Bookings.CountForDay(ctx, garageID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bookings for garage %s: %w", garageID, err)
	}

	open, err := svc.Sheets.CountOpen(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("failed to count open job sheets for garage %s: %w", garageID, err)
	}

	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	revenue, err := svc.Invoices.SumPaidSince(ctx, garageID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to sum week revenue for garage %s: %w", garageID, err)
	}

	return &Overview{
		Date:          today.Format(calendar.DateLayout),
		TodayBookings: bookings,
		OpenJobSheets: open,
		WeekRevenue:   revenue,
	}, nil
}
