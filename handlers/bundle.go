package handlers

import (
	userRepoPkg "garagehub/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users     *UserHandler
	Calendar  *CalendarHandler
	Bookings  *BookingHandler
	Customers *CustomerHandler
	Garages   *GarageHandler
	JobSheets *JobSheetHandler
	Invoices  *InvoiceHandler
	Stats     *StatsHandler
}
