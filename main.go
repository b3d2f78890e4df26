package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garagehub/config"
	"garagehub/cron"
	"garagehub/database"
	bookingRepoPkg "garagehub/database/repository/booking"
	customerRepoPkg "garagehub/database/repository/customer"
	garageRepoPkg "garagehub/database/repository/garage"
	invoiceRepoPkg "garagehub/database/repository/invoice"
	jobSheetRepoPkg "garagehub/database/repository/jobsheet"
	userRepoPkg "garagehub/database/repository/user"
	"garagehub/handlers"
	"garagehub/routes"
	"garagehub/services/booking"
	"garagehub/services/customer"
	"garagehub/services/garage"
	"garagehub/services/invoice"
	"garagehub/services/jobsheet"
	"garagehub/services/stats"
	"garagehub/services/user"
	"garagehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	garageRepo := garageRepoPkg.NewMongoGarageRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	jobSheetRepo := jobSheetRepoPkg.NewMongoJobSheetRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	garageService := &garage.DefaultGarageService{Repo: garageRepo}
	customerService := &customer.DefaultCustomerService{Repo: customerRepo}
	jobSheetService := &jobsheet.DefaultJobSheetService{Repo: jobSheetRepo}

	slotResolver := &booking.DefaultSlotResolver{
		GarageRepo:  garageRepo,
		BookingRepo: bookingRepo,
	}
	sessionStore := &booking.RedisSessionStore{
		Client: utils.GetSessionCacheClient(),
		TTL:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}
	sessionService := &booking.DefaultSessionService{
		Resolver: slotResolver,
		Bookings: bookingRepo,
		Sheets:   jobSheetRepo,
		Store:    sessionStore,
	}

	invoiceService := &invoice.DefaultInvoiceService{
		Invoices: invoiceRepo,
		Sheets:   jobSheetRepo,
		Bookings: bookingRepo,
	}
	statsService := &stats.DefaultStatsService{
		Bookings: bookingRepo,
		Sheets:   jobSheetRepo,
		Invoices: invoiceRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Users:     &handlers.UserHandler{UserService: userService},
		Calendar:  &handlers.CalendarHandler{Bookings: bookingRepo},
		Bookings:  &handlers.BookingHandler{Sessions: sessionService, Bookings: bookingRepo},
		Customers: &handlers.CustomerHandler{CustomerService: customerService},
		Garages:   &handlers.GarageHandler{GarageService: garageService},
		JobSheets: &handlers.JobSheetHandler{JobSheetService: jobSheetService},
		Invoices:  &handlers.InvoiceHandler{InvoiceService: invoiceService},
		Stats:     &handlers.StatsHandler{StatsService: statsService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background invoice sweep.
	cron.InitSweepWorker(invoiceRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
