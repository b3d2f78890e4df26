package routes

import (
	"net/http"
	"time"

	"garagehub/handlers"
	"garagehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers staff account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.MeHandler)
		api.POST("/logout", hb.Users.LogoutHandler)
	}
}

// RegisterCalendarRoutes registers the calendar view endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Calendar.GetCalendarHandler)
		api.GET("/click", hb.Calendar.ClickCalendarHandler)
	}
}

// RegisterBookingRoutes sets up the booking session flow and booking reads.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/booking")
	{
		sessionGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		sessionGroup.POST("/session", hb.Bookings.StartSessionHandler)
		sessionGroup.GET("/session/:sessionID", hb.Bookings.GetSessionHandler)
		sessionGroup.PUT("/session/:sessionID", hb.Bookings.UpdateSessionHandler)
		sessionGroup.PUT("/session/:sessionID/slot", hb.Bookings.SelectSlotHandler)
		sessionGroup.POST("/session/:sessionID/confirm", hb.Bookings.ConfirmBookingHandler)
		sessionGroup.DELETE("/session/:sessionID", hb.Bookings.CancelSessionHandler)
	}

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.GET("", hb.Bookings.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.Bookings.GetBookingHandler)
		bookingGroup.PUT("/:id/status", hb.Bookings.UpdateBookingStatusHandler)
		bookingGroup.GET("/:id/jobsheet", hb.JobSheets.GetByBookingHandler)
	}
}

// RegisterCustomerRoutes registers customer and vehicle endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Customers.CreateCustomerHandler)
		api.GET("", hb.Customers.ListCustomersHandler)
		api.GET("/:id", hb.Customers.GetCustomerHandler)
		api.PUT("/:id", hb.Customers.UpdateCustomerHandler)
		api.DELETE("/:id", hb.Customers.DeleteCustomerHandler)
		api.POST("/:id/vehicles", hb.Customers.AddVehicleHandler)
	}
}

// RegisterGarageRoutes registers garage settings endpoints. Writes are
// admin-only.
func RegisterGarageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/garage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Garages.GetGarageHandler)
		api.PUT("", middleware.RequireAdmin(), hb.Garages.SaveGarageHandler)
		api.PUT("/hours", middleware.RequireAdmin(), hb.Garages.SetHoursHandler)
	}
}

// RegisterJobSheetRoutes registers job sheet and invoicing endpoints.
func RegisterJobSheetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sheets := r.Group("/api/jobsheets")
	{
		sheets.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		sheets.GET("", hb.JobSheets.ListJobSheetsHandler)
		sheets.GET("/:id", hb.JobSheets.GetJobSheetHandler)
		sheets.POST("/:id/lines", hb.JobSheets.AddLineHandler)
		sheets.PUT("/:id/status", hb.JobSheets.SetStatusHandler)
		sheets.PUT("/:id/notes", hb.JobSheets.SetNotesHandler)
		sheets.POST("/:id/invoice", hb.Invoices.IssueInvoiceHandler)
	}

	invoices := r.Group("/api/invoices")
	{
		invoices.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		invoices.GET("", hb.Invoices.ListInvoicesHandler)
		invoices.GET("/:id", hb.Invoices.GetInvoiceHandler)
		invoices.POST("/:id/pay", hb.Invoices.PayInvoiceHandler)
	}
}

// RegisterStatsRoutes registers the dashboard summary endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/overview", hb.Stats.OverviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterGarageRoutes(r, hb)
	RegisterJobSheetRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
}
