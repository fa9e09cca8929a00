package transport

import (
	"github.com/adeenasif/little-lemon-booking/internal/transport/middleware"
	"github.com/adeenasif/little-lemon-booking/internal/worker"
	"github.com/gin-gonic/gin"
)

func InitRoutes(bookingHandler *BookingHandler, timesHandler *TimesHandler, syncWorker *worker.BookingSyncWorker) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// API routes
	api := router.Group("/api/v1")
	{
		// Time-slot routes
		times := api.Group("/times")
		{
			times.GET("", timesHandler.GetAvailableTimes)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("", bookingHandler.GetAllBookings)
			bookings.GET("/current", bookingHandler.GetCurrentBooking)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.DELETE("/:id", bookingHandler.CancelBooking)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		payload := gin.H{
			"status":    "ok",
			"timestamp": gin.H{"time": "server is running"},
		}
		if syncWorker != nil {
			payload["worker"] = syncWorker.GetStats()
		}
		c.JSON(200, payload)
	})

	return router
}
