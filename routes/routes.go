package routes

import (
	"net/http"
	"time"

	"gamedey/handlers"
	"gamedey/middleware"
	"gamedey/services/role"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking lifecycle endpoints. All of
// them require authentication; the ones that need capability checks also run
// the actor resolver.
func RegisterBookingRoutes(r *gin.Engine, resolver role.Resolver) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())

		api.POST("", handlers.CreateBooking)
		api.GET("", handlers.ListMyBookings)
		api.POST("/:bookingID/cancel", handlers.CancelBooking)
		api.POST("/:bookingID/payment-intent", handlers.CreatePaymentIntent)

		withActor := api.Group("")
		withActor.Use(middleware.ActorMiddleware(resolver))
		withActor.GET("/resource", handlers.ListResourceBookings)
		withActor.GET("/:bookingID", handlers.GetBooking)
		withActor.GET("/:bookingID/conversations", handlers.GetBookingConversations)
		withActor.PATCH("/:bookingID/status", handlers.UpdateBookingStatus)
	}
}

// RegisterAvailabilityRoutes registers the public availability queries.
func RegisterAvailabilityRoutes(r *gin.Engine) {
	api := r.Group("/api/availability")
	{
		api.GET("/slots", handlers.GetAvailableSlots)
		api.GET("/calendar", handlers.GetBookedDates)
		api.GET("/date", handlers.GetDateAvailability)
	}
}

// RegisterUserRoutes registers the authenticated account endpoints.
func RegisterUserRoutes(r *gin.Engine) {
	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthMiddleware())
		users.PUT("/fcm-token", handlers.UpdateFCMToken)
	}
}

// RegisterHealthRoute registers the health check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes sets up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, resolver role.Resolver) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r)
	RegisterBookingRoutes(r, resolver)
	RegisterAvailabilityRoutes(r)
	RegisterHealthRoute(r)
}
