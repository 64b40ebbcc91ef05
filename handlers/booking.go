// File: handlers/booking.go
package handlers

import (
	"net/http"

	"gamedey/middleware"
	"gamedey/models"
	booking "gamedey/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingService is wired in main before the router starts.
var BookingService booking.BookingService

// CreateBooking handles POST /api/bookings.
func CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	detail, err := BookingService.Create(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// GetBooking handles GET /api/bookings/:bookingID.
func GetBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	detail, err := BookingService.GetBooking(c.Request.Context(), c.Param("bookingID"), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListMyBookings handles GET /api/bookings. It returns the requester's own
// bookings, newest first.
func ListMyBookings(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	bookings, err := BookingService.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListResourceBookings handles GET /api/bookings/resource. Coaches see their
// sessions, facility owners see their reservations.
func ListResourceBookings(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	bookings, err := BookingService.ListResourceBookings(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus handles PATCH /api/bookings/:bookingID/status.
func UpdateBookingStatus(c *gin.Context) {
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	detail, err := BookingService.UpdateStatus(c.Request.Context(), c.Param("bookingID"), req.Status, actor, req.CancellationReason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CancelBooking handles POST /api/bookings/:bookingID/cancel. This is the
// requester path with the cancellation cutoff enforced.
func CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	detail, err := BookingService.Cancel(c.Request.Context(), c.Param("bookingID"), userID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
