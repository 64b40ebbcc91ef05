// File: handlers/availability.go
package handlers

import (
	"net/http"
	"time"

	booking "gamedey/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailabilityService is wired in main before the router starts.
var AvailabilityService booking.AvailabilityService

const dateLayout = "2006-01-02"

// GetAvailableSlots handles GET /api/availability/slots?facilityId=&coachId=&date=.
func GetAvailableSlots(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	slots, err := AvailabilityService.GetSlots(c.Request.Context(), c.Query("facilityId"), c.Query("coachId"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": slots})
}

// GetBookedDates handles GET /api/availability/calendar?facilityId=&coachId=&startDate=&endDate=.
// It returns the dates in the range with at least one active booking.
func GetBookedDates(c *gin.Context) {
	startDate, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be in YYYY-MM-DD format"})
		return
	}
	endDate, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be in YYYY-MM-DD format"})
		return
	}

	dates, err := AvailabilityService.GetCalendar(c.Request.Context(), c.Query("facilityId"), c.Query("coachId"), startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookedDates": dates})
}

// GetDateAvailability handles GET /api/availability/date?facilityId=&coachId=&date=.
func GetDateAvailability(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	availability, err := AvailabilityService.GetDateAvailability(c.Request.Context(), c.Query("facilityId"), c.Query("coachId"), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}
