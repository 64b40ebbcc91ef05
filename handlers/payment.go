// File: handlers/payment.go
package handlers

import (
	"net/http"

	"gamedey/middleware"
	"gamedey/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentService is wired in main before the router starts.
var PaymentService payment.PaymentService

// CreatePaymentIntent handles POST /api/bookings/:bookingID/payment-intent.
func CreatePaymentIntent(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	info, err := PaymentService.CreateIntent(c.Request.Context(), c.Param("bookingID"), userID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
