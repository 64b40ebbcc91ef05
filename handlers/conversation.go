// File: handlers/conversation.go
package handlers

import (
	"net/http"

	"gamedey/middleware"
	"gamedey/services/conversation"

	"github.com/gin-gonic/gin"
)

// ConversationProvisioner is wired in main before the router starts.
var ConversationProvisioner conversation.Provisioner

// GetBookingConversations handles GET /api/bookings/:bookingID/conversations.
// Conversations follow booking visibility: only the requester, the booked
// coach, the facility owner, and administrators may read them.
func GetBookingConversations(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	bookingID := c.Param("bookingID")
	if _, err := BookingService.GetBooking(c.Request.Context(), bookingID, actor); err != nil {
		respondServiceError(c, err)
		return
	}

	set, err := ConversationProvisioner.GetConversations(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, set)
}
