package handlers

import (
	"errors"
	"net/http"

	booking "gamedey/services/booking"
	"gamedey/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps booking engine error codes onto HTTP statuses.
// Anything without a code is an internal error.
func respondServiceError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		c.JSON(statusForCode(be.Code), gin.H{"error": be.Message, "code": string(be.Code)})
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}

func statusForCode(code booking.ErrorCode) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidArgument:
		return http.StatusBadRequest
	case booking.CodeConflict:
		return http.StatusConflict
	case booking.CodePermissionDenied:
		return http.StatusForbidden
	case booking.CodeInvalidState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
