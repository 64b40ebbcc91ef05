// File: handlers/user.go
package handlers

import (
	"net/http"

	userRepo "gamedey/database/repository/user"
	"gamedey/middleware"
	"gamedey/utils"

	"github.com/gin-gonic/gin"
)

// UserRepo is wired in main before the router starts.
var UserRepo userRepo.UserRepository

// UpdateFCMToken handles PUT /api/users/fcm-token. Clients refresh their push
// token here so reminders and booking updates reach the right device.
func UpdateFCMToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	if err := UserRepo.UpdateFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
